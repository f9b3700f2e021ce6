package finsight

// daysPerMonth is the mean Gregorian month length, used to turn a day count
// into months when deriving the required monthly savings.
const daysPerMonth = 30.44

// Goal is a savings goal as loaded from the dataset.
type Goal struct {
	Name          string
	TargetAmount  Money
	CurrentAmount Money
	TargetDate    Date
}

// ProjectedGoal is a goal with its derived progress figures.
type ProjectedGoal struct {
	Goal
	ProgressPct            Percent // uncapped, >100% means the goal is exceeded
	DaysRemaining          int     // negative when the target date has passed
	RequiredMonthlySavings Money   // zero once the deadline has passed
}

// ProjectGoal derives the progress of a single goal as of the given date.
//
// ProgressPct is not clamped: values above 100% signal an exceeded goal, and
// the renderer decides how to display them. DaysRemaining is a plain calendar
// difference and goes negative for overdue goals. RequiredMonthlySavings
// spreads the remaining shortfall over the remaining months; once the
// deadline has passed there is no monthly figure to suggest, so it is zero
// regardless of the shortfall.
func ProjectGoal(g Goal, asOf Date) ProjectedGoal {
	p := ProjectedGoal{Goal: g}
	p.ProgressPct = g.CurrentAmount.PercentOf(g.TargetAmount)
	p.DaysRemaining = g.TargetDate.Sub(asOf)
	if p.DaysRemaining > 0 {
		shortfall := g.TargetAmount.Sub(g.CurrentAmount)
		p.RequiredMonthlySavings = shortfall.Mul(Q(daysPerMonth)).Div(Q(p.DaysRemaining))
	} else {
		p.RequiredMonthlySavings = M(0)
	}
	return p
}

// ProjectGoals projects every goal as of the given date, preserving input
// order. The input slice is not modified.
func ProjectGoals(goals []Goal, asOf Date) []ProjectedGoal {
	out := make([]ProjectedGoal, 0, len(goals))
	for _, g := range goals {
		out = append(out, ProjectGoal(g, asOf))
	}
	return out
}

// GoalsReport is the projected goal list with its rollups. A goal counts as
// completed at 100% progress, on track from 50%, and behind below that.
type GoalsReport struct {
	AsOf            Date
	Goals           []ProjectedGoal
	Completed       int
	OnTrack         int
	Behind          int
	TotalTarget     Money
	TotalCurrent    Money
	OverallProgress Percent
}

// NewGoalsReport projects the goals and derives the report rollups.
func NewGoalsReport(goals []Goal, asOf Date) *GoalsReport {
	report := &GoalsReport{AsOf: asOf, Goals: ProjectGoals(goals, asOf)}
	for _, g := range report.Goals {
		switch {
		case g.ProgressPct >= 100:
			report.Completed++
		case g.ProgressPct >= 50:
			report.OnTrack++
		default:
			report.Behind++
		}
		report.TotalTarget = report.TotalTarget.Add(g.TargetAmount)
		report.TotalCurrent = report.TotalCurrent.Add(g.CurrentAmount)
	}
	report.OverallProgress = report.TotalCurrent.PercentOf(report.TotalTarget)
	return report
}
