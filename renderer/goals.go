package renderer

import (
	"fmt"
	"strings"

	"github.com/finsight/finsight"
)

// goalStatus names the bucket a goal falls in, matching the report counters.
func goalStatus(g finsight.ProjectedGoal) string {
	switch {
	case g.ProgressPct >= 100:
		return "completed"
	case g.ProgressPct >= 50:
		return "on track"
	default:
		return "behind"
	}
}

// GoalsMarkdown renders each goal's projection and the overall standing.
func GoalsMarkdown(report *finsight.GoalsReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Financial Goals on %s\n\n", report.AsOf)
	if len(report.Goals) == 0 {
		fmt.Fprintln(&b, "No goals defined.")
		return b.String()
	}

	fmt.Fprintf(&b, "%d completed, %d on track, %d behind. Overall progress: %s (%s of %s).\n\n",
		report.Completed, report.OnTrack, report.Behind,
		report.OverallProgress,
		report.TotalCurrent.String(),
		report.TotalTarget.String(),
	)

	fmt.Fprintln(&b, "| Goal | Target | Current | Progress | Days Left | Required/Month | Status |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|:---|")
	for _, g := range report.Goals {
		daysLeft := fmt.Sprintf("%d", g.DaysRemaining)
		if g.DaysRemaining < 0 {
			daysLeft = "overdue"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			g.Name,
			g.TargetAmount.String(),
			g.CurrentAmount.String(),
			g.ProgressPct,
			daysLeft,
			g.RequiredMonthlySavings.String(),
			goalStatus(g),
		)
	}

	return b.String()
}
