package finsight

import (
	"math"
	"testing"
)

func TestProjectGoal(t *testing.T) {
	goal := Goal{
		Name:          "Emergency Fund",
		TargetAmount:  M(25000),
		CurrentAmount: M(12500),
		TargetDate:    MustParseDate("2024-12-31"),
	}
	asOf := MustParseDate("2024-01-01")

	p := ProjectGoal(goal, asOf)

	if !p.ProgressPct.Equal(50) {
		t.Errorf("progress = %s, want 50%%", p.ProgressPct)
	}
	if p.DaysRemaining != 365 {
		t.Errorf("days remaining = %d, want 365 (2024 is a leap year)", p.DaysRemaining)
	}
	// 12500 / (365 / 30.44) = 1042.47
	want := 12500.0 * 30.44 / 365.0
	if got := p.RequiredMonthlySavings.AsFloat(); math.Abs(got-want) > 0.0001 {
		t.Errorf("required monthly savings = %f, want %f", got, want)
	}
}

func TestProjectGoal_Overdue(t *testing.T) {
	goal := Goal{
		Name:          "Vacation",
		TargetAmount:  M(8000),
		CurrentAmount: M(3200),
		TargetDate:    MustParseDate("2024-06-15"),
	}

	p := ProjectGoal(goal, MustParseDate("2024-07-01"))

	if p.DaysRemaining != -16 {
		t.Errorf("days remaining = %d, want -16", p.DaysRemaining)
	}
	// no monthly figure once the deadline has passed, shortfall or not.
	assertMoney(t, "required monthly savings", p.RequiredMonthlySavings, 0)
}

func TestProjectGoal_Exceeded(t *testing.T) {
	goal := Goal{
		Name:          "Laptop",
		TargetAmount:  M(2000),
		CurrentAmount: M(2500),
		TargetDate:    MustParseDate("2030-01-01"),
	}

	p := ProjectGoal(goal, MustParseDate("2024-01-01"))

	// progress is not capped at 100%.
	if !p.ProgressPct.Equal(125) {
		t.Errorf("progress = %s, want 125%%", p.ProgressPct)
	}
}

func TestProjectGoal_ZeroTarget(t *testing.T) {
	goal := Goal{Name: "Nothing", TargetAmount: M(0), CurrentAmount: M(100)}

	p := ProjectGoal(goal, MustParseDate("2024-01-01"))

	if p.ProgressPct != 0 {
		t.Errorf("progress = %s, want 0 for a zero target", p.ProgressPct)
	}
}

func TestNewGoalsReport(t *testing.T) {
	asOf := MustParseDate("2024-06-01")
	goals := []Goal{
		{Name: "Done", TargetAmount: M(1000), CurrentAmount: M(1200), TargetDate: MustParseDate("2025-01-01")},
		{Name: "Halfway", TargetAmount: M(1000), CurrentAmount: M(600), TargetDate: MustParseDate("2025-01-01")},
		{Name: "Started", TargetAmount: M(1000), CurrentAmount: M(100), TargetDate: MustParseDate("2025-01-01")},
	}

	report := NewGoalsReport(goals, asOf)

	if report.Completed != 1 || report.OnTrack != 1 || report.Behind != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/1/1",
			report.Completed, report.OnTrack, report.Behind)
	}
	assertMoney(t, "total target", report.TotalTarget, 3000)
	assertMoney(t, "total current", report.TotalCurrent, 1900)
	if !report.OverallProgress.Equal(63.3333) {
		t.Errorf("overall progress = %s, want 63.33%%", report.OverallProgress)
	}
}
