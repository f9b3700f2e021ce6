package finsight

import "fmt"

// Percent is a percentage value where 1.0 means 1%.
type Percent float64

// Equal compares two percentages with a fixed precision.
func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString returns the percentage with an explicit sign, or "-" for zero.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
