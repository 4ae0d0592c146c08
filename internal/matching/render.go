package matching

import (
	"fmt"
	"strconv"
)

// Renderer turns a structured reason into display text.
type Renderer interface {
	Render(r Reason) string
}

// TextRenderer produces the English labels shown on the assignment screen.
type TextRenderer struct{}

func (TextRenderer) Render(r Reason) string {
	switch r.Code {
	case ReasonSkillMatched:
		label := fmt.Sprintf("%s - %s level", r.SkillName, r.Level)
		if r.Certified {
			label += " (Certified)"
		}
		return label
	case ReasonSkillMissing:
		return "Missing: " + r.SkillName
	case ReasonLowWorkload:
		return fmt.Sprintf("Low current workload (%s%%)", formatNumber(r.Workload))
	case ReasonHighWorkload:
		return fmt.Sprintf("High current workload (%s%%)", formatNumber(r.Workload))
	case ReasonExcellentPerformance:
		return fmt.Sprintf("Excellent performance rating (%s/100)", formatNumber(r.Performance))
	case ReasonBelowAverage:
		return fmt.Sprintf("Below average performance (%s/100)", formatNumber(r.Performance))
	case ReasonOnShift:
		return fmt.Sprintf("Available (%s shift)", r.Shift)
	case ReasonOffShift:
		return "Not on shift during task time"
	}
	return string(r.Code)
}

// RenderAll renders reasons in order.
func RenderAll(rd Renderer, reasons []Reason) []string {
	out := make([]string, len(reasons))
	for i, r := range reasons {
		out[i] = rd.Render(r)
	}
	return out
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
