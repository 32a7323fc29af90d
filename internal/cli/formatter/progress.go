package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░] 45% for the share of the
// weekly target already worked. The bar turns green once the target is
// reached, yellow from two thirds and stays dim below. Values above 100%
// keep a full bar but show the real percentage.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	empty := width - filled

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)

	style := StyleDim
	if pct >= 1 {
		style = StyleGreen
	} else if pct >= 0.66 {
		style = StyleYellow
	}

	pctStr := fmt.Sprintf("%3.0f%%", pct*100)
	return fmt.Sprintf("[%s] %s", style.Render(bar), pctStr)
}

// TargetShare returns total/threshold, or 0 when the threshold is not positive.
func TargetShare(totalMinutes, thresholdMinutes int) float64 {
	if thresholdMinutes <= 0 {
		return 0
	}
	return float64(totalMinutes) / float64(thresholdMinutes)
}
