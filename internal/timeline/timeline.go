// Package timeline maps a slot's planting intervals onto proportional
// segments of a fixed-width time bar.
package timeline

import (
	"errors"
	"time"

	"github.com/jeshuam/square-metre-garden-manager/internal/dateutil"
	"github.com/jeshuam/square-metre-garden-manager/internal/garden"
)

// Layout errors.
var (
	ErrEmptyWindow = errors.New("timeline window must span at least one day")
)

// Kind distinguishes segment types.
type Kind int

const (
	KindGap Kind = iota
	KindPlanting
)

// Segment is one span of the time bar, measured as a percentage of the
// whole window.
type Segment struct {
	Kind         Kind
	WidthPercent float64
	Label        string // plant name, empty for gaps
	Band         int    // ordinal among planting segments, for alternating colors
}

// Layout converts a slot's plantings into left-to-right segments covering
// the [windowStart, windowEnd] day range. Each planting is preceded by a gap
// segment spanning from the previous boundary (window start, or the previous
// planting's harvest) to its plant date; non-positive gaps are omitted. No
// trailing gap is emitted after the last planting.
//
// Widths are pure day proportions: a slot fully covering the window sums to
// 100, and rounding overflow is a rendering concern (see RenderWidths).
func Layout(slot garden.Slot, windowStart, windowEnd time.Time) ([]Segment, error) {
	totalDays := dateutil.DaysBetween(windowStart, windowEnd)
	if totalDays <= 0 || dateutil.After(windowStart, windowEnd) {
		return nil, ErrEmptyWindow
	}

	var segments []Segment
	boundary := dateutil.TruncateToDay(windowStart)
	band := 0

	for _, p := range slot {
		// Plantings entirely outside the window contribute nothing.
		if dateutil.Before(p.HarvestDate, windowStart) || dateutil.After(p.PlantDate, windowEnd) {
			continue
		}

		start := p.PlantDate
		if dateutil.Before(start, windowStart) {
			start = windowStart
		}
		end := p.HarvestDate
		if dateutil.After(end, windowEnd) {
			end = windowEnd
		}

		if dateutil.After(start, boundary) {
			gapDays := dateutil.DaysBetween(boundary, start)
			segments = append(segments, Segment{
				Kind:         KindGap,
				WidthPercent: float64(gapDays) / float64(totalDays) * 100,
			})
		}

		segments = append(segments, Segment{
			Kind:         KindPlanting,
			WidthPercent: float64(dateutil.DaysBetween(start, end)) / float64(totalDays) * 100,
			Label:        p.Name,
			Band:         band,
		})
		band++
		boundary = end
	}

	return segments, nil
}

// RenderWidths converts segment percentages to absolute widths against a
// rendered container (pixels, terminal cells). When rounding pushes the
// total past the container width, only the last segment is shrunk by the
// excess; earlier widths are untouched. Purely cosmetic: the underlying
// dates are never adjusted.
func RenderWidths(segments []Segment, containerWidth int) []int {
	widths := make([]int, len(segments))
	total := 0
	for i, s := range segments {
		w := int(s.WidthPercent/100*float64(containerWidth) + 0.5)
		widths[i] = w
		total += w
	}

	if overflow := total - containerWidth; overflow > 0 && len(widths) > 0 {
		last := len(widths) - 1
		widths[last] -= overflow
		if widths[last] < 0 {
			widths[last] = 0
		}
	}

	return widths
}
