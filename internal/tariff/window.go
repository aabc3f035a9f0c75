package tariff

import "fmt"

// Window is a same-day range of hours on a 24h clock.
//
// With EndInclusive the window covers [Start, End]; otherwise [Start, End).
// If Start == End and EndInclusive is false the window is empty.
type Window struct {
	Start        int  `json:"start" yaml:"start"`
	End          int  `json:"end" yaml:"end"`
	EndInclusive bool `json:"end_inclusive" yaml:"end_inclusive"`
}

// Contains reports whether hour falls inside the window.
func (w Window) Contains(hour int) bool {
	if w.EndInclusive {
		return hour >= w.Start && hour <= w.End
	}
	return hour >= w.Start && hour < w.End
}

// String renders the window in interval notation, e.g. "[18:00, 22:00)".
func (w Window) String() string {
	closing := ")"
	if w.EndInclusive {
		closing = "]"
	}
	return fmt.Sprintf("[%d:00, %d:00%s", w.Start, w.End, closing)
}
