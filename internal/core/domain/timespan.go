package domain

import (
	"math"

	"go.trai.ch/zerr"
)

// TimeSpan is the simulation interval [Start, End] in seconds.
type TimeSpan struct {
	Start float64 `yaml:"start" json:"start"`
	End   float64 `yaml:"end" json:"end"`
}

// Validate checks that both endpoints are finite and that Start < End.
func (ts TimeSpan) Validate() error {
	if math.IsNaN(ts.Start) || math.IsInf(ts.Start, 0) ||
		math.IsNaN(ts.End) || math.IsInf(ts.End, 0) {
		return zerr.With(ErrInvalidTimeSpan, "span", ts)
	}
	if ts.Start >= ts.End {
		return zerr.With(zerr.With(ErrInvalidTimeSpan, "start", ts.Start), "end", ts.End)
	}
	return nil
}

// Duration returns the span length in seconds.
func (ts TimeSpan) Duration() float64 {
	return ts.End - ts.Start
}
