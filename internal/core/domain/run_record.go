package domain

import "time"

// RunRecord captures a completed run for reuse across invocations. Records
// are keyed by the run's input hash; a hash match means the backend would
// produce a bit-identical series, so the stored samples can be replayed.
type RunRecord struct {
	InputHash  string    `json:"input_hash"`
	Observable string    `json:"observable"`
	Samples    []Sample  `json:"samples"`
	Timestamp  time.Time `json:"timestamp"`
}

// Series reconstructs the stored output series.
func (r *RunRecord) Series() OutputSeries {
	return NewOutputSeries(r.Observable, r.Samples)
}
