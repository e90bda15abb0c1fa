package domain

// Sample is a single (time, value) pair in an output series.
type Sample struct {
	Time  float64 `json:"t"`
	Value float64 `json:"v"`
}

// OutputSeries is an immutable, ordered sequence of samples for a named
// observable. It is produced once per sweep run and never mutated afterwards;
// the constructor and all accessors copy.
type OutputSeries struct {
	name    string
	samples []Sample
}

// NewOutputSeries creates an OutputSeries from a copy of the given samples.
func NewOutputSeries(name string, samples []Sample) OutputSeries {
	copied := make([]Sample, len(samples))
	copy(copied, samples)
	return OutputSeries{name: name, samples: copied}
}

// Name returns the observable name this series was extracted for.
func (s OutputSeries) Name() string {
	return s.name
}

// Len returns the number of samples.
func (s OutputSeries) Len() int {
	return len(s.samples)
}

// Sample returns the sample at index i.
func (s OutputSeries) Sample(i int) Sample {
	return s.samples[i]
}

// Samples returns a copy of all samples.
func (s OutputSeries) Samples() []Sample {
	out := make([]Sample, len(s.samples))
	copy(out, s.samples)
	return out
}

// Final returns the last sample, or false if the series is empty.
func (s OutputSeries) Final() (Sample, bool) {
	if len(s.samples) == 0 {
		return Sample{}, false
	}
	return s.samples[len(s.samples)-1], true
}
