package halstead

// Result is the metric set for one source text.
type Result struct {
	Vocabulary int    `json:"vocabulary" yaml:"vocabulary"`
	Length     int    `json:"length" yaml:"length"`
	Volume     Value  `json:"volume" yaml:"volume"`
	Difficulty Value  `json:"difficulty" yaml:"difficulty"`
	Effort     Value  `json:"effort" yaml:"effort"`
	File       string `json:"file" yaml:"file"`

	// Counts are the base measures the metrics were derived from.
	Counts Counts `json:"-" yaml:"-"`
}

// Empty reports whether no operator or operand was found.
func (r *Result) Empty() bool {
	return r.Vocabulary == 0
}
