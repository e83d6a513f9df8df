package halstead

// Tally accumulates operator and operand observations for one computation.
type Tally struct {
	operators      map[string]int
	operands       map[string]int
	totalOperators int
	totalOperands  int
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{
		operators: make(map[string]int),
		operands:  make(map[string]int),
	}
}

// Observe records one token with the given role. Ignored tokens do not
// touch the tally.
func (t *Tally) Observe(role Role, text string) {
	switch role {
	case RoleOperator:
		t.operators[text]++
		t.totalOperators++
	case RoleOperand:
		t.operands[text]++
		t.totalOperands++
	}
}

// Counts snapshots the tally.
func (t *Tally) Counts() Counts {
	return Counts{
		DistinctOperators: len(t.operators),
		DistinctOperands:  len(t.operands),
		TotalOperators:    t.totalOperators,
		TotalOperands:     t.totalOperands,
	}
}

// Counts holds the four base Halstead measures: n1, n2, N1 and N2.
type Counts struct {
	DistinctOperators int `json:"distinct_operators" yaml:"distinct_operators"`
	DistinctOperands  int `json:"distinct_operands" yaml:"distinct_operands"`
	TotalOperators    int `json:"total_operators" yaml:"total_operators"`
	TotalOperands     int `json:"total_operands" yaml:"total_operands"`
}

// Vocabulary returns n1 + n2.
func (c Counts) Vocabulary() int {
	return c.DistinctOperators + c.DistinctOperands
}

// Length returns N1 + N2.
func (c Counts) Length() int {
	return c.TotalOperators + c.TotalOperands
}
