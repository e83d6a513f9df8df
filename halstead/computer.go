package halstead

import (
	"math"

	"github.com/SS-S3/repo-quality-tool/tokenizer"
	"github.com/SS-S3/repo-quality-tool/types"
)

// Computer derives Halstead metrics from source text.
type Computer struct {
	tokenizer    tokenizer.Tokenizer
	policy       Policy
	suppressZero bool
}

// Option configures a Computer.
type Option func(*Computer)

// WithPolicy replaces the default classification policy.
func WithPolicy(p Policy) Option {
	return func(c *Computer) {
		c.policy = p
	}
}

// WithZeroSuppression reports metrics that round to exactly zero as
// undefined instead of 0, matching older report output.
func WithZeroSuppression(enabled bool) Option {
	return func(c *Computer) {
		c.suppressZero = enabled
	}
}

// NewComputer creates a Computer that tokenizes with t.
func NewComputer(t tokenizer.Tokenizer, opts ...Option) *Computer {
	c := &Computer{
		tokenizer: t,
		policy:    DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compute tokenizes source and derives its metrics. Tokenizer errors are
// returned unchanged.
func (c *Computer) Compute(source string) (*Result, error) {
	return c.ComputeFile("", source)
}

// ComputeFile is Compute with the file identifier recorded in the result.
func (c *Computer) ComputeFile(file, source string) (*Result, error) {
	tokens, err := c.tokenizer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return c.ComputeTokens(file, tokens), nil
}

// ComputeTokens derives metrics from already tokenized input.
func (c *Computer) ComputeTokens(file string, tokens []types.Token) *Result {
	tally := NewTally()
	for _, tok := range tokens {
		tally.Observe(c.policy.Role(tok.Kind), tok.Value)
	}
	return c.derive(file, tally.Counts())
}

func (c *Computer) derive(file string, counts Counts) *Result {
	res := &Result{
		File:       file,
		Vocabulary: counts.Vocabulary(),
		Length:     counts.Length(),
		Counts:     counts,
	}
	if res.Vocabulary == 0 {
		return res
	}

	volume := float64(res.Length) * math.Log2(float64(res.Vocabulary))
	difficulty := float64(counts.DistinctOperators) / 2 *
		(float64(counts.TotalOperands) / float64(max(counts.DistinctOperands, 1)))
	effort := volume * difficulty

	res.Volume = c.value(volume)
	res.Difficulty = c.value(difficulty)
	res.Effort = c.value(effort)
	return res
}

func (c *Computer) value(f float64) Value {
	r := round2(f)
	if r == 0 && c.suppressZero {
		return Undefined
	}
	return Defined(r)
}
