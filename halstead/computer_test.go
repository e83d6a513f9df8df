package halstead

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SS-S3/repo-quality-tool/tokenizer"
	"github.com/SS-S3/repo-quality-tool/tokenizer/javascript"
	"github.com/SS-S3/repo-quality-tool/types"
)

func newJSComputer(opts ...Option) *Computer {
	return NewComputer(javascript.New(), opts...)
}

func assertValue(t *testing.T, want float64, got Value) {
	t.Helper()
	f, ok := got.Float64()
	require.True(t, ok, "expected defined value %v", want)
	assert.InDelta(t, want, f, 1e-9)
}

func TestCompute_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		vocabulary int
		length     int
		volume     float64
		difficulty float64
		effort     float64
	}{
		{"let statement", "let x = 1;", 5, 5, 11.61, 1.5, 17.41},
		{"assignment", "a = b + c;", 6, 6, 15.51, 1.5, 23.26},
		{"single identifier", "x", 1, 1, 0, 0, 0},
		{"repeated identifier", "x x x", 1, 3, 0, 0, 0},
		{"operators only", ";;;", 1, 3, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := newJSComputer().Compute(tt.source)
			require.NoError(t, err)

			assert.Equal(t, tt.vocabulary, res.Vocabulary)
			assert.Equal(t, tt.length, res.Length)
			assertValue(t, tt.volume, res.Volume)
			assertValue(t, tt.difficulty, res.Difficulty)
			assertValue(t, tt.effort, res.Effort)
		})
	}
}

func TestCompute_DistinctVersusTotal(t *testing.T) {
	res, err := newJSComputer().Compute("x x x")
	require.NoError(t, err)

	assert.Equal(t, Counts{DistinctOperands: 1, TotalOperands: 3}, res.Counts)
}

func TestCompute_NoCodeIsUndefined(t *testing.T) {
	sources := []string{"", "   \n\t", "// just a comment\n/* and a block */", "true null"}

	for _, suppress := range []bool{false, true} {
		for _, src := range sources {
			res, err := newJSComputer(WithZeroSuppression(suppress)).Compute(src)
			require.NoError(t, err)

			assert.True(t, res.Empty(), "source %q", src)
			assert.Zero(t, res.Length)
			assert.False(t, res.Volume.IsDefined())
			assert.False(t, res.Difficulty.IsDefined())
			assert.False(t, res.Effort.IsDefined())
		}
	}
}

func TestCompute_ZeroSuppression(t *testing.T) {
	res, err := newJSComputer(WithZeroSuppression(true)).Compute("x")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Vocabulary)
	assert.Equal(t, 1, res.Length)
	assert.False(t, res.Volume.IsDefined())
	assert.False(t, res.Difficulty.IsDefined())
	assert.False(t, res.Effort.IsDefined())

	// non-zero values are unaffected
	res, err = newJSComputer(WithZeroSuppression(true)).Compute("let x = 1;")
	require.NoError(t, err)
	assertValue(t, 11.61, res.Volume)
	assertValue(t, 1.5, res.Difficulty)
	assertValue(t, 17.41, res.Effort)
}

func TestCompute_TokenizerErrorPropagatesUnchanged(t *testing.T) {
	want := types.NewTokenizationError("unexpected @").WithPosition(1, 3)
	failing := tokenizer.Func{
		Name: "failing",
		Fn:   func(string) ([]types.Token, error) { return nil, want },
	}

	res, err := NewComputer(failing).Compute("a @ b")
	assert.Nil(t, res)
	require.Error(t, err)
	assert.Same(t, want, err)
}

func TestCompute_MalformedJavaScript(t *testing.T) {
	res, err := newJSComputer().Compute(`var s = "never closed`)
	assert.Nil(t, res)
	assert.True(t, types.IsTokenizationError(err))
}

func TestComputeFile_JSONShape(t *testing.T) {
	res, err := newJSComputer().ComputeFile("main.js", "let x = 1;")
	require.NoError(t, err)

	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"vocabulary":5,"length":5,"volume":11.61,"difficulty":1.5,"effort":17.41,"file":"main.js"}`,
		string(b))

	empty, err := newJSComputer().ComputeFile("empty.js", "")
	require.NoError(t, err)
	b, err = json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"vocabulary":0,"length":0,"volume":null,"difficulty":null,"effort":null,"file":"empty.js"}`,
		string(b))
}

func TestComputeTokens_CustomPolicy(t *testing.T) {
	tokens := []types.Token{
		{Kind: types.KindKeyword, Value: "return"},
		{Kind: types.KindBoolean, Value: "true"},
		{Kind: types.KindPunctuator, Value: ";"},
	}

	// default policy ignores booleans
	res := NewComputer(javascript.New()).ComputeTokens("t.js", tokens)
	assert.Equal(t, 2, res.Vocabulary)
	assert.Equal(t, 0, res.Counts.TotalOperands)

	policy := NewPolicy(
		[]types.Kind{types.KindKeyword, types.KindPunctuator},
		[]types.Kind{types.KindBoolean},
	)
	res = NewComputer(javascript.New(), WithPolicy(policy)).ComputeTokens("t.js", tokens)
	assert.Equal(t, 3, res.Vocabulary)
	assert.Equal(t, 1, res.Counts.TotalOperands)
	assert.Equal(t, "t.js", res.File)
}

func TestCompute_ConcurrentCallsIndependent(t *testing.T) {
	c := newJSComputer()
	want, err := c.Compute("let x = 1;")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*Result, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = c.Compute("let x = 1;")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
