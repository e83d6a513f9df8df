// Package tokenizer defines the lexical-analysis capability the metrics core
// depends on, and a registry that selects an implementation per language.
package tokenizer

import "github.com/SS-S3/repo-quality-tool/types"

// Tokenizer splits source text into classified tokens.
//
// Implementations report failures on malformed input as errors carrying
// types.ErrTokenization and must be safe for concurrent use.
type Tokenizer interface {
	// Language returns the canonical language name, e.g. "javascript".
	Language() string
	// Tokenize returns the tokens of source in order.
	Tokenize(source string) ([]types.Token, error)
}

// Func adapts a plain function to the Tokenizer interface.
type Func struct {
	Name string
	Fn   func(source string) ([]types.Token, error)
}

// Language implements Tokenizer.
func (f Func) Language() string { return f.Name }

// Tokenize implements Tokenizer.
func (f Func) Tokenize(source string) ([]types.Token, error) { return f.Fn(source) }
