// Package golang tokenizes Go source with go/scanner.
package golang

import (
	"go/scanner"
	"go/token"

	"github.com/SS-S3/repo-quality-tool/types"
)

// Language is the canonical language name.
const Language = "go"

// Extensions handled by this tokenizer.
var Extensions = []string{".go"}

// Tokenizer is a stateless Go tokenizer.
type Tokenizer struct{}

// New returns a Go tokenizer.
func New() *Tokenizer {
	return &Tokenizer{}
}

// Language implements tokenizer.Tokenizer.
func (*Tokenizer) Language() string { return Language }

// Tokenize scans source including comments. Semicolons inserted by the
// scanner at line ends are reported as whitespace.
func (*Tokenizer) Tokenize(source string) ([]types.Token, error) {
	src := []byte(source)
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var errs scanner.ErrorList
	var s scanner.Scanner
	s.Init(file, src, func(pos token.Position, msg string) {
		errs.Add(pos, msg)
	}, scanner.ScanComments)

	var tokens []types.Token
	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		kind := Classify(tok, lit)
		value := lit
		if value == "" {
			value = tok.String()
		}
		tokens = append(tokens, types.Token{Kind: kind, Value: value})
	}

	if errs.Len() > 0 {
		first := errs[0]
		return nil, types.NewTokenizationError(first.Msg).
			WithPosition(first.Pos.Line, first.Pos.Column)
	}
	return tokens, nil
}

// Classify maps a scanner token onto a Kind.
func Classify(tok token.Token, lit string) types.Kind {
	switch tok {
	case token.COMMENT:
		return types.KindComment
	case token.IDENT:
		return types.KindIdentifier
	case token.STRING, token.CHAR:
		return types.KindString
	case token.INT, token.FLOAT, token.IMAG:
		return types.KindNumeric
	case token.SEMICOLON:
		if lit == "\n" {
			return types.KindWhitespace
		}
		return types.KindPunctuator
	case token.ILLEGAL:
		return types.KindOther
	}

	switch {
	case tok.IsKeyword():
		return types.KindKeyword
	case tok.IsOperator():
		return types.KindPunctuator
	}
	return types.KindOther
}
