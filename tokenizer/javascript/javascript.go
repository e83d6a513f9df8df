// Package javascript tokenizes JavaScript and TypeScript source with the
// tdewolff/parse lexer and maps its categories onto types.Kind.
package javascript

import (
	"errors"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"

	"github.com/SS-S3/repo-quality-tool/types"
)

// Language is the canonical language name.
const Language = "javascript"

// Extensions handled by this tokenizer.
// JSX element syntax is not lexed, so .jsx is not registered.
var Extensions = []string{".js", ".mjs", ".cjs", ".ts", ".mts", ".cts"}

// Tokenizer is a stateless JavaScript tokenizer.
type Tokenizer struct{}

// New returns a JavaScript tokenizer.
func New() *Tokenizer {
	return &Tokenizer{}
}

// Language implements tokenizer.Tokenizer.
func (*Tokenizer) Language() string { return Language }

// Tokenize lexes source. A leading #! line is kept as a comment. A slash is
// read as a regular expression when the previous significant token cannot
// end an expression.
func (*Tokenizer) Tokenize(source string) ([]types.Token, error) {
	var tokens []types.Token
	if strings.HasPrefix(source, "#!") {
		end := strings.IndexAny(source, "\r\n")
		if end < 0 {
			end = len(source)
		}
		tokens = append(tokens, types.Token{Kind: types.KindComment, Value: source[:end]})
		source = source[end:]
	}

	l := js.NewLexer(parse.NewInputString(source))

	prev := js.ErrorToken
	// parens 记录每个未闭合的 ( 是否属于 if/while/for/with 的条件
	var parens []bool
	closedCondition := false
	for {
		tt, data := l.Next()
		if (tt == js.DivToken || tt == js.DivEqToken) && regExpAllowed(prev, closedCondition) {
			tt, data = l.RegExp()
		}
		switch tt {
		case js.OpenParenToken:
			parens = append(parens, isConditionKeyword(prev))
		case js.CloseParenToken:
			closedCondition = false
			if n := len(parens); n > 0 {
				closedCondition = parens[n-1]
				parens = parens[:n-1]
			}
		}
		if tt == js.ErrorToken {
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, tokenizationError(err)
			}
			break
		}

		kind := Classify(tt)
		tokens = append(tokens, types.Token{Kind: kind, Value: string(data)})
		if kind != types.KindWhitespace && kind != types.KindComment {
			prev = tt
		}
	}
	return tokens, nil
}

// Classify maps a lexer token type onto a Kind. true/false/null are
// literals rather than keywords, await is an identifier, and let is a keyword.
func Classify(tt js.TokenType) types.Kind {
	switch tt {
	case js.WhitespaceToken, js.LineTerminatorToken:
		return types.KindWhitespace
	case js.CommentToken, js.CommentLineTerminatorToken:
		return types.KindComment
	case js.StringToken:
		return types.KindString
	case js.TemplateToken, js.TemplateStartToken, js.TemplateMiddleToken, js.TemplateEndToken:
		return types.KindTemplate
	case js.RegExpToken:
		return types.KindRegExp
	case js.PrivateIdentifierToken, js.AwaitToken:
		return types.KindIdentifier
	case js.TrueToken, js.FalseToken:
		return types.KindBoolean
	case js.NullToken:
		return types.KindNull
	case js.LetToken:
		return types.KindKeyword
	}

	switch {
	case js.IsNumeric(tt):
		return types.KindNumeric
	case js.IsPunctuator(tt):
		return types.KindPunctuator
	case js.IsReservedWord(tt):
		return types.KindKeyword
	case js.IsIdentifier(tt):
		return types.KindIdentifier
	}
	return types.KindOther
}

// regExpAllowed reports whether a slash following prev starts a regular
// expression rather than a division. afterCondition is set when prev is a )
// closing an if/while/for/with head.
func regExpAllowed(prev js.TokenType, afterCondition bool) bool {
	switch prev {
	case js.ErrorToken:
		return true
	case js.CloseParenToken:
		return afterCondition
	case js.CloseBracketToken, js.CloseBraceToken,
		js.IncrToken, js.DecrToken,
		js.StringToken, js.TemplateToken, js.TemplateEndToken, js.RegExpToken,
		js.PrivateIdentifierToken,
		js.ThisToken, js.SuperToken, js.TrueToken, js.FalseToken, js.NullToken:
		return false
	}

	switch {
	case js.IsNumeric(prev), js.IsIdentifier(prev):
		return false
	case js.IsPunctuator(prev), js.IsReservedWord(prev):
		return true
	}
	return false
}

func isConditionKeyword(tt js.TokenType) bool {
	switch tt {
	case js.IfToken, js.WhileToken, js.ForToken, js.WithToken:
		return true
	}
	return false
}

func tokenizationError(err error) error {
	var perr *parse.Error
	if errors.As(err, &perr) {
		return types.NewTokenizationError(perr.Message).WithPosition(perr.Line, perr.Column)
	}
	return types.NewTokenizationError("javascript lexer failed").WithCause(err)
}
