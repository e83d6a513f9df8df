package types

import "strings"

// Kind classifies a lexical token. The set is open: tokenizers map their
// native categories onto these values and classification policies decide
// which kinds count as operators or operands.
type Kind uint8

const (
	KindOther Kind = iota
	KindPunctuator
	KindKeyword
	KindIdentifier
	KindString
	KindNumeric
	KindBoolean
	KindNull
	KindTemplate
	KindRegExp
	KindComment
	KindWhitespace
)

var kindNames = [...]string{
	KindOther:      "Other",
	KindPunctuator: "Punctuator",
	KindKeyword:    "Keyword",
	KindIdentifier: "Identifier",
	KindString:     "String",
	KindNumeric:    "Numeric",
	KindBoolean:    "Boolean",
	KindNull:       "Null",
	KindTemplate:   "Template",
	KindRegExp:     "RegExp",
	KindComment:    "Comment",
	KindWhitespace: "Whitespace",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindOther]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind resolves a kind name, ignoring case.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Kind(i), true
		}
	}
	return KindOther, false
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

// Token is a classified lexical unit produced by a tokenizer.
type Token struct {
	Kind  Kind   `json:"kind"`
	Value string `json:"value"`
}
