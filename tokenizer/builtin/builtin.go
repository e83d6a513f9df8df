// Package builtin assembles the tokenizers shipped with the tool.
package builtin

import (
	"github.com/SS-S3/repo-quality-tool/tokenizer"
	"github.com/SS-S3/repo-quality-tool/tokenizer/golang"
	"github.com/SS-S3/repo-quality-tool/tokenizer/javascript"
)

// Registry returns a registry with every built-in tokenizer registered.
func Registry() *tokenizer.Registry {
	r := tokenizer.NewRegistry()
	r.Register(javascript.New(), javascript.Extensions...)
	r.Register(golang.New(), golang.Extensions...)
	return r
}
