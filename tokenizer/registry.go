package tokenizer

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/SS-S3/repo-quality-tool/types"
)

// Registry maps language names and file extensions to tokenizers.
type Registry struct {
	mu         sync.RWMutex
	byLanguage map[string]Tokenizer
	byExt      map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byLanguage: make(map[string]Tokenizer),
		byExt:      make(map[string]string),
	}
}

// Register adds t under its language name and binds the given extensions
// (with or without leading dot) to it. A later registration for the same
// language or extension replaces the earlier one.
func (r *Registry) Register(t Tokenizer, extensions ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lang := normalizeLanguage(t.Language())
	r.byLanguage[lang] = t
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		r.byExt[ext] = lang
	}
}

// Lookup returns the tokenizer registered for language.
func (r *Registry) Lookup(language string) (Tokenizer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byLanguage[normalizeLanguage(language)]
	if !ok {
		return nil, types.NewError(types.ErrUnsupportedLanguage,
			fmt.Sprintf("no tokenizer registered for language %q", language))
	}
	return t, nil
}

// ForFile resolves a tokenizer from the extension of path.
func (r *Registry) ForFile(path string) (Tokenizer, error) {
	ext := strings.ToLower(filepath.Ext(path))

	r.mu.RLock()
	lang, ok := r.byExt[ext]
	r.mu.RUnlock()

	if !ok {
		return nil, types.NewError(types.ErrUnsupportedLanguage,
			fmt.Sprintf("no tokenizer registered for extension %q", ext))
	}
	return r.Lookup(lang)
}

// Languages returns the registered language names, sorted.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.byLanguage))
	for lang := range r.byLanguage {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

func normalizeLanguage(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "js", "ecmascript", "typescript", "ts":
		return "javascript"
	case "golang":
		return "go"
	}
	return s
}
