// MockTokenizer 的分词器测试模拟实现。
//
// 支持固定 Token 序列与错误注入场景。
package mocks

import (
	"sync"

	"github.com/SS-S3/repo-quality-tool/types"
)

// --- MockTokenizer 结构 ---

// MockTokenizer 是 tokenizer.Tokenizer 的模拟实现
type MockTokenizer struct {
	mu sync.RWMutex

	language string
	tokens   []types.Token
	err      error

	// 调用记录
	calls []string
}

// --- 构造函数和 Builder 方法 ---

// NewMockTokenizer 创建新的 MockTokenizer
func NewMockTokenizer(language string) *MockTokenizer {
	return &MockTokenizer{
		language: language,
		tokens:   []types.Token{},
		calls:    []string{},
	}
}

// WithTokens 设置固定的 Token 序列
func (m *MockTokenizer) WithTokens(tokens ...types.Token) *MockTokenizer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens = tokens
	return m
}

// WithError 设置返回错误
func (m *MockTokenizer) WithError(err error) *MockTokenizer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// --- tokenizer.Tokenizer 实现 ---

// Language 返回语言名
func (m *MockTokenizer) Language() string {
	return m.language
}

// Tokenize 记录调用并返回预设结果
func (m *MockTokenizer) Tokenize(source string) ([]types.Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, source)
	if m.err != nil {
		return nil, m.err
	}
	out := make([]types.Token, len(m.tokens))
	copy(out, m.tokens)
	return out, nil
}

// --- 调用记录 ---

// Calls 返回每次调用的源码
func (m *MockTokenizer) Calls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount 返回调用次数
func (m *MockTokenizer) CallCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.calls)
}
