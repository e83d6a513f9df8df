// =============================================================================
// 🧪 测试辅助函数
// =============================================================================
// 提供通用的测试辅助函数和断言
//
// 使用方法:
//
//	path := testutil.WriteSource(t, "sample.js", fixtures.JSDeclaration)
//	testutil.AssertValue(t, 11.61, res.Volume)
//
// =============================================================================
package testutil

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SS-S3/repo-quality-tool/halstead"
)

// =============================================================================
// 🎯 上下文辅助
// =============================================================================

// TestContext 返回带超时的测试上下文
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// CancelledContext 返回已取消的上下文
func CancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

// =============================================================================
// 📁 文件辅助
// =============================================================================

// WriteSource 在临时目录写入源文件并返回路径
func WriteSource(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// =============================================================================
// 🔍 断言辅助
// =============================================================================

// AssertValue 断言度量值已定义且等于 expected
func AssertValue(t *testing.T, expected float64, actual halstead.Value) {
	t.Helper()

	got, ok := actual.Float64()
	if !ok {
		t.Errorf("expected %v, got undefined", expected)
		return
	}
	if got != expected {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

// AssertUndefined 断言度量值未定义
func AssertUndefined(t *testing.T, actual halstead.Value) {
	t.Helper()

	if actual.IsDefined() {
		t.Errorf("expected undefined, got %v", actual)
	}
}

// =============================================================================
// 📦 数据工具
// =============================================================================

// MustParseJSON 解析 JSON 字符串，失败时 panic
func MustParseJSON[T any](s string) T {
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		panic(err)
	}
	return v
}
