package types

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_ChainingAndHelpers(t *testing.T) {
	t.Parallel()

	root := errors.New("root")
	err := NewTokenizationError("unterminated string literal").
		WithCause(root).
		WithPosition(3, 7)

	if GetErrorCode(err) != ErrTokenization {
		t.Fatalf("expected code %s, got %s", ErrTokenization, GetErrorCode(err))
	}
	if !IsTokenizationError(err) {
		t.Fatalf("expected tokenization error")
	}
	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is unwrap to root")
	}
	got := err.Error()
	if !strings.Contains(got, "line 3, column 7") || !strings.Contains(got, "[TOKENIZATION]") {
		t.Fatalf("unexpected error string: %q", got)
	}
}

func TestGetErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	inner := NewError(ErrReadSource, "cannot read")
	wrapped := fmt.Errorf("analyze: %w", inner)

	if GetErrorCode(wrapped) != ErrReadSource {
		t.Fatalf("expected code to survive wrapping, got %q", GetErrorCode(wrapped))
	}
	if IsTokenizationError(wrapped) {
		t.Fatalf("read error must not report as tokenization error")
	}
	if GetErrorCode(errors.New("plain")) != "" {
		t.Fatalf("plain errors carry no code")
	}
	if IsErrorCode(nil, ErrReadSource) {
		t.Fatalf("nil error has no code")
	}
}

func TestNewMissingArgumentError(t *testing.T) {
	t.Parallel()

	err := NewMissingArgumentError("file")
	if err.Code != ErrMissingArgument {
		t.Fatalf("unexpected code %s", err.Code)
	}
	if err.Error() != "[MISSING_ARGUMENT] missing required argument: file" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
