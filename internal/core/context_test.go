package core

import (
	"context"
	"testing"
)

func TestContextWithClient(t *testing.T) {
	ctx := ContextWithClient(context.Background(), "10.1.2.3", "curl/8.0")

	if got := ClientIPFromContext(ctx); got != "10.1.2.3" {
		t.Errorf("ClientIPFromContext() = %q, want %q", got, "10.1.2.3")
	}
	if got := UserAgentFromContext(ctx); got != "curl/8.0" {
		t.Errorf("UserAgentFromContext() = %q, want %q", got, "curl/8.0")
	}
}

func TestClientFromContext_Empty(t *testing.T) {
	ctx := context.Background()
	if got := ClientIPFromContext(ctx); got != "" {
		t.Errorf("ClientIPFromContext() = %q, want empty", got)
	}
	if got := UserAgentFromContext(ctx); got != "" {
		t.Errorf("UserAgentFromContext() = %q, want empty", got)
	}
}
