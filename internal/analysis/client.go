package analysis

import (
	"context"
)

// Completer is the completion-API contract.
// Service depends ONLY on this interface.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}
