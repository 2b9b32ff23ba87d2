package domain

import "context"

// ContentModerator screens user generated text before it is stored.
type ContentModerator interface {
	// Clean strips unsafe markup and returns the form to persist.
	// Returns ErrBadParamInput when the remaining text violates policy.
	Clean(ctx context.Context, text string) (string, error)
}
