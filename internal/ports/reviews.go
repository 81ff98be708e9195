// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrUnavailable, etc.)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/hazememba-creator/Insurtech-Guy/internal/domain"
)

// ReviewClient fetches customer reviews for an insurer from an external
// reviews service. This is the function-call boundary that replaces the
// original system's web-search sub-agent.
type ReviewClient interface {
	// SearchReviews returns up to limit reviews for the named insurer.
	// The implementation should respect context deadlines and cancellation.
	// Returns domain.ErrUnavailable if the reviews service is unreachable
	// and domain.ErrNotFound if it has no coverage for the insurer.
	SearchReviews(ctx context.Context, insurer string, limit int) ([]domain.InsurerReview, error)
}
