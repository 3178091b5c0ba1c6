// Package repository defines persistence ports for navkit's domain entities.
package repository

import (
	"context"
	"time"

	"github.com/bnema/navkit/internal/domain/entity"
)

// VisitRepository defines operations for visit-journal persistence.
type VisitRepository interface {
	// Save creates or updates a visit record (upsert by URI).
	Save(ctx context.Context, visit *entity.Visit) error

	// FindByURI retrieves a visit record by its URI, or nil if unknown.
	FindByURI(ctx context.Context, uri string) (*entity.Visit, error)

	// GetRecent retrieves recent visits ordered by last-seen time.
	GetRecent(ctx context.Context, limit, offset int) ([]*entity.Visit, error)

	// Search matches visits whose URI contains the query, most recent first.
	Search(ctx context.Context, query string, limit int) ([]*entity.Visit, error)

	// DeleteOlderThan removes visits last seen before the given time.
	DeleteOlderThan(ctx context.Context, before time.Time) error

	// DeleteAll removes every visit record.
	DeleteAll(ctx context.Context) error

	// GetStats retrieves aggregate visit statistics.
	GetStats(ctx context.Context) (*entity.VisitStats, error)
}
