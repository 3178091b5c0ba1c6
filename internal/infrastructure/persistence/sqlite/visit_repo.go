package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bnema/navkit/internal/domain/entity"
	"github.com/bnema/navkit/internal/domain/repository"
	"github.com/bnema/navkit/internal/logging"
)

const logURIMaxLen = 60

type visitRepo struct {
	db *sql.DB
}

// NewVisitRepository creates a new SQLite-backed visit repository.
func NewVisitRepository(db *sql.DB) repository.VisitRepository {
	return &visitRepo{db: db}
}

func (r *visitRepo) Save(ctx context.Context, visit *entity.Visit) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("uri", logging.TruncateURL(visit.URI, logURIMaxLen)).Msg("saving visit")

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO visits (uri, count, last_seen, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (uri) DO UPDATE SET
			count = excluded.count,
			last_seen = excluded.last_seen`,
		visit.URI, visit.Count, visit.LastSeen, visit.CreatedAt,
	)
	return err
}

func (r *visitRepo) FindByURI(ctx context.Context, uri string) (*entity.Visit, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, uri, count, last_seen, created_at
		FROM visits WHERE uri = ?`, uri)

	visit, err := scanVisit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return visit, err
}

func (r *visitRepo) GetRecent(ctx context.Context, limit, offset int) ([]*entity.Visit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, uri, count, last_seen, created_at
		FROM visits
		ORDER BY last_seen DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return collectVisits(rows)
}

func (r *visitRepo) Search(ctx context.Context, query string, limit int) ([]*entity.Visit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, uri, count, last_seen, created_at
		FROM visits
		WHERE uri LIKE '%' || ? || '%'
		ORDER BY last_seen DESC
		LIMIT ?`, query, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return collectVisits(rows)
}

func (r *visitRepo) DeleteOlderThan(ctx context.Context, before time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM visits WHERE last_seen < ?`, before)
	return err
}

func (r *visitRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM visits`)
	return err
}

func (r *visitRepo) GetStats(ctx context.Context) (*entity.VisitStats, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(count), 0) FROM visits`)

	stats := &entity.VisitStats{}
	if err := row.Scan(&stats.TotalURIs, &stats.TotalVisits); err != nil {
		return nil, err
	}
	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVisit(row rowScanner) (*entity.Visit, error) {
	visit := &entity.Visit{}
	if err := row.Scan(&visit.ID, &visit.URI, &visit.Count, &visit.LastSeen, &visit.CreatedAt); err != nil {
		return nil, err
	}
	return visit, nil
}

func collectVisits(rows *sql.Rows) ([]*entity.Visit, error) {
	visits := []*entity.Visit{}
	for rows.Next() {
		visit, err := scanVisit(rows)
		if err != nil {
			return nil, err
		}
		visits = append(visits, visit)
	}
	return visits, rows.Err()
}
