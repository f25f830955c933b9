package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-directions-service/internal/domain"
	"route-directions-service/internal/ports"
)

// SQLite-backed implementation of the SegmentCatalog port.
type SqliteCatalog struct{ DB *sql.DB }

func NewSqliteCatalog(db *sql.DB) *SqliteCatalog {
	return &SqliteCatalog{DB: db}
}

// Return all segments stored in the database.
func (s *SqliteCatalog) ListSegments(ctx context.Context) ([]domain.CatalogSegment, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite catalog: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, selectSegmentColumns+` ORDER BY segment_id;`)
	if err != nil {
		return nil, fmt.Errorf("list segments: query segments table: %w", err)
	}
	defer rows.Close()

	segments := make([]domain.CatalogSegment, 0, 64)
	for rows.Next() {
		seg, err := scanSegment(rows)
		if err != nil {
			return nil, fmt.Errorf("list segments: scan row: %w", err)
		}
		segments = append(segments, seg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list segments: row iteration: %w", err)
	}

	return segments, nil
}

func (s *SqliteCatalog) GetSegment(ctx context.Context, id int) (domain.CatalogSegment, error) {
	if s.DB == nil {
		return domain.CatalogSegment{}, errors.New("sqlite catalog: DB is nil")
	}

	row := s.DB.QueryRowContext(ctx, selectSegmentColumns+` WHERE segment_id = ?;`, id)
	seg, err := scanSegment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CatalogSegment{}, fmt.Errorf("get segment: segment_id=%d: %w", id, ports.ErrSegmentNotFound)
	}
	if err != nil {
		return domain.CatalogSegment{}, fmt.Errorf("get segment: segment_id=%d: %w", id, err)
	}
	return seg, nil
}
