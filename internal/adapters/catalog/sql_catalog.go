package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-directions-service/internal/domain"
	"route-directions-service/internal/platform/obs"
	"route-directions-service/internal/ports"
)

// SQLCatalog is a Postgres-backed segment catalog (pgx stdlib driver).
type SQLCatalog struct {
	DB *sql.DB
}

func NewSQLCatalog(db *sql.DB) *SQLCatalog {
	return &SQLCatalog{DB: db}
}

// Return all segments ordered by id.
func (s *SQLCatalog) ListSegments(ctx context.Context) (_ []domain.CatalogSegment, err error) {
	defer obs.Time(ctx, "catalog.sql.ListSegments")(&err)

	if s.DB == nil {
		return nil, errors.New("sql catalog: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, selectSegmentColumns+` ORDER BY segment_id;`)
	if err != nil {
		return nil, fmt.Errorf("list segments: query segments table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.CatalogSegment, 0, 64)
	for rows.Next() {
		seg, err := scanSegment(rows)
		if err != nil {
			return nil, fmt.Errorf("list segments: scan rows: %w", err)
		}
		out = append(out, seg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list segments: row iteration: %w", err)
	}

	return out, nil
}

// Fetch many segments in one round trip. Missing ids are absent from the result.
func (s *SQLCatalog) GetMany(ctx context.Context, ids []int) (_ map[int]domain.CatalogSegment, err error) {
	defer obs.Time(ctx, "catalog.sql.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("sql catalog: db is nil")
	}

	if len(ids) == 0 {
		return map[int]domain.CatalogSegment{}, nil
	}

	seen := map[int]struct{}{}
	uniq := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, int64(id))
	}

	rows, err := s.DB.QueryContext(ctx, selectSegmentColumns+` WHERE segment_id = ANY($1::bigint[]);`, uniq)
	if err != nil {
		return nil, fmt.Errorf("get segments: query segments table: %w", err)
	}
	defer rows.Close()

	out := make(map[int]domain.CatalogSegment, len(uniq))
	for rows.Next() {
		seg, err := scanSegment(rows)
		if err != nil {
			return nil, fmt.Errorf("get segments: scan rows: %w", err)
		}
		out[seg.SegmentID] = seg
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get segments: row iteration: %w", err)
	}

	return out, nil
}

func (s *SQLCatalog) GetSegment(ctx context.Context, id int) (_ domain.CatalogSegment, err error) {
	defer obs.Time(ctx, "catalog.sql.GetSegment")(&err)

	if s.DB == nil {
		return domain.CatalogSegment{}, errors.New("sql catalog: db is nil")
	}

	row := s.DB.QueryRowContext(ctx, selectSegmentColumns+` WHERE segment_id = $1;`, id)
	seg, err := scanSegment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CatalogSegment{}, fmt.Errorf("get segment: segment_id=%d: %w", id, ports.ErrSegmentNotFound)
	}
	if err != nil {
		return domain.CatalogSegment{}, fmt.Errorf("get segment: segment_id=%d: %w", id, err)
	}
	return seg, nil
}
