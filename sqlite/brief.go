package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	listicle "github.com/lars154/ecom-listicle-writer"
)

// Compile-time interface verification.
var _ listicle.BriefService = (*BriefService)(nil)

// BriefService implements listicle.BriefService using SQLite.
type BriefService struct {
	db *DB
}

// NewBriefService creates a new BriefService.
func NewBriefService(db *DB) *BriefService {
	return &BriefService{db: db}
}

// SaveBrief stores a brief, replacing any existing brief for the same
// URL. A missing ID or fetch time is filled in.
func (s *BriefService) SaveBrief(ctx context.Context, sb *listicle.StoredBrief) error {
	if sb == nil {
		return listicle.Errorf(listicle.EINVALID, "stored brief required")
	}
	if err := sb.Validate(); err != nil {
		return err
	}

	if sb.ID == "" {
		sb.ID = uuid.New().String()
	}
	if sb.FetchedAt.IsZero() {
		sb.FetchedAt = time.Now().UTC()
	}

	body, err := json.Marshal(&sb.Brief)
	if err != nil {
		return fmt.Errorf("failed to encode brief: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO briefs (id, url, page_type, content_hash, body, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			page_type = excluded.page_type,
			content_hash = excluded.content_hash,
			body = excluded.body,
			fetched_at = excluded.fetched_at
	`, sb.ID, sb.Brief.URL, string(sb.Brief.PageType), sb.ContentHash, string(body),
		sb.FetchedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	// On conflict the original row id survives; reflect it back.
	var id string
	if err := s.db.QueryRowContext(ctx, "SELECT id FROM briefs WHERE url = ?", sb.Brief.URL).Scan(&id); err == nil {
		sb.ID = id
	}
	return nil
}

// FindBriefByURL retrieves the stored brief for a URL.
func (s *BriefService) FindBriefByURL(ctx context.Context, url string) (*listicle.StoredBrief, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, content_hash, body, fetched_at
		FROM briefs
		WHERE url = ?
	`, url)

	sb, err := scanBrief(row.Scan)
	if err == sql.ErrNoRows {
		return nil, listicle.Errorf(listicle.ENOTFOUND, "no brief stored for %s", url)
	}
	return sb, err
}

// FindBriefs retrieves briefs matching the filter, most recently
// fetched first.
func (s *BriefService) FindBriefs(ctx context.Context, filter listicle.BriefFilter) ([]*listicle.StoredBrief, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, content_hash, body, fetched_at FROM briefs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.PageType != nil {
		query.WriteString(" AND page_type = ?")
		args = append(args, string(*filter.PageType))
	}

	query.WriteString(" ORDER BY fetched_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		// SQLite rejects OFFSET without LIMIT; -1 means unlimited.
		query.WriteString(" LIMIT -1")
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var briefs []*listicle.StoredBrief
	for rows.Next() {
		sb, err := scanBrief(rows.Scan)
		if err != nil {
			return nil, err
		}
		briefs = append(briefs, sb)
	}
	return briefs, rows.Err()
}

// DeleteBrief permanently removes a stored brief.
func (s *BriefService) DeleteBrief(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM briefs WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return listicle.Errorf(listicle.ENOTFOUND, "brief not found")
	}
	return nil
}

// scanBrief decodes one briefs row via the given scan function.
func scanBrief(scan func(dest ...any) error) (*listicle.StoredBrief, error) {
	var sb listicle.StoredBrief
	var body, fetchedAt string

	if err := scan(&sb.ID, &sb.ContentHash, &body, &fetchedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(body), &sb.Brief); err != nil {
		return nil, fmt.Errorf("failed to decode brief: %w", err)
	}

	var err error
	sb.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}
	return &sb, nil
}
