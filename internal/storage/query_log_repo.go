package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const timeLayout = "2006-01-02 15:04:05.000"

// QueryStore defines the interface for query log operations.
type QueryStore interface {
	// Record appends rec to the log.
	Record(ctx context.Context, rec *QueryRecord) error
	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]QueryRecord, error)
}

// QueryLogRepo provides methods for query log operations.
// It implements the QueryStore interface.
type QueryLogRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewQueryLogRepo creates a new QueryLogRepo.
func NewQueryLogRepo(db *sql.DB) *QueryLogRepo {
	return &QueryLogRepo{db: db, now: time.Now}
}

// Record inserts rec, filling ID and CreatedAt when they are zero.
func (r *QueryLogRepo) Record(ctx context.Context, rec *QueryRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = r.now()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO query_log
			(id, request_id, message, intent_type, keyword, sort, result_limit, post_count, reply, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.RequestID, rec.Message, rec.IntentType, rec.Keyword, rec.Sort, rec.Limit,
		rec.PostCount, rec.Reply, rec.Duration.Milliseconds(), rec.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to insert query record: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (r *QueryLogRepo) Recent(ctx context.Context, limit int) ([]QueryRecord, error) {
	if limit <= 0 {
		return []QueryRecord{}, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, request_id, message, intent_type, keyword, sort, result_limit, post_count, reply, duration_ms, created_at
		FROM query_log ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent records: %w", err)
	}
	defer rows.Close()

	records := []QueryRecord{}
	for rows.Next() {
		var (
			rec          QueryRecord
			requestID    sql.NullString
			keyword      sql.NullString
			sortOrder    sql.NullString
			resultLimit  sql.NullInt64
			durationMS   int64
			createdAtStr string
		)
		if err := rows.Scan(&rec.ID, &requestID, &rec.Message, &rec.IntentType, &keyword, &sortOrder,
			&resultLimit, &rec.PostCount, &rec.Reply, &durationMS, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan query record: %w", err)
		}

		rec.RequestID = requestID.String
		rec.Keyword = keyword.String
		rec.Sort = sortOrder.String
		rec.Limit = int(resultLimit.Int64)
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		rec.CreatedAt, err = parseTime(createdAtStr)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate query records: %w", err)
	}

	return records, nil
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range []string{timeLayout, "2006-01-02 15:04:05", time.RFC3339Nano} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse created_at timestamp %q", s)
}
