package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/repository"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// LeaderboardRepository stores score documents as JSONB rows, one per
// (collection, name).
type LeaderboardRepository struct {
	pool       *pgxpool.Pool
	collection string
}

// NewLeaderboardRepository creates a repository scoped to one collection
func NewLeaderboardRepository(pool *pgxpool.Pool, collection string) repository.Leaderboard {
	return &LeaderboardRepository{pool: pool, collection: collection}
}

// Get returns the named document, or nil when it does not exist
func (r *LeaderboardRepository) Get(ctx context.Context, name string) (*domain.ScoreDocument, error) {
	query, args, err := psql.Select(ColDoc).
		From(TableLeaderboard).
		Where(sq.Eq{ColCollection: r.collection, ColName: name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	var raw []byte
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDocument, err)
	}

	doc, err := decode(raw, name)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Set upserts the document. With merge the stored JSON object is
// concatenated with the new one so fields absent from doc survive.
func (r *LeaderboardRepository) Set(ctx context.Context, name string, doc domain.ScoreDocument, merge bool) error {
	doc.Name = name
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeDoc, err)
	}

	onConflict := "ON CONFLICT (collection, name) DO UPDATE SET doc = EXCLUDED.doc, updated_at = EXCLUDED.updated_at"
	if merge {
		onConflict = "ON CONFLICT (collection, name) DO UPDATE SET doc = " + TableLeaderboard +
			".doc || EXCLUDED.doc, updated_at = EXCLUDED.updated_at"
	}

	query, args, err := psql.Insert(TableLeaderboard).
		Columns(ColCollection, ColName, ColDoc, ColUpdatedAt).
		Values(r.collection, name, string(body), sq.Expr("NOW()")).
		Suffix(onConflict).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetDocument, err)
	}
	return nil
}

// FetchAll returns every document in the collection ordered by name
func (r *LeaderboardRepository) FetchAll(ctx context.Context) ([]domain.ScoreDocument, error) {
	query, args, err := psql.Select(ColName, ColDoc).
		From(TableLeaderboard).
		Where(sq.Eq{ColCollection: r.collection}).
		OrderBy(ColName).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFetchAll, err)
	}
	defer rows.Close()

	var docs []domain.ScoreDocument
	for rows.Next() {
		var name string
		var raw []byte
		if err := rows.Scan(&name, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFetchAll, err)
		}
		doc, err := decode(raw, name)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFetchAll, err)
	}
	return docs, nil
}

// Delete removes one document
func (r *LeaderboardRepository) Delete(ctx context.Context, name string) error {
	return r.delete(ctx, sq.Eq{ColCollection: r.collection, ColName: name})
}

// DeleteAll removes every document in the collection
func (r *LeaderboardRepository) DeleteAll(ctx context.Context) error {
	return r.delete(ctx, sq.Eq{ColCollection: r.collection})
}

// Ping checks the pool
func (r *LeaderboardRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *LeaderboardRepository) delete(ctx context.Context, where sq.Eq) error {
	query, args, err := psql.Delete(TableLeaderboard).Where(where).ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDelete, err)
	}
	return nil
}

// decode parses a stored body; the row key wins over any name inside it
func decode(raw []byte, name string) (domain.ScoreDocument, error) {
	var doc domain.ScoreDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.ScoreDocument{}, fmt.Errorf("%s %q: %w", ErrMsgFailedToDecodeDoc, name, err)
	}
	doc.Name = name
	return doc, nil
}
