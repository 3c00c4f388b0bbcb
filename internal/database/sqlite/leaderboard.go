// Package sqlite is a single-file leaderboard backend on the pure-Go
// modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/osse101/SlotMachine_Go/internal/database"
	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/repository"
)

const (
	table         = "slot_leaderboard"
	colCollection = "collection"
	colName       = "name"
	colDoc        = "doc"
	colUpdatedAt  = "updated_at"
)

// Open opens (creating if needed) the database file and applies migrations
func Open(ctx context.Context, path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := database.MigrateSQLite(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(1) // one writer at a time
	return db, nil
}

type leaderboardRepository struct {
	db         *sql.DB
	collection string
}

// NewLeaderboardRepository creates a repository scoped to one collection
func NewLeaderboardRepository(db *sql.DB, collection string) repository.Leaderboard {
	return &leaderboardRepository{db: db, collection: collection}
}

func (r *leaderboardRepository) Get(ctx context.Context, name string) (*domain.ScoreDocument, error) {
	query, args, err := sq.Select(colDoc).
		From(table).
		Where(sq.Eq{colCollection: r.collection, colName: name}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var raw string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %q: %w", name, err)
	}

	var doc domain.ScoreDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("decode %q: %w", name, err)
	}
	doc.Name = name
	return &doc, nil
}

// Set upserts the document; merge applies it as a JSON merge patch
func (r *leaderboardRepository) Set(ctx context.Context, name string, doc domain.ScoreDocument, merge bool) error {
	doc.Name = name
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %q: %w", name, err)
	}

	update := "doc = excluded.doc"
	if merge {
		update = "doc = json_patch(" + table + ".doc, excluded.doc)"
	}

	query, args, err := sq.Insert(table).
		Columns(colCollection, colName, colDoc, colUpdatedAt).
		Values(r.collection, name, string(body), sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT (collection, name) DO UPDATE SET " + update + ", updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set %q: %w", name, err)
	}
	return nil
}

func (r *leaderboardRepository) FetchAll(ctx context.Context) ([]domain.ScoreDocument, error) {
	query, args, err := sq.Select(colName, colDoc).
		From(table).
		Where(sq.Eq{colCollection: r.collection}).
		OrderBy(colName).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch all: %w", err)
	}
	defer rows.Close()

	var docs []domain.ScoreDocument
	for rows.Next() {
		var name, raw string
		if err := rows.Scan(&name, &raw); err != nil {
			return nil, fmt.Errorf("fetch all: %w", err)
		}
		var doc domain.ScoreDocument
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("decode %q: %w", name, err)
		}
		doc.Name = name
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (r *leaderboardRepository) Delete(ctx context.Context, name string) error {
	return r.delete(ctx, sq.Eq{colCollection: r.collection, colName: name})
}

func (r *leaderboardRepository) DeleteAll(ctx context.Context) error {
	return r.delete(ctx, sq.Eq{colCollection: r.collection})
}

func (r *leaderboardRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *leaderboardRepository) delete(ctx context.Context, where sq.Eq) error {
	query, args, err := sq.Delete(table).Where(where).ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}
