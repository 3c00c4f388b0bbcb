// Package redisstore keeps each leaderboard document in its own redis hash.
// Hash fields hold the JSON encoding of the document's top-level values, and a
// set lists the documents of a collection.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/repository"
)

// Documents and the index live under distinct prefixes so no player name can
// address the index key.
const (
	docPrefix   = ":doc:"
	indexSuffix = ":index"
)

// Options configures the redis client
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient connects and pings redis
func NewClient(ctx context.Context, opts Options) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
	}
	return client, nil
}

type leaderboardRepository struct {
	rdb        redis.UniversalClient
	collection string
}

// NewLeaderboardRepository creates a repository scoped to one collection
func NewLeaderboardRepository(rdb redis.UniversalClient, collection string) repository.Leaderboard {
	return &leaderboardRepository{rdb: rdb, collection: collection}
}

func (r *leaderboardRepository) docKey(name string) string {
	return r.collection + docPrefix + name
}

func (r *leaderboardRepository) indexKey() string {
	return r.collection + indexSuffix
}

func (r *leaderboardRepository) Get(ctx context.Context, name string) (*domain.ScoreDocument, error) {
	fields, err := r.rdb.HGetAll(ctx, r.docKey(name)).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall %q: %w", name, err)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	doc, err := decodeFields(name, fields)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Set writes the document's fields. A merge only touches the supplied
// fields; an overwrite deletes the hash first. Both run in one MULTI.
func (r *leaderboardRepository) Set(ctx context.Context, name string, doc domain.ScoreDocument, merge bool) error {
	doc.Name = name
	fields, err := encodeFields(doc)
	if err != nil {
		return err
	}

	key := r.docKey(name)
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if !merge {
			pipe.Del(ctx, key)
		}
		pipe.HSet(ctx, key, fields)
		pipe.SAdd(ctx, r.indexKey(), name)
		return nil
	})
	if err != nil {
		return fmt.Errorf("set %q: %w", name, err)
	}
	return nil
}

// FetchAll reads every indexed document, ordered by name
func (r *leaderboardRepository) FetchAll(ctx context.Context) ([]domain.ScoreDocument, error) {
	names, err := r.rdb.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("smembers: %w", err)
	}
	if len(names) == 0 {
		return nil, nil
	}
	sort.Strings(names)

	cmds := make([]*redis.MapStringStringCmd, len(names))
	_, err = r.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, name := range names {
			cmds[i] = pipe.HGetAll(ctx, r.docKey(name))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch all: %w", err)
	}

	docs := make([]domain.ScoreDocument, 0, len(names))
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue // index entry without a hash
		}
		doc, err := decodeFields(names[i], fields)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (r *leaderboardRepository) Delete(ctx context.Context, name string) error {
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.docKey(name))
		pipe.SRem(ctx, r.indexKey(), name)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	return nil
}

func (r *leaderboardRepository) DeleteAll(ctx context.Context) error {
	names, err := r.rdb.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return fmt.Errorf("smembers: %w", err)
	}
	keys := make([]string, 0, len(names)+1)
	for _, name := range names {
		keys = append(keys, r.docKey(name))
	}
	keys = append(keys, r.indexKey())

	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete all: %w", err)
	}
	return nil
}

func (r *leaderboardRepository) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

func encodeFields(doc domain.ScoreDocument) (map[string]any, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode %q: %w", doc.Name, err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("encode %q: %w", doc.Name, err)
	}
	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		fields[k] = string(v)
	}
	return fields, nil
}

func decodeFields(name string, fields map[string]string) (domain.ScoreDocument, error) {
	raw := make(map[string]json.RawMessage, len(fields))
	for k, v := range fields {
		raw[k] = json.RawMessage(v)
	}
	body, err := json.Marshal(raw)
	if err != nil {
		return domain.ScoreDocument{}, fmt.Errorf("decode %q: %w", name, err)
	}
	var doc domain.ScoreDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return domain.ScoreDocument{}, fmt.Errorf("decode %q: %w", name, err)
	}
	doc.Name = name
	return doc, nil
}
