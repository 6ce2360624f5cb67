// Package storage provides the durable key-value layer the state containers
// mirror themselves into. Every container serializes its full state (records
// plus next-id counter) as a JSON document under one named key.
package storage

import (
	"context"
	"fmt"
)

// Store is a named-key text store. Load reports ok=false when the key has
// never been written, which callers treat as "first run, seed me".
type Store interface {
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	Save(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Backend     string // file, redis, postgres, memory
	Dir         string // file backend
	RedisURL    string
	PostgresDSN string
	Namespace   string // key prefix for shared backends (redis, postgres)
}

// Open builds the store named by opts.Backend.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case "", "file":
		return NewFileStore(opts.Dir)
	case "redis":
		return NewRedisStore(ctx, opts.RedisURL, opts.Namespace)
	case "postgres":
		return NewPostgresStore(ctx, opts.PostgresDSN, opts.Namespace)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}
