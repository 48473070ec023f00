// Package kv provides a simple string key/value repository backing the
// client's device-local store.
package kv

import "context"

// Repository stores string values under string keys. Get returns
// common.ErrNotFound when the key is absent; Set upserts.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
