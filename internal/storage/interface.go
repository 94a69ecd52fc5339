package storage

import (
	"context"
)

// Store is the persisted client state, keyed like browser local storage.
type Store interface {
	GetItem(ctx context.Context, key string, value any) (bool, error)
	SetItem(ctx context.Context, key string, value any) error
	RemoveItem(ctx context.Context, key string) error
	Close() error
}

func Key(namespace string, name string) string {
	return namespace + ":" + name
}

const (
	Namespace = "localstorage"

	CartKey  = "cart"
	ThemeKey = "theme"
	TokenKey = "token"
)
