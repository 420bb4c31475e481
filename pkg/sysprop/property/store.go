package property

import (
	"os"

	"sysprop.dev/pkg/errors"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=property

// Store is a source of named property values. Lookup returns errors.NotFound for a missing key;
// any other error, such as a permission failure, means the store could not be read.
type Store interface {
	Lookup(key string) (string, error)
}

// StoreFunc adapts a plain function to a Store.
type StoreFunc func(key string) (string, error)

func (f StoreFunc) Lookup(key string) (string, error) {
	return f(key)
}

// Env is the process environment.
type Env struct{}

func (Env) Lookup(key string) (string, error) {
	if v, ok := os.LookupEnv(key); ok {
		return v, nil
	}

	return "", errors.NotFound{Key: key}
}
