package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// classify folds driver errors into the store's taxonomy. Callers only
// ever branch on the sentinels; anything else is an opaque store
// failure.
func classify(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return fmt.Errorf("store: %w", err)
	}
}
