// Package domain holds the store-level sentinels shared by every repository.
package domain

import "errors"

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("unique constraint violated")
	ErrInUse    = errors.New("still referenced")
)
