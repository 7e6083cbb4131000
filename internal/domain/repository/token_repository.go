// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"taskboard/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrTokenNotFound is returned when no usable token row exists for an id.
// It deliberately covers both "never existed" and "already expired": callers
// must not be able to tell the two apart.
var ErrTokenNotFound = errors.New("token not found or expired")

// TokenRepository defines the read-only lookup surface for bearer tokens.
type TokenRepository interface {
	// FindValidToken retrieves the token with the given id, filtered to rows
	// whose expiry lies in the future at query time. Expiry is evaluated by
	// the storage backend on every call; results are never cached.
	// Returns ErrTokenNotFound when no such row exists; any other error means
	// the storage backend itself failed.
	FindValidToken(ctx context.Context, id string) (*entity.Token, error)
}
