// Package store persists users and their embedded exercise logs.
package store

import (
	"context"
	"errors"

	"github.com/AnshRaj112/exercise-tracker/internal/models"
)

var (
	// ErrInvalidID is returned when an identifier is not a well-formed ObjectID.
	ErrInvalidID = errors.New("invalid identifier")
	// ErrNotFound is returned when a well-formed lookup matches no user.
	ErrNotFound = errors.New("not found")
)

// UserStore is a document store keyed by an opaque store-assigned identifier.
// None of its operations are transactional with each other.
type UserStore interface {
	// Insert assigns u.ID and stores u.
	Insert(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// Update overwrites the stored log and count of u.
	Update(ctx context.Context, u *models.User) error
	// List returns all users in insertion order, without their logs.
	List(ctx context.Context) ([]models.User, error)
}
