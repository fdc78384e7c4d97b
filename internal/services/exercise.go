// Package services implements user registration, exercise logging and log queries.
package services

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/AnshRaj112/exercise-tracker/internal/models"
	"github.com/AnshRaj112/exercise-tracker/internal/store"
	"github.com/AnshRaj112/exercise-tracker/pkg/utils"
	"github.com/sirupsen/logrus"
)

// ExerciseService coordinates the user store and the optional users cache.
type ExerciseService struct {
	store store.UserStore
	cache UsersCache
	log   logrus.FieldLogger
	now   func() time.Time
}

type Option func(*ExerciseService)

// WithCache serves user listings from c.
func WithCache(c UsersCache) Option {
	return func(s *ExerciseService) { s.cache = c }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *ExerciseService) { s.log = l }
}

// WithClock overrides the time source used for undated entries.
func WithClock(now func() time.Time) Option {
	return func(s *ExerciseService) { s.now = now }
}

func NewExerciseService(st store.UserStore, opts ...Option) *ExerciseService {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &ExerciseService{
		store: st,
		cache: noCache{},
		log:   discard,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register returns the user named username, creating it if no such user exists.
// created reports whether a new record was inserted. Two concurrent first
// registrations of the same name may both insert.
func (s *ExerciseService) Register(ctx context.Context, username string) (u *models.User, created bool, err error) {
	username, err = utils.CleanUsername(username)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.store.FindByUsername(ctx, username)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, err
	}

	u = &models.User{Username: username, Log: []models.Entry{}}
	if err := s.store.Insert(ctx, u); err != nil {
		return nil, false, err
	}
	s.cache.Invalidate(ctx)

	s.log.WithFields(logrus.Fields{"user_id": u.ID.Hex(), "username": u.Username}).Info("user registered")
	return u, true, nil
}

// AddEntryInput holds the raw fields of a new entry. Any of them may be empty.
type AddEntryInput struct {
	Description string
	Duration    string
	Date        string
}

// NewEntry builds an entry from raw input, substituting defaults for missing
// or unparseable fields.
func NewEntry(in AddEntryInput, now time.Time) models.Entry {
	e := models.Entry{
		Description: in.Description,
		Duration:    models.ParseDuration(in.Duration),
		Date:        now.UTC(),
	}
	if e.Description == "" {
		e.Description = models.DefaultDescription
	}
	if t, ok := ParseDate(in.Date); ok {
		e.Date = t
	}
	return e
}

// AddEntry appends an entry to the user's log. The read and the write are
// separate store calls; concurrent appends to one user may lose an entry.
func (s *ExerciseService) AddEntry(ctx context.Context, userID string, in AddEntryInput) (*models.User, models.Entry, error) {
	u, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return nil, models.Entry{}, err
	}

	e := NewEntry(in, s.now())
	u.Log = append(u.Log, e)
	u.Count++

	if err := s.store.Update(ctx, u); err != nil {
		return nil, models.Entry{}, err
	}
	return u, e, nil
}

// Users lists every registered user in registration order.
func (s *ExerciseService) Users(ctx context.Context) ([]models.UserSummary, error) {
	if cached, ok := s.cache.GetUsers(ctx); ok {
		return cached, nil
	}

	users, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.UserSummary, 0, len(users))
	for i := range users {
		out = append(out, users[i].Summary())
	}
	s.cache.SetUsers(ctx, out)
	return out, nil
}

// Log runs q against the user's stored log. It never writes to the store.
func (s *ExerciseService) Log(ctx context.Context, userID string, q LogQuery) (LogResult, error) {
	u, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return LogResult{}, err
	}
	return BuildLog(u, q), nil
}
