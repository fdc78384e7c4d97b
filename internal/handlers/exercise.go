package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/AnshRaj112/exercise-tracker/internal/logging"
	"github.com/AnshRaj112/exercise-tracker/internal/models"
	"github.com/AnshRaj112/exercise-tracker/internal/services"
	"github.com/AnshRaj112/exercise-tracker/internal/store"
	"github.com/AnshRaj112/exercise-tracker/pkg/utils"
	"github.com/sirupsen/logrus"
)

// ExerciseHandler serves the /api/exercise endpoints.
type ExerciseHandler struct {
	svc     *services.ExerciseService
	log     logrus.FieldLogger
	timeout time.Duration
}

func NewExerciseHandler(svc *services.ExerciseService, log logrus.FieldLogger, timeout time.Duration) *ExerciseHandler {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ExerciseHandler{svc: svc, log: log, timeout: timeout}
}

// AddExerciseResponse is the newly appended entry with its owner's identity.
type AddExerciseResponse struct {
	Username    string          `json:"username"`
	ID          string          `json:"_id"`
	Date        string          `json:"date"`
	Duration    models.Duration `json:"duration"`
	Description string          `json:"description"`
}

// NewUser registers a username, or returns the existing user of that name.
func (h *ExerciseHandler) NewUser(w http.ResponseWriter, r *http.Request) {
	params, err := bodyParams(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	u, _, err := h.svc.Register(ctx, params.Get("username"))
	if err != nil {
		h.fail(w, r, err, logrus.Fields{"username": params.Get("username")})
		return
	}
	h.writeJSON(w, r, http.StatusOK, u.Summary())
}

// AddExercise appends an entry to a user's log.
func (h *ExerciseHandler) AddExercise(w http.ResponseWriter, r *http.Request) {
	params, err := bodyParams(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID := params.Get("userId")

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	u, e, err := h.svc.AddEntry(ctx, userID, services.AddEntryInput{
		Description: params.Get("description"),
		Duration:    params.Get("duration"),
		Date:        params.Get("date"),
	})
	if err != nil {
		h.fail(w, r, err, logrus.Fields{"user_id": userID})
		return
	}

	h.writeJSON(w, r, http.StatusOK, AddExerciseResponse{
		Username:    u.Username,
		ID:          u.ID.Hex(),
		Date:        services.FormatDate(e.Date),
		Duration:    e.Duration,
		Description: e.Description,
	})
}

// ListUsers returns every user as {username, _id}.
func (h *ExerciseHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	users, err := h.svc.Users(ctx)
	if err != nil {
		h.fail(w, r, err, nil)
		return
	}
	h.writeJSON(w, r, http.StatusOK, users)
}

// GetLog returns a user's log filtered by the optional from, to and limit query params.
func (h *ExerciseHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID := q.Get("userId")
	query := services.ParseLogQuery(q.Get("from"), q.Get("to"), q.Get("limit"))

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.svc.Log(ctx, userID, query)
	if err != nil {
		h.fail(w, r, err, logrus.Fields{"user_id": userID})
		return
	}
	h.writeJSON(w, r, http.StatusOK, result)
}

// fail writes err as a plain-text response. Unclassified errors are store
// failures: logged, and reported without detail.
func (h *ExerciseHandler) fail(w http.ResponseWriter, r *http.Request, err error, fields logrus.Fields) {
	var verr *utils.ValidationError
	switch {
	case errors.Is(err, store.ErrInvalidID):
		http.Error(w, "incorrect id", http.StatusBadRequest)
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "no such user", http.StatusNotFound)
	case errors.As(err, &verr):
		http.Error(w, verr.Message, http.StatusBadRequest)
	default:
		logging.FromContext(r.Context(), h.log).WithFields(fields).WithError(err).Error("store request failed")
		http.Error(w, "something went wrong", http.StatusInternalServerError)
	}
}

// writeJSON encodes v before writing the status so an unencodable value
// becomes a 500 rather than an empty 200.
func (h *ExerciseHandler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logging.FromContext(r.Context(), h.log).WithError(err).Error("response encoding failed")
		http.Error(w, "something went wrong", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
