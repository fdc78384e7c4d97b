package routes

import (
	"net/http"

	"github.com/AnshRaj112/exercise-tracker/internal/handlers"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(r chi.Router, exercise *handlers.ExerciseHandler) {
	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api/exercise", func(r chi.Router) {
		r.Post("/new-user", exercise.NewUser)
		r.Post("/add", exercise.AddExercise)
		r.Get("/users", exercise.ListUsers)
		r.Get("/log", exercise.GetLog)
	})
}
