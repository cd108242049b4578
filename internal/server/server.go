package server

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"planwise/internal/curriculum"
	"planwise/internal/repository"
	"planwise/internal/service"
)

// Server is the REST surface over the scheduling and decision-support engine.
type Server struct {
	router     chi.Router
	logger     *slog.Logger
	users      *repository.UserRepository
	tasks      *service.TaskService
	plans      *service.PlanService
	decisions  *service.DecisionService
	competency *service.CompetencyService
}

func New(
	logger *slog.Logger,
	users *repository.UserRepository,
	tasks *service.TaskService,
	plans *service.PlanService,
	decisions *service.DecisionService,
	competency *service.CompetencyService,
) *Server {
	s := &Server{
		logger:     logger,
		users:      users,
		tasks:      tasks,
		plans:      plans,
		decisions:  decisions,
		competency: competency,
	}
	s.routes()
	return s
}

// Router returns the HTTP handler for the server.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/curriculum", s.handleCurriculum)
		r.Post("/users", s.handleUpsertUser)

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/tasks", s.handleListTasks)
			r.Post("/tasks", s.handleCreateTask)
			r.Post("/tasks/{taskID}/complete", s.handleCompleteTask)
			r.Delete("/tasks/{taskID}", s.handleDeleteTask)

			r.Post("/schedule", s.handleSchedule)

			r.Post("/decisions", s.handleRecordDecision)
			r.Post("/suggestions", s.handleSuggest)

			r.Get("/competency", s.handleCompetency)
			r.Post("/modules/{moduleID}/start", s.handleStartModule)
			r.Post("/modules/{moduleID}/complete", s.handleCompleteModule)
		})
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondOK(w, map[string]string{"status": "ok"})
}

func (s *Server) handleCurriculum(w http.ResponseWriter, r *http.Request) {
	respondOK(w, curriculum.Modules())
}

// pathUserID parses the {userID} route parameter.
func pathUserID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "userID")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
