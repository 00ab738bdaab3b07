package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/digital-aware/portal/internal/api/http"
	auth "github.com/digital-aware/portal/internal/auth/middleware"
	"github.com/digital-aware/portal/internal/config"
	"github.com/digital-aware/portal/internal/db"
	"github.com/digital-aware/portal/internal/portal"
	"github.com/digital-aware/portal/internal/rbac"
	"github.com/digital-aware/portal/internal/storage"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	svc, err := portal.NewService(ctx, portal.NewSQLStore(dbh), bs)
	if err != nil {
		log.Fatalf("portal service: %v", err)
	}

	authSvc := auth.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/student", auth.StudentLoginHandler(authSvc))
	r.Post("/auth/teacher", auth.TeacherLoginHandler(authSvc, cfg.TeacherPassHash))

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.With(rbac.Require("module:view")).
			Get("/modules", api.ListModulesHandler(svc))
		pr.With(rbac.Require("module:view")).
			Get("/modules/{moduleID}", api.GetModuleHandler(svc))

		// Teacher-only: module management
		pr.With(rbac.Require("module:edit")).
			Post("/modules", api.CreateModuleHandler(svc))
		pr.With(rbac.Require("module:edit")).
			Put("/modules/{moduleID}", api.UpdateModuleHandler(svc))
		pr.With(rbac.Require("module:edit")).
			Delete("/modules/{moduleID}", api.DeleteModuleHandler(svc))

		// Student quiz flow
		pr.With(rbac.Require("quiz:take")).
			Post("/modules/{moduleID}/quiz", api.StartQuizHandler(svc))
		pr.With(rbac.Require("quiz:take")).
			Post("/attempts/{attemptID}/answer", api.SubmitAnswerHandler(svc))
		pr.With(rbac.Require("quiz:take")).
			Post("/attempts/{attemptID}/finish", api.FinishQuizHandler(svc))

		pr.With(rbac.RequireAny("result:view-own", "result:view-all")).
			Get("/results", api.ListResultsHandler(svc))

		// Teacher grading: aggregate and per-question overrides
		pr.With(rbac.Require("quiz:grade")).
			Get("/results/{resultID}/grading", api.GetResultGradingHandler(svc))
		pr.With(rbac.Require("quiz:grade")).
			Post("/results/{resultID}/score", api.OverrideScoreHandler(svc))
		pr.With(rbac.Require("quiz:grade")).
			Post("/results/{resultID}/answers", api.OverrideAnswersHandler(svc))

		// Assignments
		pr.With(rbac.Require("assignment:submit")).
			Post("/modules/{moduleID}/assignments", api.UploadAssignmentHandler(svc))
		pr.With(rbac.RequireAny("assignment:view-own", "assignment:view-all")).
			Get("/assignments", api.ListAssignmentsHandler(svc))
		pr.With(rbac.RequireAny("assignment:view-own", "assignment:view-all")).
			Get("/assignments/{assignmentID}/file", api.AssignmentFileHandler(svc))
		pr.With(rbac.RequireAny("assignment:delete-own", "assignment:delete-any")).
			Delete("/assignments/{assignmentID}", api.DeleteAssignmentHandler(svc))
		pr.With(rbac.Require("assignment:grade")).
			Post("/assignments/{assignmentID}/grade", api.GradeAssignmentHandler(svc))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
