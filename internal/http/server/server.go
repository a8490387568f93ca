package server

import (
	"context"
	"docmanagement/internal/config"
	"docmanagement/internal/http/handlers/documents"
	"docmanagement/internal/http/handlers/folders"
	"docmanagement/internal/http/middleware"
	"docmanagement/internal/models"
	utils "docmanagement/internal/utils/http_errors"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

func StartServer(
	ctx context.Context,
	cfg *config.Config,
	log *slog.Logger,
	folderService FolderService,
	documentService DocumentService,
	authService AuthService,
) error {
	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
		Handler:      NewRouter(log, cfg.ClientAppName, cfg.Pagination, folderService, documentService, authService),
	}

	errChan := make(chan error, 1)

	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info("server closed gracefully")
			} else {
				log.Error("could not start server:", "error", err)
				errChan <- err
			}
		}
	}()
	select {
	case <-ctx.Done():
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("error shutting down server", "error", err)
			return err
		}
		log.Info("server exited gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func NewRouter(
	log *slog.Logger,
	app string,
	pg config.Pagination,
	folderService FolderService,
	documentService DocumentService,
	authService AuthService,
) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.Logger(log))

	api := r.PathPrefix("/api").Subrouter()

	api.Use(middleware.Auth(log, authService))

	setupFolderRoutes(api, log, app, pg, folderService)
	setupDocumentRoutes(api, log, app, pg, documentService)

	// Not allowed. mux checks methods per router, so the subrouter needs its own handler.
	r.MethodNotAllowedHandler = methodNotAllowed
	api.MethodNotAllowedHandler = methodNotAllowed

	return r
}

var methodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONError(w, http.StatusMethodNotAllowed, models.ErrMethodNotAllowed.Error())
})

func setupFolderRoutes(r *mux.Router, log *slog.Logger, app string, pg config.Pagination, fs FolderService) {
	// POST folder
	r.HandleFunc("/folders", func(w http.ResponseWriter, r *http.Request) {
		folders.Create(r.Context(), log, w, r, app, fs)
	}).Methods(http.MethodPost)

	// GET folders
	r.HandleFunc("/folders", func(w http.ResponseWriter, r *http.Request) {
		folders.Get(r.Context(), log, w, r, app, pg, fs)
	}).Methods(http.MethodGet)

	// GET folder by id
	r.HandleFunc("/folders/{id:[0-9]+}", withID(func(w http.ResponseWriter, r *http.Request, id int64) {
		folders.GetByID(r.Context(), log, w, r, app, id, fs)
	})).Methods(http.MethodGet)

	// PUT folder
	r.HandleFunc("/folders/{id:[0-9]+}", withID(func(w http.ResponseWriter, r *http.Request, id int64) {
		folders.Update(r.Context(), log, w, r, app, id, fs)
	})).Methods(http.MethodPut)

	// PATCH folder
	r.HandleFunc("/folders/{id:[0-9]+}", withID(func(w http.ResponseWriter, r *http.Request, id int64) {
		folders.Patch(r.Context(), log, w, r, app, id, fs)
	})).Methods(http.MethodPatch)

	// DELETE folder
	r.HandleFunc("/folders/{id:[0-9]+}", withID(func(w http.ResponseWriter, r *http.Request, id int64) {
		folders.Delete(r.Context(), log, w, r, app, id, fs)
	})).Methods(http.MethodDelete)
}

func setupDocumentRoutes(r *mux.Router, log *slog.Logger, app string, pg config.Pagination, ds DocumentService) {
	// POST document
	r.HandleFunc("/documents", func(w http.ResponseWriter, r *http.Request) {
		documents.Create(r.Context(), log, w, r, app, ds)
	}).Methods(http.MethodPost)

	// GET documents
	r.HandleFunc("/documents", func(w http.ResponseWriter, r *http.Request) {
		documents.Get(r.Context(), log, w, r, app, pg, ds)
	}).Methods(http.MethodGet)

	// GET document by id
	r.HandleFunc("/documents/{id:[0-9]+}", withID(func(w http.ResponseWriter, r *http.Request, id int64) {
		documents.GetByID(r.Context(), log, w, r, app, id, ds)
	})).Methods(http.MethodGet)

	// PUT document
	r.HandleFunc("/documents/{id:[0-9]+}", withID(func(w http.ResponseWriter, r *http.Request, id int64) {
		documents.Update(r.Context(), log, w, r, app, id, ds)
	})).Methods(http.MethodPut)

	// PATCH document
	r.HandleFunc("/documents/{id:[0-9]+}", withID(func(w http.ResponseWriter, r *http.Request, id int64) {
		documents.Patch(r.Context(), log, w, r, app, id, ds)
	})).Methods(http.MethodPatch)

	// DELETE document
	r.HandleFunc("/documents/{id:[0-9]+}", withID(func(w http.ResponseWriter, r *http.Request, id int64) {
		documents.Delete(r.Context(), log, w, r, app, id, ds)
	})).Methods(http.MethodDelete)
}

func withID(next func(w http.ResponseWriter, r *http.Request, id int64)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}

		next(w, r, id)
	}
}
