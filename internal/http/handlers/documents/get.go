package documents

import (
	"context"
	"docmanagement/internal/config"
	"docmanagement/internal/dto"
	"docmanagement/internal/http/middleware"
	"docmanagement/internal/models"
	errutils "docmanagement/internal/utils/http_errors"
	pageutils "docmanagement/internal/utils/pagination"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
)

// eagerLoad reads the eagerload flag, which defaults to true.
func eagerLoad(r *http.Request) (bool, error) {
	raw := r.URL.Query().Get("eagerload")
	if raw == "" {
		return true, nil
	}

	return strconv.ParseBool(raw)
}

func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, app string, pg config.Pagination, dp DocumentProvider) {
	op := pkg + "Get"

	log = log.With(slog.String("op", op))

	pageable, err := pageutils.ParsePageable(r.URL.Query(), pg.DefaultSize, pg.MaxSize)
	if err != nil {
		status := errutils.WriteServiceError(w, app, models.EntityDocument, err)
		log.Warn("invalid page params", slog.Int("status", status), slog.String("error", err.Error()))
		return
	}

	eager, err := eagerLoad(r)
	if err != nil {
		log.Warn("invalid eagerload flag", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}

	page, err := dp.ListDocuments(ctx, middleware.PrincipalFrom(ctx), pageable, eager)
	if err != nil {
		status := errutils.WriteServiceError(w, app, models.EntityDocument, err)
		log.Warn("failed to list documents", slog.Int("status", status), slog.String("error", err.Error()))
		return
	}

	pageutils.SetPaginationHeaders(w.Header(), r, page)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.NewDocumentResponses(page.Content)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func GetByID(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, app string, id int64, dp DocumentProvider) {
	op := pkg + "GetByID"

	log = log.With(slog.String("op", op), slog.Int64("document_id", id))

	doc, err := dp.DocumentByID(ctx, middleware.PrincipalFrom(ctx), id)
	if err != nil {
		status := errutils.WriteServiceError(w, app, models.EntityDocument, err)
		log.Warn("failed to get document by id", slog.Int("status", status), slog.String("error", err.Error()))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.NewDocumentResponse(doc)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
