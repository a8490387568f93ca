package folders

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
)

func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, app string, pg config.Pagination, fp FolderProvider) {
	op := pkg + "Get"

	log = log.With(slog.String("op", op))

	pageable, err := pageutils.ParsePageable(r.URL.Query(), pg.DefaultSize, pg.MaxSize)
	if err != nil {
		status := errutils.WriteServiceError(w, app, models.EntityFolder, err)
		log.Warn("invalid page params", slog.Int("status", status), slog.String("error", err.Error()))
		return
	}

	page, err := fp.ListFolders(ctx, middleware.PrincipalFrom(ctx), pageable)
	if err != nil {
		status := errutils.WriteServiceError(w, app, models.EntityFolder, err)
		log.Warn("failed to list folders", slog.Int("status", status), slog.String("error", err.Error()))
		return
	}

	pageutils.SetPaginationHeaders(w.Header(), r, page)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.NewFolderResponses(page.Content)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func GetByID(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, app string, id int64, fp FolderProvider) {
	op := pkg + "GetByID"

	log = log.With(slog.String("op", op), slog.Int64("folder_id", id))

	folder, err := fp.FolderByID(ctx, middleware.PrincipalFrom(ctx), id)
	if err != nil {
		status := errutils.WriteServiceError(w, app, models.EntityFolder, err)
		log.Warn("failed to get folder by id", slog.Int("status", status), slog.String("error", err.Error()))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.NewFolderResponse(folder)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
