package folders

import (
	"context"
	"docmanagement/internal/dto"
	"docmanagement/internal/http/middleware"
	"docmanagement/internal/models"
	"docmanagement/internal/utils/headers"
	errutils "docmanagement/internal/utils/http_errors"
	"encoding/json"
	"log/slog"
	"net/http"
)

func Patch(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, app string, id int64, fu FolderUpdater) {
	op := pkg + "Patch"

	log = log.With(slog.String("op", op), slog.Int64("folder_id", id))

	if !dto.IsPatchMediaType(r.Header.Get("Content-Type")) {
		log.Warn("unsupported media type", slog.String("content_type", r.Header.Get("Content-Type")))
		errutils.WriteJSONError(w, http.StatusUnsupportedMediaType, models.ErrUnsupportedMedia.Error())
		return
	}

	var patch models.FolderPatch

	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Warn("failed to decode request body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	folder, err := fu.PatchFolder(ctx, middleware.PrincipalFrom(ctx), id, patch)
	if err != nil {
		status := errutils.WriteServiceError(w, app, models.EntityFolder, err)
		log.Warn("failed to patch folder", slog.Int("status", status), slog.String("error", err.Error()))
		return
	}

	headers.UpdateAlert(w.Header(), app, models.EntityFolder, folder.ID)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.NewFolderResponse(folder)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
