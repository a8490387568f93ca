package documents

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

func Patch(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, app string, id int64, du DocumentUpdater) {
	op := pkg + "Patch"

	log = log.With(slog.String("op", op), slog.Int64("document_id", id))

	if !dto.IsPatchMediaType(r.Header.Get("Content-Type")) {
		log.Warn("unsupported media type", slog.String("content_type", r.Header.Get("Content-Type")))
		errutils.WriteJSONError(w, http.StatusUnsupportedMediaType, models.ErrUnsupportedMedia.Error())
		return
	}

	var patch models.DocumentPatch

	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Warn("failed to decode request body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	doc, err := du.PatchDocument(ctx, middleware.PrincipalFrom(ctx), id, patch)
	if err != nil {
		status := errutils.WriteServiceError(w, app, models.EntityDocument, err)
		log.Warn("failed to patch document", slog.Int("status", status), slog.String("error", err.Error()))
		return
	}

	headers.UpdateAlert(w.Header(), app, models.EntityDocument, doc.ID)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.NewDocumentResponse(doc)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
