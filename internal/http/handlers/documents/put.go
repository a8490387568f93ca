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

func Update(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, app string, id int64, du DocumentUpdater) {
	op := pkg + "Update"

	log = log.With(slog.String("op", op), slog.Int64("document_id", id))

	var req dto.DocumentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode request body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	doc, err := du.UpdateDocument(ctx, middleware.PrincipalFrom(ctx), id, req.ToModel())
	if err != nil {
		status := errutils.WriteServiceError(w, app, models.EntityDocument, err)
		log.Warn("failed to update document", slog.Int("status", status), slog.String("error", err.Error()))
		return
	}

	headers.UpdateAlert(w.Header(), app, models.EntityDocument, doc.ID)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.NewDocumentResponse(doc)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
