package documents

import (
	"context"
	"docmanagement/internal/dto"
	"docmanagement/internal/http/middleware"
	"docmanagement/internal/models"
	"docmanagement/internal/utils/headers"
	errutils "docmanagement/internal/utils/http_errors"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

func Create(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, app string, dc DocumentCreator) {
	op := pkg + "Create"

	log = log.With(slog.String("op", op))

	var req dto.DocumentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode request body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	doc, err := dc.CreateDocument(ctx, middleware.PrincipalFrom(ctx), req.ToModel())
	if err != nil {
		status := errutils.WriteServiceError(w, app, models.EntityDocument, err)
		log.Warn("failed to create document", slog.Int("status", status), slog.String("error", err.Error()))
		return
	}

	headers.CreationAlert(w.Header(), app, models.EntityDocument, doc.ID)
	w.Header().Set("Location", fmt.Sprintf("/api/documents/%d", doc.ID))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(dto.NewDocumentResponse(doc)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
