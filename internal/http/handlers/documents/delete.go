package documents

import (
	"context"
	"docmanagement/internal/http/middleware"
	"docmanagement/internal/models"
	"docmanagement/internal/utils/headers"
	errutils "docmanagement/internal/utils/http_errors"
	"log/slog"
	"net/http"
)

func Delete(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, app string, id int64, dd DocumentDeleter) {
	op := pkg + "Delete"

	log = log.With(slog.String("op", op), slog.Int64("document_id", id))

	if err := dd.DeleteDocument(ctx, middleware.PrincipalFrom(ctx), id); err != nil {
		status := errutils.WriteServiceError(w, app, models.EntityDocument, err)
		log.Error("failed to delete document", slog.Int("status", status), slog.String("error", err.Error()))
		return
	}

	headers.DeletionAlert(w.Header(), app, models.EntityDocument, id)
	w.WriteHeader(http.StatusNoContent)
}
