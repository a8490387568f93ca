package documentservice

import (
	"context"
	"docmanagement/internal/models"
	"errors"
	"fmt"
	"log/slog"
)

const pkg = "documentService/"

type DocumentService struct {
	log            *slog.Logger
	docRepo        DocumentRepository
	folderProvider FolderProvider
	tx             Transactor
}

func New(
	log *slog.Logger,
	docRepo DocumentRepository,
	folderProvider FolderProvider,
	tx Transactor,
) *DocumentService {
	return &DocumentService{
		log:            log,
		docRepo:        docRepo,
		folderProvider: folderProvider,
		tx:             tx,
	}
}

func (ds *DocumentService) CreateDocument(ctx context.Context, principal models.Principal, doc *models.Document) (*models.Document, error) {
	op := pkg + "CreateDocument"

	log := ds.log.With(slog.String("op", op), slog.String("principal", principal.Login))

	log.Debug("attempting to create document", slog.String("title", doc.Title))

	if doc.ID != 0 {
		log.Warn("new document already has an id", slog.Int64("doc_id", doc.ID))
		return nil, models.NewIDExists(models.EntityDocument)
	}

	if err := doc.Validate(); err != nil {
		log.Warn("invalid document", slog.String("error", err.Error()))
		return nil, &models.ValidationError{Entity: models.EntityDocument, Err: err}
	}

	err := ds.tx.InTx(ctx, func(ctx context.Context) error {
		if err := ds.resolveFolder(ctx, doc); err != nil {
			return err
		}

		return ds.docRepo.Save(ctx, doc)
	})
	if err != nil {
		return nil, ds.mapWriteError(log, op, err)
	}

	log.Debug("document created successfully", slog.Int64("doc_id", doc.ID))

	return doc, nil
}

func (ds *DocumentService) UpdateDocument(ctx context.Context, principal models.Principal, id int64, doc *models.Document) (*models.Document, error) {
	op := pkg + "UpdateDocument"

	log := ds.log.With(slog.String("op", op), slog.String("principal", principal.Login))

	log.Debug("attempting to update document", slog.Int64("doc_id", id))

	var bodyID *int64
	if doc.ID != 0 {
		bodyID = &doc.ID
	}

	if err := models.CheckPathID(models.EntityDocument, id, bodyID); err != nil {
		log.Warn("invalid document id", slog.String("error", err.Error()))
		return nil, err
	}

	if err := doc.Validate(); err != nil {
		log.Warn("invalid document", slog.String("error", err.Error()))
		return nil, &models.ValidationError{Entity: models.EntityDocument, Err: err}
	}

	err := ds.tx.InTx(ctx, func(ctx context.Context) error {
		if err := ds.ensureExists(ctx, id); err != nil {
			return err
		}

		if err := ds.resolveFolder(ctx, doc); err != nil {
			return err
		}

		return ds.docRepo.Save(ctx, doc)
	})
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document vanished during update", slog.Int64("doc_id", id))
			return nil, models.NewIDNotFound(models.EntityDocument)
		}
		return nil, ds.mapWriteError(log, op, err)
	}

	log.Debug("document updated successfully", slog.Int64("doc_id", id))

	return doc, nil
}

// PatchDocument merges patch into the stored document. Fields absent from the
// patch keep their value, explicit nulls clear them.
func (ds *DocumentService) PatchDocument(ctx context.Context, principal models.Principal, id int64, patch models.DocumentPatch) (*models.Document, error) {
	op := pkg + "PatchDocument"

	log := ds.log.With(slog.String("op", op), slog.String("principal", principal.Login))

	log.Debug("attempting to patch document", slog.Int64("doc_id", id))

	if err := models.CheckPathID(models.EntityDocument, id, patch.ID); err != nil {
		log.Warn("invalid document id", slog.String("error", err.Error()))
		return nil, err
	}

	var doc *models.Document

	err := ds.tx.InTx(ctx, func(ctx context.Context) error {
		if err := ds.ensureExists(ctx, id); err != nil {
			return err
		}

		existing, err := ds.docRepo.ByIDWithFolder(ctx, id)
		if err != nil {
			return err
		}

		patch.Apply(existing)

		if err := existing.Validate(); err != nil {
			return &models.ValidationError{Entity: models.EntityDocument, Err: err}
		}

		if err := ds.resolveFolder(ctx, existing); err != nil {
			return err
		}

		if err := ds.docRepo.Save(ctx, existing); err != nil {
			return err
		}

		doc = existing
		return nil
	})
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document vanished during patch", slog.Int64("doc_id", id))
			return nil, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		return nil, ds.mapWriteError(log, op, err)
	}

	log.Debug("document patched successfully", slog.Int64("doc_id", id))

	return doc, nil
}

// DocumentByID always loads the folder relation.
func (ds *DocumentService) DocumentByID(ctx context.Context, principal models.Principal, id int64) (*models.Document, error) {
	op := pkg + "DocumentByID"

	log := ds.log.With(slog.String("op", op), slog.String("principal", principal.Login))

	log.Debug("attempting to get document by id", slog.Int64("doc_id", id))

	doc, err := ds.docRepo.ByIDWithFolder(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.Int64("doc_id", id))
			return nil, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		log.Error("failed to get document by id", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return doc, nil
}

func (ds *DocumentService) ListDocuments(ctx context.Context, principal models.Principal, pageable models.Pageable, eager bool) (models.Page[*models.Document], error) {
	op := pkg + "ListDocuments"

	log := ds.log.With(slog.String("op", op), slog.String("principal", principal.Login))

	log.Debug("attempting to list documents",
		slog.Int("page", pageable.Page),
		slog.Int("size", pageable.Size),
		slog.Bool("eager", eager))

	var (
		page models.Page[*models.Document]
		err  error
	)

	if eager {
		page, err = ds.docRepo.ListWithFolder(ctx, pageable)
	} else {
		page, err = ds.docRepo.List(ctx, pageable)
	}
	if err != nil {
		if errors.Is(err, models.ErrInvalidSort) {
			log.Warn("invalid sort", slog.String("error", err.Error()))
			return models.Page[*models.Document]{}, fmt.Errorf("%s: %w", op, models.ErrInvalidSort)
		}
		log.Error("failed to list documents", slog.String("error", err.Error()))
		return models.Page[*models.Document]{}, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("documents listed successfully", slog.Int("count", len(page.Content)), slog.Int64("total", page.Total))

	return page, nil
}

// DeleteDocument succeeds whether or not the document exists.
func (ds *DocumentService) DeleteDocument(ctx context.Context, principal models.Principal, id int64) error {
	op := pkg + "DeleteDocument"

	log := ds.log.With(slog.String("op", op), slog.String("principal", principal.Login))

	log.Debug("attempting to delete document", slog.Int64("doc_id", id))

	err := ds.tx.InTx(ctx, func(ctx context.Context) error {
		return ds.docRepo.DeleteByID(ctx, id)
	})
	if err != nil {
		log.Error("failed to delete document", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("document deleted successfully", slog.Int64("doc_id", id))

	return nil
}

func (ds *DocumentService) ensureExists(ctx context.Context, id int64) error {
	exists, err := ds.docRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}

	if !exists {
		return models.NewIDNotFound(models.EntityDocument)
	}

	return nil
}

// resolveFolder loads the referenced folder so the response carries it.
func (ds *DocumentService) resolveFolder(ctx context.Context, doc *models.Document) error {
	if doc.FolderID == nil {
		doc.Folder = nil
		return nil
	}

	if doc.Folder != nil && doc.Folder.ID == *doc.FolderID {
		return nil
	}

	folder, err := ds.folderProvider.ByID(ctx, *doc.FolderID)
	if err != nil {
		return err
	}

	doc.Folder = folder
	return nil
}

func (ds *DocumentService) mapWriteError(log *slog.Logger, op string, err error) error {
	var entityErr *models.EntityError
	if errors.As(err, &entityErr) {
		log.Warn("rejected document write", slog.String("error", err.Error()))
		return entityErr
	}

	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		log.Warn("invalid document", slog.String("error", err.Error()))
		return validationErr
	}

	if errors.Is(err, models.ErrFolderNotFound) {
		log.Warn("referenced folder not found", slog.String("error", err.Error()))
		return models.NewFolderNotFound(models.EntityDocument)
	}

	log.Error("failed to write document", slog.String("error", err.Error()))
	return fmt.Errorf("%s: %w", op, models.ErrInternal)
}
