package folderservice

import (
	"context"
	"docmanagement/internal/models"
	"errors"
	"fmt"
	"log/slog"
)

const pkg = "folderService/"

type FolderService struct {
	log        *slog.Logger
	folderRepo FolderRepository
	tx         Transactor
}

func New(log *slog.Logger, folderRepo FolderRepository, tx Transactor) *FolderService {
	return &FolderService{
		log:        log,
		folderRepo: folderRepo,
		tx:         tx,
	}
}

func (fs *FolderService) CreateFolder(ctx context.Context, principal models.Principal, folder *models.Folder) (*models.Folder, error) {
	op := pkg + "CreateFolder"

	log := fs.log.With(slog.String("op", op), slog.String("principal", principal.Login))

	log.Debug("attempting to create folder", slog.String("title", folder.Title))

	if folder.ID != 0 {
		log.Warn("new folder already has an id", slog.Int64("folder_id", folder.ID))
		return nil, models.NewIDExists(models.EntityFolder)
	}

	if err := folder.Validate(); err != nil {
		log.Warn("invalid folder", slog.String("error", err.Error()))
		return nil, &models.ValidationError{Entity: models.EntityFolder, Err: err}
	}

	err := fs.tx.InTx(ctx, func(ctx context.Context) error {
		return fs.folderRepo.Save(ctx, folder)
	})
	if err != nil {
		log.Error("failed to save folder", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("folder created successfully", slog.Int64("folder_id", folder.ID))

	return folder, nil
}

func (fs *FolderService) UpdateFolder(ctx context.Context, principal models.Principal, id int64, folder *models.Folder) (*models.Folder, error) {
	op := pkg + "UpdateFolder"

	log := fs.log.With(slog.String("op", op), slog.String("principal", principal.Login))

	log.Debug("attempting to update folder", slog.Int64("folder_id", id))

	var bodyID *int64
	if folder.ID != 0 {
		bodyID = &folder.ID
	}

	if err := models.CheckPathID(models.EntityFolder, id, bodyID); err != nil {
		log.Warn("invalid folder id", slog.String("error", err.Error()))
		return nil, err
	}

	if err := folder.Validate(); err != nil {
		log.Warn("invalid folder", slog.String("error", err.Error()))
		return nil, &models.ValidationError{Entity: models.EntityFolder, Err: err}
	}

	err := fs.tx.InTx(ctx, func(ctx context.Context) error {
		if err := fs.ensureExists(ctx, id); err != nil {
			return err
		}

		return fs.folderRepo.Save(ctx, folder)
	})
	if err != nil {
		var entityErr *models.EntityError
		if errors.As(err, &entityErr) {
			log.Warn("folder not found", slog.Int64("folder_id", id))
			return nil, entityErr
		}
		if errors.Is(err, models.ErrFolderNotFound) {
			log.Warn("folder vanished during update", slog.Int64("folder_id", id))
			return nil, models.NewIDNotFound(models.EntityFolder)
		}
		log.Error("failed to update folder", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("folder updated successfully", slog.Int64("folder_id", id))

	return folder, nil
}

// PatchFolder merges patch into the stored folder. Fields absent from the
// patch keep their value, explicit nulls clear them.
func (fs *FolderService) PatchFolder(ctx context.Context, principal models.Principal, id int64, patch models.FolderPatch) (*models.Folder, error) {
	op := pkg + "PatchFolder"

	log := fs.log.With(slog.String("op", op), slog.String("principal", principal.Login))

	log.Debug("attempting to patch folder", slog.Int64("folder_id", id))

	if err := models.CheckPathID(models.EntityFolder, id, patch.ID); err != nil {
		log.Warn("invalid folder id", slog.String("error", err.Error()))
		return nil, err
	}

	var folder *models.Folder

	err := fs.tx.InTx(ctx, func(ctx context.Context) error {
		if err := fs.ensureExists(ctx, id); err != nil {
			return err
		}

		existing, err := fs.folderRepo.ByID(ctx, id)
		if err != nil {
			return err
		}

		patch.Apply(existing)

		if err := existing.Validate(); err != nil {
			return &models.ValidationError{Entity: models.EntityFolder, Err: err}
		}

		if err := fs.folderRepo.Save(ctx, existing); err != nil {
			return err
		}

		folder = existing
		return nil
	})
	if err != nil {
		var entityErr *models.EntityError
		if errors.As(err, &entityErr) {
			log.Warn("folder not found", slog.Int64("folder_id", id))
			return nil, entityErr
		}
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			log.Warn("invalid folder after patch", slog.String("error", err.Error()))
			return nil, validationErr
		}
		if errors.Is(err, models.ErrFolderNotFound) {
			log.Warn("folder vanished during patch", slog.Int64("folder_id", id))
			return nil, fmt.Errorf("%s: %w", op, models.ErrFolderNotFound)
		}
		log.Error("failed to patch folder", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("folder patched successfully", slog.Int64("folder_id", id))

	return folder, nil
}

func (fs *FolderService) FolderByID(ctx context.Context, principal models.Principal, id int64) (*models.Folder, error) {
	op := pkg + "FolderByID"

	log := fs.log.With(slog.String("op", op), slog.String("principal", principal.Login))

	log.Debug("attempting to get folder by id", slog.Int64("folder_id", id))

	folder, err := fs.folderRepo.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrFolderNotFound) {
			log.Warn("folder not found", slog.Int64("folder_id", id))
			return nil, fmt.Errorf("%s: %w", op, models.ErrFolderNotFound)
		}
		log.Error("failed to get folder by id", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return folder, nil
}

func (fs *FolderService) ListFolders(ctx context.Context, principal models.Principal, pageable models.Pageable) (models.Page[*models.Folder], error) {
	op := pkg + "ListFolders"

	log := fs.log.With(slog.String("op", op), slog.String("principal", principal.Login))

	log.Debug("attempting to list folders", slog.Int("page", pageable.Page), slog.Int("size", pageable.Size))

	page, err := fs.folderRepo.List(ctx, pageable)
	if err != nil {
		if errors.Is(err, models.ErrInvalidSort) {
			log.Warn("invalid sort", slog.String("error", err.Error()))
			return models.Page[*models.Folder]{}, fmt.Errorf("%s: %w", op, models.ErrInvalidSort)
		}
		log.Error("failed to list folders", slog.String("error", err.Error()))
		return models.Page[*models.Folder]{}, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("folders listed successfully", slog.Int("count", len(page.Content)), slog.Int64("total", page.Total))

	return page, nil
}

// DeleteFolder succeeds whether or not the folder exists.
func (fs *FolderService) DeleteFolder(ctx context.Context, principal models.Principal, id int64) error {
	op := pkg + "DeleteFolder"

	log := fs.log.With(slog.String("op", op), slog.String("principal", principal.Login))

	log.Debug("attempting to delete folder", slog.Int64("folder_id", id))

	err := fs.tx.InTx(ctx, func(ctx context.Context) error {
		return fs.folderRepo.DeleteByID(ctx, id)
	})
	if err != nil {
		log.Error("failed to delete folder", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("folder deleted successfully", slog.Int64("folder_id", id))

	return nil
}

func (fs *FolderService) ensureExists(ctx context.Context, id int64) error {
	exists, err := fs.folderRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}

	if !exists {
		return models.NewIDNotFound(models.EntityFolder)
	}

	return nil
}
