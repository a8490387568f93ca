package documents

import (
	"context"
	"docmanagement/internal/models"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"
)

const app = "docmanagementApp"

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type mockDocumentService struct{ mock.Mock }

func (m *mockDocumentService) CreateDocument(ctx context.Context, principal models.Principal, doc *models.Document) (*models.Document, error) {
	args := m.Called(ctx, principal, doc)
	return args.Get(0).(*models.Document), args.Error(1)
}

func (m *mockDocumentService) UpdateDocument(ctx context.Context, principal models.Principal, id int64, doc *models.Document) (*models.Document, error) {
	args := m.Called(ctx, principal, id, doc)
	return args.Get(0).(*models.Document), args.Error(1)
}

func (m *mockDocumentService) PatchDocument(ctx context.Context, principal models.Principal, id int64, patch models.DocumentPatch) (*models.Document, error) {
	args := m.Called(ctx, principal, id, patch)
	return args.Get(0).(*models.Document), args.Error(1)
}

func (m *mockDocumentService) DocumentByID(ctx context.Context, principal models.Principal, id int64) (*models.Document, error) {
	args := m.Called(ctx, principal, id)
	return args.Get(0).(*models.Document), args.Error(1)
}

func (m *mockDocumentService) ListDocuments(ctx context.Context, principal models.Principal, pageable models.Pageable, eager bool) (models.Page[*models.Document], error) {
	args := m.Called(ctx, principal, pageable, eager)
	return args.Get(0).(models.Page[*models.Document]), args.Error(1)
}

func (m *mockDocumentService) DeleteDocument(ctx context.Context, principal models.Principal, id int64) error {
	args := m.Called(ctx, principal, id)
	return args.Error(0)
}

func ptr[T any](v T) *T {
	return &v
}
