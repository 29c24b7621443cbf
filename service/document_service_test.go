package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"lawmatters-backend/models"
	"lawmatters-backend/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type documentFixture struct {
	svc      *DocumentService
	docRepo  *memoryDocumentRepo
	store    storage.Storage
	jane     *models.User
	john     *models.User
	customer *models.Customer
	matter   *models.Matter
}

func newDocumentFixture(t *testing.T) *documentFixture {
	t.Helper()
	ctx := context.Background()

	docRepo := newMemoryDocumentRepo()
	matterRepo := newMemoryMatterRepo()
	customerRepo := newMemoryCustomerRepo()

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	jane := testLawyer("jane@firm.example")
	customer := &models.Customer{Name: "Acme Corp", Phone: "5551234567", LawyerID: jane.ID}
	require.NoError(t, customerRepo.Create(ctx, customer))

	matter := &models.Matter{CustomerID: customer.ID, Title: "Contract review", Status: models.MatterOpen}
	require.NoError(t, matterRepo.Create(ctx, matter))

	return &documentFixture{
		svc:      NewDocumentService(docRepo, matterRepo, customerRepo, store, zap.NewNop()),
		docRepo:  docRepo,
		store:    store,
		jane:     jane,
		john:     testLawyer("john@firm.example"),
		customer: customer,
		matter:   matter,
	}
}

func (f *documentFixture) upload(t *testing.T, content string) *models.Document {
	t.Helper()
	result, err := f.svc.UploadDocument(context.Background(), UploadDocumentRequest{
		Principal:  f.jane,
		CustomerID: f.customer.ID,
		MatterID:   f.matter.ID,
		FileName:   "engagement letter.pdf",
		MimeType:   "application/pdf",
		SizeBytes:  int64(len(content)),
		Data:       strings.NewReader(content),
	})
	require.NoError(t, err)
	return result.Document
}

func TestUploadAndDownloadDocument(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()

	doc := f.upload(t, "dear client")
	assert.Equal(t, f.matter.ID, doc.MatterID)
	assert.Equal(t, f.jane.ID, doc.UploadedBy)

	result, err := f.svc.GetDocument(ctx, GetDocumentRequest{
		Principal:  f.jane,
		CustomerID: f.customer.ID,
		MatterID:   f.matter.ID,
		DocumentID: doc.ID,
	})
	require.NoError(t, err)
	defer result.Data.Close()

	content, err := io.ReadAll(result.Data)
	require.NoError(t, err)
	assert.Equal(t, "dear client", string(content))
}

func TestListDocuments(t *testing.T) {
	f := newDocumentFixture(t)

	f.upload(t, "one")
	f.upload(t, "two")

	result, err := f.svc.ListDocuments(context.Background(), ListDocumentsRequest{
		Principal:  f.jane,
		CustomerID: f.customer.ID,
		MatterID:   f.matter.ID,
	})
	require.NoError(t, err)
	assert.Len(t, result.Documents, 2)
}

func TestDocumentAuthorization(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()

	doc := f.upload(t, "dear client")

	_, err := f.svc.GetDocument(ctx, GetDocumentRequest{
		Principal:  f.john,
		CustomerID: f.customer.ID,
		MatterID:   f.matter.ID,
		DocumentID: doc.ID,
	})
	assert.ErrorIs(t, err, ErrForbidden, "access gates through the owning customer")

	_, err = f.svc.ListDocuments(ctx, ListDocumentsRequest{
		Principal:  f.john,
		CustomerID: f.customer.ID,
		MatterID:   f.matter.ID,
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetDocumentNotFound(t *testing.T) {
	f := newDocumentFixture(t)

	_, err := f.svc.GetDocument(context.Background(), GetDocumentRequest{
		Principal:  f.jane,
		CustomerID: f.customer.ID,
		MatterID:   f.matter.ID,
		DocumentID: uuid.New(),
	})
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestDeleteDocument(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()

	doc := f.upload(t, "dear client")

	require.NoError(t, f.svc.DeleteDocument(ctx, DeleteDocumentRequest{
		Principal:  f.jane,
		CustomerID: f.customer.ID,
		MatterID:   f.matter.ID,
		DocumentID: doc.ID,
	}))

	assert.Empty(t, f.docRepo.documents)

	err := f.svc.DeleteDocument(ctx, DeleteDocumentRequest{
		Principal:  f.jane,
		CustomerID: f.customer.ID,
		MatterID:   f.matter.ID,
		DocumentID: doc.ID,
	})
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestUploadDocumentUnderMissingMatter(t *testing.T) {
	f := newDocumentFixture(t)

	_, err := f.svc.UploadDocument(context.Background(), UploadDocumentRequest{
		Principal:  f.jane,
		CustomerID: f.customer.ID,
		MatterID:   uuid.New(),
		FileName:   "letter.pdf",
		MimeType:   "application/pdf",
		SizeBytes:  4,
		Data:       strings.NewReader("data"),
	})
	assert.ErrorIs(t, err, ErrMatterNotFound)
}
