package services

import (
	"strings"
	"testing"
	"time"

	"napoli_club_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type documentServiceFixture struct {
	svc        DocumentService
	playerRepo *fakePlayerRepo
	docRepo    *fakeDocumentRepo
	store      *fakeFileStore
	playerID   int64
}

func newDocumentServiceForTest(t *testing.T) *documentServiceFixture {
	t.Helper()

	playerRepo := newFakePlayerRepo()
	docRepo := newFakeDocumentRepo()
	store := newFakeFileStore()

	playerSvc := NewPlayerService(playerRepo, nil)
	player, err := playerSvc.CreatePlayer(CreatePlayerRequest{IDNumber: "9001015009087"})
	require.NoError(t, err)

	return &documentServiceFixture{
		svc:        NewDocumentService(docRepo, playerRepo, store, nil),
		playerRepo: playerRepo,
		docRepo:    docRepo,
		store:      store,
		playerID:   player.ID,
	}
}

func uploadReq(playerID int64, fileName string, size int64) UploadDocumentRequest {
	return UploadDocumentRequest{
		PlayerID:     playerID,
		DocumentType: models.DocumentTypePassport,
		FileName:     fileName,
		FileSize:     size,
		File:         strings.NewReader("payload"),
	}
}

func TestUploadDocument(t *testing.T) {
	fx := newDocumentServiceForTest(t)

	before := time.Now().UTC()
	doc, err := fx.svc.UploadDocument(uploadReq(fx.playerID, "passport scan.pdf", 1024))
	require.NoError(t, err)

	assert.Equal(t, fx.playerID, doc.PlayerID)
	assert.Equal(t, models.DocumentTypePassport, doc.DocumentType)
	assert.True(t, strings.HasPrefix(doc.File, "/media/documents/"), "file should serialize as a media URL, got %q", doc.File)
	// upload_date is server-assigned at creation.
	assert.False(t, doc.UploadDate.IsZero())
	assert.False(t, doc.UploadDate.Before(before))
	assert.Len(t, fx.store.files, 1)
}

func TestUploadDocumentValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*UploadDocumentRequest)
		field    string
		messages []string
	}{
		{
			name:     "file too large",
			mutate:   func(r *UploadDocumentRequest) { r.FileSize = 10*1024*1024 + 1 },
			field:    "file",
			messages: []string{"File size cannot exceed 10MB."},
		},
		{
			name:     "invalid extension",
			mutate:   func(r *UploadDocumentRequest) { r.FileName = "virus.exe" },
			field:    "file",
			messages: []string{"Invalid file type. Allowed types are: pdf, doc, docx, jpg, jpeg, png"},
		},
		{
			name:     "no extension",
			mutate:   func(r *UploadDocumentRequest) { r.FileName = "passport" },
			field:    "file",
			messages: []string{"Invalid file type. Allowed types are: pdf, doc, docx, jpg, jpeg, png"},
		},
		{
			name: "missing file",
			mutate: func(r *UploadDocumentRequest) {
				r.FileName = ""
				r.File = nil
			},
			field:    "file",
			messages: []string{"No file was submitted."},
		},
		{
			name:     "invalid document type",
			mutate:   func(r *UploadDocumentRequest) { r.DocumentType = "report_card" },
			field:    "document_type",
			messages: []string{`"report_card" is not a valid choice.`},
		},
		{
			name:     "missing document type",
			mutate:   func(r *UploadDocumentRequest) { r.DocumentType = "" },
			field:    "document_type",
			messages: []string{"This field is required."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newDocumentServiceForTest(t)
			req := uploadReq(fx.playerID, "passport.pdf", 1024)
			tt.mutate(&req)

			_, err := fx.svc.UploadDocument(req)
			require.Error(t, err)

			var fieldErrs FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Equal(t, tt.messages, fieldErrs[tt.field])
			// Nothing was persisted.
			assert.Empty(t, fx.store.files)
			assert.Empty(t, fx.docRepo.documents)
		})
	}
}

func TestUploadDocumentExtensionCaseInsensitive(t *testing.T) {
	fx := newDocumentServiceForTest(t)

	for _, name := range []string{"photo.JPG", "scan.Pdf", "cert.PNG", "form.DocX"} {
		_, err := fx.svc.UploadDocument(uploadReq(fx.playerID, name, 512))
		assert.NoError(t, err, "extension check should be case-insensitive for %q", name)
	}
}

func TestUploadDocumentPlayerNotFound(t *testing.T) {
	fx := newDocumentServiceForTest(t)

	_, err := fx.svc.UploadDocument(uploadReq(99, "passport.pdf", 1024))
	assert.ErrorIs(t, err, ErrPlayerNotFound)
	assert.Empty(t, fx.store.files)
}

func TestGetDocumentsFilteredByPlayer(t *testing.T) {
	fx := newDocumentServiceForTest(t)

	_, err := fx.svc.UploadDocument(uploadReq(fx.playerID, "passport.pdf", 1024))
	require.NoError(t, err)

	docs, err := fx.svc.GetDocuments(&fx.playerID)
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	// Filtering by a nonexistent player is an error, not an empty list.
	missing := int64(404)
	_, err = fx.svc.GetDocuments(&missing)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestDeleteDocumentRemovesStoredFile(t *testing.T) {
	fx := newDocumentServiceForTest(t)

	doc, err := fx.svc.UploadDocument(uploadReq(fx.playerID, "passport.pdf", 1024))
	require.NoError(t, err)
	require.Len(t, fx.store.files, 1)

	require.NoError(t, fx.svc.DeleteDocument(doc.ID))

	assert.Empty(t, fx.store.files)
	_, err = fx.svc.GetDocumentByID(doc.ID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	assert.ErrorIs(t, fx.svc.DeleteDocument(doc.ID), ErrDocumentNotFound)
}

func TestDocumentsGoneAfterPlayerRemoved(t *testing.T) {
	fx := newDocumentServiceForTest(t)

	_, err := fx.svc.UploadDocument(uploadReq(fx.playerID, "passport.pdf", 1024))
	require.NoError(t, err)

	// Once the player row is gone (the store cascades the documents),
	// listing by that player reports the player missing.
	playerSvc := NewPlayerService(fx.playerRepo, nil)
	require.NoError(t, playerSvc.DeletePlayer(fx.playerID))

	_, err = fx.svc.GetDocuments(&fx.playerID)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}
