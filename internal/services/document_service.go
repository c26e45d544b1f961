package services

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"napoli_club_backend/internal/models"
	"napoli_club_backend/internal/repositories"
)

// --- Custom Service Errors for Document ---
var (
	ErrDocumentNotFound = errors.New("document not found")
)

// File upload constraints.
const (
	maxUploadSize = 10 * 1024 * 1024 // 10 MiB

	msgFileTooLarge    = "File size cannot exceed 10MB."
	msgInvalidFileType = "Invalid file type. Allowed types are: pdf, doc, docx, jpg, jpeg, png"
	msgNoFileSubmitted = "No file was submitted."
)

var allowedFileExtensions = map[string]struct{}{
	"pdf": {}, "doc": {}, "docx": {}, "jpg": {}, "jpeg": {}, "png": {},
}

// FileStore abstracts where uploaded payloads are kept. Save returns the
// locator recorded in the document row; URL maps a locator to the public
// path it is served from.
type FileStore interface {
	Save(fileName string, r io.Reader) (string, error)
	Remove(locator string) error
	URL(locator string) string
}

// --- Document DTOs ---

// UploadDocumentRequest carries a multipart upload. Upload date is never
// part of the request; it is assigned by the store at creation.
type UploadDocumentRequest struct {
	PlayerID     int64
	DocumentType string
	Description  *string
	FileName     string
	FileSize     int64
	File         io.Reader
}

// --- DocumentService Interface ---
type DocumentService interface {
	UploadDocument(req UploadDocumentRequest) (*models.Document, error)
	GetDocumentByID(documentID int64) (*models.Document, error)
	GetDocuments(playerID *int64) ([]models.Document, error)
	DeleteDocument(documentID int64) error
}

// --- documentService Implementation ---
type documentService struct {
	documentRepo repositories.DocumentRepository
	playerRepo   repositories.PlayerRepository
	store        FileStore
	db           *sql.DB
}

// NewDocumentService creates a new instance of DocumentService.
func NewDocumentService(documentRepo repositories.DocumentRepository, playerRepo repositories.PlayerRepository, store FileStore, db *sql.DB) DocumentService {
	return &documentService{
		documentRepo: documentRepo,
		playerRepo:   playerRepo,
		store:        store,
		db:           db,
	}
}

// validateUpload checks the document type and file constraints.
func validateUpload(req UploadDocumentRequest) FieldErrors {
	fieldErrs := FieldErrors{}

	if strings.TrimSpace(req.DocumentType) == "" {
		fieldErrs.Add("document_type", msgFieldRequired)
	} else if !models.IsValidDocumentType(req.DocumentType) {
		fieldErrs.Add("document_type", msgInvalidChoice(req.DocumentType))
	}

	if req.File == nil || req.FileName == "" {
		fieldErrs.Add("file", msgNoFileSubmitted)
	} else {
		if req.FileSize > maxUploadSize {
			fieldErrs.Add("file", msgFileTooLarge)
		}
		if _, ok := allowedFileExtensions[fileExtension(req.FileName)]; !ok {
			fieldErrs.Add("file", msgInvalidFileType)
		}
	}

	if len(fieldErrs) == 0 {
		return nil
	}
	return fieldErrs
}

// fileExtension returns the lower-cased extension without the dot.
func fileExtension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}

func (s *documentService) UploadDocument(req UploadDocumentRequest) (*models.Document, error) {
	if fieldErrs := validateUpload(req); fieldErrs != nil {
		return nil, fieldErrs
	}

	// The owning player must exist before anything is written.
	if _, err := s.playerRepo.GetPlayerByID(req.PlayerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to resolve player for upload: %w", err)
	}

	locator, err := s.store.Save(req.FileName, req.File)
	if err != nil {
		return nil, fmt.Errorf("failed to store uploaded file: %w", err)
	}

	doc := &models.Document{
		PlayerID:     req.PlayerID,
		DocumentType: req.DocumentType,
		File:         locator,
		Description:  req.Description,
	}

	if _, err := s.documentRepo.CreateDocument(s.db, doc); err != nil {
		// The record failed; don't leave the payload orphaned on disk.
		_ = s.store.Remove(locator)
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to create document in repository: %w", err)
	}

	doc.File = s.store.URL(locator)
	return doc, nil
}

func (s *documentService) GetDocumentByID(documentID int64) (*models.Document, error) {
	doc, err := s.documentRepo.GetDocumentByID(documentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document by ID: %w", err)
	}
	doc.File = s.store.URL(doc.File)
	return doc, nil
}

// GetDocuments lists documents. With a player filter the player must exist;
// a missing player is an error, not an empty list.
func (s *documentService) GetDocuments(playerID *int64) ([]models.Document, error) {
	if playerID != nil {
		if _, err := s.playerRepo.GetPlayerByID(*playerID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrPlayerNotFound
			}
			return nil, fmt.Errorf("failed to resolve player for document list: %w", err)
		}
	}

	docs, err := s.documentRepo.GetDocuments(playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get documents: %w", err)
	}
	for i := range docs {
		docs[i].File = s.store.URL(docs[i].File)
	}
	return docs, nil
}

func (s *documentService) DeleteDocument(documentID int64) error {
	doc, err := s.documentRepo.GetDocumentByID(documentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("failed to find document for deletion: %w", err)
	}

	if err := s.documentRepo.DeleteDocument(s.db, documentID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("failed to delete document: %w", err)
	}

	// Best-effort cleanup of the stored payload; the record is already gone.
	_ = s.store.Remove(doc.File)
	return nil
}
