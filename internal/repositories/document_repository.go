package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"napoli_club_backend/internal/models"

	"github.com/lib/pq" // For pq.Error
)

// DocumentRepository defines the interface for document-related database operations.
type DocumentRepository interface {
	CreateDocument(executor SQLExecutor, doc *models.Document) (int64, error)
	GetDocumentByID(id int64) (*models.Document, error)
	GetDocuments(playerID *int64) ([]models.Document, error)
	GetDocumentsByPlayerID(playerID int64) ([]models.Document, error)
	DeleteDocument(executor SQLExecutor, id int64) error
}

type documentRepository struct {
	db *sql.DB
}

// NewDocumentRepository creates a new instance of DocumentRepository.
func NewDocumentRepository(db *sql.DB) DocumentRepository {
	return &documentRepository{db: db}
}

// CreateDocument inserts a new document record. UploadDate is set here,
// never taken from client input.
func (r *documentRepository) CreateDocument(executor SQLExecutor, doc *models.Document) (int64, error) {
	query := `INSERT INTO documents (player_id, document_type, file, description, upload_date)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	doc.UploadDate = time.Now().UTC()

	err := executor.QueryRow(query,
		doc.PlayerID, doc.DocumentType, doc.File, doc.Description, doc.UploadDate,
	).Scan(&doc.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return 0, fmt.Errorf("%w: document references missing player %d", ErrNotFound, doc.PlayerID)
		}
		return 0, fmt.Errorf("%w: creating document: %v", ErrDatabaseError, err)
	}
	return doc.ID, nil
}

// GetDocumentByID retrieves a document by its ID.
func (r *documentRepository) GetDocumentByID(id int64) (*models.Document, error) {
	doc := &models.Document{}
	query := `SELECT id, player_id, document_type, file, description, upload_date
	          FROM documents WHERE id = $1`

	err := r.db.QueryRow(query, id).Scan(
		&doc.ID, &doc.PlayerID, &doc.DocumentType, &doc.File, &doc.Description, &doc.UploadDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting document by ID %d: %v", ErrDatabaseError, id, err)
	}
	return doc, nil
}

// GetDocuments retrieves all documents, optionally filtered by owning player.
func (r *documentRepository) GetDocuments(playerID *int64) ([]models.Document, error) {
	docs := []models.Document{}

	query := `SELECT id, player_id, document_type, file, description, upload_date FROM documents`
	var args []interface{}
	if playerID != nil {
		query += ` WHERE player_id = $1`
		args = append(args, *playerID)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying documents: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(&doc.ID, &doc.PlayerID, &doc.DocumentType, &doc.File, &doc.Description, &doc.UploadDate); err != nil {
			return nil, fmt.Errorf("%w: scanning document: %v", ErrDatabaseError, err)
		}
		docs = append(docs, doc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating document rows: %v", ErrDatabaseError, err)
	}
	return docs, nil
}

// GetDocumentsByPlayerID retrieves the documents owned by one player.
func (r *documentRepository) GetDocumentsByPlayerID(playerID int64) ([]models.Document, error) {
	return r.GetDocuments(&playerID)
}

// DeleteDocument removes a document record from the database.
func (r *documentRepository) DeleteDocument(executor SQLExecutor, id int64) error {
	query := `DELETE FROM documents WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting document ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting document ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
