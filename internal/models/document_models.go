package models

import "time"

// Document type choices.
const (
	DocumentTypePassport         = "passport"
	DocumentTypeBirthCertificate = "birth_certificate"
	DocumentTypeOther            = "other"
)

// DocumentTypes lists the valid document type choices in a stable order.
var DocumentTypes = []string{DocumentTypePassport, DocumentTypeBirthCertificate, DocumentTypeOther}

// IsValidDocumentType reports whether s is one of the fixed document types.
func IsValidDocumentType(s string) bool {
	for _, t := range DocumentTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Document represents a file attached to a player, such as a passport or
// birth certificate. The binary payload lives on disk under the media root;
// File holds the locator relative to it and is serialized as a /media URL.
type Document struct {
	ID           int64     `json:"id" db:"id"`
	PlayerID     int64     `json:"player" db:"player_id"`
	DocumentType string    `json:"document_type" db:"document_type"`
	File         string    `json:"file" db:"file"`
	Description  *string   `json:"description,omitempty" db:"description"`
	UploadDate   time.Time `json:"upload_date" db:"upload_date"`
}
