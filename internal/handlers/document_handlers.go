package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"napoli_club_backend/internal/models"
	"napoli_club_backend/internal/services"
	"napoli_club_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DocumentHandler holds the document service.
type DocumentHandler struct {
	documentService services.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(ds services.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: ds}
}

// UploadDocument handles a multipart document upload. The form carries
// player, document_type, description and the file part; upload_date is
// always server-assigned, any client-supplied value is ignored.
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	playerStr := c.PostForm("player")
	playerID, err := strconv.ParseInt(playerStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Player not found.", "invalid player id in form: "+playerStr))
		return
	}

	req := services.UploadDocumentRequest{
		PlayerID:     playerID,
		DocumentType: c.PostForm("document_type"),
	}
	req.Description = utils.NewNullString(c.PostForm("description"))

	fileHeader, err := c.FormFile("file")
	if err == nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			utils.LogError(openErr, "UploadDocument: Failed to open uploaded file")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to read uploaded file.", "Internal error"))
			return
		}
		defer file.Close()
		req.FileName = fileHeader.Filename
		req.FileSize = fileHeader.Size
		req.File = file
	}

	doc, err := h.documentService.UploadDocument(req)
	if err != nil {
		var fieldErrs services.FieldErrors
		if errors.As(err, &fieldErrs) {
			c.JSON(http.StatusBadRequest, fieldErrs)
			return
		}
		if errors.Is(err, services.ErrPlayerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Player not found.", err.Error()))
			return
		}
		utils.LogError(err, "UploadDocument: Error from documentService.UploadDocument")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to upload document.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// GetDocuments handles listing documents, optionally filtered by owning
// player. Filtering by a nonexistent player is a 404, not an empty list.
func (h *DocumentHandler) GetDocuments(c *gin.Context) {
	var pPlayerID *int64
	if playerStr := c.Query("player"); playerStr != "" {
		playerID, err := strconv.ParseInt(playerStr, 10, 64)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid player ID format.", err.Error()))
			return
		}
		pPlayerID = &playerID
	}

	docs, err := h.documentService.GetDocuments(pPlayerID)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Player not found.", err.Error()))
			return
		}
		utils.LogError(err, "GetDocuments: Error from documentService.GetDocuments")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch documents.", "Internal error"))
		return
	}

	if docs == nil {
		docs = []models.Document{}
	}
	c.JSON(http.StatusOK, docs)
}

// GetDocumentByID handles fetching a single document by ID.
func (h *DocumentHandler) GetDocumentByID(c *gin.Context) {
	idStr := c.Param("id")
	documentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid document ID format.", err.Error()))
		return
	}

	doc, err := h.documentService.GetDocumentByID(documentID)
	if err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Document not found.", err.Error()))
			return
		}
		utils.LogError(err, "GetDocumentByID: Error from documentService.GetDocumentByID for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch document.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, doc)
}

// DeleteDocument handles deleting a document and its stored file.
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	idStr := c.Param("id")
	documentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid document ID format.", err.Error()))
		return
	}

	err = h.documentService.DeleteDocument(documentID)
	if err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Document not found.", err.Error()))
			return
		}
		utils.LogError(err, "DeleteDocument: Error from documentService.DeleteDocument for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete document.", "Internal error"))
		return
	}
	c.Status(http.StatusNoContent)
}
