package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"insuretrack-backend/services"
	"insuretrack-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DocumentController struct {
	svc *services.DocumentService
}

func NewDocumentController(svc *services.DocumentService) *DocumentController {
	return &DocumentController{svc: svc}
}

// Upload stores the multipart file in the blob store, then records the
// document row pointing at it.
func (ctl *DocumentController) Upload(c *gin.Context) {
	customerID, ok := parseID(c, "customer_id")
	if !ok {
		return
	}

	var insuranceID *uint
	if v := c.Query("insurance_id"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid insurance_id format")
			return
		}
		id := uint(parsed)
		insuranceID = &id
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "file missing")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read upload")
		return
	}
	defer src.Close()

	filePath, err := ctl.svc.SaveBlob(c.Request.Context(), customerID, insuranceID, fileHeader.Filename, src)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store file")
		return
	}

	document, err := ctl.svc.Create(customerID, fileHeader.Filename, filePath, insuranceID)
	if err != nil {
		if isForeignKeyViolation(err) {
			utils.RespondWithError(c, http.StatusBadRequest, "customer_id or insurance_id references no existing record")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create document")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Document uploaded successfully",
		"document_id": document.ID,
	})
}

func (ctl *DocumentController) ListByCustomer(c *gin.Context) {
	customerID, ok := parseID(c, "customer_id")
	if !ok {
		return
	}

	documents, err := ctl.svc.ListByCustomer(customerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve documents")
		return
	}

	c.JSON(http.StatusOK, documents)
}

func (ctl *DocumentController) ListByInsurance(c *gin.Context) {
	insuranceID, ok := parseID(c, "insurance_id")
	if !ok {
		return
	}

	documents, err := ctl.svc.ListByInsurance(insuranceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve documents")
		return
	}

	c.JSON(http.StatusOK, documents)
}

func (ctl *DocumentController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	document, err := ctl.svc.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Document not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, document)
}

func (ctl *DocumentController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	deleted, err := ctl.svc.Delete(c.Request.Context(), id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete document")
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Document not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}
