package services

import (
	"context"
	"errors"
	"io"
	"log"

	"insuretrack-backend/models"
	"insuretrack-backend/storage"

	"gorm.io/gorm"
)

type DocumentService struct {
	db    *gorm.DB
	store storage.Store
}

func NewDocumentService(db *gorm.DB, store storage.Store) *DocumentService {
	return &DocumentService{db: db, store: store}
}

// SaveBlob writes the uploaded content into the blob store and returns the
// path handle to record on the document row.
func (s *DocumentService) SaveBlob(ctx context.Context, customerID uint, insuranceID *uint, filename string, content io.Reader) (string, error) {
	return s.store.Save(ctx, customerID, insuranceID, filename, content)
}

// Create inserts the document row for an already-saved blob.
func (s *DocumentService) Create(customerID uint, filename, filePath string, insuranceID *uint) (*models.Document, error) {
	document := models.Document{
		CustomerID:  customerID,
		InsuranceID: insuranceID,
		Filename:    filename,
		FilePath:    filePath,
	}
	if err := s.db.Create(&document).Error; err != nil {
		return nil, err
	}
	return &document, nil
}

func (s *DocumentService) Get(id uint) (*models.Document, error) {
	var document models.Document
	if err := s.db.First(&document, id).Error; err != nil {
		return nil, err
	}
	return &document, nil
}

func (s *DocumentService) ListByCustomer(customerID uint) ([]models.Document, error) {
	documents := make([]models.Document, 0)
	err := s.db.Where("customer_id = ?", customerID).Find(&documents).Error
	return documents, err
}

func (s *DocumentService) ListByInsurance(insuranceID uint) ([]models.Document, error) {
	documents := make([]models.Document, 0)
	err := s.db.Where("insurance_id = ?", insuranceID).Find(&documents).Error
	return documents, err
}

// Delete removes the blob and then the row. A failed blob removal (the file
// may already be gone) must not block the row delete, so it is only logged.
// Returns false when the document is absent.
func (s *DocumentService) Delete(ctx context.Context, id uint) (bool, error) {
	document, err := s.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := s.store.Remove(ctx, document.FilePath); err != nil {
		log.Printf("document %d: blob remove failed: %v", id, err)
	}

	if err := s.db.Delete(document).Error; err != nil {
		return false, err
	}
	return true, nil
}
