package services

import (
	"errors"

	"insuretrack-backend/models"

	"gorm.io/gorm"
)

// DefaultRenewalWindowDays is the forward-looking window used when a caller
// does not ask for a specific one.
const DefaultRenewalWindowDays = 14

// InsuranceInput carries every writable insurance field. Update applies it as
// a full-field replace.
type InsuranceInput struct {
	CustomerID      uint        `json:"customer_id" binding:"required"`
	Type            string      `json:"type" binding:"required"`
	RenewalDate     models.Date `json:"renewal_date" binding:"required"`
	CoverageDetails string      `json:"coverage_details"`
	PremiumAmount   *float64    `json:"premium_amount"`
	Notes           string      `json:"notes"`
}

type InsuranceService struct {
	db *gorm.DB
}

func NewInsuranceService(db *gorm.DB) *InsuranceService {
	return &InsuranceService{db: db}
}

// Create inserts a new policy. A customer_id that references no live
// customer is rejected by the store's foreign key constraint; the service
// does not pre-check it.
func (s *InsuranceService) Create(input InsuranceInput) (*models.Insurance, error) {
	insurance := models.Insurance{
		CustomerID:      input.CustomerID,
		Type:            input.Type,
		RenewalDate:     input.RenewalDate,
		CoverageDetails: input.CoverageDetails,
		PremiumAmount:   input.PremiumAmount,
		Notes:           input.Notes,
	}
	if err := s.db.Create(&insurance).Error; err != nil {
		return nil, err
	}
	return &insurance, nil
}

func (s *InsuranceService) Get(id uint) (*models.Insurance, error) {
	var insurance models.Insurance
	if err := s.db.First(&insurance, id).Error; err != nil {
		return nil, err
	}
	return &insurance, nil
}

// GetWithRelations returns the policy together with its documents.
func (s *InsuranceService) GetWithRelations(id uint) (*models.InsuranceWithRelations, error) {
	insurance, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	documents := make([]models.Document, 0)
	if err := s.db.Where("insurance_id = ?", id).Find(&documents).Error; err != nil {
		return nil, err
	}

	return &models.InsuranceWithRelations{
		Insurance: *insurance,
		Documents: documents,
	}, nil
}

func (s *InsuranceService) List(skip, limit int) ([]models.Insurance, error) {
	insurances := make([]models.Insurance, 0)
	err := s.db.Order("id").Offset(skip).Limit(limit).Find(&insurances).Error
	return insurances, err
}

func (s *InsuranceService) ListByCustomer(customerID uint) ([]models.Insurance, error) {
	insurances := make([]models.Insurance, 0)
	err := s.db.Where("customer_id = ?", customerID).Find(&insurances).Error
	return insurances, err
}

// ListUpcomingRenewals returns policies whose renewal date falls within
// [today, today+days], both bounds inclusive. AddDays rolls over month and
// year boundaries, so a window started on Jan 31 ends on a real February
// date.
func (s *InsuranceService) ListUpcomingRenewals(days int) ([]models.Insurance, error) {
	if days <= 0 {
		days = DefaultRenewalWindowDays
	}
	today := models.Today()
	end := today.AddDays(days)

	insurances := make([]models.Insurance, 0)
	err := s.db.Where("renewal_date BETWEEN ? AND ?", today.Time, end.Time).Find(&insurances).Error
	return insurances, err
}

// Update overwrites every field with the input, including reassigning the
// policy to input.CustomerID.
func (s *InsuranceService) Update(id uint, input InsuranceInput) (*models.Insurance, error) {
	insurance, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	insurance.CustomerID = input.CustomerID
	insurance.Type = input.Type
	insurance.RenewalDate = input.RenewalDate
	insurance.CoverageDetails = input.CoverageDetails
	insurance.PremiumAmount = input.PremiumAmount
	insurance.Notes = input.Notes

	if err := s.db.Save(insurance).Error; err != nil {
		return nil, err
	}
	return insurance, nil
}

// Delete removes the policy and every document that references it as one
// atomic unit. The owning customer and its other policies are untouched.
// Returns false when the policy is absent.
func (s *InsuranceService) Delete(id uint) (bool, error) {
	insurance, err := s.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("insurance_id = ?", id).Delete(&models.Document{}).Error; err != nil {
			return err
		}
		return tx.Delete(insurance).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
