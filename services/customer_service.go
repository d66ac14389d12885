package services

import (
	"errors"

	"insuretrack-backend/models"

	"gorm.io/gorm"
)

// CustomerInput carries every writable customer field. Update applies it as a
// full-field replace, not a partial patch.
type CustomerInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

func (s *CustomerService) Create(input CustomerInput) (*models.Customer, error) {
	customer := models.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		Notes:   input.Notes,
	}
	if err := s.db.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerService) Get(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetWithRelations returns the customer together with its insurances and
// documents.
func (s *CustomerService) GetWithRelations(id uint) (*models.CustomerWithRelations, error) {
	customer, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	insurances := make([]models.Insurance, 0)
	if err := s.db.Where("customer_id = ?", id).Find(&insurances).Error; err != nil {
		return nil, err
	}
	documents := make([]models.Document, 0)
	if err := s.db.Where("customer_id = ?", id).Find(&documents).Error; err != nil {
		return nil, err
	}

	return &models.CustomerWithRelations{
		Customer:   *customer,
		Insurances: insurances,
		Documents:  documents,
	}, nil
}

func (s *CustomerService) List(skip, limit int) ([]models.Customer, error) {
	customers := make([]models.Customer, 0)
	err := s.db.Order("id").Offset(skip).Limit(limit).Find(&customers).Error
	return customers, err
}

// Update overwrites every field with the input. Fields the caller left empty
// are cleared, matching the full-object replace contract of the API.
func (s *CustomerService) Update(id uint, input CustomerInput) (*models.Customer, error) {
	customer, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	customer.Name = input.Name
	customer.Email = input.Email
	customer.Phone = input.Phone
	customer.Address = input.Address
	customer.Notes = input.Notes

	if err := s.db.Save(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes the customer and every insurance and document it owns as one
// atomic unit, dependents first. Returns false when the customer is absent.
func (s *CustomerService) Delete(id uint) (bool, error) {
	customer, err := s.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", id).Delete(&models.Document{}).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", id).Delete(&models.Insurance{}).Error; err != nil {
			return err
		}
		return tx.Delete(customer).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
