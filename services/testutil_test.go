package services

import (
	"path/filepath"
	"strconv"
	"testing"

	"insuretrack-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Insurance{},
		&models.Document{},
		&models.RenewalReminderLog{},
	))
	return db
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) *models.Customer {
	t.Helper()

	customer, err := NewCustomerService(db).Create(CustomerInput{Name: name})
	require.NoError(t, err)
	return customer
}

func seedInsurance(t *testing.T, db *gorm.DB, customerID uint, renewal models.Date) *models.Insurance {
	t.Helper()

	insurance, err := NewInsuranceService(db).Create(InsuranceInput{
		CustomerID:  customerID,
		Type:        "auto",
		RenewalDate: renewal,
	})
	require.NoError(t, err)
	return insurance
}
