package services

import (
	"errors"
	"testing"

	"insuretrack-backend/models"
	"insuretrack-backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestInsuranceCreateRequiresLiveCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsuranceService(db)

	_, err := svc.Create(InsuranceInput{
		CustomerID:  42,
		Type:        "home",
		RenewalDate: models.Today().AddDays(100),
	})
	assert.Error(t, err, "create must surface the store's referential integrity failure")

	var count int64
	db.Model(&models.Insurance{}).Count(&count)
	assert.Zero(t, count)
}

func TestInsuranceCreateThenGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsuranceService(db)
	customer := seedCustomer(t, db, "holder")

	premium := 149.99
	created, err := svc.Create(InsuranceInput{
		CustomerID:      customer.ID,
		Type:            "health",
		RenewalDate:     models.NewDate(2027, 3, 15),
		CoverageDetails: "full coverage",
		PremiumAmount:   &premium,
		Notes:           "paid yearly",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "health", got.Type)
	assert.Equal(t, "2027-03-15", got.RenewalDate.String())
	assert.Equal(t, "full coverage", got.CoverageDetails)
	require.NotNil(t, got.PremiumAmount)
	assert.InDelta(t, 149.99, *got.PremiumAmount, 0.001)
}

func TestUpcomingRenewalsWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsuranceService(db)
	customer := seedCustomer(t, db, "holder")

	today := models.Today()
	onToday := seedInsurance(t, db, customer.ID, today)
	inTen := seedInsurance(t, db, customer.ID, today.AddDays(10))
	onBoundary := seedInsurance(t, db, customer.ID, today.AddDays(30))
	beyond := seedInsurance(t, db, customer.ID, today.AddDays(36))
	past := seedInsurance(t, db, customer.ID, today.AddDays(-1))

	renewals, err := svc.ListUpcomingRenewals(30)
	require.NoError(t, err)

	ids := make(map[uint]bool)
	for _, r := range renewals {
		ids[r.ID] = true
	}
	assert.True(t, ids[onToday.ID], "today is inside the window")
	assert.True(t, ids[inTen.ID])
	assert.True(t, ids[onBoundary.ID], "window end is inclusive")
	assert.False(t, ids[beyond.ID])
	assert.False(t, ids[past.ID])
}

func TestUpcomingRenewalsDefaultWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsuranceService(db)
	customer := seedCustomer(t, db, "holder")

	near := seedInsurance(t, db, customer.ID, models.Today().AddDays(10))
	far := seedInsurance(t, db, customer.ID, models.Today().AddDays(20))

	// days<=0 falls back to the 14-day default. The window end comes from
	// AddDate, so running this near a month boundary stays a valid date.
	renewals, err := svc.ListUpcomingRenewals(0)
	require.NoError(t, err)
	require.Len(t, renewals, 1)
	assert.Equal(t, near.ID, renewals[0].ID)
	assert.NotEqual(t, far.ID, renewals[0].ID)
}

func TestInsuranceListByCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsuranceService(db)

	first := seedCustomer(t, db, "first")
	second := seedCustomer(t, db, "second")
	seedInsurance(t, db, first.ID, models.Today().AddDays(10))
	seedInsurance(t, db, first.ID, models.Today().AddDays(20))
	seedInsurance(t, db, second.ID, models.Today().AddDays(30))

	mine, err := svc.ListByCustomer(first.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	none, err := svc.ListByCustomer(999)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestInsuranceUpdateReplacesAllFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsuranceService(db)
	customer := seedCustomer(t, db, "holder")

	premium := 80.0
	created, err := svc.Create(InsuranceInput{
		CustomerID:    customer.ID,
		Type:          "auto",
		RenewalDate:   models.NewDate(2027, 1, 31),
		PremiumAmount: &premium,
		Notes:         "old notes",
	})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, InsuranceInput{
		CustomerID:  customer.ID,
		Type:        "travel",
		RenewalDate: models.NewDate(2027, 6, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, "travel", updated.Type)
	assert.Equal(t, "2027-06-01", updated.RenewalDate.String())
	assert.Nil(t, updated.PremiumAmount)
	assert.Empty(t, updated.Notes)
}

func TestInsuranceUpdateMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsuranceService(db)
	customer := seedCustomer(t, db, "holder")

	_, err := svc.Update(404, InsuranceInput{
		CustomerID:  customer.ID,
		Type:        "auto",
		RenewalDate: models.Today(),
	})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var count int64
	db.Model(&models.Insurance{}).Count(&count)
	assert.Zero(t, count, "failed update must not create a row")
}

func TestInsuranceDeleteCascadesOwnDocumentsOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsuranceService(db)
	docs := NewDocumentService(db, storage.NewLocalStore(t.TempDir()))
	customer := seedCustomer(t, db, "holder")

	doomed := seedInsurance(t, db, customer.ID, models.Today().AddDays(10))
	kept := seedInsurance(t, db, customer.ID, models.Today().AddDays(20))

	_, err := docs.Create(customer.ID, "doomed.pdf", "x/doomed.pdf", &doomed.ID)
	require.NoError(t, err)
	keptDoc, err := docs.Create(customer.ID, "kept.pdf", "x/kept.pdf", &kept.ID)
	require.NoError(t, err)

	deleted, err := svc.Delete(doomed.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var count int64
	db.Model(&models.Document{}).Where("insurance_id = ?", doomed.ID).Count(&count)
	assert.Zero(t, count)

	// The parent customer, the sibling policy and its document survive.
	_, err = NewCustomerService(db).Get(customer.ID)
	assert.NoError(t, err)
	_, err = svc.Get(kept.ID)
	assert.NoError(t, err)
	_, err = docs.Get(keptDoc.ID)
	assert.NoError(t, err)

	deleted, err = svc.Delete(doomed.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
