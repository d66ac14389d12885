package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"insuretrack-backend/services"
	"insuretrack-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InsuranceController struct {
	svc *services.InsuranceService
}

func NewInsuranceController(svc *services.InsuranceService) *InsuranceController {
	return &InsuranceController{svc: svc}
}

// isForeignKeyViolation reports whether err is the store rejecting a
// reference to a nonexistent parent row.
func isForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		strings.Contains(strings.ToUpper(err.Error()), "FOREIGN KEY")
}

func (ctl *InsuranceController) Create(c *gin.Context) {
	var input services.InsuranceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	insurance, err := ctl.svc.Create(input)
	if err != nil {
		if isForeignKeyViolation(err) {
			utils.RespondWithError(c, http.StatusBadRequest, "customer_id references no existing customer")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create insurance")
		}
		return
	}

	c.JSON(http.StatusOK, insurance)
}

func (ctl *InsuranceController) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	insurances, err := ctl.svc.List(skip, limit)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve insurances")
		return
	}

	c.JSON(http.StatusOK, insurances)
}

func (ctl *InsuranceController) ListByCustomer(c *gin.Context) {
	customerID, ok := parseID(c, "customer_id")
	if !ok {
		return
	}

	insurances, err := ctl.svc.ListByCustomer(customerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve insurances")
		return
	}

	c.JSON(http.StatusOK, insurances)
}

func (ctl *InsuranceController) UpcomingRenewals(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(services.DefaultRenewalWindowDays)))
	if err != nil || days < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid days value")
		return
	}

	insurances, err := ctl.svc.ListUpcomingRenewals(days)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve upcoming renewals")
		return
	}

	c.JSON(http.StatusOK, insurances)
}

// Get returns the insurance with its documents.
func (ctl *InsuranceController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	insurance, err := ctl.svc.GetWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Insurance not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, insurance)
}

func (ctl *InsuranceController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input services.InsuranceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	insurance, err := ctl.svc.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Insurance not found")
		case isForeignKeyViolation(err):
			utils.RespondWithError(c, http.StatusBadRequest, "customer_id references no existing customer")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update insurance")
		}
		return
	}

	c.JSON(http.StatusOK, insurance)
}

func (ctl *InsuranceController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	deleted, err := ctl.svc.Delete(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete insurance")
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Insurance not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Insurance deleted successfully"})
}
