package controllers

import (
	"net/http"

	"insuretrack-backend/services"
	"insuretrack-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	svc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{svc: svc}
}

func (ctl *DashboardController) Stats(c *gin.Context) {
	stats, err := ctl.svc.GetStats()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute dashboard stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}
