package handler

import (
	"net/http"

	"github.com/dhruv0307t-del/ERP-Farm/internal/dto"
	"github.com/dhruv0307t-del/ERP-Farm/internal/middleware"
	"github.com/dhruv0307t-del/ERP-Farm/internal/service"

	"github.com/gin-gonic/gin"
)

type BreedingHandler struct{ svc service.BreedingService }

func NewBreedingHandler(svc service.BreedingService) *BreedingHandler {
	return &BreedingHandler{svc: svc}
}

// AddEvent godoc
// @Summary Append a breeding event; AI/NaturalService opens a gestation
// @Tags breeding
// @Accept x-www-form-urlencoded
// @Param id path int true "Animal ID"
// @Param event_type formData string true "Heat | AI | NaturalService | PDPositive | PDNegative"
// @Param event_date formData string true "YYYY-MM-DD"
// @Param notes formData string false "Notes"
// @Success 303
// @Failure 400 {object} apierror.APIError
// @Router /breeding/{id}/event [post]
func (h *BreedingHandler) AddEvent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var form dto.BreedingEventForm
	if !bindForm(c, &form) {
		return
	}
	if _, err := h.svc.AddEvent(c.Request.Context(), middleware.Scope(c), id, form); err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/animals/"+c.Param("id"))
}

// MarkCalved godoc
// @Summary Close the animal's latest gestation with the actual calving date
// @Tags breeding
// @Accept x-www-form-urlencoded
// @Param id path int true "Animal ID"
// @Param calving_date formData string true "YYYY-MM-DD"
// @Success 303
// @Failure 404 {object} apierror.APIError
// @Router /gestation/{id}/calved [post]
func (h *BreedingHandler) MarkCalved(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var form dto.CalvedForm
	if !bindForm(c, &form) {
		return
	}
	if _, err := h.svc.MarkCalved(c.Request.Context(), middleware.Scope(c), id, form); err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/animals/"+c.Param("id"))
}
