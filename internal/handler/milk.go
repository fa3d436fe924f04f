package handler

import (
	"net/http"

	"github.com/dhruv0307t-del/ERP-Farm/internal/dto"
	"github.com/dhruv0307t-del/ERP-Farm/internal/middleware"
	"github.com/dhruv0307t-del/ERP-Farm/internal/service"

	"github.com/gin-gonic/gin"
)

type MilkHandler struct{ svc service.MilkService }

func NewMilkHandler(svc service.MilkService) *MilkHandler { return &MilkHandler{svc: svc} }

// Record godoc
// @Summary Record (or overwrite) a day's milk yield for an animal
// @Tags milk
// @Accept x-www-form-urlencoded
// @Param id path int true "Animal ID"
// @Param entry_date formData string true "YYYY-MM-DD"
// @Param am_liters formData number false "Morning liters"
// @Param pm_liters formData number false "Evening liters"
// @Success 303
// @Failure 404 {object} apierror.APIError
// @Router /milk/{id} [post]
func (h *MilkHandler) Record(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var form dto.MilkEntryForm
	if !bindForm(c, &form) {
		return
	}
	if _, err := h.svc.Record(c.Request.Context(), middleware.Scope(c), id, form); err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/animals/"+c.Param("id"))
}
