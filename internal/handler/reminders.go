package handler

import (
	"net/http"

	"github.com/dhruv0307t-del/ERP-Farm/internal/dto"
	"github.com/dhruv0307t-del/ERP-Farm/internal/middleware"
	"github.com/dhruv0307t-del/ERP-Farm/internal/service"

	"github.com/gin-gonic/gin"
)

type RemindersHandler struct{ svc service.ReminderService }

func NewRemindersHandler(svc service.ReminderService) *RemindersHandler {
	return &RemindersHandler{svc: svc}
}

// Add godoc
// @Summary Schedule a vaccination reminder for an animal
// @Tags reminders
// @Accept x-www-form-urlencoded
// @Param id path int true "Animal ID"
// @Param reminder_date formData string true "YYYY-MM-DD"
// @Param notes formData string false "Notes"
// @Success 303
// @Failure 404 {object} apierror.APIError
// @Router /animals/{id}/vaccination_reminder [post]
func (h *RemindersHandler) Add(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var form dto.ReminderForm
	if !bindForm(c, &form) {
		return
	}
	if _, err := h.svc.Add(c.Request.Context(), middleware.Scope(c), id, form); err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/animals/"+c.Param("id"))
}
