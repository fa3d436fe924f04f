package handler

import (
	"net/http"

	"github.com/dhruv0307t-del/ERP-Farm/internal/dto"
	"github.com/dhruv0307t-del/ERP-Farm/internal/middleware"
	"github.com/dhruv0307t-del/ERP-Farm/internal/service"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct{ svc service.DashboardService }

func NewHomeHandler(svc service.DashboardService) *HomeHandler { return &HomeHandler{svc: svc} }

// Home godoc
// @Summary Landing payload with scoped counts when authenticated
// @Tags home
// @Produce json
// @Success 200 {object} dto.HomeResponse
// @Router / [get]
func (h *HomeHandler) Home(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusOK, dto.HomeResponse{})
		return
	}

	resp, err := h.svc.Home(c.Request.Context(), middleware.Scope(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.User = &dto.UserResponse{
		ID:       claims.UserID,
		Username: claims.Username,
		IsAdmin:  claims.IsAdmin,
		FarmID:   claims.FarmID,
	}
	c.JSON(http.StatusOK, resp)
}
