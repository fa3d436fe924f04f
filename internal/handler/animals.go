package handler

import (
	"net/http"

	"github.com/dhruv0307t-del/ERP-Farm/internal/apierror"
	"github.com/dhruv0307t-del/ERP-Farm/internal/dto"
	"github.com/dhruv0307t-del/ERP-Farm/internal/middleware"
	"github.com/dhruv0307t-del/ERP-Farm/internal/service"

	"github.com/gin-gonic/gin"
)

type AnimalsHandler struct{ svc service.AnimalService }

func NewAnimalsHandler(svc service.AnimalService) *AnimalsHandler {
	return &AnimalsHandler{svc: svc}
}

// List godoc
// @Summary List visible animals
// @Tags animals
// @Produce json
// @Param q query string false "Substring search over tag, mother tag, breed"
// @Success 200 {array} dto.AnimalResponse
// @Router /animals [get]
func (h *AnimalsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), middleware.Scope(c), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Detail godoc
// @Summary Animal record with breeding, gestation, milk and reminder history
// @Tags animals
// @Produce json
// @Param id path int true "Animal ID"
// @Success 200 {object} dto.AnimalDetailResponse
// @Failure 404 {object} apierror.APIError
// @Failure 403 {object} apierror.APIError
// @Router /animals/{id} [get]
func (h *AnimalsHandler) Detail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Detail(c.Request.Context(), middleware.Scope(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Register an animal
// @Tags animals
// @Accept x-www-form-urlencoded
// @Success 303
// @Failure 409 {object} apierror.APIError
// @Router /animals [post]
func (h *AnimalsHandler) Create(c *gin.Context) {
	in, ok := h.bindAnimal(c)
	if !ok {
		return
	}
	if _, err := h.svc.Create(c.Request.Context(), middleware.Scope(c), in); err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/animals")
}

// EditForm returns the current record for pre-filling the edit form.
func (h *AnimalsHandler) EditForm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), middleware.Scope(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Full update of an animal record
// @Tags animals
// @Accept x-www-form-urlencoded
// @Param id path int true "Animal ID"
// @Success 303
// @Failure 409 {object} apierror.APIError
// @Router /animals/{id}/edit [post]
func (h *AnimalsHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	in, ok := h.bindAnimal(c)
	if !ok {
		return
	}
	if _, err := h.svc.Update(c.Request.Context(), middleware.Scope(c), id, in); err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/animals/"+c.Param("id"))
}

// Delete godoc
// @Summary Delete an animal and all its dependent records
// @Tags animals
// @Param id path int true "Animal ID"
// @Success 303
// @Failure 404 {object} apierror.APIError
// @Router /animals/{id}/delete [post]
func (h *AnimalsHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.Scope(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/animals")
}

func (h *AnimalsHandler) bindAnimal(c *gin.Context) (dto.AnimalInput, bool) {
	var form dto.AnimalForm
	if !bindForm(c, &form) {
		return dto.AnimalInput{}, false
	}
	birthdate, err := parseDate(form.Birthdate)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid birthdate, expected YYYY-MM-DD"))
		return dto.AnimalInput{}, false
	}
	return dto.AnimalInput{
		TagNo:         form.TagNo,
		Sex:           form.Sex,
		Birthdate:     birthdate,
		BreedName:     form.BreedName,
		CattleType:    form.CattleType,
		MotherTagNo:   form.MotherTagNo,
		Lactating:     formBool(form.Lactating),
		Pregnant:      formBool(form.Pregnant),
		Vaccinated:    formBool(form.Vaccinated),
		Health:        form.Health,
		Weight:        form.Weight,
		Reproductions: form.Reproductions,
	}, true
}
