package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/vidstream/domain"
	"github.com/Guyuepp/vidstream/internal/rest/request"
	"github.com/Guyuepp/vidstream/internal/rest/response"
)

type categoryHandler struct {
	Service domain.CategoryUsecase
}

func NewCategoryHandler(svc domain.CategoryUsecase) *categoryHandler {
	return &categoryHandler{
		Service: svc,
	}
}

// Fetch handles GET /categories
func (h *categoryHandler) Fetch(c *gin.Context) {
	categories, err := h.Service.Fetch(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Category, len(categories))
	for i := range categories {
		res[i] = response.NewCategoryFromDomain(&categories[i])
	}
	c.JSON(http.StatusOK, res)
}

// GetByID handles GET /categories/:id
func (h *categoryHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	category, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCategoryFromDomain(&category))
}

// Store handles POST /admin/categories
func (h *categoryHandler) Store(c *gin.Context) {
	var req request.Category
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := req.ToDomain()
	if err := h.Service.Store(c.Request.Context(), &category); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewCategoryFromDomain(&category))
}

// Update handles PUT /admin/categories/:id
func (h *categoryHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req request.Category
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := req.ToDomain()
	category.ID = id
	if err := h.Service.Update(c.Request.Context(), &category); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCategoryFromDomain(&category))
}

// Delete handles DELETE /admin/categories/:id
func (h *categoryHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
