package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/vidstream/domain"
	"github.com/Guyuepp/vidstream/internal/rest/request"
	"github.com/Guyuepp/vidstream/internal/rest/response"
)

type memberPackHandler struct {
	Service domain.MemberPackUsecase
}

func NewMemberPackHandler(svc domain.MemberPackUsecase) *memberPackHandler {
	return &memberPackHandler{
		Service: svc,
	}
}

// Fetch handles GET /member-packs
func (h *memberPackHandler) Fetch(c *gin.Context) {
	packs, err := h.Service.Fetch(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.MemberPack, len(packs))
	for i := range packs {
		res[i] = response.NewMemberPackFromDomain(&packs[i])
	}
	c.JSON(http.StatusOK, res)
}

// GetByID handles GET /member-packs/:id
func (h *memberPackHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	pack, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewMemberPackFromDomain(&pack))
}

// Store handles POST /admin/member-packs
func (h *memberPackHandler) Store(c *gin.Context) {
	var req request.MemberPack
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pack := req.ToDomain()
	if err := h.Service.Store(c.Request.Context(), &pack); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewMemberPackFromDomain(&pack))
}

// Update handles PUT /admin/member-packs/:id
func (h *memberPackHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req request.MemberPack
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pack := req.ToDomain()
	pack.ID = id
	if err := h.Service.Update(c.Request.Context(), &pack); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewMemberPackFromDomain(&pack))
}

// Delete handles DELETE /admin/member-packs/:id
func (h *memberPackHandler) Delete(c *gin.Context) {
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
