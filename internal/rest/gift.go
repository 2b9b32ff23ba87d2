package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/vidstream/domain"
	"github.com/Guyuepp/vidstream/internal/rest/request"
	"github.com/Guyuepp/vidstream/internal/rest/response"
)

type giftHandler struct {
	Service domain.GiftUsecase
}

func NewGiftHandler(svc domain.GiftUsecase) *giftHandler {
	return &giftHandler{
		Service: svc,
	}
}

// Fetch handles GET /gifts
func (h *giftHandler) Fetch(c *gin.Context) {
	gifts, err := h.Service.Fetch(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Gift, len(gifts))
	for i := range gifts {
		res[i] = response.NewGiftFromDomain(&gifts[i])
	}
	c.JSON(http.StatusOK, res)
}

// GetByID handles GET /gifts/:id
func (h *giftHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	gift, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewGiftFromDomain(&gift))
}

// Store handles POST /admin/gifts
func (h *giftHandler) Store(c *gin.Context) {
	var req request.Gift
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gift := req.ToDomain()
	if err := h.Service.Store(c.Request.Context(), &gift); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewGiftFromDomain(&gift))
}

// Update handles PUT /admin/gifts/:id
func (h *giftHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req request.Gift
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gift := req.ToDomain()
	gift.ID = id
	if err := h.Service.Update(c.Request.Context(), &gift); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewGiftFromDomain(&gift))
}

// Delete handles DELETE /admin/gifts/:id
func (h *giftHandler) Delete(c *gin.Context) {
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

// Send handles POST /videos/:id/gifts
func (h *giftHandler) Send(c *gin.Context) {
	videoID, ok := paramID(c, "id")
	if !ok {
		return
	}

	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	var req request.SendGift
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}

	ev, err := h.Service.Send(c.Request.Context(), uid, videoID, req.GiftID, req.Count)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ev)
}

// FetchRecords handles GET /videos/:id/gifts
func (h *giftHandler) FetchRecords(c *gin.Context) {
	videoID, ok := paramID(c, "id")
	if !ok {
		return
	}

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	records, err := h.Service.FetchRecordsByVideo(c.Request.Context(), videoID, limit)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.GiftRecord, len(records))
	for i := range records {
		res[i] = response.NewGiftRecordFromDomain(&records[i])
	}
	c.JSON(http.StatusOK, res)
}
