package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/vidstream/domain"
	"github.com/Guyuepp/vidstream/internal/rest/request"
	"github.com/Guyuepp/vidstream/internal/rest/response"
)

type commentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

// CreateComment handles POST /videos/:id/comments
func (h *commentHandler) CreateComment(c *gin.Context) {
	var req request.CreateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	videoID, ok := paramID(c, "id")
	if !ok {
		return
	}

	comment := req.ToDomain(videoID, uid)

	ctx := c.Request.Context()
	if err := h.Service.Create(ctx, &comment); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&comment))
}

// GetComment handles GET /comments/:id
func (h *commentHandler) GetComment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	comment, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCommentFromDomain(&comment))
}

// FetchCommentsByVideo handles GET /videos/:id/comments
func (h *commentHandler) FetchCommentsByVideo(c *gin.Context) {
	videoID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req request.ListComments
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.Service.ListByVideo(c.Request.Context(), videoID,
		req.Page, req.Size, domain.CommentSort(req.SortBy), domain.SortOrder(req.Order))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCommentPageFromDomain(&page))
}

// FetchReplies handles GET /comments/:id/replies
func (h *commentHandler) FetchReplies(c *gin.Context) {
	parentID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req request.ListReplies
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.Service.ListReplies(c.Request.Context(), parentID, req.Page, req.Size)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCommentPageFromDomain(&page))
}

// FetchThread handles GET /comments/:id/thread
func (h *commentHandler) FetchThread(c *gin.Context) {
	rootID, ok := paramID(c, "id")
	if !ok {
		return
	}

	thread, err := h.Service.ResolveThread(c.Request.Context(), rootID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCommentThreadFromDomain(&thread))
}

// UpdateComment handles PUT /comments/:id
func (h *commentHandler) UpdateComment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	var req request.UpdateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.Service.EditContent(c.Request.Context(), id, uid, req.Content)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCommentFromDomain(&comment))
}

// DeleteComment handles DELETE /comments/:id
func (h *commentHandler) DeleteComment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	deleted, err := h.Service.Delete(c.Request.Context(), id, uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCommentFromDomain(&deleted))
}

// ToggleLike handles POST /comments/:id/like
func (h *commentHandler) ToggleLike(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	action, err := h.Service.ToggleLike(c.Request.Context(), id, uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"action": action.String()})
}
