package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/vidstream/domain"
	"github.com/Guyuepp/vidstream/internal/rest/request"
	"github.com/Guyuepp/vidstream/internal/rest/response"
)

// VideoHandler represent the httphandler for video
type VideoHandler struct {
	Service domain.VideoUsecase
}

func NewVideoHandler(svc domain.VideoUsecase) *VideoHandler {
	return &VideoHandler{
		Service: svc,
	}
}

// GetByID will get video by given id
func (a *VideoHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	video, err := a.Service.GetByID(ctx, id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewVideoFromDomain(&video))
}

// FetchVideo will fetch the videos based on given params
func (a *VideoHandler) FetchVideo(c *gin.Context) {
	numS := c.Query("num")
	num, err := strconv.Atoi(numS)
	if err != nil || num < PageMinNum || num > PageMaxNum {
		num = DefaultPageNum
		logrus.Error("Invalid param 'num'")
	}

	cursor := c.Query("cursor")
	ctx := c.Request.Context()

	listV, nextCursor, err := a.Service.Fetch(ctx, cursor, int64(num))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	res := make([]response.Video, len(listV))
	for i := range listV {
		res[i] = response.NewVideoFromDomain(&listV[i])
	}
	c.Header(`X-cursor`, nextCursor)
	c.JSON(http.StatusOK, res)
}

// FetchByCategory will fetch one category's videos
func (a *VideoHandler) FetchByCategory(c *gin.Context) {
	categoryID, ok := paramID(c, "id")
	if !ok {
		return
	}

	numS := c.Query("num")
	num, err := strconv.Atoi(numS)
	if err != nil || num < PageMinNum || num > PageMaxNum {
		num = DefaultPageNum
	}

	cursor := c.Query("cursor")
	ctx := c.Request.Context()

	listV, nextCursor, err := a.Service.FetchByCategory(ctx, categoryID, cursor, int64(num))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	res := make([]response.Video, len(listV))
	for i := range listV {
		res[i] = response.NewVideoFromDomain(&listV[i])
	}
	c.Header(`X-cursor`, nextCursor)
	c.JSON(http.StatusOK, res)
}

// Store will store the video by given request body
func (a *VideoHandler) Store(c *gin.Context) {
	var req request.Video
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid, ok := authedUserID(c)
	if !ok {
		return
	}
	video := req.ToDomain()
	video.User.ID = uid

	ctx := c.Request.Context()
	if err := a.Service.Store(ctx, &video); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewVideoFromDomain(&video))
}

// Update will update the video by given request body
func (a *VideoHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req request.Video
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid, ok := authedUserID(c)
	if !ok {
		return
	}
	video := req.ToDomain()
	video.ID = id
	video.User.ID = uid

	ctx := c.Request.Context()
	if err := a.Service.Update(ctx, &video); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewVideoFromDomain(&video))
}

// Delete will delete the video by given param
func (a *VideoHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	if err := a.Service.Delete(c.Request.Context(), id, uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
