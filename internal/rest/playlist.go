package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/vidstream/domain"
	"github.com/Guyuepp/vidstream/internal/rest/request"
	"github.com/Guyuepp/vidstream/internal/rest/response"
)

type playlistHandler struct {
	Service domain.PlaylistUsecase
}

func NewPlaylistHandler(svc domain.PlaylistUsecase) *playlistHandler {
	return &playlistHandler{
		Service: svc,
	}
}

// GetByID handles GET /playlists/:id
func (h *playlistHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	playlist, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewPlaylistFromDomain(&playlist))
}

// FetchMine handles GET /playlists
func (h *playlistHandler) FetchMine(c *gin.Context) {
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	playlists, err := h.Service.FetchByUser(c.Request.Context(), uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Playlist, len(playlists))
	for i := range playlists {
		res[i] = response.NewPlaylistFromDomain(&playlists[i])
	}
	c.JSON(http.StatusOK, res)
}

// Store handles POST /playlists
func (h *playlistHandler) Store(c *gin.Context) {
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	var req request.Playlist
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playlist := req.ToDomain()
	playlist.UserID = uid
	if err := h.Service.Store(c.Request.Context(), &playlist); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewPlaylistFromDomain(&playlist))
}

// Update handles PUT /playlists/:id
func (h *playlistHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	var req request.Playlist
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playlist := req.ToDomain()
	playlist.ID = id
	if err := h.Service.Update(c.Request.Context(), &playlist, uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewPlaylistFromDomain(&playlist))
}

// Delete handles DELETE /playlists/:id
func (h *playlistHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	if err := h.Service.Delete(c.Request.Context(), id, uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// AddVideo handles POST /playlists/:id/videos
func (h *playlistHandler) AddVideo(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	var req request.PlaylistVideo
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.AddVideo(c.Request.Context(), id, req.VideoID, uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video added to playlist"})
}

// RemoveVideo handles DELETE /playlists/:id/videos/:videoID
func (h *playlistHandler) RemoveVideo(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	videoID, ok := paramID(c, "videoID")
	if !ok {
		return
	}

	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	if err := h.Service.RemoveVideo(c.Request.Context(), id, videoID, uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
