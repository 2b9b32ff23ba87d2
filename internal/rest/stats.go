package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/vidstream/domain"
)

type statsHandler struct {
	Service domain.StatsUsecase
}

func NewStatsHandler(svc domain.StatsUsecase) *statsHandler {
	return &statsHandler{
		Service: svc,
	}
}

// Snapshot handles GET /admin/stats
func (h *statsHandler) Snapshot(c *gin.Context) {
	stats, err := h.Service.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
