package api

import (
	"net/http"

	resdto "tutor-booking/internal/handler/dto/response"
	"tutor-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	q queries.HealthQueries
}

func NewHealthHandler(q queries.HealthQueries) *HealthHandler {
	return &HealthHandler{q: q}
}

// @Summary Health check
// @Description Reports which collaborators are configured. Degraded still answers 200.
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router /api/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromHealthReport(h.q.Check()))
}
