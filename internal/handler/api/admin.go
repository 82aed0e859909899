package api

import (
	"net/http"

	resdto "tutor-booking/internal/handler/dto/response"
	"tutor-booking/internal/handler/httperr"
	"tutor-booking/internal/usecase/commands"
	"tutor-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cmds commands.AdminCommands
	q    queries.AdminQueries
}

func NewAdminHandler(cmds commands.AdminCommands, q queries.AdminQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, q: q}
}

// @Summary Run one reconciliation cycle
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} reconcile.CycleReport
// @Router /api/admin/reconcile [post]
func (h *AdminHandler) Reconcile(c *gin.Context) {
	c.JSON(http.StatusOK, h.cmds.RunReconcile(c.Request.Context()))
}

// @Summary List processing locks
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.LockResponse
// @Router /api/admin/locks [get]
func (h *AdminHandler) Locks(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromLocks(h.q.Locks()))
}

// @Summary Release stale processing locks
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepResponse
// @Router /api/admin/locks/sweep [post]
func (h *AdminHandler) SweepLocks(c *gin.Context) {
	released := h.cmds.SweepLocks()
	if released == nil {
		released = []string{}
	}
	c.JSON(http.StatusOK, resdto.SweepResponse{Released: released})
}

// @Summary List attendee snapshots
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SnapshotResponse
// @Failure 502 {object} httperr.Response
// @Router /api/admin/snapshots [get]
func (h *AdminHandler) Snapshots(c *gin.Context) {
	snaps, err := h.q.Snapshots(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshots(snaps))
}
