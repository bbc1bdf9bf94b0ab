package handlers

import (
	"net/http"

	"freehunt_backend/internal/middleware"
	"freehunt_backend/internal/models"
	"freehunt_backend/internal/services"
	"freehunt_backend/internal/services/dto"
	"freehunt_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type CheckpointHandler struct {
	BaseHandler
	checkpoints *services.CheckpointService
}

func NewCheckpointHandler(base BaseHandler, checkpoints *services.CheckpointService) *CheckpointHandler {
	return &CheckpointHandler{BaseHandler: base, checkpoints: checkpoints}
}

func (h *CheckpointHandler) RegisterRoutes(rg *gin.RouterGroup) {
	company := middleware.RequireRoles(models.UserRoleCompany)
	freelance := middleware.RequireRoles(models.UserRoleFreelance)

	rg.GET("/job-postings/:jobPostingId/checkpoints", h.ListByJobPosting)
	rg.POST("/job-postings/:jobPostingId/checkpoints", company, h.Create)
	rg.PUT("/checkpoints/:checkpointId", company, h.Update)
	rg.DELETE("/checkpoints/:checkpointId", company, h.Delete)

	rg.POST("/checkpoints/:checkpointId/submit", freelance, h.Submit)
	rg.POST("/checkpoints/:checkpointId/validate", company, h.Validate)
	rg.POST("/checkpoints/:checkpointId/delay", company, h.MarkDelayed)
	rg.POST("/checkpoints/:checkpointId/cancel", company, h.Cancel)
}

func (h *CheckpointHandler) Create(c *gin.Context) {
	var req dto.CreateCheckpointRequest
	if !h.bindAndValidate(c, &req) {
		return
	}
	userID, role := h.caller(c)
	resp, err := h.checkpoints.Create(c.Request.Context(), c.Param("jobPostingId"), userID, role, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CheckpointHandler) Update(c *gin.Context) {
	var req dto.UpdateCheckpointRequest
	if !h.bindAndValidate(c, &req) {
		return
	}
	userID, role := h.caller(c)
	resp, err := h.checkpoints.Update(c.Request.Context(), c.Param("checkpointId"), userID, role, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CheckpointHandler) Delete(c *gin.Context) {
	userID, role := h.caller(c)
	if err := h.checkpoints.Delete(c.Request.Context(), c.Param("checkpointId"), userID, role); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CheckpointHandler) ListByJobPosting(c *gin.Context) {
	userID, role := h.caller(c)
	resp, err := h.checkpoints.ListByJobPosting(c.Request.Context(), c.Param("jobPostingId"), userID, role)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CheckpointHandler) Submit(c *gin.Context) {
	userID, role := h.caller(c)
	resp, err := h.checkpoints.Submit(c.Request.Context(), c.Param("checkpointId"), userID, role)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CheckpointHandler) Validate(c *gin.Context) {
	userID, role := h.caller(c)
	resp, err := h.checkpoints.Validate(c.Request.Context(), c.Param("checkpointId"), userID, role)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CheckpointHandler) MarkDelayed(c *gin.Context) {
	userID, role := h.caller(c)
	resp, err := h.checkpoints.MarkDelayed(c.Request.Context(), c.Param("checkpointId"), userID, role)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CheckpointHandler) Cancel(c *gin.Context) {
	userID, role := h.caller(c)
	resp, err := h.checkpoints.Cancel(c.Request.Context(), c.Param("checkpointId"), userID, role)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
