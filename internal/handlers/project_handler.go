package handlers

import (
	"net/http"

	"freehunt_backend/internal/services"
	"freehunt_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	BaseHandler
	projects *services.ProjectService
}

func NewProjectHandler(base BaseHandler, projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{BaseHandler: base, projects: projects}
}

func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me/projects", h.ListMine)
	rg.GET("/projects/:projectId", h.Get)
	rg.GET("/job-postings/:jobPostingId/project", h.GetByJobPosting)
}

func (h *ProjectHandler) ListMine(c *gin.Context) {
	userID, role := h.caller(c)
	resp, err := h.projects.ListMine(c.Request.Context(), userID, role)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	userID, role := h.caller(c)
	resp, err := h.projects.GetByID(c.Request.Context(), c.Param("projectId"), userID, role)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProjectHandler) GetByJobPosting(c *gin.Context) {
	userID, role := h.caller(c)
	resp, err := h.projects.GetByJobPosting(c.Request.Context(), c.Param("jobPostingId"), userID, role)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
