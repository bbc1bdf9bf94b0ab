package handlers

import (
	"net/http"
	"strconv"

	"freehunt_backend/internal/middleware"
	"freehunt_backend/internal/models"
	"freehunt_backend/internal/repositories"
	"freehunt_backend/internal/services"
	"freehunt_backend/internal/services/dto"
	"freehunt_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type JobPostingHandler struct {
	BaseHandler
	postings *services.JobPostingService
}

func NewJobPostingHandler(base BaseHandler, postings *services.JobPostingService) *JobPostingHandler {
	return &JobPostingHandler{BaseHandler: base, postings: postings}
}

// RegisterPublicRoutes exposes the read-only listing endpoints. Drafts stay
// invisible to anonymous callers through the service-level visibility check.
func (h *JobPostingHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/job-postings", h.Search)
	rg.GET("/job-postings/:jobPostingId", h.Get)
}

func (h *JobPostingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	company := middleware.RequireRoles(models.UserRoleCompany)
	rg.POST("/job-postings", company, h.Create)
	rg.GET("/me/job-postings", company, h.ListMine)
	rg.PUT("/job-postings/:jobPostingId", company, h.Update)
	rg.DELETE("/job-postings/:jobPostingId", company, h.Delete)
	rg.POST("/job-postings/:jobPostingId/publish", company, h.Publish)
	rg.POST("/job-postings/:jobPostingId/cancel", company, h.Cancel)
}

func (h *JobPostingHandler) Create(c *gin.Context) {
	var req dto.CreateJobPostingRequest
	if !h.bindAndValidate(c, &req) {
		return
	}
	userID, _ := h.caller(c)
	resp, err := h.postings.Create(c.Request.Context(), userID, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *JobPostingHandler) Get(c *gin.Context) {
	userID, role := h.caller(c)
	resp, err := h.postings.GetByID(c.Request.Context(), c.Param("jobPostingId"), userID, role)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobPostingHandler) Update(c *gin.Context) {
	var req dto.UpdateJobPostingRequest
	if !h.bindAndValidate(c, &req) {
		return
	}
	userID, role := h.caller(c)
	resp, err := h.postings.Update(c.Request.Context(), c.Param("jobPostingId"), userID, role, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobPostingHandler) Delete(c *gin.Context) {
	userID, role := h.caller(c)
	if err := h.postings.Delete(c.Request.Context(), c.Param("jobPostingId"), userID, role); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *JobPostingHandler) ListMine(c *gin.Context) {
	userID, _ := h.caller(c)
	resp, err := h.postings.ListByCompany(c.Request.Context(), userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobPostingHandler) Search(c *gin.Context) {
	criteria := repositories.JobPostingSearch{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		SkillIDs: c.QueryArray("skillId"),
	}
	criteria.MinDailyRate, _ = strconv.ParseFloat(c.Query("minRate"), 64)
	criteria.MaxDailyRate, _ = strconv.ParseFloat(c.Query("maxRate"), 64)
	criteria.Limit, _ = strconv.Atoi(c.Query("limit"))
	criteria.Offset, _ = strconv.Atoi(c.Query("offset"))

	resp, err := h.postings.Search(c.Request.Context(), criteria)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobPostingHandler) Publish(c *gin.Context) {
	userID, role := h.caller(c)
	resp, err := h.postings.Publish(c.Request.Context(), c.Param("jobPostingId"), userID, role)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobPostingHandler) Cancel(c *gin.Context) {
	var req dto.CancelJobPostingRequest
	if !h.bindAndValidate(c, &req) {
		return
	}
	userID, role := h.caller(c)
	resp, err := h.postings.Cancel(c.Request.Context(), c.Param("jobPostingId"), userID, role, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
