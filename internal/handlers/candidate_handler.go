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

type CandidateHandler struct {
	BaseHandler
	candidates *services.CandidateService
}

func NewCandidateHandler(base BaseHandler, candidates *services.CandidateService) *CandidateHandler {
	return &CandidateHandler{BaseHandler: base, candidates: candidates}
}

func (h *CandidateHandler) RegisterRoutes(rg *gin.RouterGroup) {
	freelance := middleware.RequireRoles(models.UserRoleFreelance)
	company := middleware.RequireRoles(models.UserRoleCompany)

	rg.POST("/candidates", freelance, h.Apply)
	rg.GET("/me/candidates", freelance, h.ListMine)
	rg.GET("/job-postings/:jobPostingId/candidates", company, h.ListByJobPosting)
	rg.POST("/candidates/:candidateId/accept", company, h.Accept)
	rg.POST("/candidates/:candidateId/reject", company, h.Reject)
}

func (h *CandidateHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if !h.bindAndValidate(c, &req) {
		return
	}
	userID, _ := h.caller(c)
	resp, err := h.candidates.Apply(c.Request.Context(), userID, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CandidateHandler) ListMine(c *gin.Context) {
	userID, _ := h.caller(c)
	resp, err := h.candidates.ListMine(c.Request.Context(), userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CandidateHandler) ListByJobPosting(c *gin.Context) {
	userID, role := h.caller(c)
	resp, err := h.candidates.ListByJobPosting(c.Request.Context(), c.Param("jobPostingId"), userID, role)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CandidateHandler) Accept(c *gin.Context) {
	userID, role := h.caller(c)
	resp, err := h.candidates.Accept(c.Request.Context(), c.Param("candidateId"), userID, role)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CandidateHandler) Reject(c *gin.Context) {
	userID, role := h.caller(c)
	resp, err := h.candidates.Reject(c.Request.Context(), c.Param("candidateId"), userID, role)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
