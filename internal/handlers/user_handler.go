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

type UserHandler struct {
	BaseHandler
	users *services.UserService
}

func NewUserHandler(base BaseHandler, users *services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, users: users}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/skills", h.ListSkills)
	rg.POST("/skills", middleware.RequireRoles(), h.CreateSkill) // admin only
	rg.GET("/freelances/:freelanceId", h.GetFreelance)

	me := rg.Group("/me")
	{
		me.GET("/company", middleware.RequireRoles(models.UserRoleCompany), h.GetCompanyProfile)
		me.PUT("/company", middleware.RequireRoles(models.UserRoleCompany), h.UpdateCompanyProfile)
		me.GET("/freelance", middleware.RequireRoles(models.UserRoleFreelance), h.GetFreelanceProfile)
		me.PUT("/freelance", middleware.RequireRoles(models.UserRoleFreelance), h.UpdateFreelanceProfile)
	}
}

func (h *UserHandler) GetCompanyProfile(c *gin.Context) {
	userID, _ := h.caller(c)
	resp, err := h.users.GetCompanyProfile(c.Request.Context(), userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) UpdateCompanyProfile(c *gin.Context) {
	var req dto.UpdateCompanyRequest
	if !h.bindAndValidate(c, &req) {
		return
	}
	userID, _ := h.caller(c)
	resp, err := h.users.UpdateCompanyProfile(c.Request.Context(), userID, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GetFreelanceProfile(c *gin.Context) {
	userID, _ := h.caller(c)
	resp, err := h.users.GetFreelanceProfile(c.Request.Context(), userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) UpdateFreelanceProfile(c *gin.Context) {
	var req dto.UpdateFreelanceRequest
	if !h.bindAndValidate(c, &req) {
		return
	}
	userID, _ := h.caller(c)
	resp, err := h.users.UpdateFreelanceProfile(c.Request.Context(), userID, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GetFreelance(c *gin.Context) {
	resp, err := h.users.GetFreelanceByID(c.Request.Context(), c.Param("freelanceId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) ListSkills(c *gin.Context) {
	resp, err := h.users.ListSkills(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) CreateSkill(c *gin.Context) {
	var req dto.CreateSkillRequest
	if !h.bindAndValidate(c, &req) {
		return
	}
	resp, err := h.users.CreateSkill(c.Request.Context(), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
