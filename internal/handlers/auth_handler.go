package handlers

import (
	"net/http"

	"freehunt_backend/internal/services"
	"freehunt_backend/internal/services/dto"
	"freehunt_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	BaseHandler
	auth *services.AuthService
}

func NewAuthHandler(base BaseHandler, auth *services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, auth: auth}
}

func (h *AuthHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register/company", h.RegisterCompany)
	rg.POST("/auth/register/freelance", h.RegisterFreelance)
	rg.POST("/auth/login", h.Login)
}

func (h *AuthHandler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/me", h.Me)
}

func (h *AuthHandler) RegisterCompany(c *gin.Context) {
	var req dto.RegisterCompanyRequest
	if !h.bindAndValidate(c, &req) {
		return
	}
	resp, err := h.auth.RegisterCompany(c.Request.Context(), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) RegisterFreelance(c *gin.Context) {
	var req dto.RegisterFreelanceRequest
	if !h.bindAndValidate(c, &req) {
		return
	}
	resp, err := h.auth.RegisterFreelance(c.Request.Context(), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.bindAndValidate(c, &req) {
		return
	}
	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, _ := h.caller(c)
	resp, err := h.auth.Me(c.Request.Context(), userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
