package handlers

import (
	"net/http"
	"strconv"

	"freehunt_backend/internal/services"
	"freehunt_backend/internal/services/dto"
	"freehunt_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	BaseHandler
	chat *services.ChatService
}

func NewChatHandler(base BaseHandler, chat *services.ChatService) *ChatHandler {
	return &ChatHandler{BaseHandler: base, chat: chat}
}

func (h *ChatHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/conversations", h.ListConversations)
	rg.GET("/conversations/:conversationId", h.GetConversation)
	rg.GET("/conversations/:conversationId/messages", h.ListMessages)
	rg.POST("/conversations/:conversationId/messages", h.SendMessage)
}

func (h *ChatHandler) ListConversations(c *gin.Context) {
	userID, _ := h.caller(c)
	resp, err := h.chat.ListConversations(c.Request.Context(), userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ChatHandler) GetConversation(c *gin.Context) {
	userID, role := h.caller(c)
	resp, err := h.chat.GetConversation(c.Request.Context(), c.Param("conversationId"), userID, role)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ChatHandler) ListMessages(c *gin.Context) {
	userID, role := h.caller(c)
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	resp, err := h.chat.ListMessages(c.Request.Context(), c.Param("conversationId"), userID, role, limit, offset)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req dto.SendMessageRequest
	if !h.bindAndValidate(c, &req) {
		return
	}
	userID, role := h.caller(c)
	resp, err := h.chat.SendMessage(c.Request.Context(), c.Param("conversationId"), userID, role, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
