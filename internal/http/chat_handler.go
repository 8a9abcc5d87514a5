package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"english-tutor/internal/plan"
	"english-tutor/internal/service"
)

// ChatHandler mantiene dependencias para endpoints de sesiones y mensajes.
type ChatHandler struct {
	logger      *zap.Logger
	sessions    *service.SessionRegistry
	transcripts *service.TranscriptService
}

// NewChatHandler crea una instancia de ChatHandler con dependencias necesarias.
func NewChatHandler(
	logger *zap.Logger,
	sessions *service.SessionRegistry,
	transcripts *service.TranscriptService,
) *ChatHandler {
	return &ChatHandler{
		logger:      logger,
		sessions:    sessions,
		transcripts: transcripts,
	}
}

func (h *ChatHandler) conversation(c *gin.Context) (*service.Conversation, bool) {
	conv, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	return conv, true
}

// CreateSession maneja POST /sessions?plan=basic|premium.
func (h *ChatHandler) CreateSession(c *gin.Context) {
	id, conv, err := h.sessions.Create(plan.Resolve(c.Query("plan")))
	if err != nil {
		if errors.Is(err, service.ErrSessionLimit) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "too many active sessions"})
			return
		}
		h.logger.Error("create session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session_id": id, "view": conv.View()})
}

// GetSession maneja GET /sessions/:id.
func (h *ChatHandler) GetSession(c *gin.Context) {
	conv, ok := h.conversation(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"view": conv.View()})
}

// PostMessage maneja POST /sessions/:id/messages. Con ?wait=true espera la respuesta.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	conv, ok := h.conversation(c)
	if !ok {
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid post message request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	userMsg, reply, err := conv.Submit(req.Content)
	if err != nil {
		h.writeSubmitError(c, err)
		return
	}

	wait, _ := strconv.ParseBool(c.Query("wait"))
	if !wait {
		c.JSON(http.StatusAccepted, gin.H{"user_message": userMsg, "view": conv.View()})
		return
	}

	select {
	case assistantMsg, ok := <-reply:
		if !ok {
			c.JSON(http.StatusConflict, gin.H{
				"error":        "reply abandoned",
				"user_message": userMsg,
				"view":         conv.View(),
			})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"user_message":      userMsg,
			"assistant_message": assistantMsg,
			"view":              conv.View(),
		})
	case <-c.Request.Context().Done():
		h.logger.Info("client left before reply", zap.String("session_id", c.Param("id")))
	}
}

func (h *ChatHandler) writeSubmitError(c *gin.Context, err error) {
	if notice, ok := service.QuotaMessage(err); ok {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error(), "notice": notice})
		return
	}
	switch {
	case errors.Is(err, service.ErrEmptyInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrReplyPending):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.Error("submit message failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not post message"})
	}
}

// ClearHistory maneja DELETE /sessions/:id/messages.
func (h *ChatHandler) ClearHistory(c *gin.Context) {
	conv, ok := h.conversation(c)
	if !ok {
		return
	}
	conv.Clear()
	c.JSON(http.StatusOK, gin.H{"view": conv.View()})
}

// SelectPlan maneja PUT /sessions/:id/plan?plan=...
func (h *ChatHandler) SelectPlan(c *gin.Context) {
	conv, ok := h.conversation(c)
	if !ok {
		return
	}
	changed := conv.SelectPlan(plan.Resolve(c.Query("plan")))
	c.JSON(http.StatusOK, gin.H{"changed": changed, "view": conv.View()})
}

// GetTranscript maneja GET /sessions/:id/transcript.
func (h *ChatHandler) GetTranscript(c *gin.Context) {
	conv, ok := h.conversation(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"transcript": h.transcripts.Render(conv.View().Messages)})
}
