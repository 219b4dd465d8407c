package http

import (
	"context"
	"net/http"
	"strings"

	"pizzabot/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ChatAssistant is the conversational surface behind the chat endpoints.
// *agent.Assistant satisfies it.
type ChatAssistant interface {
	StartSession() string
	SendMessage(ctx context.Context, sessionID, userMessage string) (string, error)
}

// ChatHandler exposes the assistant over HTTP: one session per conversation,
// one message per request.
type ChatHandler struct {
	assistant ChatAssistant
}

// NewChatHandler creates the chat handler.
func NewChatHandler(assistant ChatAssistant) *ChatHandler {
	return &ChatHandler{assistant: assistant}
}

// RegisterRoutes attaches the chat routes to the echo instance.
func (h *ChatHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/chat/sessions", h.StartSession)
	e.POST("/api/v1/chat/sessions/:id/messages", h.SendMessage)
}

// StartSessionResponse is the POST /api/v1/chat/sessions payload.
type StartSessionResponse struct {
	SessionID string `json:"session_id"`
}

// SendMessageRequest is the chat message body.
type SendMessageRequest struct {
	Message string `json:"message"`
}

// SendMessageResponse carries the assistant's reply.
type SendMessageResponse struct {
	Reply string `json:"reply"`
}

// StartSession handles POST /api/v1/chat/sessions - opens a conversation.
func (h *ChatHandler) StartSession(ctx echo.Context) error {
	return ctx.JSON(http.StatusCreated, StartSessionResponse{
		SessionID: h.assistant.StartSession(),
	})
}

// SendMessage handles POST /api/v1/chat/sessions/:id/messages - one user turn.
func (h *ChatHandler) SendMessage(ctx echo.Context) error {
	sessionID := ctx.Param("id")
	if sessionID == "" {
		return writeError(ctx, errs.NewValueIsRequiredError("id"))
	}

	var body SendMessageRequest
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	if strings.TrimSpace(body.Message) == "" {
		return writeError(ctx, errs.NewValueIsRequiredError("message"))
	}

	reply, err := h.assistant.SendMessage(ctx.Request().Context(), sessionID, body.Message)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SendMessageResponse{Reply: reply})
}
