package handlers

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"campuschat/internal/chat"
	"campuschat/internal/gateway"
	"campuschat/pkg/errors"
	"campuschat/pkg/logger"
)

type ChatHandlers struct {
	uc     chat.ChatUsecase
	hub    *gateway.Hub
	logger logger.Logger
}

func NewChatHandlers(uc chat.ChatUsecase, hub *gateway.Hub, logger logger.Logger) *ChatHandlers {
	return &ChatHandlers{uc: uc, hub: hub, logger: logger}
}

// ListConversations GET /api/conversations
func (h *ChatHandlers) ListConversations(c *fiber.Ctx) error {
	userID, _ := c.Locals(localsUserID).(string)
	previews, err := h.uc.ListConversations(c.UserContext(), userID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(previews)
}

// OpenConversation GET /api/conversations/:id
func (h *ChatHandlers) OpenConversation(c *fiber.Ctx) error {
	userID, _ := c.Locals(localsUserID).(string)
	inboxID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid conversation id"})
	}

	conv, err := h.uc.OpenConversation(c.UserContext(), userID, int64(inboxID))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(conv)
}

// StartConversation POST /api/conversations/with/:userID
func (h *ChatHandlers) StartConversation(c *fiber.Ctx) error {
	userID, _ := c.Locals(localsUserID).(string)
	otherID := c.Params("userID")
	if otherID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing user id"})
	}

	conv, err := h.uc.StartOrResumeConversation(c.UserContext(), userID, otherID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(conv)
}

// UpgradeGuard rejects plain HTTP requests on the websocket route.
func UpgradeGuard(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Websocket handles one socket connection for its whole lifetime. The
// session identity resolved by AuthRequired travels into the client; any
// identity field in client payloads is ignored.
func (h *ChatHandlers) Websocket(conn *websocket.Conn) {
	userID, _ := conn.Locals(localsUserID).(string)
	if userID == "" {
		_ = conn.Close()
		return
	}

	client := &gateway.Client{
		ID:     uuid.NewString(),
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 16),
	}
	h.hub.Register(client)
	go client.WritePump()
	client.ReadPump(h.hub)
}

// fail maps the service taxonomy onto HTTP statuses. Membership failures are
// a plain 403 so no conversation content leaks.
func (h *ChatHandlers) fail(c *fiber.Ctx, err error) error {
	code := errors.CodeOf(err)
	status := fiber.StatusInternalServerError
	switch code {
	case errors.CodeInvalidArgument:
		status = fiber.StatusBadRequest
	case errors.CodePermissionDenied:
		status = fiber.StatusForbidden
	case errors.CodeNotFound:
		status = fiber.StatusNotFound
	case errors.CodeAlreadyExists:
		status = fiber.StatusConflict
	case errors.CodeUnauthenticated:
		status = fiber.StatusUnauthorized
	case errors.CodeDeadlineExceeded:
		status = fiber.StatusGatewayTimeout
	}
	if status == fiber.StatusInternalServerError {
		h.logger.Error("request failed", "path", c.Path(), "err", err)
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error(), "code": string(code)})
}
