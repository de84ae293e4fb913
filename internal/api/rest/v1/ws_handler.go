package v1

import (
	"fmt"
	"net/http"

	"github.com/wesrioswart/nervecontract/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WebSocketHandler upgrades HTTP requests to websocket connections that
// receive notification fan-out messages.
type WebSocketHandler interface {
	Subscribe(ctx *gin.Context)
}

type webSocketHandler struct {
	hub      *NotificationHub
	upgrader websocket.Upgrader
	logger   logger.Logger
}

// NewWebSocketHandler creates a new WebSocketHandler backed by the given hub
func NewWebSocketHandler(hub *NotificationHub, log logger.Logger) WebSocketHandler {
	return &webSocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: log,
	}
}

// Subscribe handles the GET request to open a notification stream
// @Summary Subscribe to notification events
// @Description Upgrade the connection to a websocket and stream notifications as they are created.
// @Tags Notification
// @Success 101
// @Failure 400 {object} ErrorResponse
// @Router /ws [get]
func (handler *webSocketHandler) Subscribe(ctx *gin.Context) {
	conn, err := handler.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("websocket upgrade failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	handler.hub.Add(conn)
	handler.logger.Info("websocket client connected")
}
