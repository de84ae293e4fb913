package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/wesrioswart/nervecontract/internal/eventbus"
	"github.com/wesrioswart/nervecontract/internal/pkg/logger"

	"github.com/gorilla/websocket"
)

// NotificationHub fans notification.created events out to connected websocket
// clients. Sends are non-blocking: a client whose buffer is full is dropped
// rather than stalling the event bus.
type NotificationHub struct {
	mu      sync.RWMutex
	clients map[*hubClient]struct{}
	logger  logger.Logger
}

type hubClient struct {
	conn *websocket.Conn
	send chan []byte
}

// NewNotificationHub creates a hub and subscribes it to notification.created
// events on the given bus.
func NewNotificationHub(bus *eventbus.Bus, log logger.Logger) *NotificationHub {
	hub := &NotificationHub{
		clients: make(map[*hubClient]struct{}),
		logger:  log,
	}

	bus.Register(eventbus.EventNotificationCreated, func(ctx context.Context, payload interface{}) error {
		p, ok := payload.(eventbus.NotificationCreatedPayload)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for %s", payload, eventbus.EventNotificationCreated)
		}

		message, err := json.Marshal(toNotificationResponse(p.Notification))
		if err != nil {
			return fmt.Errorf("failed to encode notification: %w", err)
		}

		hub.broadcast(message)
		return nil
	})

	return hub
}

// Add registers a websocket connection with the hub and starts its writer.
func (hub *NotificationHub) Add(conn *websocket.Conn) {
	client := &hubClient{
		conn: conn,
		send: make(chan []byte, 32),
	}

	hub.mu.Lock()
	hub.clients[client] = struct{}{}
	hub.mu.Unlock()

	go hub.writePump(client)
	go hub.readPump(client)
}

// ClientCount returns the number of connected clients.
func (hub *NotificationHub) ClientCount() int {
	hub.mu.RLock()
	defer hub.mu.RUnlock()
	return len(hub.clients)
}

// Close disconnects all clients.
func (hub *NotificationHub) Close() {
	hub.mu.Lock()
	clients := make([]*hubClient, 0, len(hub.clients))
	for client := range hub.clients {
		clients = append(clients, client)
	}
	hub.clients = make(map[*hubClient]struct{})
	hub.mu.Unlock()

	for _, client := range clients {
		close(client.send)
	}
}

func (hub *NotificationHub) broadcast(message []byte) {
	hub.mu.Lock()
	defer hub.mu.Unlock()

	for client := range hub.clients {
		select {
		case client.send <- message:
		default:
			delete(hub.clients, client)
			close(client.send)
			hub.logger.Warn("dropping slow websocket client")
		}
	}
}

func (hub *NotificationHub) remove(client *hubClient) {
	hub.mu.Lock()
	defer hub.mu.Unlock()

	if _, ok := hub.clients[client]; ok {
		delete(hub.clients, client)
		close(client.send)
	}
}

func (hub *NotificationHub) writePump(client *hubClient) {
	defer client.conn.Close()

	for message := range client.send {
		if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			hub.remove(client)
			return
		}
	}

	client.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// readPump discards inbound frames so control messages are processed and
// detects when the peer goes away.
func (hub *NotificationHub) readPump(client *hubClient) {
	defer hub.remove(client)

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			return
		}
	}
}
