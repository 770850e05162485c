package web

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rpggio/projectboard/internal/domain/project"
)

const (
	liveBufferSize = 16
	liveWriteWait  = 10 * time.Second
)

var liveUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type liveClient struct {
	id      string
	status  project.Status
	conn    *websocket.Conn
	updates chan []project.Project
}

// Hub pushes re-rendered project lists to websocket clients whenever the
// store changes. A client that falls behind misses intermediate frames; the
// next frame carries the full list again.
type Hub struct {
	store  *project.Store
	logger *slog.Logger

	mu      sync.RWMutex
	clients map[string]*liveClient
}

// NewHub creates a hub reading initial state from store.
func NewHub(store *project.Store, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Hub{
		store:   store,
		logger:  logger,
		clients: make(map[string]*liveClient),
	}
}

// Configure subscribes the hub to the store and mounts the websocket route.
func (h *Hub) Configure(r chi.Router) {
	h.store.Subscribe(h.broadcast)
	r.Get("/live", h.serveWS)
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) broadcast(snapshot []project.Project) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		select {
		case client.updates <- snapshot:
		default:
		}
	}
}

// register queues the current list for client. Taking the snapshot under the
// hub lock means no mutation can fall between it and the first broadcast.
func (h *Hub) register(client *liveClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	client.updates <- h.store.Snapshot()
	h.clients[client.id] = client
}

func (h *Hub) unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[id]; ok {
		close(client.updates)
		delete(h.clients, id)
	}
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	status := project.StatusActive
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, err := project.ParseStatus(raw)
		if err != nil {
			http.Error(w, "unknown status", http.StatusBadRequest)
			return
		}
		status = parsed
	}

	conn, err := liveUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	client := &liveClient{
		id:      uuid.NewString(),
		status:  status,
		conn:    conn,
		updates: make(chan []project.Project, liveBufferSize),
	}
	h.register(client)
	defer h.unregister(client.id)

	h.logger.Debug("live client connected", "client_id", client.id, "status", status)

	go h.writeLoop(client)

	// Reads only detect the peer going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.logger.Debug("live client disconnected", "client_id", client.id)
			return
		}
	}
}

func (h *Hub) writeLoop(client *liveClient) {
	defer client.conn.Close()

	for snapshot := range client.updates {
		var buf bytes.Buffer
		filtered := project.FilterByStatus(snapshot, client.status)
		if err := projectListComponent(client.status, filtered).Render(context.Background(), &buf); err != nil {
			h.logger.Error("failed to render live list", "error", err)
			continue
		}
		_ = client.conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
		if err := client.conn.WriteMessage(websocket.TextMessage, buf.Bytes()); err != nil {
			return
		}
	}
}
