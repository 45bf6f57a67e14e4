// Package debugbridge exposes the renderer's SpawnMesh/DespawnChunk event
// stream over a websocket so an external debug viewer can render what the
// headless client is doing, without the client itself depending on any
// rendering library.
package debugbridge

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// SpawnMeshMessage mirrors the renderer contract's SpawnMesh event for
// wire transmission to the debug viewer.
type SpawnMeshMessage struct {
	Type        string    `json:"type"`
	ParentChunk [2]int32  `json:"parent_chunk"`
	Vertices    []float32 `json:"vertices"`
	Normals     []float32 `json:"normals"`
	UVs         []float32 `json:"uvs"`
	Indices     []uint32  `json:"indices"`
	MaterialID  uint16    `json:"material_id"`
	Transform   [3]float64 `json:"transform"`
}

// DespawnChunkMessage mirrors the renderer contract's DespawnChunk event.
type DespawnChunkMessage struct {
	Type        string   `json:"type"`
	ParentChunk [2]int32 `json:"parent_chunk"`
}

// Bridge accepts websocket clients and fans every broadcast message out
// to all of them; a slow or disconnected client never blocks the others.
type Bridge struct {
	log *logrus.Entry

	mu      sync.RWMutex
	clients map[*client]struct{}
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

func New(log *logrus.Entry) *Bridge {
	return &Bridge{log: log, clients: make(map[*client]struct{})}
}

// Handler returns the http.Handler to mount at the bridge's websocket
// endpoint.
func (b *Bridge) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if b.log != nil {
				b.log.WithError(err).Warn("debug bridge upgrade failed")
			}
			return
		}
		c := &client{id: uuid.NewString(), conn: conn, send: make(chan []byte, 64)}
		if b.log != nil {
			b.log.WithField("client_id", c.id).Info("debug bridge client connected")
		}
		b.register(c)
		go b.writePump(c)
		go b.readPump(c)
	})
}

func (b *Bridge) register(c *client) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clients[c] = struct{}{}
}

func (b *Bridge) unregister(c *client) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.clients[c]; ok {
		delete(b.clients, c)
		close(c.send)
		if b.log != nil {
			b.log.WithField("client_id", c.id).Info("debug bridge client disconnected")
		}
	}
}

func (b *Bridge) writePump(c *client) {
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			b.unregister(c)
			c.conn.Close()
			return
		}
	}
}

// readPump only exists to detect client disconnects; the bridge never
// accepts input from the debug viewer.
func (b *Bridge) readPump(c *client) {
	defer func() {
		b.unregister(c)
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast marshals v as JSON and sends it to every connected client,
// dropping it for any client whose send buffer is already full.
func (b *Bridge) Broadcast(v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for c := range b.clients {
		select {
		case c.send <- payload:
		default:
			if b.log != nil {
				b.log.Warn("debug bridge client send buffer full, dropping message")
			}
		}
	}
	return nil
}

// Serve runs an HTTP server hosting the bridge's websocket endpoint until
// ctx is cancelled.
func Serve(ctx context.Context, addr string, b *Bridge) error {
	mux := http.NewServeMux()
	mux.Handle("/debug", b.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		return srv.Close()
	case err := <-errCh:
		return err
	}
}
