package socket

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"DevHub/dao/cache"
	"DevHub/pkg/log"
	"DevHub/pkg/snowflake"

	"github.com/gorilla/websocket"
	cmap "github.com/orcaman/concurrent-map/v2"
	"go.uber.org/zap"
)

const staleAfter = 90 * time.Second

// seenCap bounds the per-connection duplicate filter.
const seenCap = 256

// Client is one websocket connection. A user may hold several at once, one
// per tab or device.
type Client struct {
	ID       int64
	UserID   int64
	conn     *websocket.Conn
	mu       sync.Mutex
	lastPing int64

	smu   sync.Mutex
	subs  map[string]struct{}
	seen  map[string]struct{}
	seenQ []string
}

func (c *Client) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *Client) Touch() {
	atomic.StoreInt64(&c.lastPing, time.Now().Unix())
}

func (c *Client) Close() {
	_ = c.conn.Close()
}

// Subscribe registers interest in one target's comment events.
func (c *Client) Subscribe(key string) {
	c.smu.Lock()
	defer c.smu.Unlock()
	c.subs[key] = struct{}{}
}

func (c *Client) Unsubscribe(key string) {
	c.smu.Lock()
	defer c.smu.Unlock()
	delete(c.subs, key)
}

// shouldDeliver reports whether this connection wants the event and has not
// seen it yet. Redelivered event ids are filtered here, so a retried publish
// never shows up twice on the same list.
func (c *Client) shouldDeliver(key, eventID string) bool {
	c.smu.Lock()
	defer c.smu.Unlock()

	if _, ok := c.subs[key]; !ok {
		return false
	}
	if _, ok := c.seen[eventID]; ok {
		return false
	}

	if len(c.seenQ) >= seenCap {
		delete(c.seen, c.seenQ[0])
		c.seenQ = c.seenQ[1:]
	}
	c.seen[eventID] = struct{}{}
	c.seenQ = append(c.seenQ, eventID)
	return true
}

// TargetKey names one comment target for subscription matching.
func TargetKey(targetType string, targetID int64) string {
	return targetType + ":" + strconv.FormatInt(targetID, 10)
}

// Hub keeps the local connection registry. Which node owns which connection
// lives in redis, so pushes find users across every node.
type Hub struct {
	Online  *cache.OnlineStorage
	clients cmap.ConcurrentMap[string, *Client]
	sid     string
}

func NewHub(online *cache.OnlineStorage) *Hub {
	return &Hub{
		Online:  online,
		clients: cmap.New[*Client](),
		sid:     buildSid(),
	}
}

func buildSid() string {
	ip, err := localIP()
	if err != nil {
		ip = "127.0.0.1"
	}
	return fmt.Sprintf("%s:%d", ip, os.Getpid())
}

func localIP() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}
	for _, address := range addrs {
		if ipnet, ok := address.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String(), nil
			}
		}
	}
	return "", errors.New("no ip address found")
}

func (h *Hub) Sid() string {
	return h.sid
}

func (h *Hub) Register(ctx context.Context, conn *websocket.Conn, userID int64) *Client {
	client := &Client{
		ID:       snowflake.GenID(),
		UserID:   userID,
		conn:     conn,
		lastPing: time.Now().Unix(),
		subs:     map[string]struct{}{},
		seen:     map[string]struct{}{},
	}
	h.clients.Set(strconv.FormatInt(client.ID, 10), client)

	if err := h.Online.Bind(ctx, h.sid, client.ID, userID); err != nil {
		log.L.Warn("bind online client", zap.Int64("client_id", client.ID), zap.Error(err))
	}
	return client
}

func (h *Hub) Unregister(ctx context.Context, client *Client) {
	h.clients.Remove(strconv.FormatInt(client.ID, 10))
	if err := h.Online.UnBind(ctx, h.sid, client.ID); err != nil {
		log.L.Warn("unbind online client", zap.Int64("client_id", client.ID), zap.Error(err))
	}
	client.Close()
}

// PushToUser writes the payload to every local connection the user holds.
// A broken connection gets unregistered on the spot.
func (h *Hub) PushToUser(ctx context.Context, userID int64, payload any) {
	for _, cid := range h.Online.GetClientIDs(ctx, h.sid, userID) {
		client, ok := h.clients.Get(strconv.FormatInt(cid, 10))
		if !ok {
			continue
		}
		if err := client.WriteJSON(payload); err != nil {
			h.Unregister(ctx, client)
		}
	}
}

// PushToTarget writes the payload to every local connection subscribed to
// the target, at most once per event id per connection.
func (h *Hub) PushToTarget(ctx context.Context, key, eventID string, payload any) {
	for item := range h.clients.IterBuffered() {
		client := item.Val
		if !client.shouldDeliver(key, eventID) {
			continue
		}
		if err := client.WriteJSON(payload); err != nil {
			h.Unregister(ctx, client)
		}
	}
}

// SweepStale drops connections that stopped sending pings.
func (h *Hub) SweepStale(ctx context.Context) error {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			deadline := time.Now().Add(-staleAfter).Unix()
			for item := range h.clients.IterBuffered() {
				client := item.Val
				if atomic.LoadInt64(&client.lastPing) < deadline {
					h.Unregister(ctx, client)
				}
			}
		}
	}
}
