package service

import (
	"log/slog"
	"sync"
	"time"
)

// EventType 是推送給前端的事件種類
type EventType string

const (
	EventToast    EventType = "toast"
	EventState    EventType = "state"
	EventNavigate EventType = "navigate"
)

// Event 是推送到工作階段的一則事件
type Event struct {
	Type    EventType `json:"type"`
	Page    string    `json:"page,omitempty"`
	Message string    `json:"message,omitempty"`
	Path    string    `json:"path,omitempty"`
	At      time.Time `json:"at"`
}

const subscriberBuffer = 64

// Subscriber 是一個事件接收端（WebSocket 或 SSE 連線）
type Subscriber struct {
	SessionID string
	Events    chan Event
}

// Hub 依工作階段分組管理訂閱者，發佈事件時不會阻塞
type Hub struct {
	subs map[string]map[*Subscriber]bool // sessionID -> subscriber -> bool
	mu   sync.RWMutex
	log  *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		subs: make(map[string]map[*Subscriber]bool),
		log:  log,
	}
}

// Subscribe 為工作階段註冊一個新的接收端
func (h *Hub) Subscribe(sessionID string) *Subscriber {
	s := &Subscriber{
		SessionID: sessionID,
		Events:    make(chan Event, subscriberBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[sessionID] == nil {
		h.subs[sessionID] = make(map[*Subscriber]bool)
	}
	h.subs[sessionID][s] = true
	return s
}

// Unsubscribe 移除接收端並關閉它的通道，重複呼叫不做事
func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.subs[s.SessionID]
	if !ok || !subs[s] {
		return
	}
	delete(subs, s)
	if len(subs) == 0 {
		delete(h.subs, s.SessionID)
	}
	close(s.Events)
}

// Publish 將事件送給工作階段的所有接收端。
// 佇列已滿的接收端會被移除。
func (h *Hub) Publish(sessionID string, e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	var slow []*Subscriber
	h.mu.RLock()
	for s := range h.subs[sessionID] {
		select {
		case s.Events <- e:
		default:
			slow = append(slow, s)
		}
	}
	h.mu.RUnlock()

	for _, s := range slow {
		h.log.Warn("dropping slow subscriber", "session", sessionID)
		h.Unsubscribe(s)
	}
}

// Count 回傳工作階段目前的接收端數量
func (h *Hub) Count(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[sessionID])
}

// Close 移除工作階段的所有接收端
func (h *Hub) Close(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.subs[sessionID] {
		close(s.Events)
	}
	delete(h.subs, sessionID)
}
