package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Session 是一個瀏覽器分頁的檢視工作階段，每個已掛載的頁面各有獨立狀態
type Session struct {
	ID string

	mu       sync.Mutex
	pages    map[string]Page
	lastSeen time.Time
	nav      *navigator
	factory  *Pages
	hub      *Hub
	now      func() time.Time
	closed   bool
}

// With 在工作階段鎖內執行 fn，頁面尚未掛載時先建立它。
// 同一工作階段的意圖依呼叫順序逐一套用。已結束的工作階段回傳 ErrSessionNotFound。
func (s *Session) With(ctx context.Context, page string, fn func(Page) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, s.ID)
	}
	s.lastSeen = s.now()
	p, err := s.mount(ctx, page)
	if err != nil {
		return err
	}
	return fn(p)
}

func (s *Session) mount(ctx context.Context, name string) (Page, error) {
	if p, ok := s.pages[name]; ok {
		return p, nil
	}
	p, err := s.factory.build(ctx, name, &env{
		sessionID: s.ID,
		mu:        &s.mu,
		hub:       s.hub,
		nav:       s.nav,
		provider:  s.factory.provider,
		sim:       s.factory.sim,
		log:       s.factory.log.With("session", s.ID, "page", name),
		now:       s.now,
	})
	if err != nil {
		return nil, err
	}
	s.pages[name] = p
	return p, nil
}

// Unmount 卸載頁面並丟棄它的狀態，未掛載時不做事
func (s *Session) Unmount(name string) error {
	if !s.factory.Known(name) {
		return fmt.Errorf("%w: %s", ErrUnknownPage, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, s.ID)
	}
	s.lastSeen = s.now()
	s.unmount(name)
	return nil
}

func (s *Session) unmount(name string) {
	if p, ok := s.pages[name]; ok {
		p.Unmount()
		delete(s.pages, name)
	}
}

// Mounted 回傳已掛載的頁面名稱
func (s *Session) Mounted() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.pages))
	for name := range s.pages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Location 回傳最後一次導覽的路徑
func (s *Session) Location() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.location
}

// Navigate 驗證路徑並記錄為目前位置
func (s *Session) Navigate(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, s.ID)
	}
	s.lastSeen = s.now()
	return s.nav.Navigate(path)
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for name := range s.pages {
		s.unmount(name)
	}
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Sessions 管理所有檢視工作階段
type Sessions struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	pages    *Pages
	hub      *Hub
	ttl      time.Duration
	log      *slog.Logger
	now      func() time.Time
}

func NewSessions(pages *Pages, hub *Hub, ttl time.Duration, log *slog.Logger) *Sessions {
	return &Sessions{
		sessions: make(map[string]*Session),
		pages:    pages,
		hub:      hub,
		ttl:      ttl,
		log:      log,
		now:      time.Now,
	}
}

// Create 建立新的工作階段
func (s *Sessions) Create() *Session {
	id := uuid.NewString()
	sess := &Session{
		ID:       id,
		pages:    make(map[string]Page),
		lastSeen: s.now(),
		nav:      &navigator{sessionID: id, hub: s.hub, location: "/"},
		factory:  s.pages,
		hub:      s.hub,
		now:      s.now,
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	s.log.Info("session created", "session", id)
	return sess
}

func (s *Sessions) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return sess, nil
}

// Remove 卸載工作階段的所有頁面並關閉它的事件訂閱
func (s *Sessions) Remove(id string) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		sess.close()
		s.hub.Close(id)
	}
}

func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Expire 移除閒置超過 ttl 的工作階段，回傳移除的數量
func (s *Sessions) Expire() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.RLock()
	var stale []string
	for id, sess := range s.sessions {
		if sess.idleSince().Before(cutoff) {
			stale = append(stale, id)
		}
	}
	s.mu.RUnlock()

	for _, id := range stale {
		s.Remove(id)
		s.log.Info("session expired", "session", id)
	}
	return len(stale)
}

// Run 定期清除過期的工作階段，直到 ctx 結束
func (s *Sessions) Run(ctx context.Context) {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Expire()
		}
	}
}
