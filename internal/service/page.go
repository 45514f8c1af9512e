package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"d23_web/internal/repository"
	"d23_web/internal/viewstate"
	"d23_web/pkg/config"
)

// 頁面名稱
const (
	PageLanding             = "landing"
	PageDashboard           = "dashboard"
	PageMyDebates           = "my-debates"
	PageTournaments         = "tournaments"
	PageRankings            = "rankings"
	PageSchedule            = "schedule"
	PageSettings            = "settings"
	PageTopicDiscussion     = "topic-discussion"
	PageAIDebateRoom        = "ai-debate-room"
	PageGroupDebateRoom     = "group-debate-room"
	PageOnboarding          = "onboarding"
	PageRegistrationSuccess = "registration-success"
)

var (
	ErrUnknownPage     = errors.New("unknown page")
	ErrUnknownAction   = errors.New("unknown action")
	ErrUnknownSelector = errors.New("unknown selector")
	ErrInvalidPayload  = errors.New("invalid payload")
	ErrNotFound        = errors.New("item not found")
)

// Query 是頁面的搜尋文字、分類篩選與日期範圍
type Query struct {
	Search  string            `json:"search"`
	Filters map[string]string `json:"filters,omitempty"`
	Start   string            `json:"start,omitempty"`
	End     string            `json:"end,omitempty"`
}

// Filter 回傳分類篩選的值，未設定時為 "all"
func (q Query) Filter(name string) string {
	if v := q.Filters[name]; v != "" {
		return v
	}
	return "all"
}

// View 是頁面回傳給前端的完整狀態
type View struct {
	Page      string                             `json:"page"`
	Overlay   viewstate.OverlayState             `json:"overlay"`
	Selectors map[string]viewstate.SelectorState `json:"selectors"`
	Query     Query                              `json:"query"`
	Data      any                                `json:"data"`
}

// Page 是一個已掛載頁面的狀態。
// 所有方法都必須在工作階段的鎖內呼叫。
type Page interface {
	Name() string
	View(ctx context.Context) (*View, error)
	Overlays() *viewstate.Overlays
	Selector(name string) (*viewstate.Selector, error)
	SetQuery(q Query)
	Do(ctx context.Context, action string, body json.RawMessage) error
	Unmount()
}

// env 是頁面與所屬工作階段共用的協作者
type env struct {
	sessionID string
	mu        sync.Locker
	hub       *Hub
	nav       Navigator
	provider  repository.Provider
	sim       config.SimConfig
	log       *slog.Logger
	now       func() time.Time
}

func (e *env) toast(message string) {
	e.hub.Publish(e.sessionID, Event{Type: EventToast, Message: message})
}

func (e *env) changed(page string) {
	e.hub.Publish(e.sessionID, Event{Type: EventState, Page: page})
}

type actionFunc func(ctx context.Context, body json.RawMessage) error

// basePage 實作各頁面共用的對話框、選擇器與搜尋狀態
type basePage struct {
	name      string
	env       *env
	overlays  *viewstate.Overlays
	selectors map[string]*viewstate.Selector
	query     Query
	actions   map[string]actionFunc

	// ctx 在頁面卸載時取消
	ctx     context.Context
	cancel  context.CancelFunc
	cancels []func()
}

func newBasePage(name string, e *env, overlays ...viewstate.OverlaySpec) *basePage {
	ctx, cancel := context.WithCancel(context.Background())
	return &basePage{
		name:      name,
		env:       e,
		overlays:  viewstate.NewOverlays(overlays...),
		selectors: make(map[string]*viewstate.Selector),
		actions:   make(map[string]actionFunc),
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (p *basePage) Name() string { return p.name }

func (p *basePage) Overlays() *viewstate.Overlays { return p.overlays }

func (p *basePage) Selector(name string) (*viewstate.Selector, error) {
	s, ok := p.selectors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownSelector, p.name, name)
	}
	return s, nil
}

func (p *basePage) SetQuery(q Query) {
	p.query = q
}

func (p *basePage) Do(ctx context.Context, action string, body json.RawMessage) error {
	fn, ok := p.actions[action]
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownAction, p.name, action)
	}
	return fn(ctx, body)
}

// Unmount 取消所有等待中的模擬動作，之後到期的結果都會被丟棄
func (p *basePage) Unmount() {
	p.cancel()
	for _, cancel := range p.cancels {
		cancel()
	}
}

func (p *basePage) selector(name string, options ...string) *viewstate.Selector {
	s := viewstate.NewSelector(options...)
	p.selectors[name] = s
	return s
}

func (p *basePage) handle(name string, fn actionFunc) {
	p.actions[name] = fn
}

func (p *basePage) view(data any) *View {
	selectors := make(map[string]viewstate.SelectorState, len(p.selectors))
	for name, s := range p.selectors {
		selectors[name] = s.Snapshot()
	}
	return &View{
		Page:      p.name,
		Overlay:   p.overlays.Snapshot(),
		Selectors: selectors,
		Query:     p.query,
		Data:      data,
	}
}

// track 把動作綁到頁面的生命週期：卸載時取消，完成時在工作階段鎖內執行 fn
func track[T any](p *basePage, a *viewstate.Action[T], fn func(viewstate.Status)) *viewstate.Action[T] {
	p.cancels = append(p.cancels, a.Cancel)
	a.OnSettle(func(status viewstate.Status) {
		p.env.mu.Lock()
		defer p.env.mu.Unlock()
		if p.ctx.Err() != nil {
			return
		}
		if fn != nil {
			fn(status)
		}
		p.env.changed(p.name)
	})
	return a
}

// bind 解碼 JSON 內容並依 validate 標籤檢查。空內容視為零值。
func bind[T any](body json.RawMessage) (T, error) {
	var out T
	if len(strings.TrimSpace(string(body))) > 0 {
		if err := json.Unmarshal(body, &out); err != nil {
			return out, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
	}
	if err := viewstate.Validate(out); err != nil {
		var verr *viewstate.ValidationError
		if errors.As(err, &verr) {
			return out, verr
		}
		return out, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return out, nil
}

// idPayload 是只帶一個 id 的動作內容
type idPayload struct {
	ID int `json:"id" validate:"required" label:"ID"`
}

// namePayload 是只帶一段文字的動作內容
type namePayload struct {
	Name string `json:"name"`
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
