package service

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownRoute = errors.New("unknown route")

// Route 是前端的一個頁面路徑
type Route struct {
	Path string `json:"path"`
	Page string `json:"page"`
}

// routes 是固定的導覽路徑表，key 為路徑
var routes = map[string]string{
	"/":                     PageLanding,
	"/dashboard":            PageDashboard,
	"/my-debates":           PageMyDebates,
	"/tournaments":          PageTournaments,
	"/rankings":             PageRankings,
	"/schedule":             PageSchedule,
	"/settings":             PageSettings,
	"/topic-discussion":     PageTopicDiscussion,
	"/ai-debate-room":       PageAIDebateRoom,
	"/group-debate-room":    PageGroupDebateRoom,
	"/onboarding":           PageOnboarding,
	"/registration-success": PageRegistrationSuccess,
}

// Routes 依路徑排序回傳路徑表
func Routes() []Route {
	out := make([]Route, 0, len(routes))
	for path, page := range routes {
		out = append(out, Route{Path: path, Page: page})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Navigator 取代瀏覽器的 location 轉址
type Navigator interface {
	Navigate(path string) error
}

// navigator 記錄工作階段最後的位置並發出 navigate 事件
type navigator struct {
	sessionID string
	hub       *Hub
	location  string
}

func (n *navigator) Navigate(path string) error {
	if _, ok := routes[path]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRoute, path)
	}
	n.location = path
	n.hub.Publish(n.sessionID, Event{Type: EventNavigate, Path: path})
	return nil
}
