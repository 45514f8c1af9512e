package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"d23_web/internal/chart"
	"d23_web/internal/models"
	"d23_web/internal/search"
	"d23_web/internal/viewstate"
)

const (
	overlayNotifications = "notifications"
	overlayUserMenu      = "userMenu"
	overlayMatching      = "matching"
	overlayRoom          = "room"
	overlayAI            = "ai"
	overlayTimeRange     = "timeRange"
	overlayConfirmation  = "confirmation"
)

type dashboardPage struct {
	*basePage

	tab       *viewstate.Selector
	timeRange *viewstate.Selector

	stats         models.PerformanceStats
	notifications []models.Notification
	upcoming      []models.UpcomingDebate
	topics        []models.Topic
	rooms         []models.Room
	opponents     []models.Opponent

	matchmaking  *viewstate.Action[[]models.Opponent]
	roomCreation *viewstate.Action[string]
}

func newDashboardPage(ctx context.Context, e *env) (Page, error) {
	p := &dashboardPage{
		basePage: newBasePage(PageDashboard, e,
			viewstate.OverlaySpec{Key: overlayNotifications},
			viewstate.OverlaySpec{Key: overlayUserMenu},
			viewstate.OverlaySpec{Key: overlayMatching, Policy: viewstate.RetainOnClose, Fields: viewstate.Form{
				"category":   "Technology",
				"topic":      "",
				"difficulty": "Intermediate",
				"date":       "2025-03-25",
				"time":       "15:00",
				"format":     "Oxford Style",
			}},
			viewstate.OverlaySpec{Key: overlayRoom},
			viewstate.OverlaySpec{Key: overlayAI, Policy: viewstate.RetainOnClose, Fields: viewstate.Form{
				"title":     "",
				"level":     "Beginner",
				"topic":     "Technology",
				"format":    "Structured",
				"timeLimit": "30 min",
			}},
			viewstate.OverlaySpec{Key: overlayTimeRange},
			viewstate.OverlaySpec{Key: overlayConfirmation},
		),
	}
	p.tab = p.selector("tab", "overview", "debates", "analytics", "community")
	p.timeRange = p.selector("timeRange", chart.RangeSixMonths, chart.RangeThreeMonths, chart.RangeYear)

	stats, err := e.provider.Stats(ctx)
	if err != nil {
		return nil, err
	}
	p.stats = stats.Performance
	if p.notifications, err = e.provider.ListNotifications(ctx); err != nil {
		return nil, err
	}
	if p.upcoming, err = e.provider.ListUpcomingDebates(ctx); err != nil {
		return nil, err
	}
	if p.topics, err = e.provider.ListRecommendedTopics(ctx); err != nil {
		return nil, err
	}
	if p.rooms, err = e.provider.ListRooms(ctx); err != nil {
		return nil, err
	}

	p.matchmaking = track(p.basePage, viewstate.NewAction[[]models.Opponent](e.sim.MatchmakingDelay), p.matchmakingSettled)
	p.roomCreation = track(p.basePage, viewstate.NewAction[string](e.sim.RoomCreationDelay), p.roomCreated)

	p.handle("markAllRead", p.markAllRead)
	p.handle("deleteNotification", p.deleteNotification)
	p.handle("setTimeRange", p.setTimeRange)
	p.handle("findOpponents", p.findOpponents)
	p.handle("addOpponent", p.addOpponent)
	p.handle("selectOpponent", p.selectOpponent)
	p.handle("joinRoom", p.joinRoom)
	p.handle("createRoom", p.createRoom)
	p.handle("startAIDebate", p.startAIDebate)
	p.handle("participate", p.participate)
	p.handle("confirmParticipation", p.confirmParticipation)
	return p, nil
}

type dashboardData struct {
	Stats           models.PerformanceStats                  `json:"stats"`
	Notifications   []models.Notification                    `json:"notifications"`
	Unread          int                                      `json:"unread"`
	UpcomingDebates []models.UpcomingDebate                  `json:"upcomingDebates"`
	Topics          []models.Topic                           `json:"recommendedTopics"`
	Rooms           []models.Room                            `json:"rooms"`
	Opponents       []models.Opponent                        `json:"opponents"`
	Matchmaking     viewstate.ActionState[[]models.Opponent] `json:"matchmaking"`
	RoomCreation    viewstate.ActionState[string]            `json:"roomCreation"`
	Selected        *models.UpcomingDebate                   `json:"selectedDebate,omitempty"`
	Chart           chart.Option                             `json:"chart"`
}

func (p *dashboardPage) View(ctx context.Context) (*View, error) {
	unread := 0
	for _, n := range p.notifications {
		if !n.Read {
			unread++
		}
	}
	selected, _ := p.overlays.Payload(overlayConfirmation).(*models.UpcomingDebate)

	return p.view(dashboardData{
		Stats:           p.stats,
		Notifications:   p.notifications,
		Unread:          unread,
		UpcomingDebates: p.upcoming,
		Topics:          p.topics,
		Rooms:           p.visibleRooms(),
		Opponents:       p.opponents,
		Matchmaking:     p.matchmaking.Snapshot(),
		RoomCreation:    p.roomCreation.Snapshot(),
		Selected:        selected,
		Chart:           chart.DashboardPerformance(p.timeRange.Active()),
	}), nil
}

func (p *dashboardPage) visibleRooms() []models.Room {
	return search.Filter(p.rooms,
		search.Text(p.query.Search, func(r models.Room) []string { return []string{r.Name, r.Topic} }),
		search.Equals(p.query.Filter("format"), "all", func(r models.Room) string { return r.Format }),
		search.Equals(p.query.Filter("difficulty"), "all", func(r models.Room) string { return r.Difficulty }),
	)
}

func (p *dashboardPage) markAllRead(ctx context.Context, _ json.RawMessage) error {
	for i := range p.notifications {
		p.notifications[i].Read = true
	}
	return nil
}

func (p *dashboardPage) deleteNotification(ctx context.Context, body json.RawMessage) error {
	in, err := bind[idPayload](body)
	if err != nil {
		return err
	}
	kept := p.notifications[:0:0]
	for _, n := range p.notifications {
		if n.ID != in.ID {
			kept = append(kept, n)
		}
	}
	p.notifications = kept
	return nil
}

func (p *dashboardPage) setTimeRange(ctx context.Context, body json.RawMessage) error {
	in, err := bind[namePayload](body)
	if err != nil {
		return err
	}
	p.timeRange.Select(in.Name)
	p.overlays.CloseKey(overlayTimeRange)
	return nil
}

// findOpponents 開始模擬配對，延遲後得到固定的候選對手
func (p *dashboardPage) findOpponents(ctx context.Context, _ json.RawMessage) error {
	provider := p.env.provider
	pageCtx := p.ctx
	return p.matchmaking.Start(func() ([]models.Opponent, error) {
		return provider.ListMatchCandidates(pageCtx)
	})
}

func (p *dashboardPage) matchmakingSettled(status viewstate.Status) {
	if status != viewstate.StatusDone {
		return
	}
	opponents, _ := p.matchmaking.Result()
	p.opponents = append([]models.Opponent(nil), opponents...)
}

func (p *dashboardPage) addOpponent(ctx context.Context, body json.RawMessage) error {
	in, err := bind[namePayload](body)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil
	}
	p.opponents = append(p.opponents, models.Opponent{
		ID:       len(p.opponents) + 1,
		Name:     name,
		Initials: initials(name),
		Rating:   4.5,
		Wins:     rand.Intn(100) + 50,
		Debates:  rand.Intn(50) + 100,
	})
	return nil
}

// initials 取每個單字的第一個字母並轉為大寫
func initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			b.WriteRune(r)
			break
		}
	}
	return strings.ToUpper(b.String())
}

func (p *dashboardPage) selectOpponent(ctx context.Context, body json.RawMessage) error {
	in, err := bind[namePayload](body)
	if err != nil {
		return err
	}
	p.overlays.CloseKey(overlayMatching)
	if in.Name != "" {
		p.env.toast(fmt.Sprintf("Debate request sent to %s", in.Name))
	}
	return nil
}

func (p *dashboardPage) joinRoom(ctx context.Context, body json.RawMessage) error {
	in, err := bind[idPayload](body)
	if err != nil {
		return err
	}
	for _, r := range p.rooms {
		if r.ID == in.ID {
			p.overlays.CloseKey(overlayRoom)
			p.env.toast(fmt.Sprintf("Joined %s", r.Name))
			return nil
		}
	}
	return fmt.Errorf("room %d: %w", in.ID, ErrNotFound)
}

func (p *dashboardPage) createRoom(ctx context.Context, _ json.RawMessage) error {
	return p.roomCreation.Start(func() (string, error) {
		return "/group-debate-room", nil
	})
}

func (p *dashboardPage) roomCreated(status viewstate.Status) {
	if status != viewstate.StatusDone {
		return
	}
	path, _ := p.roomCreation.Result()
	p.overlays.CloseKey(overlayRoom)
	if err := p.env.nav.Navigate(path); err != nil {
		p.env.log.Error("navigate after room creation", "error", err)
	}
}

func (p *dashboardPage) startAIDebate(ctx context.Context, _ json.RawMessage) error {
	p.overlays.CloseKey(overlayAI)
	return p.env.nav.Navigate("/ai-debate-room")
}

func (p *dashboardPage) participate(ctx context.Context, body json.RawMessage) error {
	in, err := bind[idPayload](body)
	if err != nil {
		return err
	}
	for i := range p.upcoming {
		if p.upcoming[i].ID == in.ID {
			debate := p.upcoming[i]
			return p.overlays.OpenWith(overlayConfirmation, &debate)
		}
	}
	return fmt.Errorf("upcoming debate %d: %w", in.ID, ErrNotFound)
}

func (p *dashboardPage) confirmParticipation(ctx context.Context, _ json.RawMessage) error {
	debate, ok := p.overlays.Payload(overlayConfirmation).(*models.UpcomingDebate)
	if !ok {
		return fmt.Errorf("%w: %s", viewstate.ErrOverlayClosed, overlayConfirmation)
	}
	p.overlays.CloseKey(overlayConfirmation)
	p.env.toast(fmt.Sprintf("You're registered for %s", debate.Name))
	return nil
}
