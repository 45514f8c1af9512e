package repository

import (
	"context"
	"fmt"
	"sync"

	"d23_web/internal/models"
)

// MemoryProvider 將 fixtures 保存在記憶體中
type MemoryProvider struct {
	mu   sync.RWMutex
	data *Fixtures
}

func NewMemoryProvider(f *Fixtures) *MemoryProvider {
	return &MemoryProvider{data: f}
}

func clone[T any](s []T) []T {
	return append([]T(nil), s...)
}

func filter[T any](s []T, keep func(T) bool) []T {
	var out []T
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func (p *MemoryProvider) ListDebates(ctx context.Context) ([]models.Debate, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clone(p.data.Debates), nil
}

func (p *MemoryProvider) ListUpcomingDebates(ctx context.Context) ([]models.UpcomingDebate, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clone(p.data.UpcomingDebates), nil
}

func (p *MemoryProvider) ListRecommendedTopics(ctx context.Context) ([]models.Topic, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clone(p.data.Topics), nil
}

func (p *MemoryProvider) ListRooms(ctx context.Context) ([]models.Room, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	rooms := clone(p.data.Rooms)
	for i := range rooms {
		rooms[i].Participants = clone(rooms[i].Participants)
	}
	return rooms, nil
}

func (p *MemoryProvider) ListTournaments(ctx context.Context, kind models.TournamentKind) ([]models.Tournament, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := filter(p.data.Tournaments, func(t models.Tournament) bool { return t.Kind == kind })
	for i := range out {
		out[i].Rounds = clone(out[i].Rounds)
	}
	return out, nil
}

func (p *MemoryProvider) ListDebaters(ctx context.Context) ([]models.Debater, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clone(p.data.Debaters), nil
}

func (p *MemoryProvider) GetDebater(ctx context.Context, id int) (*models.Debater, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, d := range p.data.Debaters {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, fmt.Errorf("debater %d: %w", id, ErrNotFound)
}

func (p *MemoryProvider) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clone(p.data.Notifications), nil
}

func (p *MemoryProvider) ListScheduledDebates(ctx context.Context) ([]models.ScheduledDebate, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clone(p.data.Scheduled), nil
}

func (p *MemoryProvider) GetDiscussion(ctx context.Context) (*models.Discussion, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	d := p.data.Discussion
	d.Messages = clone(d.Messages)
	d.Panelists = clone(d.Panelists)
	d.Resources = clone(d.Resources)
	return &d, nil
}

func (p *MemoryProvider) ListRoomParticipants(ctx context.Context, kind models.RoomKind) ([]models.RoomParticipant, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return filter(p.data.Participants, func(rp models.RoomParticipant) bool { return rp.Kind == kind }), nil
}

func (p *MemoryProvider) ListChatMessages(ctx context.Context, kind models.RoomKind) ([]models.ChatMessage, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return filter(p.data.ChatMessages, func(m models.ChatMessage) bool { return m.Kind == kind }), nil
}

func (p *MemoryProvider) ListMatchCandidates(ctx context.Context) ([]models.Opponent, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clone(p.data.Opponents), nil
}

func (p *MemoryProvider) ListLoginHistory(ctx context.Context) ([]models.LoginRecord, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clone(p.data.LoginHistory), nil
}

func (p *MemoryProvider) ListPlans(ctx context.Context) ([]models.Plan, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	plans := clone(p.data.Plans)
	for i := range plans {
		plans[i].Features = clone(plans[i].Features)
	}
	return plans, nil
}

func (p *MemoryProvider) Settings(ctx context.Context) (models.Settings, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.data.Settings.Clone(), nil
}

func (p *MemoryProvider) Availability(ctx context.Context) (models.Availability, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.data.Availability.Clone(), nil
}

func (p *MemoryProvider) Stats(ctx context.Context) (models.Stats, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s := p.data.Stats
	s.Availability = clone(s.Availability)
	return s, nil
}
