package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"d23_web/internal/repository"
	"d23_web/pkg/config"
)

type pageBuilder func(ctx context.Context, e *env) (Page, error)

// Pages 依名稱建立頁面狀態
type Pages struct {
	provider repository.Provider
	sim      config.SimConfig
	log      *slog.Logger
	builders map[string]pageBuilder
}

func NewPages(provider repository.Provider, sim config.SimConfig, log *slog.Logger) *Pages {
	return &Pages{
		provider: provider,
		sim:      sim,
		log:      log,
		builders: map[string]pageBuilder{
			PageLanding:             newLandingPage,
			PageDashboard:           newDashboardPage,
			PageMyDebates:           newMyDebatesPage,
			PageTournaments:         newTournamentsPage,
			PageRankings:            newRankingsPage,
			PageSchedule:            newSchedulePage,
			PageSettings:            newSettingsPage,
			PageTopicDiscussion:     newDiscussionPage,
			PageAIDebateRoom:        newAIRoomPage,
			PageGroupDebateRoom:     newGroupRoomPage,
			PageOnboarding:          newOnboardingPage,
			PageRegistrationSuccess: newRegistrationPage,
		},
	}
}

func (p *Pages) Known(name string) bool {
	_, ok := p.builders[name]
	return ok
}

// Names 回傳所有頁面名稱
func (p *Pages) Names() []string {
	names := make([]string, 0, len(p.builders))
	for name := range p.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p *Pages) build(ctx context.Context, name string, e *env) (Page, error) {
	builder, ok := p.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPage, name)
	}
	page, err := builder(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("mount %s: %w", name, err)
	}
	e.log.Debug("page mounted")
	return page, nil
}
