package service

import (
	"context"
	"encoding/json"

	"d23_web/internal/chart"
	"d23_web/internal/viewstate"
)

type registrationPage struct {
	*basePage

	confetti *viewstate.Action[struct{}]
}

// newRegistrationPage 掛載時立即開始彩帶計時，時間到後隱藏
func newRegistrationPage(ctx context.Context, e *env) (Page, error) {
	p := &registrationPage{
		basePage: newBasePage(PageRegistrationSuccess, e),
	}
	p.confetti = track(p.basePage, viewstate.NewAction[struct{}](e.sim.ConfettiDuration), nil)
	if err := p.confetti.Start(func() (struct{}, error) { return struct{}{}, nil }); err != nil {
		return nil, err
	}

	p.handle("goToDashboard", func(context.Context, json.RawMessage) error {
		return p.env.nav.Navigate("/dashboard")
	})
	return p, nil
}

type registrationData struct {
	ShowConfetti bool         `json:"showConfetti"`
	Chart        chart.Option `json:"chart"`
}

func (p *registrationPage) View(ctx context.Context) (*View, error) {
	return p.view(registrationData{
		ShowConfetti: p.confetti.Pending(),
		Chart:        chart.CommunityGrowth(),
	}), nil
}
