package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"d23_web/internal/chart"
	"d23_web/internal/models"
	"d23_web/internal/repository"
	"d23_web/internal/search"
	"d23_web/internal/viewstate"
)

const overlayProfile = "profile"

type rankingsPage struct {
	*basePage

	period   *viewstate.Selector
	category *viewstate.Selector
	debaters []models.Debater
}

func newRankingsPage(ctx context.Context, e *env) (Page, error) {
	p := &rankingsPage{
		basePage: newBasePage(PageRankings, e, viewstate.OverlaySpec{Key: overlayProfile}),
	}
	p.period = p.selector("time", "weekly", "monthly", "allTime")
	p.category = p.selector("category", "all", "technology", "politics", "economics", "society")

	var err error
	if p.debaters, err = e.provider.ListDebaters(ctx); err != nil {
		return nil, err
	}

	p.handle("viewProfile", p.viewProfile)
	return p, nil
}

type rankingsData struct {
	Debaters []models.Debater `json:"debaters"`
	Selected *models.Debater  `json:"selected,omitempty"`
	Chart    *chart.Option    `json:"chart,omitempty"`
}

func (p *rankingsPage) View(ctx context.Context) (*View, error) {
	data := rankingsData{
		Debaters: search.Filter(p.debaters,
			search.Text(p.query.Search, func(d models.Debater) []string { return []string{d.Name, d.Title} }),
			search.Equals(p.category.Active(), "all", func(d models.Debater) string { return d.Category }),
		),
	}
	if d, ok := p.overlays.Payload(overlayProfile).(*models.Debater); ok {
		trend := chart.RankingPerformance()
		data.Selected = d
		data.Chart = &trend
	}
	return p.view(data), nil
}

func (p *rankingsPage) viewProfile(ctx context.Context, body json.RawMessage) error {
	in, err := bind[idPayload](body)
	if err != nil {
		return err
	}
	d, err := p.env.provider.GetDebater(ctx, in.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("debater %d: %w", in.ID, ErrNotFound)
	}
	if err != nil {
		return err
	}
	return p.overlays.OpenWith(overlayProfile, d)
}
