package service

import (
	"context"

	"d23_web/internal/chart"
	"d23_web/internal/models"
	"d23_web/internal/search"
	"d23_web/internal/viewstate"
)

// debateFormats 將格式篩選的 id 對應到顯示名稱
var debateFormats = map[string]string{
	"oxford":        "Oxford Style",
	"cross":         "Cross-Examination",
	"lincoln":       "Lincoln-Douglas",
	"parliamentary": "Parliamentary",
}

type myDebatesPage struct {
	*basePage

	status  *viewstate.Selector
	format  *viewstate.Selector
	debates []models.Debate
	stats   models.DebateStats
}

func newMyDebatesPage(ctx context.Context, e *env) (Page, error) {
	p := &myDebatesPage{basePage: newBasePage(PageMyDebates, e)}
	p.status = p.selector("status", "all", string(models.DebateUpcoming), string(models.DebateOngoing), string(models.DebateCompleted))
	p.format = p.selector("format", "all", "oxford", "cross", "lincoln", "parliamentary")

	var err error
	if p.debates, err = e.provider.ListDebates(ctx); err != nil {
		return nil, err
	}
	stats, err := e.provider.Stats(ctx)
	if err != nil {
		return nil, err
	}
	p.stats = stats.Debates
	return p, nil
}

type myDebatesData struct {
	Debates []models.Debate    `json:"debates"`
	Stats   models.DebateStats `json:"stats"`
	Chart   chart.Option       `json:"chart"`
}

func (p *myDebatesPage) View(ctx context.Context) (*View, error) {
	format := debateFormats[p.format.Active()]
	if format == "" {
		format = "all"
	}
	return p.view(myDebatesData{
		Debates: search.Filter(p.debates,
			search.Text(p.query.Search, func(d models.Debate) []string { return []string{d.Topic, d.Opponent} }),
			search.Equals(p.status.Active(), "all", func(d models.Debate) string { return string(d.Status) }),
			search.Equals(format, "all", func(d models.Debate) string { return d.Format }),
			search.DateRange(p.query.Start, p.query.End, func(d models.Debate) string { return d.Date }),
		),
		Stats: p.stats,
		Chart: chart.DebateScores(),
	}), nil
}
