package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"d23_web/internal/chart"
	"d23_web/internal/models"
	"d23_web/internal/search"
	"d23_web/internal/viewstate"
)

const (
	overlayCreate   = "create"
	overlayRegister = "register"

	newTournamentBanner = "https://public.readdy.ai/ai/img_res/31970d23a436bc8380f77cc87c0af10b.jpg"
	defaultMaxPlayers   = 32
)

var defaultPrizePool = models.MustPrize("$5,000")

var tournamentFormats = map[string]string{
	"single":      "Single Elimination",
	"double":      "Double Elimination",
	"swiss":       "Swiss System",
	"round-robin": "Round Robin",
}

var skillLevels = map[string]string{
	"beginner":     "Beginner",
	"intermediate": "Intermediate",
	"advanced":     "Advanced",
	"professional": "Professional",
}

// tournamentForm 是建立錦標賽對話框的表單
type tournamentForm struct {
	Name                 string `form:"name" label:"Tournament name" validate:"required"`
	Description          string `form:"description" label:"Description" validate:"required"`
	Format               string `form:"format" label:"Format" validate:"omitempty,oneof=single double swiss round-robin"`
	StartDate            string `form:"startDate" label:"Start date" validate:"required,datetime=2006-01-02"`
	EndDate              string `form:"endDate" label:"End date" validate:"required,datetime=2006-01-02"`
	RegistrationDeadline string `form:"registrationDeadline" label:"Registration deadline" validate:"omitempty,datetime=2006-01-02"`
	PrizePool            string `form:"prizePool" label:"Prize pool"`
	MaxParticipants      string `form:"maxParticipants" label:"Max participants" validate:"omitempty,number"`
	SkillLevel           string `form:"skillLevel" label:"Skill level" validate:"omitempty,oneof=beginner intermediate advanced professional"`
}

type tournamentsPage struct {
	*basePage

	filter   *viewstate.Selector
	active   []models.Tournament
	upcoming []models.Tournament
	errors   map[string]string
}

func newTournamentsPage(ctx context.Context, e *env) (Page, error) {
	p := &tournamentsPage{
		basePage: newBasePage(PageTournaments, e,
			viewstate.OverlaySpec{Key: overlayCreate, Policy: viewstate.RetainOnClose, Fields: viewstate.Form{
				"name":                 "",
				"description":          "",
				"format":               "single",
				"startDate":            "",
				"endDate":              "",
				"registrationDeadline": "",
				"prizePool":            "",
				"maxParticipants":      "",
				"skillLevel":           "intermediate",
			}},
			viewstate.OverlaySpec{Key: overlayRegister},
		),
	}
	p.filter = p.selector("filter", "all", "active", "upcoming")
	// 草稿保留，但錯誤訊息只屬於這次開啟
	p.overlays.OnClose(overlayCreate, func() { p.errors = nil })

	var err error
	if p.active, err = e.provider.ListTournaments(ctx, models.TournamentActive); err != nil {
		return nil, err
	}
	if p.upcoming, err = e.provider.ListTournaments(ctx, models.TournamentUpcoming); err != nil {
		return nil, err
	}

	p.handle("create", p.create)
	p.handle("register", p.register)
	p.handle("confirmRegistration", p.confirmRegistration)
	p.handle("resetFilters", p.resetFilters)
	return p, nil
}

type tournamentsData struct {
	Active   []models.Tournament `json:"active"`
	Upcoming []models.Tournament `json:"upcoming"`
	Selected *models.Tournament  `json:"selected,omitempty"`
	Errors   map[string]string   `json:"errors,omitempty"`
	Bracket  chart.Option        `json:"bracket"`
}

func (p *tournamentsPage) View(ctx context.Context) (*View, error) {
	data := tournamentsData{
		Errors:  p.errors,
		Bracket: chart.TournamentBracket(),
	}
	if !p.filter.Is("upcoming") {
		data.Active = p.visible(p.active)
	}
	if !p.filter.Is("active") {
		data.Upcoming = p.visible(p.upcoming)
	}
	data.Selected, _ = p.overlays.Payload(overlayRegister).(*models.Tournament)
	return p.view(data), nil
}

func (p *tournamentsPage) visible(list []models.Tournament) []models.Tournament {
	return search.Filter(list,
		search.Text(p.query.Search, func(t models.Tournament) []string { return []string{t.Name, t.Format} }),
		search.Equals(p.query.Filter("skillLevel"), "all", func(t models.Tournament) string { return t.SkillLevel }),
		search.DateRange(p.query.Start, p.query.End, func(t models.Tournament) string { return t.Deadline }),
	)
}

func (p *tournamentsPage) create(ctx context.Context, _ json.RawMessage) error {
	draft, err := p.overlays.Form(overlayCreate)
	if err != nil {
		return err
	}
	if !p.overlays.IsOpen(overlayCreate) {
		return fmt.Errorf("%w: %s", viewstate.ErrOverlayClosed, overlayCreate)
	}

	t, err := p.buildTournament(draft)
	if err != nil {
		var verr *viewstate.ValidationError
		if errors.As(err, &verr) {
			p.errors = verr.Fields
		}
		return err
	}

	p.active = append([]models.Tournament{t}, p.active...)
	p.overlays.ResetForm(overlayCreate)
	p.overlays.CloseKey(overlayCreate)
	p.env.toast("Tournament created successfully!")
	return nil
}

func (p *tournamentsPage) buildTournament(draft viewstate.Form) (models.Tournament, error) {
	var f tournamentForm
	if err := viewstate.Decode(draft, &f); err != nil {
		return models.Tournament{}, err
	}
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)

	verr := &viewstate.ValidationError{}
	if err := viewstate.Validate(&f); err != nil {
		if !errors.As(err, &verr) {
			return models.Tournament{}, err
		}
	}
	if verr.Fields["startDate"] == "" && verr.Fields["endDate"] == "" && f.EndDate < f.StartDate {
		verr.Add("endDate", "End date must not be before start date")
	}

	prize := defaultPrizePool
	if strings.TrimSpace(f.PrizePool) != "" {
		parsed, err := models.ParsePrize(f.PrizePool)
		if err != nil || parsed.IsNegative() {
			verr.Add("prizePool", "Prize pool must be an amount such as $5,000")
		}
		prize = parsed
	}

	maxPlayers := defaultMaxPlayers
	if f.MaxParticipants != "" {
		if n, err := strconv.Atoi(f.MaxParticipants); err == nil && n > 0 {
			maxPlayers = n
		}
	}
	if err := verr.OrNil(); err != nil {
		return models.Tournament{}, err
	}

	format := tournamentFormats[f.Format]
	if format == "" {
		format = tournamentFormats["single"]
	}
	skill := skillLevels[f.SkillLevel]
	if skill == "" {
		skill = skillLevels["intermediate"]
	}

	return models.Tournament{
		ID:              p.nextID(),
		Kind:            models.TournamentActive,
		Name:            f.Name,
		Description:     f.Description,
		Banner:          newTournamentBanner,
		Format:          format,
		PrizePool:       prize,
		MaxParticipants: maxPlayers,
		StartDate:       f.StartDate,
		Deadline:        f.EndDate,
		SkillLevel:      skill,
		Status:          "Registration Open",
		JustCreated:     true,
		Rounds:          models.DefaultRounds(),
	}, nil
}

// nextID 以目前的毫秒時間作為 id，與既有紀錄衝突時遞增
func (p *tournamentsPage) nextID() int64 {
	used := make(map[int64]bool, len(p.active)+len(p.upcoming))
	for _, t := range p.active {
		used[t.ID] = true
	}
	for _, t := range p.upcoming {
		used[t.ID] = true
	}
	id := p.env.now().UnixMilli()
	for used[id] {
		id++
	}
	return id
}

func (p *tournamentsPage) find(id int64) (*models.Tournament, bool) {
	for _, list := range [][]models.Tournament{p.active, p.upcoming} {
		for i := range list {
			if list[i].ID == id {
				t := list[i]
				return &t, true
			}
		}
	}
	return nil, false
}

func (p *tournamentsPage) register(ctx context.Context, body json.RawMessage) error {
	in, err := bind[struct {
		ID int64 `json:"id" validate:"required" label:"Tournament"`
	}](body)
	if err != nil {
		return err
	}
	t, ok := p.find(in.ID)
	if !ok {
		return fmt.Errorf("tournament %d: %w", in.ID, ErrNotFound)
	}
	return p.overlays.OpenWith(overlayRegister, t)
}

func (p *tournamentsPage) confirmRegistration(ctx context.Context, _ json.RawMessage) error {
	t, ok := p.overlays.Payload(overlayRegister).(*models.Tournament)
	if !ok {
		return fmt.Errorf("%w: %s", viewstate.ErrOverlayClosed, overlayRegister)
	}
	p.overlays.CloseKey(overlayRegister)
	p.env.toast(fmt.Sprintf("Registered for %s", t.Name))
	return nil
}

// resetFilters 清除搜尋、技能等級與日期範圍，保留列表篩選
func (p *tournamentsPage) resetFilters(ctx context.Context, _ json.RawMessage) error {
	p.query = Query{}
	return nil
}
