package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"d23_web/internal/chart"
	"d23_web/internal/models"
	"d23_web/internal/viewstate"
)

const (
	overlayAvailability = "availability"
	overlayCalendarSync = "calendarSync"
	overlayConflict     = "conflict"

	calendarCells = 42 // 6 週 x 7 天
)

type schedulePage struct {
	*basePage

	mode         *viewstate.Selector
	month        time.Time
	debates      []models.ScheduledDebate
	availability models.Availability
	stats        []models.StatCard
}

func newSchedulePage(ctx context.Context, e *env) (Page, error) {
	p := &schedulePage{
		basePage: newBasePage(PageSchedule, e,
			viewstate.OverlaySpec{Key: overlayAvailability, Policy: viewstate.RetainOnClose},
			viewstate.OverlaySpec{Key: overlayCalendarSync},
			viewstate.OverlaySpec{Key: overlayConflict},
		),
		month: firstOfMonth(e.now()),
	}
	p.mode = p.selector("view", "month", "week")

	var err error
	if p.debates, err = e.provider.ListScheduledDebates(ctx); err != nil {
		return nil, err
	}
	if p.availability, err = e.provider.Availability(ctx); err != nil {
		return nil, err
	}
	stats, err := e.provider.Stats(ctx)
	if err != nil {
		return nil, err
	}
	p.stats = stats.Availability

	p.handle("previousMonth", p.previousMonth)
	p.handle("nextMonth", p.nextMonth)
	p.handle("togglePeriod", p.togglePeriod)
	p.handle("setAvailability", p.setAvailability)
	p.handle("saveAvailability", p.saveAvailability)
	p.handle("showConflict", p.showConflict)
	return p, nil
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// CalendarDay 是月曆上的一格，Day 為 0 表示空白格
type CalendarDay struct {
	Day     int    `json:"day,omitempty"`
	Date    string `json:"date,omitempty"`
	Empty   bool   `json:"isEmpty"`
	Debates []int  `json:"debates,omitempty"`
}

// calendar 產生 42 格的月曆，月初之前與月底之後補空白格
func (p *schedulePage) calendar() []CalendarDay {
	byDate := make(map[string][]int)
	for _, d := range p.debates {
		byDate[d.Date] = append(byDate[d.Date], d.ID)
	}

	days := make([]CalendarDay, 0, calendarCells)
	for i := 0; i < int(p.month.Weekday()); i++ {
		days = append(days, CalendarDay{Empty: true})
	}
	for day := p.month; day.Month() == p.month.Month(); day = day.AddDate(0, 0, 1) {
		date := day.Format(time.DateOnly)
		days = append(days, CalendarDay{Day: day.Day(), Date: date, Debates: byDate[date]})
	}
	for len(days) < calendarCells {
		days = append(days, CalendarDay{Empty: true})
	}
	return days
}

type scheduleData struct {
	Month        string                   `json:"month"`
	Calendar     []CalendarDay            `json:"calendar"`
	Debates      []models.ScheduledDebate `json:"debates"`
	Availability models.Availability      `json:"availability"`
	Stats        []models.StatCard        `json:"stats"`
	Conflict     *models.ScheduledDebate  `json:"conflict,omitempty"`
	Chart        chart.Option             `json:"chart"`
}

func (p *schedulePage) View(ctx context.Context) (*View, error) {
	conflict, _ := p.overlays.Payload(overlayConflict).(*models.ScheduledDebate)
	return p.view(scheduleData{
		Month:        p.month.Format("January 2006"),
		Calendar:     p.calendar(),
		Debates:      p.debates,
		Availability: p.availability,
		Stats:        p.stats,
		Conflict:     conflict,
		Chart:        chart.Availability(),
	}), nil
}

func (p *schedulePage) previousMonth(ctx context.Context, _ json.RawMessage) error {
	p.month = p.month.AddDate(0, -1, 0)
	return nil
}

func (p *schedulePage) nextMonth(ctx context.Context, _ json.RawMessage) error {
	p.month = p.month.AddDate(0, 1, 0)
	return nil
}

type periodToggle struct {
	Day    string `json:"day" label:"Day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Period string `json:"period" label:"Period" validate:"required,oneof=morning afternoon evening"`
}

// togglePeriod 切換某一天的時段，已選取則移除，否則加入
func (p *schedulePage) togglePeriod(ctx context.Context, body json.RawMessage) error {
	in, err := bind[periodToggle](body)
	if err != nil {
		return err
	}
	periods := p.availability.Weekdays[in.Day]
	next := make([]string, 0, len(periods)+1)
	found := false
	for _, period := range periods {
		if period == in.Period {
			found = true
			continue
		}
		next = append(next, period)
	}
	if !found {
		next = append(next, in.Period)
	}
	if p.availability.Weekdays == nil {
		p.availability.Weekdays = make(map[string][]string)
	}
	p.availability.Weekdays[in.Day] = next
	return nil
}

func (p *schedulePage) setAvailability(ctx context.Context, body json.RawMessage) error {
	in, err := bind[struct {
		Timezone      *string `json:"timezone"`
		Notifications *bool   `json:"notifications"`
		AutoSync      *bool   `json:"autoSync"`
	}](body)
	if err != nil {
		return err
	}
	if in.Timezone != nil {
		p.availability.Timezone = *in.Timezone
	}
	if in.Notifications != nil {
		p.availability.Notifications = *in.Notifications
	}
	if in.AutoSync != nil {
		p.availability.AutoSync = *in.AutoSync
	}
	return nil
}

func (p *schedulePage) saveAvailability(ctx context.Context, _ json.RawMessage) error {
	p.overlays.CloseKey(overlayAvailability)
	p.env.log.Info("availability saved", "timezone", p.availability.Timezone)
	p.env.toast("Availability preferences saved")
	return nil
}

func (p *schedulePage) showConflict(ctx context.Context, body json.RawMessage) error {
	in, err := bind[idPayload](body)
	if err != nil {
		return err
	}
	for i := range p.debates {
		if p.debates[i].ID == in.ID {
			d := p.debates[i]
			return p.overlays.OpenWith(overlayConflict, &d)
		}
	}
	return fmt.Errorf("scheduled debate %d: %w", in.ID, ErrNotFound)
}
