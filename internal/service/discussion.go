package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"d23_web/internal/chart"
	"d23_web/internal/models"
	"d23_web/internal/viewstate"
)

const (
	overlaySettings    = "settings"
	overlayAddResource = "addResource"

	// speakingTime 是每個階段的發言時間
	speakingTime = 300 * time.Second
)

type discussionPage struct {
	*basePage

	mountedAt  time.Time
	phase      string
	speaker    string
	discussion models.Discussion

	input          string
	muted          bool
	handRaised     bool
	showVoting     bool
	showResources  bool
	resourceErrors map[string]string
}

func newDiscussionPage(ctx context.Context, e *env) (Page, error) {
	p := &discussionPage{
		basePage: newBasePage(PageTopicDiscussion, e,
			viewstate.OverlaySpec{Key: overlaySettings},
			viewstate.OverlaySpec{Key: overlayAddResource, Policy: viewstate.ClearOnClose, Fields: viewstate.Form{
				"title":       "",
				"type":        "",
				"source":      "",
				"description": "",
			}},
		),
		mountedAt:     e.now(),
		phase:         "Opening Arguments",
		speaker:       "Dr. Sarah Chen",
		showResources: true,
	}

	p.overlays.OnClose(overlayAddResource, func() { p.resourceErrors = nil })

	discussion, err := e.provider.GetDiscussion(ctx)
	if err != nil {
		return nil, err
	}
	p.discussion = *discussion

	p.handle("toggleMute", func(context.Context, json.RawMessage) error {
		p.muted = !p.muted
		return nil
	})
	p.handle("toggleHand", func(context.Context, json.RawMessage) error {
		p.handRaised = !p.handRaised
		return nil
	})
	p.handle("toggleVoting", func(context.Context, json.RawMessage) error {
		p.showVoting = !p.showVoting
		return nil
	})
	p.handle("toggleResources", func(context.Context, json.RawMessage) error {
		p.showResources = !p.showResources
		return nil
	})
	p.handle("setInput", p.setInput)
	p.handle("sendMessage", p.sendMessage)
	p.handle("submitResource", p.submitResource)
	return p, nil
}

type discussionData struct {
	Topic          string                     `json:"topic"`
	Phase          string                     `json:"phase"`
	CurrentSpeaker string                     `json:"currentSpeaker"`
	RemainingTime  int                        `json:"remainingTime"`
	Clock          string                     `json:"clock"`
	Messages       []models.DiscussionMessage `json:"messages"`
	Participants   []models.Panelist          `json:"participants"`
	Resources      []models.Resource          `json:"resources"`
	Input          string                     `json:"input"`
	Muted          bool                       `json:"muted"`
	HandRaised     bool                       `json:"handRaised"`
	ShowVoting     bool                       `json:"showVotingPanel"`
	ShowResources  bool                       `json:"showResourcePanel"`
	ResourceErrors map[string]string          `json:"resourceErrors,omitempty"`
	Chart          *chart.Option              `json:"chart,omitempty"`
}

func (p *discussionPage) View(ctx context.Context) (*View, error) {
	remaining := countdown(p.mountedAt, p.env.now(), speakingTime)
	data := discussionData{
		Topic:          p.discussion.Topic,
		Phase:          p.phase,
		CurrentSpeaker: p.speaker,
		RemainingTime:  remaining,
		Clock:          clock(remaining),
		Messages:       p.discussion.Messages,
		Participants:   p.discussion.Panelists,
		Resources:      p.discussion.Resources,
		Input:          p.input,
		Muted:          p.muted,
		HandRaised:     p.handRaised,
		ShowVoting:     p.showVoting,
		ShowResources:  p.showResources,
		ResourceErrors: p.resourceErrors,
	}
	if p.showVoting {
		voting := chart.Voting()
		data.Chart = &voting
	}
	return p.view(data), nil
}

// countdown 回傳從 start 起算 total 秒的剩餘秒數（無條件進位），最小為 0
func countdown(start, now time.Time, total time.Duration) int {
	left := total - now.Sub(start)
	if left < 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}

// clock 將秒數格式化為 m:ss
func clock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

type textPayload struct {
	Text string `json:"text"`
}

func (p *discussionPage) setInput(ctx context.Context, body json.RawMessage) error {
	in, err := bind[textPayload](body)
	if err != nil {
		return err
	}
	p.input = in.Text
	return nil
}

// sendMessage 送出輸入框的內容，空白內容不做事
func (p *discussionPage) sendMessage(ctx context.Context, body json.RawMessage) error {
	in, err := bind[textPayload](body)
	if err != nil {
		return err
	}
	text := strings.TrimSpace(in.Text)
	if text == "" {
		text = strings.TrimSpace(p.input)
	}
	if text == "" {
		return nil
	}

	next := 1
	for _, m := range p.discussion.Messages {
		if m.ID >= next {
			next = m.ID + 1
		}
	}
	p.discussion.Messages = append(p.discussion.Messages, models.DiscussionMessage{
		ID:        next,
		User:      "You",
		Role:      "Pro",
		Content:   text,
		Timestamp: p.env.now().Format("15:04"),
		Type:      "argument",
	})
	p.input = ""
	return nil
}

type resourceForm struct {
	Title       string `form:"title" validate:"required" label:"Title"`
	Type        string `form:"type" validate:"required" label:"Resource type"`
	Source      string `form:"source" validate:"required" label:"Source"`
	Description string `form:"description" validate:"required" label:"Description"`
}

// submitResource 檢查新增資料表單，全部欄位都必填
func (p *discussionPage) submitResource(ctx context.Context, _ json.RawMessage) error {
	if !p.overlays.IsOpen(overlayAddResource) {
		return fmt.Errorf("%w: %s", viewstate.ErrOverlayClosed, overlayAddResource)
	}
	draft, err := p.overlays.Form(overlayAddResource)
	if err != nil {
		return err
	}
	var form resourceForm
	if err := viewstate.Decode(draft, &form); err != nil {
		return err
	}
	form.Title = strings.TrimSpace(form.Title)
	form.Source = strings.TrimSpace(form.Source)
	form.Description = strings.TrimSpace(form.Description)
	if err := viewstate.Validate(&form); err != nil {
		var verr *viewstate.ValidationError
		if errors.As(err, &verr) {
			p.resourceErrors = verr.Fields
		}
		return err
	}

	p.discussion.Resources = append(p.discussion.Resources, models.Resource{
		Title:       form.Title,
		Type:        form.Type,
		Source:      form.Source,
		Description: form.Description,
		Added:       "Just now",
	})
	p.overlays.CloseKey(overlayAddResource)
	return nil
}
