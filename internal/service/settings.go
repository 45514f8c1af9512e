package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"d23_web/internal/models"
	"d23_web/internal/viewstate"
)

const (
	overlayProfilePhoto = "profilePhoto"
	overlayRemoveLogin  = "removeLogin"
	overlayPrivacy      = "privacy-"
)

// privacyToggles 是需要確認才能變更的隱私開關
var privacyToggles = map[string]func(*models.PrivacySettings) *bool{
	"showRating":    func(s *models.PrivacySettings) *bool { return &s.ShowRating },
	"allowMessages": func(s *models.PrivacySettings) *bool { return &s.AllowMessages },
	"searchable":    func(s *models.PrivacySettings) *bool { return &s.Searchable },
}

type settingsPage struct {
	*basePage

	section  *viewstate.Selector
	settings models.Settings
	logins   []models.LoginRecord
}

func newSettingsPage(ctx context.Context, e *env) (Page, error) {
	p := &settingsPage{
		basePage: newBasePage(PageSettings, e,
			viewstate.OverlaySpec{Key: overlayProfilePhoto},
			viewstate.OverlaySpec{Key: overlayRemoveLogin},
			viewstate.OverlaySpec{Key: overlayPrivacy, Family: true},
		),
	}
	p.section = p.selector("section", "profile", "security", "preferences", "notifications", "privacy", "accessibility")

	var err error
	if p.settings, err = e.provider.Settings(ctx); err != nil {
		return nil, err
	}
	if p.logins, err = e.provider.ListLoginHistory(ctx); err != nil {
		return nil, err
	}

	p.handle("update", p.update)
	p.handle("save", p.save)
	p.handle("requestPrivacyChange", p.requestPrivacyChange)
	p.handle("confirmPrivacyChange", p.confirmPrivacyChange)
	p.handle("addTopic", p.addTopic)
	p.handle("removeTopic", p.removeTopic)
	p.handle("removeLogin", p.removeLogin)
	p.handle("confirmRemoveLogin", p.confirmRemoveLogin)
	return p, nil
}

type settingsData struct {
	Settings     models.Settings      `json:"settings"`
	LoginHistory []models.LoginRecord `json:"loginHistory"`
	Pending      *privacyChange       `json:"pendingPrivacyChange,omitempty"`
}

func (p *settingsPage) View(ctx context.Context) (*View, error) {
	pending, _ := p.overlays.Payload(p.overlays.Active()).(*privacyChange)
	return p.view(settingsData{
		Settings:     p.settings,
		LoginHistory: p.logins,
		Pending:      pending,
	}), nil
}

type settingsUpdate struct {
	Section string         `json:"section" label:"Section" validate:"required,oneof=profile notifications privacy debate accessibility"`
	Values  map[string]any `json:"values" label:"Values" validate:"required"`
}

// update 以 mapstructure 將部分欄位套用到某個設定區塊，未知欄位視為錯誤
func (p *settingsPage) update(ctx context.Context, body json.RawMessage) error {
	in, err := bind[settingsUpdate](body)
	if err != nil {
		return err
	}

	next := p.settings.Clone()
	var target any
	switch in.Section {
	case "profile":
		target = &next.Profile
	case "notifications":
		target = &next.Notifications
	case "privacy":
		for key := range in.Values {
			if _, ok := privacyToggles[key]; ok {
				verr := &viewstate.ValidationError{}
				verr.Add(key, "This setting requires confirmation")
				return verr
			}
		}
		target = &next.Privacy
	case "debate":
		target = &next.Debate
	case "accessibility":
		target = &next.Accessibility
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      target,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(in.Values); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if in.Section == "profile" {
		if err := viewstate.Validate(&next.Profile); err != nil {
			return err
		}
	}

	p.settings = next
	p.env.log.Debug("settings updated", "section", in.Section, "fields", sortedKeys(in.Values))
	return nil
}

func (p *settingsPage) save(ctx context.Context, _ json.RawMessage) error {
	p.env.log.Info("settings saved", "section", p.section.Active())
	p.env.toast("Settings updated successfully!")
	return nil
}

// privacyChange 是等待確認的隱私設定變更
type privacyChange struct {
	Key   string `json:"key"`
	Value bool   `json:"value"`
}

func (p *settingsPage) requestPrivacyChange(ctx context.Context, body json.RawMessage) error {
	in, err := bind[privacyChange](body)
	if err != nil {
		return err
	}
	if _, ok := privacyToggles[in.Key]; !ok {
		return fmt.Errorf("%w: privacy setting %q", ErrNotFound, in.Key)
	}
	return p.overlays.OpenWith(overlayPrivacy+in.Key, &in)
}

// confirmPrivacyChange 套用確認對話框中的變更並關閉它
func (p *settingsPage) confirmPrivacyChange(ctx context.Context, _ json.RawMessage) error {
	key := p.overlays.Active()
	change, ok := p.overlays.Payload(key).(*privacyChange)
	if !ok || !strings.HasPrefix(key, overlayPrivacy) {
		return fmt.Errorf("%w: %s", viewstate.ErrOverlayClosed, overlayPrivacy)
	}
	*privacyToggles[change.Key](&p.settings.Privacy) = change.Value
	p.overlays.CloseKey(key)
	p.env.toast("Privacy settings updated successfully")
	return nil
}

func (p *settingsPage) addTopic(ctx context.Context, body json.RawMessage) error {
	in, err := bind[namePayload](body)
	if err != nil {
		return err
	}
	topic := strings.TrimSpace(in.Name)
	if topic == "" {
		return nil
	}
	for _, t := range p.settings.Debate.PreferredTopics {
		if t == topic {
			return nil
		}
	}
	p.settings.Debate.PreferredTopics = append(p.settings.Debate.PreferredTopics, topic)
	return nil
}

func (p *settingsPage) removeTopic(ctx context.Context, body json.RawMessage) error {
	in, err := bind[struct {
		Index int `json:"index" validate:"min=0" label:"Index"`
	}](body)
	if err != nil {
		return err
	}
	topics := p.settings.Debate.PreferredTopics
	if in.Index >= len(topics) {
		return fmt.Errorf("topic %d: %w", in.Index, ErrNotFound)
	}
	p.settings.Debate.PreferredTopics = append(topics[:in.Index:in.Index], topics[in.Index+1:]...)
	return nil
}

func (p *settingsPage) removeLogin(ctx context.Context, body json.RawMessage) error {
	in, err := bind[idPayload](body)
	if err != nil {
		return err
	}
	for i := range p.logins {
		if p.logins[i].ID == in.ID {
			record := p.logins[i]
			return p.overlays.OpenWith(overlayRemoveLogin, &record)
		}
	}
	return fmt.Errorf("login %d: %w", in.ID, ErrNotFound)
}

func (p *settingsPage) confirmRemoveLogin(ctx context.Context, _ json.RawMessage) error {
	record, ok := p.overlays.Payload(overlayRemoveLogin).(*models.LoginRecord)
	if !ok {
		return fmt.Errorf("%w: %s", viewstate.ErrOverlayClosed, overlayRemoveLogin)
	}
	kept := p.logins[:0:0]
	for _, l := range p.logins {
		if l.ID != record.ID {
			kept = append(kept, l)
		}
	}
	p.logins = kept
	p.overlays.CloseKey(overlayRemoveLogin)
	p.env.toast("Device removed from login history")
	return nil
}
