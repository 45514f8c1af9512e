package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/mitchellh/mapstructure"

	"d23_web/internal/viewstate"
)

const onboardingSteps = 4

// debateInterests 是可勾選的辯論形式
var debateInterests = []string{"policy", "parliamentary", "lincoln-douglas", "public-forum", "mock-trial", "world-schools"}

// OnboardingForm 是新手引導各步驟共用的表單
type OnboardingForm struct {
	Name            string   `json:"name" mapstructure:"name"`
	School          string   `json:"school" mapstructure:"school"`
	YearsExperience string   `json:"yearsExperience" mapstructure:"yearsExperience" label:"Years of experience" validate:"omitempty,number"`
	Experience      string   `json:"experience" mapstructure:"experience" label:"Experience level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Interests       []string `json:"interests" mapstructure:"-"`
	Goals           string   `json:"goals" mapstructure:"goals"`
	Avatar          string   `json:"avatar" mapstructure:"avatar"`
}

type onboardingPage struct {
	*basePage

	step int
	form OnboardingForm
}

func newOnboardingPage(ctx context.Context, e *env) (Page, error) {
	p := &onboardingPage{
		basePage: newBasePage(PageOnboarding, e),
		step:     1,
		form:     OnboardingForm{Interests: []string{}},
	}
	p.handle("next", func(context.Context, json.RawMessage) error {
		p.step = min(p.step+1, onboardingSteps)
		return nil
	})
	p.handle("prev", func(context.Context, json.RawMessage) error {
		p.step = max(p.step-1, 1)
		return nil
	})
	p.handle("update", p.update)
	p.handle("toggleInterest", p.toggleInterest)
	p.handle("finish", p.finish)
	return p, nil
}

type onboardingData struct {
	Step      int            `json:"step"`
	Steps     int            `json:"steps"`
	Form      OnboardingForm `json:"form"`
	Interests []string       `json:"interestOptions"`
}

func (p *onboardingPage) View(ctx context.Context) (*View, error) {
	return p.view(onboardingData{
		Step:      p.step,
		Steps:     onboardingSteps,
		Form:      p.form,
		Interests: debateInterests,
	}), nil
}

// update 將部分欄位寫入表單，未知欄位視為錯誤
func (p *onboardingPage) update(ctx context.Context, body json.RawMessage) error {
	var values map[string]any
	if err := json.Unmarshal(body, &values); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	next := p.form
	next.Interests = slices.Clone(p.form.Interests)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &next,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(values); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := viewstate.Validate(&next); err != nil {
		return err
	}
	p.form = next
	return nil
}

func (p *onboardingPage) toggleInterest(ctx context.Context, body json.RawMessage) error {
	in, err := bind[idPayloadString](body)
	if err != nil {
		return err
	}
	if !slices.Contains(debateInterests, in.ID) {
		return fmt.Errorf("interest %q: %w", in.ID, ErrNotFound)
	}
	if i := slices.Index(p.form.Interests, in.ID); i >= 0 {
		p.form.Interests = slices.Delete(p.form.Interests, i, i+1)
		return nil
	}
	p.form.Interests = append(p.form.Interests, in.ID)
	return nil
}

func (p *onboardingPage) finish(ctx context.Context, _ json.RawMessage) error {
	if err := viewstate.Validate(&p.form); err != nil {
		return err
	}
	p.env.log.Info("onboarding finished", "name", p.form.Name, "interests", len(p.form.Interests))
	return p.env.nav.Navigate("/registration-success")
}

// idPayloadString 是以字串 id 指定項目的動作內容
type idPayloadString struct {
	ID string `json:"id" validate:"required" label:"ID"`
}
