package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"d23_web/internal/models"
	"d23_web/internal/viewstate"
)

const (
	overlayPricing = "pricing"
	overlayTrial   = "trial"
)

// contactForm 是首頁的聯絡表單
type contactForm struct {
	Name    string `form:"name" label:"Name" validate:"required"`
	Email   string `form:"email" label:"Email" validate:"required,email"`
	Message string `form:"message" label:"Message" validate:"required"`
}

func emptyContact() viewstate.Form {
	return viewstate.Form{"name": "", "email": "", "message": ""}
}

type landingPage struct {
	*basePage

	plans    []models.Plan
	selected string
	contact  viewstate.Form
	errors   map[string]string
	signIn   *viewstate.Action[string]
}

func newLandingPage(ctx context.Context, e *env) (Page, error) {
	p := &landingPage{
		basePage: newBasePage(PageLanding, e,
			viewstate.OverlaySpec{Key: overlayPricing},
			viewstate.OverlaySpec{Key: overlayTrial},
		),
		contact: emptyContact(),
	}

	var err error
	if p.plans, err = e.provider.ListPlans(ctx); err != nil {
		return nil, err
	}
	p.signIn = track(p.basePage, viewstate.NewAction[string](e.sim.SignInDelay), p.signedIn)

	p.handle("selectPlan", p.selectPlan)
	p.handle("setContact", p.setContact)
	p.handle("submitContact", p.submitContact)
	p.handle("signIn", p.startSignIn)
	p.handle("startTrial", p.startTrial)
	return p, nil
}

type landingData struct {
	Plans         []models.Plan                 `json:"plans"`
	SelectedPlan  string                        `json:"selectedPlan,omitempty"`
	Contact       viewstate.Form                `json:"contact"`
	ContactErrors map[string]string             `json:"contactErrors,omitempty"`
	SignIn        viewstate.ActionState[string] `json:"signIn"`
}

func (p *landingPage) View(ctx context.Context) (*View, error) {
	return p.view(landingData{
		Plans:         p.plans,
		SelectedPlan:  p.selected,
		Contact:       p.contact.Clone(),
		ContactErrors: p.errors,
		SignIn:        p.signIn.Snapshot(),
	}), nil
}

// selectPlan 記下選擇的方案並開啟付款對話框
func (p *landingPage) selectPlan(ctx context.Context, body json.RawMessage) error {
	in, err := bind[namePayload](body)
	if err != nil {
		return err
	}
	for _, plan := range p.plans {
		if plan.Name == in.Name {
			p.selected = plan.Name
			return p.overlays.Open(overlayPricing)
		}
	}
	return fmt.Errorf("plan %q: %w", in.Name, ErrNotFound)
}

type fieldPayload struct {
	Field string `json:"field" label:"Field" validate:"required"`
	Value string `json:"value"`
}

func (p *landingPage) setContact(ctx context.Context, body json.RawMessage) error {
	in, err := bind[fieldPayload](body)
	if err != nil {
		return err
	}
	if _, ok := p.contact[in.Field]; !ok {
		return fmt.Errorf("%w: contact.%s", viewstate.ErrUnknownField, in.Field)
	}
	p.contact[in.Field] = in.Value
	return nil
}

// submitContact 送出聯絡表單，成功後清空
func (p *landingPage) submitContact(ctx context.Context, _ json.RawMessage) error {
	var form contactForm
	if err := viewstate.Decode(p.contact, &form); err != nil {
		return err
	}
	if err := viewstate.Validate(&form); err != nil {
		var verr *viewstate.ValidationError
		if errors.As(err, &verr) {
			p.errors = verr.Fields
		}
		return err
	}
	p.env.log.Info("contact message received", "email", form.Email)
	p.contact = emptyContact()
	p.errors = nil
	return nil
}

// startSignIn 模擬第三方登入，完成後進入儀表板
func (p *landingPage) startSignIn(ctx context.Context, _ json.RawMessage) error {
	return p.signIn.Start(func() (string, error) {
		return "/dashboard", nil
	})
}

func (p *landingPage) signedIn(status viewstate.Status) {
	if status != viewstate.StatusDone {
		return
	}
	path, _ := p.signIn.Result()
	if err := p.env.nav.Navigate(path); err != nil {
		p.env.log.Error("navigate after sign in", "error", err)
	}
}

func (p *landingPage) startTrial(ctx context.Context, _ json.RawMessage) error {
	p.overlays.CloseAll()
	return p.env.nav.Navigate("/onboarding")
}
