package service

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"d23_web/internal/models"
	"d23_web/internal/viewstate"
)

func TestDiscussionCountdown(t *testing.T) {
	sessions := newTestSessions(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	sessions.now = func() time.Time { return now }
	sess := sessions.Create()

	data := viewOf(t, sess, PageTopicDiscussion).Data.(discussionData)
	assert.Equal(t, 300, data.RemainingTime)
	assert.Equal(t, "5:00", data.Clock)
	assert.Equal(t, "Opening Arguments", data.Phase)
	assert.True(t, data.ShowResources)
	assert.Nil(t, data.Chart)

	now = now.Add(95 * time.Second)
	assert.Equal(t, "3:25", viewOf(t, sess, PageTopicDiscussion).Data.(discussionData).Clock)

	now = now.Add(time.Hour)
	assert.Zero(t, viewOf(t, sess, PageTopicDiscussion).Data.(discussionData).RemainingTime)
}

func TestDiscussionToggles(t *testing.T) {
	sess := newTestSessions(t).Create()
	for _, action := range []string{"toggleMute", "toggleHand", "toggleVoting", "toggleResources"} {
		require.NoError(t, do(t, sess, PageTopicDiscussion, action, nil))
	}
	data := viewOf(t, sess, PageTopicDiscussion).Data.(discussionData)
	assert.True(t, data.Muted)
	assert.True(t, data.HandRaised)
	assert.True(t, data.ShowVoting)
	assert.False(t, data.ShowResources)
	require.NotNil(t, data.Chart)
	assert.Len(t, data.Chart.Series, 2)
}

func TestDiscussionSendMessage(t *testing.T) {
	sess := newTestSessions(t).Create()
	before := len(viewOf(t, sess, PageTopicDiscussion).Data.(discussionData).Messages)

	require.NoError(t, do(t, sess, PageTopicDiscussion, "setInput", textPayload{Text: "   "}))
	require.NoError(t, do(t, sess, PageTopicDiscussion, "sendMessage", nil))
	assert.Len(t, viewOf(t, sess, PageTopicDiscussion).Data.(discussionData).Messages, before)

	require.NoError(t, do(t, sess, PageTopicDiscussion, "setInput", textPayload{Text: "Oversight boards work."}))
	require.NoError(t, do(t, sess, PageTopicDiscussion, "sendMessage", nil))
	data := viewOf(t, sess, PageTopicDiscussion).Data.(discussionData)
	require.Len(t, data.Messages, before+1)
	assert.Equal(t, "Oversight boards work.", data.Messages[before].Content)
	assert.Empty(t, data.Input)
}

func TestDiscussionAddResource(t *testing.T) {
	sess := newTestSessions(t).Create()
	before := len(viewOf(t, sess, PageTopicDiscussion).Data.(discussionData).Resources)

	openOverlay(t, sess, PageTopicDiscussion, overlayAddResource)
	setField(t, sess, PageTopicDiscussion, overlayAddResource, "title", "WHO brief")

	var verr *viewstate.ValidationError
	require.ErrorAs(t, do(t, sess, PageTopicDiscussion, "submitResource", nil), &verr)
	assert.ElementsMatch(t, []string{"type", "source", "description"}, sortedKeys(verr.Fields))
	v := viewOf(t, sess, PageTopicDiscussion)
	assert.Equal(t, overlayAddResource, v.Overlay.Active)
	assert.Len(t, v.Data.(discussionData).Resources, before)
	assert.Len(t, v.Data.(discussionData).ResourceErrors, 3)

	// 關閉後草稿與錯誤訊息都被清除
	closeOverlay(t, sess, PageTopicDiscussion)
	assert.Empty(t, viewOf(t, sess, PageTopicDiscussion).Data.(discussionData).ResourceErrors)
	openOverlay(t, sess, PageTopicDiscussion, overlayAddResource)
	v = viewOf(t, sess, PageTopicDiscussion)
	assert.Empty(t, v.Overlay.Form["title"])
	assert.Empty(t, v.Data.(discussionData).ResourceErrors)

	for field, value := range map[string]string{
		"title": "WHO brief", "type": "PDF", "source": "WHO", "description": "Summary",
	} {
		setField(t, sess, PageTopicDiscussion, overlayAddResource, field, value)
	}
	require.NoError(t, do(t, sess, PageTopicDiscussion, "submitResource", nil))
	v = viewOf(t, sess, PageTopicDiscussion)
	assert.Empty(t, v.Overlay.Active)
	data := v.Data.(discussionData)
	require.Len(t, data.Resources, before+1)
	assert.Equal(t, "WHO brief", data.Resources[before].Title)
	assert.Empty(t, data.ResourceErrors)
}

func TestDebateRooms(t *testing.T) {
	sessions := newTestSessions(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	sessions.now = func() time.Time { return now }
	sess := sessions.Create()

	ai := viewOf(t, sess, PageAIDebateRoom).Data.(roomData)
	assert.Equal(t, models.RoomKindAI, ai.Kind)
	assert.Len(t, ai.Participants, 5)
	assert.Equal(t, "Sarah Mitchell", ai.CurrentSpeaker)
	assert.Equal(t, 300, ai.TimeRemaining)
	assert.True(t, ai.VideoOn)
	assert.True(t, ai.ShowControls)
	assert.Len(t, ai.Chart.Series, 2)

	// 不足一秒的經過時間不扣秒
	now = now.Add(500 * time.Millisecond)
	ai = viewOf(t, sess, PageAIDebateRoom).Data.(roomData)
	assert.Equal(t, 300, ai.TimeRemaining)
	assert.Equal(t, "5:00", ai.Clock)
	now = now.Add(time.Second)
	assert.Equal(t, 299, viewOf(t, sess, PageAIDebateRoom).Data.(roomData).TimeRemaining)

	group := viewOf(t, sess, PageGroupDebateRoom).Data.(roomData)
	assert.Len(t, group.Participants, 9)
	assert.Len(t, group.Chart.Series, 4)
	assert.Len(t, group.Chat, 3)
}

func TestRoomReactions(t *testing.T) {
	sess := newTestSessions(t).Create()
	require.NoError(t, do(t, sess, PageAIDebateRoom, "react", map[string]string{"type": "likes"}))
	require.NoError(t, do(t, sess, PageAIDebateRoom, "react", map[string]string{"type": "stars"}))
	require.NoError(t, do(t, sess, PageAIDebateRoom, "toggleVideo", nil))

	var verr *viewstate.ValidationError
	require.ErrorAs(t, do(t, sess, PageAIDebateRoom, "react", map[string]string{"type": "hearts"}), &verr)

	data := viewOf(t, sess, PageAIDebateRoom).Data.(roomData)
	assert.Equal(t, Reactions{Likes: 25, Dislikes: 3, Stars: 13}, data.Reactions)
	assert.False(t, data.VideoOn)

	// 另一個辯論室不受影響
	assert.Equal(t, 24, viewOf(t, sess, PageGroupDebateRoom).Data.(roomData).Reactions.Likes)
}

func TestOnboardingSteps(t *testing.T) {
	sess := newTestSessions(t).Create()
	require.NoError(t, do(t, sess, PageOnboarding, "prev", nil))
	assert.Equal(t, 1, viewOf(t, sess, PageOnboarding).Data.(onboardingData).Step)

	for i := 0; i < 6; i++ {
		require.NoError(t, do(t, sess, PageOnboarding, "next", nil))
	}
	assert.Equal(t, onboardingSteps, viewOf(t, sess, PageOnboarding).Data.(onboardingData).Step)
}

func TestOnboardingForm(t *testing.T) {
	sess := newTestSessions(t).Create()

	require.NoError(t, do(t, sess, PageOnboarding, "update", map[string]any{
		"name": "Ada", "yearsExperience": 3, "experience": "advanced",
	}))
	require.NoError(t, do(t, sess, PageOnboarding, "toggleInterest", map[string]string{"id": "policy"}))
	require.NoError(t, do(t, sess, PageOnboarding, "toggleInterest", map[string]string{"id": "mock-trial"}))
	require.NoError(t, do(t, sess, PageOnboarding, "toggleInterest", map[string]string{"id": "policy"}))
	assert.ErrorIs(t, do(t, sess, PageOnboarding, "toggleInterest", map[string]string{"id": "chess"}), ErrNotFound)

	form := viewOf(t, sess, PageOnboarding).Data.(onboardingData).Form
	assert.Equal(t, "Ada", form.Name)
	assert.Equal(t, "3", form.YearsExperience)
	assert.Equal(t, []string{"mock-trial"}, form.Interests)

	var verr *viewstate.ValidationError
	require.ErrorAs(t, do(t, sess, PageOnboarding, "update", map[string]any{"experience": "guru"}), &verr)
	assert.Contains(t, verr.Fields, "experience")
	assert.ErrorIs(t, do(t, sess, PageOnboarding, "update", map[string]any{"shoeSize": 42}), ErrInvalidPayload)

	require.NoError(t, do(t, sess, PageOnboarding, "finish", nil))
	assert.Equal(t, "/registration-success", sess.Location())
}

func TestLandingSignIn(t *testing.T) {
	sess := newTestSessions(t).Create()
	require.NoError(t, do(t, sess, PageLanding, "signIn", nil))
	assert.Equal(t, viewstate.StatusPending, viewOf(t, sess, PageLanding).Data.(landingData).SignIn.Status)

	require.Eventually(t, func() bool { return sess.Location() == "/dashboard" }, time.Second, 5*time.Millisecond)
}

func TestLandingPlansAndTrial(t *testing.T) {
	sess := newTestSessions(t).Create()
	plans := viewOf(t, sess, PageLanding).Data.(landingData).Plans
	require.NotEmpty(t, plans)

	require.NoError(t, do(t, sess, PageLanding, "selectPlan", namePayload{Name: plans[0].Name}))
	v := viewOf(t, sess, PageLanding)
	assert.Equal(t, overlayPricing, v.Overlay.Active)
	assert.Equal(t, plans[0].Name, v.Data.(landingData).SelectedPlan)
	assert.ErrorIs(t, do(t, sess, PageLanding, "selectPlan", namePayload{Name: "Gold"}), ErrNotFound)

	require.NoError(t, do(t, sess, PageLanding, "startTrial", nil))
	assert.Equal(t, "/onboarding", sess.Location())
	assert.Empty(t, viewOf(t, sess, PageLanding).Overlay.Open)
}

func TestLandingContactForm(t *testing.T) {
	sess := newTestSessions(t).Create()
	require.NoError(t, do(t, sess, PageLanding, "setContact", fieldPayload{Field: "name", Value: "Ada"}))
	assert.ErrorIs(t, do(t, sess, PageLanding, "setContact", fieldPayload{Field: "phone", Value: "1"}), viewstate.ErrUnknownField)

	var verr *viewstate.ValidationError
	require.ErrorAs(t, do(t, sess, PageLanding, "submitContact", nil), &verr)
	assert.Contains(t, verr.Fields, "email")

	require.NoError(t, do(t, sess, PageLanding, "setContact", fieldPayload{Field: "email", Value: "ada@example.com"}))
	require.NoError(t, do(t, sess, PageLanding, "setContact", fieldPayload{Field: "message", Value: "Hello"}))
	require.NoError(t, do(t, sess, PageLanding, "submitContact", nil))

	data := viewOf(t, sess, PageLanding).Data.(landingData)
	assert.Equal(t, emptyContact(), data.Contact)
	assert.Empty(t, data.ContactErrors)
}

func TestRegistrationConfettiHides(t *testing.T) {
	sess := newTestSessions(t).Create()
	assert.True(t, viewOf(t, sess, PageRegistrationSuccess).Data.(registrationData).ShowConfetti)

	require.Eventually(t, func() bool {
		return !viewOf(t, sess, PageRegistrationSuccess).Data.(registrationData).ShowConfetti
	}, time.Second, 5*time.Millisecond)
}

func TestScheduleMonthNavigation(t *testing.T) {
	sessions := newTestSessions(t)
	sessions.now = func() time.Time { return time.Date(2025, 3, 31, 9, 0, 0, 0, time.UTC) }
	sess := sessions.Create()

	data := viewOf(t, sess, PageSchedule).Data.(scheduleData)
	assert.Equal(t, "March 2025", data.Month)
	require.Len(t, data.Calendar, calendarCells)

	require.NoError(t, do(t, sess, PageSchedule, "nextMonth", nil))
	assert.Equal(t, "April 2025", viewOf(t, sess, PageSchedule).Data.(scheduleData).Month)
	require.NoError(t, do(t, sess, PageSchedule, "previousMonth", nil))
	require.NoError(t, do(t, sess, PageSchedule, "previousMonth", nil))
	assert.Equal(t, "February 2025", viewOf(t, sess, PageSchedule).Data.(scheduleData).Month)
}

func TestScheduleAvailability(t *testing.T) {
	sessions := newTestSessions(t)
	sess := sessions.Create()
	sub := sessions.hub.Subscribe(sess.ID)

	toggle := periodToggle{Day: "sunday", Period: "evening"}
	before := viewOf(t, sess, PageSchedule).Data.(scheduleData).Availability.Weekdays["sunday"]
	require.NoError(t, do(t, sess, PageSchedule, "togglePeriod", toggle))
	after := viewOf(t, sess, PageSchedule).Data.(scheduleData).Availability.Weekdays["sunday"]
	assert.NotEqual(t, slices.Contains(before, "evening"), slices.Contains(after, "evening"))

	var verr *viewstate.ValidationError
	require.ErrorAs(t, do(t, sess, PageSchedule, "togglePeriod", periodToggle{Day: "funday", Period: "evening"}), &verr)

	openOverlay(t, sess, PageSchedule, overlayAvailability)
	require.NoError(t, do(t, sess, PageSchedule, "setAvailability", map[string]any{"timezone": "Asia/Taipei"}))
	require.NoError(t, do(t, sess, PageSchedule, "saveAvailability", nil))

	v := viewOf(t, sess, PageSchedule)
	assert.Empty(t, v.Overlay.Active)
	assert.Equal(t, "Asia/Taipei", v.Data.(scheduleData).Availability.Timezone)
	assert.Equal(t, "Availability preferences saved", (<-sub.Events).Message)
}

func TestRankingsProfile(t *testing.T) {
	sess := newTestSessions(t).Create()
	require.NoError(t, sess.With(context.Background(), PageRankings, func(p Page) error {
		sel, err := p.Selector("category")
		if err != nil {
			return err
		}
		sel.Select("technology")
		return nil
	}))
	data := viewOf(t, sess, PageRankings).Data.(rankingsData)
	require.NotEmpty(t, data.Debaters)
	for _, d := range data.Debaters {
		assert.Equal(t, "technology", d.Category)
	}
	assert.Nil(t, data.Chart)

	require.NoError(t, do(t, sess, PageRankings, "viewProfile", idPayload{ID: 1}))
	data = viewOf(t, sess, PageRankings).Data.(rankingsData)
	require.NotNil(t, data.Selected)
	assert.Equal(t, "Elizabeth Chen", data.Selected.Name)
	assert.NotNil(t, data.Chart)

	assert.ErrorIs(t, do(t, sess, PageRankings, "viewProfile", idPayload{ID: 404}), ErrNotFound)
}

func TestMyDebatesFilters(t *testing.T) {
	sess := newTestSessions(t).Create()
	all := viewOf(t, sess, PageMyDebates).Data.(myDebatesData).Debates
	require.NotEmpty(t, all)

	require.NoError(t, sess.With(context.Background(), PageMyDebates, func(p Page) error {
		sel, err := p.Selector("format")
		if err != nil {
			return err
		}
		sel.Select("oxford")
		return nil
	}))
	for _, d := range viewOf(t, sess, PageMyDebates).Data.(myDebatesData).Debates {
		assert.Equal(t, "Oxford Style", d.Format)
	}

	require.NoError(t, sess.With(context.Background(), PageMyDebates, func(p Page) error {
		p.SetQuery(Query{Start: "2099-01-01"})
		return nil
	}))
	assert.Empty(t, viewOf(t, sess, PageMyDebates).Data.(myDebatesData).Debates)
}
