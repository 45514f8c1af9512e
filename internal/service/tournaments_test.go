package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"d23_web/internal/viewstate"
)

func tournamentsView(t *testing.T, s *Session) tournamentsData {
	t.Helper()
	return viewOf(t, s, PageTournaments).Data.(tournamentsData)
}

func fillTournament(t *testing.T, s *Session, fields map[string]string) {
	t.Helper()
	openOverlay(t, s, PageTournaments, overlayCreate)
	for k, v := range fields {
		setField(t, s, PageTournaments, overlayCreate, k, v)
	}
}

func TestCreateTournament(t *testing.T) {
	sessions := newTestSessions(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	sessions.now = func() time.Time { return now }
	sess := sessions.Create()
	sub := sessions.hub.Subscribe(sess.ID)

	before := tournamentsView(t, sess).Active
	fillTournament(t, sess, map[string]string{
		"name":        "  Spring Invitational ",
		"description": "Open to all",
		"startDate":   "2025-04-01",
		"endDate":     "2025-04-03",
		"prizePool":   "$12,500",
		"format":      "swiss",
	})
	require.NoError(t, do(t, sess, PageTournaments, "create", nil))

	v := viewOf(t, sess, PageTournaments)
	data := v.Data.(tournamentsData)
	require.Len(t, data.Active, len(before)+1)
	created := data.Active[0]
	assert.Equal(t, "Spring Invitational", created.Name)
	assert.Equal(t, "Swiss System", created.Format)
	assert.Equal(t, "Intermediate", created.SkillLevel)
	assert.Equal(t, 32, created.MaxParticipants)
	assert.True(t, created.JustCreated)
	assert.Equal(t, "12500", created.PrizePool.String())
	assert.Equal(t, now.UnixMilli(), created.ID)
	assert.Empty(t, data.Errors)
	assert.Empty(t, v.Overlay.Open)

	e := <-sub.Events
	assert.Equal(t, EventToast, e.Type)
	assert.Equal(t, "Tournament created successfully!", e.Message)

	// 重新開啟時表單已清空
	openOverlay(t, sess, PageTournaments, overlayCreate)
	assert.Empty(t, viewOf(t, sess, PageTournaments).Overlay.Form["name"])
}

func TestCreateTournamentIDsAreUnique(t *testing.T) {
	sessions := newTestSessions(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	sessions.now = func() time.Time { return now }
	sess := sessions.Create()

	for i := 0; i < 2; i++ {
		fillTournament(t, sess, map[string]string{
			"name": "Cup", "description": "d", "startDate": "2025-04-01", "endDate": "2025-04-02",
		})
		require.NoError(t, do(t, sess, PageTournaments, "create", nil))
	}
	active := tournamentsView(t, sess).Active
	assert.NotEqual(t, active[0].ID, active[1].ID)
}

func TestCreateTournamentInvalid(t *testing.T) {
	sess := newTestSessions(t).Create()
	before := len(tournamentsView(t, sess).Active)

	fillTournament(t, sess, map[string]string{
		"name":      "   ",
		"startDate": "2025-04-05",
		"endDate":   "2025-04-01",
	})
	err := do(t, sess, PageTournaments, "create", nil)

	var verr *viewstate.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Tournament name is required", verr.Fields["name"])
	assert.Contains(t, verr.Fields, "description")

	v := viewOf(t, sess, PageTournaments)
	data := v.Data.(tournamentsData)
	assert.Len(t, data.Active, before)
	assert.Equal(t, overlayCreate, v.Overlay.Active)
	assert.Equal(t, "Tournament name is required", data.Errors["name"])

	// 關閉後錯誤訊息消失，草稿仍保留
	closeOverlay(t, sess, PageTournaments)
	assert.Empty(t, tournamentsView(t, sess).Errors)
	openOverlay(t, sess, PageTournaments, overlayCreate)
	v = viewOf(t, sess, PageTournaments)
	assert.Empty(t, v.Data.(tournamentsData).Errors)
	assert.Equal(t, "2025-04-05", v.Overlay.Form["startDate"])
}

func TestCreateTournamentEndBeforeStart(t *testing.T) {
	sess := newTestSessions(t).Create()
	fillTournament(t, sess, map[string]string{
		"name": "Cup", "description": "d", "startDate": "2025-04-05", "endDate": "2025-04-01",
	})

	var verr *viewstate.ValidationError
	require.ErrorAs(t, do(t, sess, PageTournaments, "create", nil), &verr)
	assert.Equal(t, []string{"endDate"}, sortedKeys(verr.Fields))
}

func TestCreateTournamentRequiresOpenOverlay(t *testing.T) {
	sess := newTestSessions(t).Create()
	assert.ErrorIs(t, do(t, sess, PageTournaments, "create", nil), viewstate.ErrOverlayClosed)
}

func TestTournamentRegistration(t *testing.T) {
	sess := newTestSessions(t).Create()
	upcoming := tournamentsView(t, sess).Upcoming
	require.NotEmpty(t, upcoming)

	require.NoError(t, do(t, sess, PageTournaments, "register", map[string]int64{"id": upcoming[0].ID}))
	data := tournamentsView(t, sess)
	require.NotNil(t, data.Selected)
	assert.Equal(t, upcoming[0].Name, data.Selected.Name)

	require.NoError(t, do(t, sess, PageTournaments, "confirmRegistration", nil))
	assert.Nil(t, tournamentsView(t, sess).Selected)

	assert.ErrorIs(t, do(t, sess, PageTournaments, "register", map[string]int64{"id": 12345}), ErrNotFound)
}

func TestTournamentFilters(t *testing.T) {
	sess := newTestSessions(t).Create()
	require.NoError(t, sess.With(context.Background(), PageTournaments, func(p Page) error {
		sel, err := p.Selector("filter")
		if err != nil {
			return err
		}
		sel.Select("upcoming")
		return nil
	}))
	data := tournamentsView(t, sess)
	assert.Empty(t, data.Active)
	assert.NotEmpty(t, data.Upcoming)

	require.NoError(t, sess.With(context.Background(), PageTournaments, func(p Page) error {
		p.SetQuery(Query{Search: "zzz", Filters: map[string]string{"skillLevel": "Advanced"}})
		return nil
	}))
	assert.Empty(t, tournamentsView(t, sess).Upcoming)

	require.NoError(t, do(t, sess, PageTournaments, "resetFilters", nil))
	v := viewOf(t, sess, PageTournaments)
	assert.Equal(t, Query{}, v.Query)
	assert.NotEmpty(t, v.Data.(tournamentsData).Upcoming)
}
