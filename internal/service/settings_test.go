package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"d23_web/internal/viewstate"
)

func settingsView(t *testing.T, s *Session) settingsData {
	t.Helper()
	return viewOf(t, s, PageSettings).Data.(settingsData)
}

func TestPrivacyChangeNeedsConfirmation(t *testing.T) {
	sessions := newTestSessions(t)
	sess := sessions.Create()
	sub := sessions.hub.Subscribe(sess.ID)
	initial := settingsView(t, sess).Settings.Privacy.Searchable

	require.NoError(t, do(t, sess, PageSettings, "requestPrivacyChange", privacyChange{Key: "searchable", Value: !initial}))
	v := viewOf(t, sess, PageSettings)
	assert.Equal(t, "privacy-searchable", v.Overlay.Active)
	data := v.Data.(settingsData)
	assert.Equal(t, initial, data.Settings.Privacy.Searchable)
	require.NotNil(t, data.Pending)

	require.NoError(t, do(t, sess, PageSettings, "confirmPrivacyChange", nil))
	v = viewOf(t, sess, PageSettings)
	assert.Empty(t, v.Overlay.Active)
	assert.Equal(t, !initial, v.Data.(settingsData).Settings.Privacy.Searchable)

	e := <-sub.Events
	assert.Equal(t, "Privacy settings updated successfully", e.Message)

	assert.ErrorIs(t, do(t, sess, PageSettings, "confirmPrivacyChange", nil), viewstate.ErrOverlayClosed)
	assert.ErrorIs(t, do(t, sess, PageSettings, "requestPrivacyChange", privacyChange{Key: "nope"}), ErrNotFound)
}

func TestCancelPrivacyChangeKeepsValue(t *testing.T) {
	sess := newTestSessions(t).Create()
	initial := settingsView(t, sess).Settings.Privacy.AllowMessages

	require.NoError(t, do(t, sess, PageSettings, "requestPrivacyChange", privacyChange{Key: "allowMessages", Value: !initial}))
	require.NoError(t, sess.With(context.Background(), PageSettings, func(p Page) error {
		p.Overlays().Close()
		return nil
	}))
	assert.Equal(t, initial, settingsView(t, sess).Settings.Privacy.AllowMessages)
}

func TestUpdateSettings(t *testing.T) {
	sess := newTestSessions(t).Create()

	require.NoError(t, do(t, sess, PageSettings, "update", map[string]any{
		"section": "profile",
		"values":  map[string]any{"title": "Coach", "location": "Taipei"},
	}))
	profile := settingsView(t, sess).Settings.Profile
	assert.Equal(t, "Coach", profile.Title)
	assert.Equal(t, "Taipei", profile.Location)

	err := do(t, sess, PageSettings, "update", map[string]any{
		"section": "profile",
		"values":  map[string]any{"email": "not-an-email"},
	})
	var verr *viewstate.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Email must be a valid email address", verr.Fields["email"])
	assert.NotEqual(t, "not-an-email", settingsView(t, sess).Settings.Profile.Email)

	err = do(t, sess, PageSettings, "update", map[string]any{
		"section": "accessibility",
		"values":  map[string]any{"colour": "red"},
	})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	err = do(t, sess, PageSettings, "update", map[string]any{
		"section": "privacy",
		"values":  map[string]any{"showRating": false},
	})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "showRating")

	require.NoError(t, do(t, sess, PageSettings, "update", map[string]any{
		"section": "notifications",
		"values":  map[string]any{"newsletter": true},
	}))
	assert.True(t, settingsView(t, sess).Settings.Notifications.Newsletter)
}

func TestPreferredTopics(t *testing.T) {
	sess := newTestSessions(t).Create()
	topics := settingsView(t, sess).Settings.Debate.PreferredTopics
	require.NotEmpty(t, topics)

	require.NoError(t, do(t, sess, PageSettings, "addTopic", namePayload{Name: "  "}))
	require.NoError(t, do(t, sess, PageSettings, "addTopic", namePayload{Name: topics[0]}))
	assert.Len(t, settingsView(t, sess).Settings.Debate.PreferredTopics, len(topics))

	require.NoError(t, do(t, sess, PageSettings, "addTopic", namePayload{Name: " Space Policy "}))
	after := settingsView(t, sess).Settings.Debate.PreferredTopics
	assert.Equal(t, "Space Policy", after[len(after)-1])

	require.NoError(t, do(t, sess, PageSettings, "removeTopic", map[string]int{"index": 0}))
	after = settingsView(t, sess).Settings.Debate.PreferredTopics
	assert.NotContains(t, after, topics[0])
	assert.ErrorIs(t, do(t, sess, PageSettings, "removeTopic", map[string]int{"index": 99}), ErrNotFound)
}

func TestRemoveLogin(t *testing.T) {
	sess := newTestSessions(t).Create()
	logins := settingsView(t, sess).LoginHistory
	require.Len(t, logins, 2)

	require.NoError(t, do(t, sess, PageSettings, "removeLogin", idPayload{ID: logins[1].ID}))
	assert.Equal(t, overlayRemoveLogin, viewOf(t, sess, PageSettings).Overlay.Active)

	require.NoError(t, do(t, sess, PageSettings, "confirmRemoveLogin", nil))
	assert.Len(t, settingsView(t, sess).LoginHistory, 1)
}

func TestSaveSettingsToasts(t *testing.T) {
	sessions := newTestSessions(t)
	sess := sessions.Create()
	sub := sessions.hub.Subscribe(sess.ID)

	require.NoError(t, do(t, sess, PageSettings, "save", nil))
	e := <-sub.Events
	assert.Equal(t, EventToast, e.Type)
	assert.Equal(t, "Settings updated successfully!", e.Message)
}
