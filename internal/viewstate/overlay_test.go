package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOverlays() *Overlays {
	return NewOverlays(
		OverlaySpec{Key: "create", Policy: RetainOnClose, Fields: Form{"name": "", "format": "single"}},
		OverlaySpec{Key: "register"},
		OverlaySpec{Key: "addResource", Policy: ClearOnClose, Fields: Form{"title": "", "type": ""}},
		OverlaySpec{Key: "confirm", Parent: "register"},
		OverlaySpec{Key: "privacy-", Family: true},
	)
}

func TestOverlaysAtMostOneSibling(t *testing.T) {
	o := newTestOverlays()

	require.NoError(t, o.Open("create"))
	require.NoError(t, o.Open("register"))

	assert.Equal(t, "register", o.Active())
	assert.False(t, o.IsOpen("create"))
	assert.Equal(t, []string{"register"}, o.Snapshot().Open)
}

func TestOverlaysNested(t *testing.T) {
	o := newTestOverlays()

	require.NoError(t, o.Open("register"))
	require.NoError(t, o.Open("confirm"))
	assert.Equal(t, []string{"register", "confirm"}, o.Snapshot().Open)

	o.Close()
	assert.Equal(t, "register", o.Active())

	// 父對話框未開啟時，子對話框單獨開啟
	o.CloseAll()
	require.NoError(t, o.Open("confirm"))
	assert.Equal(t, []string{"confirm"}, o.Snapshot().Open)
}

func TestOverlaysReopenAncestorPopsChildren(t *testing.T) {
	o := newTestOverlays()
	require.NoError(t, o.Open("register"))
	require.NoError(t, o.Open("confirm"))

	require.NoError(t, o.Open("register"))
	assert.Equal(t, []string{"register"}, o.Snapshot().Open)
}

func TestOverlaysUnknownKeyIsNoop(t *testing.T) {
	o := newTestOverlays()
	require.NoError(t, o.Open("create"))

	err := o.Open("nope")
	assert.ErrorIs(t, err, ErrUnknownOverlay)
	assert.Equal(t, "create", o.Active())
}

func TestOverlaysClearOnCloseRestoresInitialForm(t *testing.T) {
	o := newTestOverlays()

	require.NoError(t, o.Open("addResource"))
	require.NoError(t, o.SetField("addResource", "title", "WHO report"))
	o.Close()
	require.NoError(t, o.Open("addResource"))

	form, err := o.Form("addResource")
	require.NoError(t, err)
	assert.Equal(t, Form{"title": "", "type": ""}, form)
}

func TestOverlaysRetainOnCloseKeepsDraft(t *testing.T) {
	o := newTestOverlays()

	require.NoError(t, o.Open("create"))
	require.NoError(t, o.SetField("create", "name", "Spring Open"))
	o.Close()
	require.NoError(t, o.Open("create"))

	form, err := o.Form("create")
	require.NoError(t, err)
	assert.Equal(t, "Spring Open", form["name"])
	assert.Equal(t, "single", form["format"])

	o.ResetForm("create")
	form, _ = o.Form("create")
	assert.Equal(t, "", form["name"])
}

func TestOverlaysSetFieldRequiresOpenOverlay(t *testing.T) {
	o := newTestOverlays()

	err := o.SetField("create", "name", "x")
	assert.ErrorIs(t, err, ErrOverlayClosed)

	require.NoError(t, o.Open("create"))
	err = o.SetField("create", "bogus", "x")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestOverlaysSetFieldsIsAllOrNothing(t *testing.T) {
	o := newTestOverlays()
	require.NoError(t, o.Open("create"))

	err := o.SetFields("create", map[string]string{"name": "Leaked", "zzz": "x"})
	assert.ErrorIs(t, err, ErrUnknownField)
	form, _ := o.Form("create")
	assert.Equal(t, "", form["name"])

	require.NoError(t, o.SetFields("create", map[string]string{"name": "Spring Open", "format": "double"}))
	form, _ = o.Form("create")
	assert.Equal(t, Form{"name": "Spring Open", "format": "double"}, form)

	o.Close()
	assert.ErrorIs(t, o.SetFields("create", map[string]string{"name": "x"}), ErrOverlayClosed)
}

func TestOverlaysOnCloseRunsForEveryClose(t *testing.T) {
	o := newTestOverlays()
	closed := 0
	o.OnClose("addResource", func() { closed++ })

	require.NoError(t, o.Open("addResource"))
	o.Close()
	assert.Equal(t, 1, closed)

	// 被其他對話框取代也算關閉
	require.NoError(t, o.Open("addResource"))
	require.NoError(t, o.Open("register"))
	assert.Equal(t, 2, closed)

	o.CloseAll()
	assert.Equal(t, 2, closed)
}

func TestOverlaysFamilyKeys(t *testing.T) {
	o := newTestOverlays()

	require.NoError(t, o.OpenWith("privacy-showRating", true))
	assert.Equal(t, "privacy-showRating", o.Active())
	assert.Equal(t, true, o.Payload("privacy-showRating"))

	assert.ErrorIs(t, o.Open("privacy-"), ErrUnknownOverlay)

	o.Close()
	assert.Nil(t, o.Payload("privacy-showRating"))
	assert.Equal(t, "", o.Active())
}

func TestOverlaysFormReturnsCopy(t *testing.T) {
	o := newTestOverlays()
	require.NoError(t, o.Open("create"))

	form, _ := o.Form("create")
	form["name"] = "mutated"

	again, _ := o.Form("create")
	assert.Equal(t, "", again["name"])
}
