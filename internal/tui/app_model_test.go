// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-parish/internal/adapter"
	"github.com/MKhiriev/go-parish/internal/app"
	"github.com/MKhiriev/go-parish/internal/service"
	"github.com/MKhiriev/go-parish/models"
)

func TestRootModel_Init_AcquiresPublicHook(t *testing.T) {
	env := newTestEnv(t)

	acquired, released := env.public.counts()
	assert.Equal(t, 1, acquired)
	assert.Equal(t, 0, released)
	assert.Contains(t, env.model.View(), "Loading...")
}

func TestRootModel_Snapshot_ShowsRecords(t *testing.T) {
	env := newTestEnv(t)

	cmd := env.send(snapshotMsg{hook: publicHook, snap: snapshotOf(testEvent("e1", "Christmas Eve service"))})

	assert.NotNil(t, cmd, "the model keeps listening for snapshots")
	assert.Contains(t, env.model.View(), "Christmas Eve service")
	assert.Contains(t, env.model.View(), "Events (1)")
}

func TestRootModel_Snapshot_ClosedOrStaleIgnored(t *testing.T) {
	env := newTestEnv(t)
	env.send(snapshotMsg{hook: publicHook, snap: snapshotOf(testEvent("e1", "Vespers"))})

	assert.Nil(t, env.send(snapshotMsg{hook: publicHook, closed: true}))
	assert.Nil(t, env.send(snapshotMsg{hook: adminHook, gen: 7, snap: snapshotOf()}))
	assert.Contains(t, env.model.View(), "Vespers")
}

func TestRootModel_FailedCycleKeepsRecords(t *testing.T) {
	env := newTestEnv(t)
	good := snapshotOf(testEvent("e1", "Vespers"))
	env.send(snapshotMsg{hook: publicHook, snap: good})

	failed := good
	failed.Err = errors.New("boom")
	env.send(snapshotMsg{hook: publicHook, snap: failed})

	view := env.model.View()
	assert.Contains(t, view, "Vespers")
	assert.Contains(t, view, "Refresh failed")
}

func TestRootModel_PlaySermon_CountsOnce(t *testing.T) {
	env := newTestEnv(t)
	env.send(snapshotMsg{hook: publicHook, snap: snapshotOf(testSermon("s1", "The Prodigal Son"))})
	env.press(t, "right")
	require.Equal(t, models.Sermons, env.model.public.collection())

	env.press(t, "p")
	assert.Equal(t, "Enjoy the sermon. Your view was counted", env.model.status)

	env.press(t, "p")
	assert.Equal(t, "Enjoy the sermon", env.model.status)
	assert.Len(t, env.tracker.seen, 1)
}

func TestRootModel_Play_RequiresSermon(t *testing.T) {
	env := newTestEnv(t)
	env.send(snapshotMsg{hook: publicHook, snap: snapshotOf(testEvent("e1", "Vespers"))})

	env.press(t, "p")

	assert.Equal(t, "Select a sermon to play", env.model.status)
	assert.Empty(t, env.tracker.seen)
}

func TestRootModel_ToggleReminder(t *testing.T) {
	env := newTestEnv(t)
	env.send(snapshotMsg{hook: publicHook, snap: snapshotOf(testEvent("e1", "Vespers"))})

	env.press(t, "r")
	assert.True(t, env.reminders.set["e1"])
	assert.Contains(t, env.model.View(), "[reminder]")

	env.press(t, "r")
	assert.False(t, env.reminders.set["e1"])
	assert.NotContains(t, env.model.View(), "[reminder]")
}

func TestRootModel_CopyLinkAndVisitorID(t *testing.T) {
	env := newTestEnv(t)
	env.send(snapshotMsg{hook: publicHook, snap: snapshotOf(testSermon("s1", "Grace"))})
	env.press(t, "right")

	env.press(t, "c")
	env.press(t, "u")

	assert.Equal(t, []string{"https://media.example/s1.mp3", testVisitorID}, env.clipboard)
}

func TestRootModel_DetailView(t *testing.T) {
	env := newTestEnv(t)
	env.send(snapshotMsg{hook: publicHook, snap: snapshotOf(testSermon("s1", "Grace"))})
	env.press(t, "right")

	env.press(t, "enter")
	assert.Contains(t, env.model.View(), "Media URL: https://media.example/s1.mp3")

	env.press(t, "esc")
	assert.False(t, env.model.public.detail)
}

func TestRootModel_AdminLogin_AcquiresAdminHook(t *testing.T) {
	env := newTestEnv(t)
	env.adapter.EXPECT().Login(gomock.Any(), models.LoginRequest{Login: "pastor", Password: "amazing grace"}).
		Return(models.Token{SignedString: "opaque"}, nil)

	env.press(t, "a")
	require.NotNil(t, env.model.form)
	assert.Equal(t, formLogin, env.model.form.purpose)

	env.fill(t, "pastor", "amazing grace")
	env.press(t, "enter")

	assert.Nil(t, env.model.form)
	assert.Equal(t, pageAdmin, env.model.page)
	acquired, _ := env.admin.counts()
	assert.Equal(t, 1, acquired)
	assert.Contains(t, env.model.View(), "ADMIN: pastor")
}

func TestRootModel_AdminLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.adapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{}, adapter.ErrUnauthorized)

	env.press(t, "a")
	env.fill(t, "pastor", "nope")
	env.press(t, "enter")

	require.NotNil(t, env.model.form)
	assert.Equal(t, app.MsgInvalidLoginPassword, env.model.form.err)
	assert.Equal(t, pagePublic, env.model.page)
	acquired, _ := env.admin.counts()
	assert.Zero(t, acquired)
}

func loginAsAdmin(t *testing.T, env *testEnv, records ...models.Record) {
	t.Helper()
	env.adapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{SignedString: "opaque"}, nil)
	env.press(t, "a")
	env.fill(t, "pastor", "amazing grace")
	env.press(t, "enter")
	require.Equal(t, pageAdmin, env.model.page)

	env.send(snapshotMsg{hook: adminHook, gen: env.model.hooks.admin.gen, snap: snapshotOf(records...)})
}

func TestRootModel_AdminDelete_PatchesLocally(t *testing.T) {
	env := newTestEnv(t)
	loginAsAdmin(t, env, testEvent("e1", "Vespers"), testEvent("e2", "Choir practice"))

	env.press(t, "d")
	require.NotNil(t, env.model.confirm)
	assert.Contains(t, env.model.View(), "Vespers")

	env.press(t, "y")

	require.Len(t, env.content.calls, 1)
	assert.Equal(t, contentCall{op: "delete", id: "e1", mode: service.ConvergePatch}, env.content.calls[0])
	assert.Len(t, env.model.admin.records[models.Events], 1)
	assert.NotContains(t, env.model.View(), "Vespers")
}

func TestRootModel_AdminDelete_Cancelled(t *testing.T) {
	env := newTestEnv(t)
	loginAsAdmin(t, env, testEvent("e1", "Vespers"))

	env.press(t, "d")
	env.press(t, "n")

	assert.Nil(t, env.model.confirm)
	assert.Empty(t, env.content.calls)
}

func TestRootModel_AdminDelete_FailureShowsOverlay(t *testing.T) {
	env := newTestEnv(t)
	loginAsAdmin(t, env, testEvent("e1", "Vespers"))
	env.content.err = fmt.Errorf("delete: %w", adapter.ErrInternalServerError)

	env.press(t, "d")
	env.press(t, "y")

	require.NotNil(t, env.model.overlay)
	assert.Equal(t, app.MsgInternalServerError, env.model.overlay.message)
	assert.Len(t, env.model.admin.records[models.Events], 1)

	env.press(t, "esc")
	assert.Nil(t, env.model.overlay)
}

func TestRootModel_AdminCreate_UsesRefresh(t *testing.T) {
	env := newTestEnv(t)
	loginAsAdmin(t, env)

	env.press(t, "n")
	require.NotNil(t, env.model.form)
	env.fill(t, "Easter vigil", "2027-03-27 20:00", "", "Main hall")
	env.press(t, "enter")

	require.Len(t, env.content.calls, 1)
	call := env.content.calls[0]
	assert.Equal(t, "create", call.op)
	assert.Equal(t, service.ConvergeRefresh, call.mode)

	event := call.rec.(*models.Event)
	assert.Equal(t, "Easter vigil", event.Title)
	assert.Equal(t, "Main hall", event.Location)
	assert.Nil(t, event.EndsAt)
	assert.Nil(t, env.model.form)
	assert.Equal(t, "Events: saved", env.model.status)
}

func TestRootModel_AdminCreate_BadDate(t *testing.T) {
	env := newTestEnv(t)
	loginAsAdmin(t, env)

	env.press(t, "n")
	env.fill(t, "Easter vigil", "next sunday")
	env.press(t, "enter")

	require.NotNil(t, env.model.form)
	assert.Contains(t, env.model.form.err, "Starts at")
	assert.Empty(t, env.content.calls)
}

func TestRootModel_AdminEdit_PatchesBothViews(t *testing.T) {
	env := newTestEnv(t)
	env.send(snapshotMsg{hook: publicHook, snap: snapshotOf(testEvent("e1", "Vespers"))})
	loginAsAdmin(t, env, testEvent("e1", "Vespers"))

	env.press(t, "e")
	require.NotNil(t, env.model.form)
	assert.Equal(t, "Vespers", env.model.form.inputs[0].Value())

	env.model.form.inputs[0].SetValue("Evening vespers")
	env.model.form.setFocus(len(env.model.form.inputs) - 1)
	env.press(t, "enter")

	require.Len(t, env.content.calls, 1)
	assert.Equal(t, service.ConvergePatch, env.content.calls[0].mode)
	assert.Equal(t, "e1", env.content.calls[0].id)

	rec, ok := models.Find(env.model.admin.records[models.Events], "e1")
	require.True(t, ok)
	assert.Equal(t, "Evening vespers", rec.(*models.Event).Title)

	rec, ok = models.Find(env.model.public.records[models.Events], "e1")
	require.True(t, ok)
	assert.Equal(t, "Evening vespers", rec.(*models.Event).Title)
}

func TestRootModel_AdminValidationErrorStaysOnForm(t *testing.T) {
	env := newTestEnv(t)
	loginAsAdmin(t, env)
	env.content.err = &adapter.StatusError{StatusCode: 400, Message: "validation failed", Fields: map[string]string{"title": "is required"}}

	env.press(t, "n")
	env.fill(t, "", "2027-03-27 20:00")
	env.press(t, "enter")

	require.NotNil(t, env.model.form)
	assert.Equal(t, app.MsgInvalidDataProvided+": title is required", env.model.form.err)
	assert.False(t, env.model.form.submitting)
}

func TestRootModel_AdminUpload_OnlyOnGallery(t *testing.T) {
	env := newTestEnv(t)
	loginAsAdmin(t, env)

	env.press(t, "u")
	assert.Nil(t, env.model.form)

	for env.model.admin.collection() != models.Gallery {
		env.press(t, "right")
	}
	env.press(t, "u")
	require.NotNil(t, env.model.form)
	env.fill(t, "baptism.jpg", "image/jpeg")
	env.press(t, "enter")

	assert.Equal(t, []string{"https://bucket.example/put/baptism.jpg"}, env.clipboard)
	assert.Contains(t, env.model.status, "https://cdn.example/baptism.jpg")
}

func TestRootModel_Logout_ReleasesAdminHook(t *testing.T) {
	env := newTestEnv(t)
	loginAsAdmin(t, env)
	env.adapter.EXPECT().SetToken("")

	env.press(t, "o")

	assert.Equal(t, pagePublic, env.model.page)
	assert.False(t, env.model.services.Session.LoggedIn())
	_, released := env.admin.counts()
	assert.Equal(t, 1, released)
}

func TestRootModel_LeavingAdminKeepsSession(t *testing.T) {
	env := newTestEnv(t)
	loginAsAdmin(t, env)

	env.press(t, "esc")
	assert.Equal(t, pagePublic, env.model.page)
	_, released := env.admin.counts()
	assert.Equal(t, 1, released)

	env.press(t, "a")
	assert.Nil(t, env.model.form, "no second login while the session is valid")
	assert.Equal(t, pageAdmin, env.model.page)
	acquired, _ := env.admin.counts()
	assert.Equal(t, 2, acquired)
}

func TestRootModel_Donate(t *testing.T) {
	env := newTestEnv(t)

	env.press(t, "g")
	env.fill(t, "12.50", "usd", "Building fund", "Ada")
	env.press(t, "enter")

	require.Len(t, env.donations.requests, 1)
	assert.Equal(t, models.CheckoutRequest{Amount: 1250, Currency: "USD", Purpose: "Building fund", DonorName: "Ada"}, env.donations.requests[0])
	assert.Nil(t, env.model.form)
	assert.Contains(t, env.model.status, "12.50 USD")
}

func TestRootModel_Donate_BadAmount(t *testing.T) {
	env := newTestEnv(t)

	env.press(t, "g")
	env.fill(t, "twelve")
	env.press(t, "enter")

	require.NotNil(t, env.model.form)
	assert.NotEmpty(t, env.model.form.err)
	assert.Empty(t, env.donations.requests)
}

func TestRootModel_Subscribe(t *testing.T) {
	env := newTestEnv(t)

	env.press(t, "m")
	env.fill(t, "ada@example.org", "Ada")
	env.press(t, "enter")

	require.Len(t, env.content.calls, 1)
	assert.Equal(t, "ada@example.org", env.content.calls[0].id)
	assert.Equal(t, "You are subscribed to the newsletter", env.model.status)
}

func TestRootModel_Profile(t *testing.T) {
	env := newTestEnv(t)

	env.press(t, "i")
	env.fill(t, "Ada", "ada@example.org")
	env.press(t, "enter")

	assert.Nil(t, env.model.form)
	assert.Equal(t, "Profile saved", env.model.status)
}

func TestRootModel_Profile_ServerUnreachable(t *testing.T) {
	env := newTestEnv(t)
	env.identity.updateErr = fmt.Errorf("%w: connection refused", service.ErrProfileNotSynced)

	env.press(t, "i")
	env.fill(t, "Ada", "ada@example.org")
	env.press(t, "enter")

	assert.Nil(t, env.model.form)
	assert.Equal(t, "Profile saved on this device only, the server will be updated later", env.model.status)
}

func TestRootModel_FormSwallowsLetterKeys(t *testing.T) {
	env := newTestEnv(t)

	env.press(t, "m")
	env.send(keyMsg("q"))

	require.NotNil(t, env.model.form)
	assert.Equal(t, "q", env.model.form.inputs[0].Value())

	env.press(t, "esc")
	assert.Nil(t, env.model.form)
}

func TestRootModel_Refresh(t *testing.T) {
	env := newTestEnv(t)

	env.press(t, "s")

	assert.Equal(t, 1, env.public.refreshed)
	assert.Equal(t, "Up to date", env.model.status)
}

func TestRootModel_BuildInfo(t *testing.T) {
	env := newTestEnv(t)

	env.send(keyMsg("v"))
	env.send(serverInfoMsg{info: models.AppInfo{Version: "2.0.0", BuildCommit: "abc123"}})

	view := env.model.View()
	assert.Contains(t, view, "Client version: 1.0.0")
	assert.Contains(t, view, "Server version: 2.0.0")

	env.press(t, "esc")
	assert.False(t, env.model.showInfo)
}

func TestHooks_CloseAllReleasesEverything(t *testing.T) {
	env := newTestEnv(t)
	loginAsAdmin(t, env)

	env.model.hooks.closeAll()
	env.model.hooks.closeAll()

	_, publicReleased := env.public.counts()
	_, adminReleased := env.admin.counts()
	assert.Equal(t, 1, publicReleased)
	assert.Equal(t, 1, adminReleased)
}

func TestHookHandle_NextReportsClosedChannel(t *testing.T) {
	sync := newFakeSync()
	h := openHook(context.Background(), adminHook, 3, sync)

	snap := snapshotOf(testEvent("e1", "Vespers"))
	sync.ch <- snap
	msg := h.next()().(snapshotMsg)
	assert.False(t, msg.closed)
	assert.Equal(t, 3, msg.gen)
	assert.True(t, msg.snap.Has(models.Events))

	h.close()
	msg = h.next()().(snapshotMsg)
	assert.True(t, msg.closed)
}
