// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/mock"
	"github.com/MKhiriev/go-parish/internal/service"
	"github.com/MKhiriev/go-parish/models"
)

type fakeSync struct {
	mu        sync.Mutex
	acquired  int
	released  int
	refreshed int
	ch        chan models.SyncSnapshot
	closeOnce sync.Once
}

func newFakeSync() *fakeSync {
	return &fakeSync{ch: make(chan models.SyncSnapshot, 1)}
}

func (f *fakeSync) Acquire(context.Context) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acquired++
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.released++
	}
}

func (f *fakeSync) Refresh(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshed++
	return nil
}

func (f *fakeSync) Snapshot() models.SyncSnapshot { return models.SyncSnapshot{} }

func (f *fakeSync) Subscribe() (<-chan models.SyncSnapshot, func()) {
	return f.ch, func() { f.closeOnce.Do(func() { close(f.ch) }) }
}

func (f *fakeSync) counts() (acquired, released int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.acquired, f.released
}

type contentCall struct {
	op   string
	rec  models.Record
	id   string
	mode service.Convergence
}

type fakeContent struct {
	calls []contentCall
	err   error
}

func (f *fakeContent) Create(_ context.Context, rec models.Record, mode service.Convergence) (models.Record, error) {
	f.calls = append(f.calls, contentCall{op: "create", rec: rec, mode: mode})
	if f.err != nil {
		return nil, f.err
	}
	models.RecordBase(rec).ID = "new-id"
	return rec, nil
}

func (f *fakeContent) Update(_ context.Context, rec models.Record, mode service.Convergence) (models.Record, error) {
	f.calls = append(f.calls, contentCall{op: "update", rec: rec, id: rec.RecordID(), mode: mode})
	return rec, f.err
}

func (f *fakeContent) Delete(_ context.Context, _ models.Collection, id string, mode service.Convergence) error {
	f.calls = append(f.calls, contentCall{op: "delete", id: id, mode: mode})
	return f.err
}

func (f *fakeContent) Subscribe(_ context.Context, email, name string) (*models.Subscriber, error) {
	f.calls = append(f.calls, contentCall{op: "subscribe", id: email})
	if f.err != nil {
		return nil, f.err
	}
	return &models.Subscriber{Email: email, Name: name}, nil
}

func (f *fakeContent) UploadURL(_ context.Context, fileName, _ string) (models.UploadURL, error) {
	f.calls = append(f.calls, contentCall{op: "upload", id: fileName})
	return models.UploadURL{URL: "https://bucket.example/put/" + fileName, PublicURL: "https://cdn.example/" + fileName, ExpiresIn: 900}, f.err
}

type fakeIdentity struct {
	profile   models.Visitor
	updateErr error
}

func (f *fakeIdentity) VisitorID(context.Context) (string, error) { return testVisitorID, nil }

func (f *fakeIdentity) Visitor(context.Context) (models.Visitor, error) {
	v := f.profile
	v.ID = testVisitorID
	return v, nil
}

func (f *fakeIdentity) UpdateProfile(_ context.Context, name, email string) (models.Visitor, error) {
	f.profile = models.Visitor{ID: testVisitorID, Name: name, Email: email}
	return f.profile, f.updateErr
}

type fakeTracker struct {
	seen map[string]bool
}

func (f *fakeTracker) TrackPlayback(_ context.Context, visitorID, sermonID string) (bool, error) {
	k := visitorID + "/" + sermonID
	if f.seen[k] {
		return false, nil
	}
	f.seen[k] = true
	return true, nil
}

type fakeReminders struct {
	set map[string]bool
}

func (f *fakeReminders) Set(_ context.Context, eventID string) error {
	f.set[eventID] = true
	return nil
}

func (f *fakeReminders) Clear(_ context.Context, eventID string) error {
	delete(f.set, eventID)
	return nil
}

func (f *fakeReminders) List(context.Context) ([]models.Reminder, error) {
	out := make([]models.Reminder, 0, len(f.set))
	for id := range f.set {
		out = append(out, models.Reminder{VisitorID: testVisitorID, EventID: id})
	}
	return out, nil
}

type fakeDonations struct {
	requests []models.CheckoutRequest
}

func (f *fakeDonations) Donate(_ context.Context, req models.CheckoutRequest) (*models.Donation, error) {
	f.requests = append(f.requests, req)
	return &models.Donation{Amount: req.Amount, Currency: req.Currency, Purpose: req.Purpose, Status: models.DonationConfirmed}, nil
}

const testVisitorID = "5f0c3c4e-8a57-4f39-9a3e-0d7d1f3c2b11"

type testEnv struct {
	model     rootModel
	adapter   *mock.MockServerAdapter
	public    *fakeSync
	admin     *fakeSync
	content   *fakeContent
	tracker   *fakeTracker
	reminders *fakeReminders
	donations *fakeDonations
	identity  *fakeIdentity
	clipboard []string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	env := &testEnv{
		adapter:   mock.NewMockServerAdapter(ctrl),
		public:    newFakeSync(),
		admin:     newFakeSync(),
		content:   &fakeContent{},
		tracker:   &fakeTracker{seen: make(map[string]bool)},
		reminders: &fakeReminders{set: make(map[string]bool)},
		donations: &fakeDonations{},
		identity:  &fakeIdentity{},
	}

	session := service.NewSession()
	services := &service.ClientServices{
		Session:         session,
		AuthService:     service.NewClientAuthService(env.adapter, session, logger.Nop()),
		ContentService:  env.content,
		IdentityService: env.identity,
		ViewTracker:     env.tracker,
		ReminderService: env.reminders,
		DonationService: env.donations,
		PublicSync:      env.public,
		AdminSync:       env.admin,
	}

	prev := writeClipboard
	writeClipboard = func(s string) error {
		env.clipboard = append(env.clipboard, s)
		return nil
	}
	t.Cleanup(func() { writeClipboard = prev })

	env.model = newRootModel(context.Background(), services, models.AppInfo{Version: "1.0.0"}, logger.Nop())
	env.model.Init()
	env.send(visitorLoadedMsg{visitor: models.Visitor{ID: testVisitorID}})
	return env
}

// send feeds msg to the model and returns the command it produced.
func (e *testEnv) send(msg tea.Msg) tea.Cmd {
	next, cmd := e.model.Update(msg)
	e.model = next.(rootModel)
	return cmd
}

// press sends a key and, when the model answers with a command, runs it and
// feeds its message back.
func (e *testEnv) press(t *testing.T, k string) {
	t.Helper()
	cmd := e.send(keyMsg(k))
	e.run(t, cmd)
}

func (e *testEnv) run(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if msg != nil {
			e.send(msg)
		}
	case <-time.After(time.Second):
		t.Fatal("command did not finish")
	}
}

func (e *testEnv) fill(t *testing.T, values ...string) {
	t.Helper()
	require.NotNil(t, e.model.form)
	for i, v := range values {
		e.model.form.inputs[i].SetValue(v)
	}
	e.model.form.setFocus(len(e.model.form.inputs) - 1)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func snapshotOf(records ...models.Record) models.SyncSnapshot {
	staged := make(map[models.Collection][]models.Record)
	for _, c := range models.AllCollections() {
		staged[c] = []models.Record{}
	}
	for _, rec := range records {
		staged[rec.Collection()] = append(staged[rec.Collection()], rec)
	}
	snap := models.SyncSnapshot{}.WithCollections(staged)
	snap.LastSyncedAt = time.Now()
	return snap
}

func testEvent(id, title string) *models.Event {
	e := &models.Event{Title: title, StartsAt: time.Date(2026, 12, 24, 18, 0, 0, 0, time.Local)}
	e.ID = id
	return e
}

func testSermon(id, title string) *models.Sermon {
	s := &models.Sermon{Title: title, Preacher: "Rev. Okafor", MediaURL: "https://media.example/" + id + ".mp3", MediaKind: models.MediaAudio}
	s.ID = id
	return s
}
