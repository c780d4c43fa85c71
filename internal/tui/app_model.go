// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-parish/internal/app"
	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/service"
	"github.com/MKhiriev/go-parish/models"
)

type page int

const (
	pagePublic page = iota
	pageAdmin
)

// rootModel is the whole terminal UI: the public site, the admin dashboard
// and the forms and overlays drawn on top of them.
type rootModel struct {
	ctx      context.Context
	services *service.ClientServices
	hooks    *hooks
	logger   *logger.Logger

	clientInfo models.AppInfo
	serverInfo models.AppInfo

	page    page
	public  browser
	admin   browser
	spinner spinner.Model

	visitorID string
	reminders map[string]bool

	form     *formModel
	confirm  *confirmModel
	overlay  *errorOverlayModel
	showInfo bool

	status string
	errMsg string
}

func newRootModel(ctx context.Context, services *service.ClientServices, info models.AppInfo, logger *logger.Logger) rootModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return rootModel{
		ctx:        ctx,
		services:   services,
		hooks:      &hooks{},
		logger:     logger,
		clientInfo: info,
		public:     newBrowser(models.PublicCollections()),
		admin:      newBrowser(models.AllCollections()),
		spinner:    s,
		reminders:  make(map[string]bool),
	}
}

func (r rootModel) Init() tea.Cmd {
	r.hooks.public = openHook(r.ctx, publicHook, 0, r.services.PublicSync)

	return tea.Batch(
		r.hooks.public.next(),
		r.spinner.Tick,
		cmdLoadVisitor(r.ctx, r.services.IdentityService),
		cmdLoadReminders(r.ctx, r.services.ReminderService),
		cmdServerInfo(r.ctx, r.services.AppInfo),
	)
}

func (r rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd

	case snapshotMsg:
		cmd := r.onSnapshot(msg)
		return r, cmd

	case refreshDoneMsg:
		switch {
		case msg.err == nil:
			r.setStatus("Up to date")
		case !errors.Is(msg.err, service.ErrSyncInactive):
			r.setError(msg.err)
		}
		return r, nil

	case visitorLoadedMsg:
		if msg.err != nil {
			r.showError(msg.err)
			return r, nil
		}
		r.visitorID = msg.visitor.ID
		return r, nil

	case remindersLoadedMsg:
		if msg.err != nil {
			r.logger.Debug().Err(msg.err).Msg("reminders are not available")
			return r, nil
		}
		r.reminders = make(map[string]bool, len(msg.reminders))
		for _, rem := range msg.reminders {
			r.reminders[rem.EventID] = true
		}
		return r, nil

	case reminderToggledMsg:
		if msg.err != nil {
			r.setError(msg.err)
			return r, nil
		}
		if msg.set {
			r.reminders[msg.eventID] = true
			r.setStatus("We will remind you about this event")
		} else {
			delete(r.reminders, msg.eventID)
			r.setStatus("Reminder removed")
		}
		return r, nil

	case playbackMsg:
		if msg.err != nil {
			r.setError(msg.err)
			return r, nil
		}
		if msg.counted {
			r.setStatus("Enjoy the sermon. Your view was counted")
		} else {
			r.setStatus("Enjoy the sermon")
		}
		return r, nil

	case loginDoneMsg:
		if r.formFailed(msg.err) {
			return r, nil
		}
		r.form = nil
		cmd := r.enterAdmin()
		return r, cmd

	case savedMsg:
		if r.formFailed(msg.err) {
			return r, nil
		}
		r.form = nil
		if !msg.created {
			r.admin.upsert(msg.rec)
			if msg.collection.Public() {
				r.public.upsert(msg.rec)
			}
		}
		r.setStatus(collectionTitle(msg.collection) + ": saved")
		return r, nil

	case deletedMsg:
		if msg.err != nil {
			r.showError(msg.err)
			return r, nil
		}
		r.admin.remove(msg.collection, msg.id)
		r.public.remove(msg.collection, msg.id)
		r.setStatus(collectionTitle(msg.collection) + ": deleted")
		return r, nil

	case donationDoneMsg:
		if r.formFailed(msg.err) {
			return r, nil
		}
		r.form = nil
		r.setStatus(fmt.Sprintf("Thank you! %s for %s received",
			formatAmount(msg.donation.Amount, msg.donation.Currency), msg.donation.Purpose))
		return r, nil

	case subscribedMsg:
		if r.formFailed(msg.err) {
			return r, nil
		}
		r.form = nil
		r.setStatus("You are subscribed to the newsletter")
		return r, nil

	case profileSavedMsg:
		if r.formFailed(msg.err) {
			return r, nil
		}
		r.form = nil
		if msg.visitor.ID != "" {
			r.visitorID = msg.visitor.ID
		}
		if msg.localOnly {
			r.setStatus("Profile saved on this device only, the server will be updated later")
			return r, nil
		}
		r.setStatus("Profile saved")
		return r, nil

	case uploadURLMsg:
		if r.formFailed(msg.err) {
			return r, nil
		}
		r.form = nil
		r.copyToClipboard(msg.upload.URL,
			fmt.Sprintf("Upload URL copied, valid for %ds. Image will be at %s", msg.upload.ExpiresIn, valueOrDash(msg.upload.PublicURL)))
		return r, nil

	case serverInfoMsg:
		if msg.err == nil {
			r.serverInfo = msg.info
		}
		return r, nil

	case tea.KeyMsg:
		return r.onKey(msg)
	}

	if r.form != nil {
		return r, r.form.Update(msg)
	}
	return r, nil
}

func (r *rootModel) onSnapshot(msg snapshotMsg) tea.Cmd {
	h := r.hooks.current(msg.hook)
	if msg.closed || h == nil || h.gen != msg.gen {
		return nil
	}

	if msg.hook == adminHook {
		r.admin.apply(msg.snap)
	} else {
		r.public.apply(msg.snap)
	}
	return h.next()
}

func (r rootModel) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return r, tea.Quit
	}

	switch {
	case r.overlay != nil:
		if key.Matches(msg, keys.enter, keys.esc) {
			r.overlay = nil
		}
		return r, nil

	case r.confirm != nil:
		if key.Matches(msg, keys.yes) {
			c := *r.confirm
			r.confirm = nil
			return r, cmdDelete(r.ctx, r.services.ContentService, c.collection, c.id)
		}
		if key.Matches(msg, keys.no) {
			r.confirm = nil
		}
		return r, nil

	case r.form != nil:
		if key.Matches(msg, keys.esc) {
			r.form = nil
			return r, nil
		}
		if key.Matches(msg, keys.enter) && r.form.onLastInput() {
			if r.form.submitting {
				return r, nil
			}
			cmd := r.submitForm()
			return r, cmd
		}
		return r, r.form.Update(msg)

	case r.showInfo:
		if key.Matches(msg, keys.esc, keys.info) {
			r.showInfo = false
		}
		return r, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return r, tea.Quit
	case key.Matches(msg, keys.info):
		r.showInfo = true
		return r, cmdServerInfo(r.ctx, r.services.AppInfo)
	}

	var cmd tea.Cmd
	if r.page == pageAdmin {
		cmd = r.onAdminKey(msg)
	} else {
		cmd = r.onPublicKey(msg)
	}
	return r, cmd
}

// browse handles the navigation keys shared by both pages and reports
// whether msg was one of them.
func browse(b *browser, msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, keys.up):
		b.move(-1)
	case key.Matches(msg, keys.down):
		b.move(1)
	case key.Matches(msg, keys.left):
		b.switchTab(-1)
	case key.Matches(msg, keys.right):
		b.switchTab(1)
	case key.Matches(msg, keys.enter):
		_, ok := b.current()
		b.detail = ok
	case key.Matches(msg, keys.esc) && b.detail:
		b.detail = false
	default:
		return false
	}
	return true
}

func (r *rootModel) onPublicKey(msg tea.KeyMsg) tea.Cmd {
	if browse(&r.public, msg) {
		return nil
	}

	rec, hasRec := r.public.current()
	switch {
	case key.Matches(msg, keys.refresh):
		r.setStatus("Refreshing...")
		return cmdRefresh(r.ctx, r.services.PublicSync)

	case key.Matches(msg, keys.play):
		sermon, ok := rec.(*models.Sermon)
		if !hasRec || !ok {
			r.setStatus("Select a sermon to play")
			return nil
		}
		if r.visitorID == "" {
			r.setError(service.ErrNoIdentity)
			return nil
		}
		r.setStatus("Playing " + sermon.Title + ": " + sermon.MediaURL)
		return cmdPlay(r.ctx, r.services.ViewTracker, r.visitorID, sermon.ID)

	case key.Matches(msg, keys.remind):
		event, ok := rec.(*models.Event)
		if !hasRec || !ok {
			r.setStatus("Select an event to be reminded about")
			return nil
		}
		return cmdToggleReminder(r.ctx, r.services.ReminderService, event.ID, !r.reminders[event.ID])

	case key.Matches(msg, keys.copy):
		if hasRec {
			r.copyToClipboard(mediaURL(rec), "Link copied")
		}
		return nil

	case key.Matches(msg, keys.copyID):
		r.copyToClipboard(r.visitorID, "Visitor ID copied")
		return nil

	case key.Matches(msg, keys.donate):
		r.form = newDonateForm()
	case key.Matches(msg, keys.subscribe):
		r.form = newSubscribeForm()
	case key.Matches(msg, keys.profile):
		r.form = newProfileForm()
	case key.Matches(msg, keys.admin):
		if r.services.Session.LoggedIn() {
			return r.enterAdmin()
		}
		r.form = newLoginForm()
	}
	return nil
}

func (r *rootModel) onAdminKey(msg tea.KeyMsg) tea.Cmd {
	if browse(&r.admin, msg) {
		return nil
	}

	c := r.admin.collection()
	rec, hasRec := r.admin.current()
	switch {
	case key.Matches(msg, keys.esc):
		r.leaveAdmin()
	case key.Matches(msg, keys.refresh):
		r.setStatus("Refreshing...")
		return cmdRefresh(r.ctx, r.services.AdminSync)
	case key.Matches(msg, keys.newItem):
		r.form = newRecordForm(c, nil)
	case key.Matches(msg, keys.edit) && hasRec:
		r.form = newRecordForm(c, rec)
	case key.Matches(msg, keys.delete) && hasRec:
		r.confirm = &confirmModel{message: recordTitle(rec), collection: c, id: rec.RecordID()}
	case key.Matches(msg, keys.upload):
		if c != models.Gallery {
			r.setStatus("Uploads are available on the gallery tab")
			return nil
		}
		r.form = newUploadForm()
	case key.Matches(msg, keys.copy) && hasRec:
		r.copyToClipboard(mediaURL(rec), "Link copied")
	case key.Matches(msg, keys.logout):
		r.services.AuthService.Logout()
		r.leaveAdmin()
		r.setStatus("Logged out")
	}
	return nil
}

// enterAdmin opens the dashboard and takes hold of the admin sync hook for
// as long as it is shown.
func (r *rootModel) enterAdmin() tea.Cmd {
	if !r.services.Session.LoggedIn() {
		r.form = newLoginForm()
		return nil
	}

	h := r.hooks.openAdmin(r.ctx, r.services.AdminSync)
	r.admin = newBrowser(models.AllCollections())
	r.page = pageAdmin
	r.setStatus("Welcome, " + r.services.Session.Admin())
	return h.next()
}

func (r *rootModel) leaveAdmin() {
	r.hooks.closeAdmin()
	r.page = pagePublic
}

func (r *rootModel) submitForm() tea.Cmd {
	f := r.form
	f.err = ""

	var cmd tea.Cmd
	switch f.purpose {
	case formLogin:
		cmd = cmdLogin(r.ctx, r.services.AuthService, f.value(0), f.inputs[1].Value())

	case formDonate:
		amount, ok := parseAmount(f.value(0))
		if !ok || amount == 0 {
			f.err = "Amount must look like 25 or 12.50"
			return nil
		}
		cmd = cmdDonate(r.ctx, r.services.DonationService, models.CheckoutRequest{
			Amount:    amount,
			Currency:  strings.ToUpper(f.value(1)),
			Purpose:   f.value(2),
			DonorName: f.value(3),
		})

	case formSubscribe:
		cmd = cmdSubscribe(r.ctx, r.services.ContentService, f.value(0), f.value(1))

	case formProfile:
		cmd = cmdSaveProfile(r.ctx, r.services.IdentityService, f.value(0), f.value(1))

	case formRecord:
		rec, err := buildRecord(f.collection, f.editID, f.values())
		if err != nil {
			f.err = err.Error()
			return nil
		}
		cmd = cmdSave(r.ctx, r.services.ContentService, rec)

	case formUpload:
		cmd = cmdUploadURL(r.ctx, r.services.ContentService, f.value(0), f.value(1))
	}

	f.submitting = true
	return cmd
}

// formFailed shows err on the open form. It reports false when err is nil.
func (r *rootModel) formFailed(err error) bool {
	if r.form != nil {
		r.form.submitting = false
	}
	if err == nil {
		return false
	}

	r.logger.Debug().Err(err).Msg("form submission failed")
	if r.form != nil {
		r.form.err = app.UserMessage(err)
	} else {
		r.setError(err)
	}
	return true
}

func (r *rootModel) copyToClipboard(text, done string) {
	if strings.TrimSpace(text) == "" {
		r.setStatus("Nothing to copy")
		return
	}
	if err := writeClipboard(text); err != nil {
		r.logger.Debug().Err(err).Msg("clipboard is not available")
		r.setStatus(text)
		return
	}
	r.setStatus(done)
}

func (r *rootModel) setStatus(s string) {
	r.status = s
	r.errMsg = ""
}

// showError opens the error overlay for failures the user should not miss.
func (r *rootModel) showError(err error) {
	r.logger.Warn().Err(err).Msg("action failed")
	r.overlay = &errorOverlayModel{message: app.UserMessage(err)}
}

func (r *rootModel) setError(err error) {
	r.logger.Debug().Err(err).Msg("action failed")
	r.status = ""
	r.errMsg = app.UserMessage(err)
}

func (r rootModel) View() string {
	switch {
	case r.overlay != nil:
		return appStyle.Render(r.overlay.View())
	case r.confirm != nil:
		return appStyle.Render(r.confirm.View())
	case r.form != nil:
		return appStyle.Render(r.form.View())
	case r.showInfo:
		return appStyle.Render(renderBuildInfoWindow(r.clientInfo, r.serverInfo))
	case r.page == pageAdmin:
		return appStyle.Render(r.viewAdmin())
	default:
		return appStyle.Render(r.viewPublic())
	}
}

func (r rootModel) viewPublic() string {
	var b strings.Builder

	for _, banner := range activeBanners(r.public.records[models.Notifications], time.Now()) {
		b.WriteString(urgentStyle.Render("! " + banner))
		b.WriteString("\n")
	}
	b.WriteString(r.public.renderTabs())
	b.WriteString("\n")
	b.WriteString(r.public.renderSyncLine(r.spinner.View()))
	b.WriteString("\n\n")

	if rec, ok := r.public.current(); ok && r.public.detail {
		b.WriteString(recordDetail(rec))
	} else {
		b.WriteString(r.public.renderList(r.reminderMark))
	}
	b.WriteString("\n\n")
	b.WriteString(r.statusLine())

	hotKeys := "←/→ section  ↑/↓ select  enter details  p play  r remind  c copy link\n" +
		"  g give  m newsletter  i profile  u copy visitor id  a admin  s refresh  v about"
	return renderPage("PARISH", b.String(), hotKeys)
}

func (r rootModel) viewAdmin() string {
	var b strings.Builder

	b.WriteString(r.admin.renderTabs())
	b.WriteString("\n")
	b.WriteString(r.admin.renderSyncLine(r.spinner.View()))
	b.WriteString("\n\n")

	if rec, ok := r.admin.current(); ok && r.admin.detail {
		b.WriteString(recordDetail(rec))
	} else {
		b.WriteString(r.admin.renderList(nil))
	}
	b.WriteString("\n\n")
	b.WriteString(r.statusLine())

	title := "ADMIN: " + r.services.Session.Admin()
	if exp := r.services.Session.ExpiresAt(); !exp.IsZero() {
		title += "  (session until " + formatTime(exp) + ")"
	}
	hotKeys := "←/→ collection  ↑/↓ select  enter details  n new  e edit  d delete\n" +
		"  u upload url  c copy link  s refresh  o log out  esc back to site"
	return renderPage(title, b.String(), hotKeys)
}

func (r rootModel) statusLine() string {
	if r.errMsg != "" {
		return errorStyle.Render(r.errMsg)
	}
	if r.status != "" {
		return statusStyle.Render(r.status)
	}
	return ""
}

func (r rootModel) reminderMark(rec models.Record) string {
	if _, ok := rec.(*models.Event); ok && r.reminders[rec.RecordID()] {
		return "  [reminder]"
	}
	return ""
}

// activeBanners lists the urgent notifications that have not expired.
func activeBanners(records []models.Record, now time.Time) []string {
	var out []string
	for _, rec := range records {
		n, ok := rec.(*models.Notification)
		if !ok || n.Level != models.LevelUrgent {
			continue
		}
		if n.ExpiresAt != nil && !n.ExpiresAt.After(now) {
			continue
		}
		out = append(out, n.Title+": "+n.Message)
	}
	return out
}
