package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-client/internal/adapter"
	"github.com/MKhiriev/go-notes-client/internal/service"
	"github.com/MKhiriev/go-notes-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type view int

const (
	viewPublic view = iota
	viewPrivate
	viewStats
)

type listState struct {
	notes   []models.Note
	idx     int
	loading bool
	lastErr error
}

func (s listState) current() (models.Note, bool) {
	if len(s.notes) == 0 || s.idx < 0 || s.idx >= len(s.notes) {
		return models.Note{}, false
	}
	return s.notes[s.idx], true
}

func (s listState) clampIndex() listState {
	if s.idx >= len(s.notes) {
		s.idx = len(s.notes) - 1
	}
	if s.idx < 0 {
		s.idx = 0
	}
	return s
}

// appModel is the client's single state machine: one of three views plus
// independently stacked overlays (detail, login, note form, delete confirm).
type appModel struct {
	ctx      context.Context
	services *service.ClientServices

	refreshInterval time.Duration
	toastDuration   time.Duration

	view        view
	publicList  listState
	privateList listState

	stats        models.Stats
	statsLoading bool
	statsErr     error

	// per-list fetch generations; a settled response tagged with an older
	// generation is discarded instead of overwriting fresher data
	publicGen  int
	privateGen int
	statsGen   int

	showNoteForm bool
	noteForm     noteFormModel
	showLogin    bool
	loginForm    loginFormModel
	showDetail   bool
	detail       detailModel
	showConfirm  bool
	confirm      confirmModel

	toast toastModel

	now func() time.Time
}

func newAppModel(ctx context.Context, services *service.ClientServices, refreshInterval, toastDuration time.Duration) appModel {
	return appModel{
		ctx:             ctx,
		services:        services,
		refreshInterval: refreshInterval,
		toastDuration:   toastDuration,
		view:            viewPublic,
		publicList:      listState{loading: true},
		loginForm:       newLoginFormModel(),
		noteForm:        newNoteFormModel(nil),
		publicGen:       1,
		now:             time.Now,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadPublic(m.publicGen), m.cmdRefreshTick())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateKey(msg)

	case refreshTickMsg:
		cmds := []tea.Cmd{m.cmdRefreshTick()}
		if m.view == viewPublic {
			m.publicGen++
			cmds = append(cmds, m.cmdLoadPublic(m.publicGen))
		}
		return m, tea.Batch(cmds...)

	case publicLoadedMsg:
		if msg.gen != m.publicGen {
			return m, nil
		}
		m.publicList.loading = false
		if msg.err != nil {
			m.publicList.lastErr = msg.err
			return m, m.toast.show(errorMessage(msg.err), toastError, m.toastDuration)
		}
		m.publicList.lastErr = nil
		m.publicList.notes = msg.notes
		m.publicList = m.publicList.clampIndex()
		return m, nil

	case privateLoadedMsg:
		if msg.gen != m.privateGen {
			return m, nil
		}
		m.privateList.loading = false
		if msg.err != nil {
			m.privateList.lastErr = msg.err
			return m, m.toast.show(errorMessage(msg.err), toastError, m.toastDuration)
		}
		m.privateList.lastErr = nil
		m.privateList.notes = msg.notes
		m.privateList = m.privateList.clampIndex()
		return m, nil

	case statsLoadedMsg:
		if msg.gen != m.statsGen {
			return m, nil
		}
		m.statsLoading = false
		if msg.err != nil {
			m.statsErr = msg.err
			return m, m.toast.show(errorMessage(msg.err), toastError, m.toastDuration)
		}
		m.statsErr = nil
		m.stats = msg.stats
		return m, nil

	case loginDoneMsg:
		m.loginForm.submitting = false
		if msg.err != nil {
			return m, m.toast.show(errorMessage(msg.err), toastError, m.toastDuration)
		}
		m.showLogin = false
		m.loginForm = newLoginFormModel()

		cmds := []tea.Cmd{m.toast.show("Logged in as "+msg.username, toastSuccess, m.toastDuration)}
		var cmd tea.Cmd
		m, cmd = m.reloadActiveView()
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case logoutDoneMsg:
		// local teardown happens even when clearing the persisted session
		// failed: the in-memory session is already gone and a later login by
		// another user must never see this user's cached notes
		m.services.Notes.ResetPrivate()
		m.privateList = listState{}
		m.stats = models.Stats{}
		m.showDetail = false
		m.showNoteForm = false
		m.showConfirm = false

		var cmds []tea.Cmd
		if msg.err != nil {
			cmds = append(cmds, m.toast.show(errorMessage(msg.err), toastError, m.toastDuration))
		} else {
			cmds = append(cmds, m.toast.show("Logged out", toastInfo, m.toastDuration))
		}
		if m.view != viewPublic {
			var cmd tea.Cmd
			m, cmd = m.switchView(viewPublic)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case noteSavedMsg:
		m.noteForm.submitting = false
		if msg.err != nil {
			return m, m.toast.show(errorMessage(msg.err), toastError, m.toastDuration)
		}
		m.showNoteForm = false
		m.noteForm = newNoteFormModel(nil)
		m.privateList.notes = m.services.Notes.Private()
		m.privateList = m.privateList.clampIndex()

		message := "Note updated"
		if msg.created {
			message = "Note created"
		}
		if m.showDetail && m.detail.note.ID == msg.note.ID {
			m.detail.note = msg.note
		}
		return m, m.toast.show(message, toastSuccess, m.toastDuration)

	case noteDeletedMsg:
		m.showConfirm = false
		if msg.err != nil {
			return m, m.toast.show(errorMessage(msg.err), toastError, m.toastDuration)
		}
		if m.showDetail && m.detail.note.ID == msg.id {
			m.showDetail = false
		}
		m.privateList.notes = m.services.Notes.Private()
		m.privateList = m.privateList.clampIndex()
		return m, m.toast.show("Note deleted", toastSuccess, m.toastDuration)

	case detailLoadedMsg:
		if msg.err != nil {
			return m, m.toast.show(errorMessage(msg.err), toastError, m.toastDuration)
		}
		m.detail = detailModel{
			note:  msg.note,
			owned: msg.note.User == m.services.Auth.Session().Username,
		}
		m.showDetail = true
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			return m, m.toast.show(errorMessage(msg.err), toastError, m.toastDuration)
		}
		m.detail.status = "Copied!"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.detail.status = ""
		return m, nil

	case toastTickMsg:
		return m, m.toast.tick(msg)

	case tea.WindowSizeMsg:
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// updateKey dispatches a key press to the top-most open overlay, falling
// through to the active view when none is open.
func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.showConfirm:
		return m.updateConfirmKey(msg)
	case m.showNoteForm:
		return m.updateNoteFormKey(msg)
	case m.showLogin:
		return m.updateLoginKey(msg)
	case m.showDetail:
		return m.updateDetailKey(msg)
	default:
		return m.updateViewKey(msg)
	}
}

func (m appModel) updateConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		return m, m.cmdDeleteNote(m.confirm.noteID)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
	}
	return m, nil
}

func (m appModel) updateNoteFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.showNoteForm = false
		m.noteForm = newNoteFormModel(nil)
		return m, nil
	case key.Matches(msg, keys.tab):
		m.noteForm = m.noteForm.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.noteForm = m.noteForm.focusPrev()
		return m, nil
	case key.Matches(msg, keys.toggle) && m.noteForm.focus == noteFormFieldVisibility:
		m.noteForm.isPublic = !m.noteForm.isPublic
		return m, nil
	case key.Matches(msg, keys.enter) && m.noteForm.focus == noteFormFieldVisibility,
		key.Matches(msg, keys.submit):
		return m.submitNoteForm()
	}

	var cmd tea.Cmd
	switch m.noteForm.focus {
	case noteFormFieldTitle:
		m.noteForm.title, cmd = m.noteForm.title.Update(msg)
	case noteFormFieldContent:
		m.noteForm.content, cmd = m.noteForm.content.Update(msg)
	}
	return m, cmd
}

// submitNoteForm validates locally before any request goes out: a blank
// title or content costs one toast and nothing else.
func (m appModel) submitNoteForm() (tea.Model, tea.Cmd) {
	if m.noteForm.submitting {
		return m, nil
	}

	req := m.noteForm.request()
	if req.Title == "" {
		return m, m.toast.show(errorMessage(service.ErrValidationEmptyTitle), toastError, m.toastDuration)
	}
	if req.Content == "" {
		return m, m.toast.show(errorMessage(service.ErrValidationEmptyContent), toastError, m.toastDuration)
	}

	m.noteForm.submitting = true
	if m.noteForm.editing() {
		return m, m.cmdUpdateNote(*m.noteForm.editingID, req)
	}
	return m, m.cmdCreateNote(req)
}

func (m appModel) updateLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.showLogin = false
		m.loginForm = newLoginFormModel()
		return m, nil
	case key.Matches(msg, keys.tab):
		m.loginForm = m.loginForm.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.loginForm = m.loginForm.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.loginForm.submitting {
			return m, nil
		}
		username := m.loginForm.username()
		password := m.loginForm.password()
		if username == "" || password == "" {
			return m, m.toast.show("Username and password are required", toastError, m.toastDuration)
		}
		m.loginForm.submitting = true
		return m, m.cmdLogin(username, password)
	}

	var cmd tea.Cmd
	m.loginForm.inputs[m.loginForm.focus], cmd = m.loginForm.inputs[m.loginForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.showDetail = false
	case key.Matches(msg, keys.edit):
		if !m.detail.owned {
			return m, nil
		}
		note := m.detail.note
		m.noteForm = newNoteFormModel(&note)
		m.showNoteForm = true
	case key.Matches(msg, keys.delete):
		if !m.detail.owned {
			return m, nil
		}
		m.confirm = confirmModel{title: m.detail.note.Title, noteID: m.detail.note.ID}
		m.showConfirm = true
	case key.Matches(msg, keys.copy):
		return m, cmdCopyToClipboard(m.detail.note.Content)
	}
	return m, nil
}

func (m appModel) updateViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.publicView):
		return m.switchView(viewPublic)
	case key.Matches(msg, keys.privateView):
		return m.switchView(viewPrivate)
	case key.Matches(msg, keys.statsView):
		return m.switchView(viewStats)

	case key.Matches(msg, keys.refresh):
		return m.reloadActiveView()

	case key.Matches(msg, keys.newNote):
		if !m.services.Auth.IsAuthenticated() {
			m.showLogin = true
			return m, nil
		}
		m.noteForm = newNoteFormModel(nil)
		m.showNoteForm = true
		return m, nil

	case key.Matches(msg, keys.auth):
		if m.services.Auth.IsAuthenticated() {
			return m, m.cmdLogout()
		}
		m.showLogin = true
		return m, nil

	case key.Matches(msg, keys.up):
		list := m.activeList()
		if list != nil && list.idx > 0 {
			list.idx--
		}
	case key.Matches(msg, keys.down):
		list := m.activeList()
		if list != nil && list.idx < len(list.notes)-1 {
			list.idx++
		}
	case key.Matches(msg, keys.enter):
		list := m.activeList()
		if list == nil {
			return m, nil
		}
		note, ok := list.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdLoadDetail(note.ID, m.view == viewPrivate)
	}

	return m, nil
}

func (m *appModel) activeList() *listState {
	switch m.view {
	case viewPublic:
		return &m.publicList
	case viewPrivate:
		return &m.privateList
	default:
		return nil
	}
}

// switchView changes the active view and kicks off its fetch. Auth-gated
// views without a session render the login prompt and fetch nothing.
func (m appModel) switchView(v view) (appModel, tea.Cmd) {
	m.view = v

	switch v {
	case viewPublic:
		// explicit entry replaces any cached list with the loading
		// placeholder; only the background tick refreshes in place
		m.publicGen++
		m.publicList.loading = true
		return m, m.cmdLoadPublic(m.publicGen)
	case viewPrivate:
		if !m.services.Auth.IsAuthenticated() {
			return m, nil
		}
		m.privateGen++
		m.privateList.loading = true
		return m, m.cmdLoadPrivate(m.privateGen)
	case viewStats:
		if !m.services.Auth.IsAuthenticated() {
			return m, nil
		}
		m.statsGen++
		m.statsLoading = true
		return m, m.cmdLoadStats(m.statsGen)
	}

	return m, nil
}

func (m appModel) reloadActiveView() (appModel, tea.Cmd) {
	return m.switchView(m.view)
}

func (m appModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.showNoteForm:
		switch m.noteForm.focus {
		case noteFormFieldTitle:
			m.noteForm.title, cmd = m.noteForm.title.Update(msg)
		case noteFormFieldContent:
			m.noteForm.content, cmd = m.noteForm.content.Update(msg)
		}
	case m.showLogin:
		m.loginForm.inputs[m.loginForm.focus], cmd = m.loginForm.inputs[m.loginForm.focus].Update(msg)
	}
	return m, cmd
}

// ── commands ──────────────────────────────────────────────────────────────────

func (m appModel) cmdRefreshTick() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

func (m appModel) cmdLoadPublic(gen int) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Notes
	return func() tea.Msg {
		notes, err := svc.LoadPublic(ctx)
		return publicLoadedMsg{gen: gen, notes: notes, err: err}
	}
}

func (m appModel) cmdLoadPrivate(gen int) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Notes
	return func() tea.Msg {
		notes, err := svc.LoadPrivate(ctx)
		return privateLoadedMsg{gen: gen, notes: notes, err: err}
	}
}

func (m appModel) cmdLoadStats(gen int) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Notes
	return func() tea.Msg {
		stats, err := svc.Stats(ctx)
		return statsLoadedMsg{gen: gen, stats: stats, err: err}
	}
}

func (m appModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		err := auth.Login(ctx, username, password)
		return loginDoneMsg{username: username, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	auth := m.services.Auth
	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout()}
	}
}

func (m appModel) cmdCreateNote(req models.CreateNoteRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Notes
	return func() tea.Msg {
		note, err := svc.Create(ctx, req)
		return noteSavedMsg{note: note, created: true, err: err}
	}
}

func (m appModel) cmdUpdateNote(id int64, req models.CreateNoteRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Notes
	return func() tea.Msg {
		note, err := svc.Update(ctx, id, req)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m appModel) cmdDeleteNote(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Notes
	return func() tea.Msg {
		return noteDeletedMsg{id: id, err: svc.Delete(ctx, id)}
	}
}

func (m appModel) cmdLoadDetail(id int64, private bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Notes
	return func() tea.Msg {
		var (
			note models.Note
			err  error
		)
		if private {
			note, err = svc.PrivateDetail(ctx, id)
		} else {
			note, err = svc.PublicDetail(ctx, id)
		}
		return detailLoadedMsg{note: note, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// ── view ──────────────────────────────────────────────────────────────────────

func (m appModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Notes Board"))
	if session := m.services.Auth.Session(); session.Valid() {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(escapeText(session.Username)))
	}
	b.WriteString("\n")
	b.WriteString(renderTabs(m.view))
	b.WriteString("\n\n")

	b.WriteString(m.viewBody())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.hotKeys()))

	if m.showDetail {
		b.WriteString("\n\n")
		b.WriteString(renderDetail(m.detail.note, m.now(), m.detail.owned, m.detail.status))
	}
	if m.showLogin {
		b.WriteString("\n\n")
		b.WriteString(m.loginForm.View())
	}
	if m.showNoteForm {
		b.WriteString("\n\n")
		b.WriteString(m.noteForm.View())
	}
	if m.showConfirm {
		b.WriteString("\n\n")
		b.WriteString(m.confirm.View())
	}

	if m.toast.visible() {
		b.WriteString("\n\n")
		b.WriteString(m.toast.View())
	}

	return appStyle.Render(b.String())
}

func (m appModel) viewBody() string {
	switch m.view {
	case viewPublic:
		switch {
		case m.publicList.loading:
			return "Loading...\n"
		case m.publicList.lastErr != nil && len(m.publicList.notes) == 0:
			return "Could not load notes\n"
		default:
			return renderNoteList(m.publicList.notes, m.publicList.idx, m.now(), "No public notes yet")
		}
	case viewPrivate:
		switch {
		case !m.services.Auth.IsAuthenticated():
			return "Login required\n"
		case m.privateList.loading:
			return "Loading...\n"
		case m.privateList.lastErr != nil && len(m.privateList.notes) == 0:
			return "Could not load notes\n"
		default:
			return renderNoteList(m.privateList.notes, m.privateList.idx, m.now(), "No private notes yet")
		}
	case viewStats:
		switch {
		case !m.services.Auth.IsAuthenticated():
			return "Login required\n"
		case m.statsLoading:
			return "Loading...\n"
		case m.statsErr != nil:
			return "Could not load statistics\n"
		default:
			return renderStats(m.stats)
		}
	}
	return ""
}

func (m appModel) hotKeys() string {
	auth := "l login"
	if m.services.Auth.IsAuthenticated() {
		auth = "l logout"
	}
	return "1/2/3 views  enter open  n new  r refresh  " + auth + "  q quit"
}

// errorMessage maps errors onto the user-facing toast text. This is the only
// place server and service errors become words.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrValidationEmptyTitle):
		return "Title must not be empty"
	case errors.Is(err, service.ErrValidationEmptyContent):
		return "Content must not be empty"
	case errors.Is(err, service.ErrLoginOnServer):
		return "Invalid username or password"
	case errors.Is(err, service.ErrNotAuthenticated):
		return "Login required"
	case service.IsAuthError(err):
		return "Session expired. Please log in again."
	case errors.Is(err, adapter.ErrForbidden):
		return "You do not own this note"
	case errors.Is(err, service.ErrNoteNotFound):
		return "Note not found"
	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		return "Server unavailable, try again later"
	default:
		return err.Error()
	}
}
