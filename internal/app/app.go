// Package app contains the root composer model: a transcript of messages and
// a modal input box for writing and editing them.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	keyhelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Karvyz/halfmoon/internal/cachemanager"
	"github.com/Karvyz/halfmoon/internal/config"
	"github.com/Karvyz/halfmoon/internal/keys"
	"github.com/Karvyz/halfmoon/internal/log"
	"github.com/Karvyz/halfmoon/internal/transcript"
	"github.com/Karvyz/halfmoon/internal/ui/help"
	"github.com/Karvyz/halfmoon/internal/ui/shared/chatrender"
	"github.com/Karvyz/halfmoon/internal/ui/shared/vimtextarea"
	"github.com/Karvyz/halfmoon/internal/ui/styles"
	"github.com/Karvyz/halfmoon/internal/ui/toaster"
	"github.com/Karvyz/halfmoon/internal/watcher"
)

// DefaultToastDuration is how long notices stay on screen.
const DefaultToastDuration = 3 * time.Second

// focus is the pane receiving keys.
type focus int

const (
	focusList focus = iota
	focusInput
	focusEdit
)

func (f focus) String() string {
	switch f {
	case focusInput:
		return "input"
	case focusEdit:
		return "edit"
	default:
		return "list"
	}
}

// Options configures a composer.
type Options struct {
	Service *transcript.Service
	Config  config.Config

	// ConfigPath is where UI toggles are saved and which file is watched.
	// Empty disables both.
	ConfigPath string

	// Reload re-reads the configuration after the file changes. Nil
	// disables watching.
	Reload func() (config.Config, error)

	// ToastDuration defaults to DefaultToastDuration.
	ToastDuration time.Duration

	// Cache holds rendered message bodies. Defaults to an in-memory cache.
	Cache cachemanager.CacheManager[string, string]
}

// Model is the root application state.
type Model struct {
	svc        *transcript.Service
	cfg        config.Config
	configPath string
	reload     func() (config.Config, error)

	keys       keys.KeyMap
	editorKeys keys.EditorKeyMap

	messages []transcript.Message
	selected int
	// offsets and heights locate each rendered message in the viewport.
	offsets []int
	heights []int

	focus   focus
	editing string // ID of the message under edit

	input    vimtextarea.Model
	editor   vimtextarea.Model
	viewport viewport.Model
	renderer *chatrender.Renderer

	help          help.Model
	shortHelp     keyhelp.Model
	showHelp      bool
	confirmQuit   bool
	toaster       toaster.Model
	toastDuration time.Duration
	status        string // last error

	width  int
	height int

	watcher *watcher.Watcher
	changes <-chan struct{}
}

// New creates a composer. When opts.Reload is set the config file is watched
// until Close.
func New(opts Options) Model {
	cfg := opts.Config

	cache := opts.Cache
	if cache == nil {
		cache = cachemanager.NewInMemoryCacheManager[string, string](
			"rendered-messages", chatrender.BodyTTL, cachemanager.DefaultCleanupInterval)
	}
	toastDuration := opts.ToastDuration
	if toastDuration <= 0 {
		toastDuration = DefaultToastDuration
	}

	m := Model{
		svc:           opts.Service,
		cfg:           cfg,
		configPath:    opts.ConfigPath,
		reload:        opts.Reload,
		keys:          keys.DefaultKeyMap(),
		editorKeys:    keys.DefaultEditorKeyMap(),
		viewport:      viewport.New(0, 0),
		renderer:      chatrender.NewRenderer(cache),
		shortHelp:     keyhelp.New(),
		toaster:       toaster.New(),
		toastDuration: toastDuration,
		input: vimtextarea.New(vimtextarea.Config{
			StartMode:   startMode(cfg.Editor),
			Placeholder: cfg.Editor.Placeholder,
			MaxHeight:   cfg.Editor.MaxHeight,
			TabWidth:    cfg.Editor.TabWidth,
		}),
		editor: vimtextarea.New(vimtextarea.Config{
			MaxHeight: cfg.Editor.MaxHeight,
			TabWidth:  cfg.Editor.TabWidth,
			OnSubmit:  func(content string) tea.Msg { return editSubmitMsg{content: content} },
			OnCancel:  func(string) tea.Msg { return editCancelMsg{} },
		}),
	}
	m.help = help.New(m.keys, m.editorKeys)

	if opts.Reload != nil && opts.ConfigPath != "" {
		m.startWatcher()
	}
	return m
}

func (m *Model) startWatcher() {
	w, err := watcher.New(watcher.DefaultConfig(m.configPath))
	if err != nil {
		log.ErrorErr(log.CatWatcher, "config watcher unavailable", err)
		return
	}
	changes, err := w.Start()
	if err != nil {
		// the app works without live reload
		log.ErrorErr(log.CatWatcher, "config watcher unavailable", err)
		_ = w.Stop()
		return
	}
	m.watcher = w
	m.changes = changes
}

// startMode maps the configured start mode onto the editor's.
func startMode(cfg config.EditorConfig) vimtextarea.Mode {
	if cfg.StartMode == "insert" {
		return vimtextarea.ModeInsert
	}
	return vimtextarea.ModeNormal
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadMessages(m.svc), waitForConfigChange(m.changes))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help = m.help.SetSize(msg.Width, msg.Height)
		m.shortHelp.Width = msg.Width
		m.layout()
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case messagesLoadedMsg:
		if msg.err != nil {
			return m.fail("loading transcript", msg.err)
		}
		m.messages = msg.messages
		m.selected = max(len(m.messages)-1, 0)
		m.refreshTranscript()
		return m, nil

	case vimtextarea.SubmitMsg:
		return m, submitMessage(m.svc, msg.Content)

	case vimtextarea.CancelMsg:
		// leaving the input box keeps the draft
		m.setFocus(focusList)
		return m, nil

	case messageSubmittedMsg:
		if errors.Is(msg.err, transcript.ErrEmptyMessage) {
			return m.toast("Nothing to send", toaster.StyleWarn)
		}
		if msg.err != nil {
			return m.fail("sending message", msg.err)
		}
		m.messages = append(m.messages, msg.message)
		m.selected = len(m.messages) - 1
		m.input.Reset()
		m.status = ""
		m.layout()
		m.refreshTranscript()
		return m, nil

	case editSubmitMsg:
		return m, editMessage(m.svc, m.editing, msg.content)

	case editCancelMsg:
		m.endEdit()
		return m.toast("Edit discarded", toaster.StyleInfo)

	case messageEditedMsg:
		if errors.Is(msg.err, transcript.ErrEmptyMessage) {
			// stay in the session so the text can be fixed
			return m.toast("Message is empty", toaster.StyleWarn)
		}
		m.endEdit()
		if msg.err != nil {
			return m.fail("editing message", msg.err)
		}
		m.replaceMessage(msg.message)
		if !msg.summary.Changed() {
			return m.toast("No changes", toaster.StyleInfo)
		}
		return m.toast(fmt.Sprintf("Edited (%s)", msg.summary), toaster.StyleSuccess)

	case messageDeletedMsg:
		if msg.err != nil {
			return m.fail("deleting message", msg.err)
		}
		m.removeMessage(msg.id)
		return m.toast("Message deleted", toaster.StyleSuccess)

	case uiSavedMsg:
		if msg.err != nil {
			return m.fail("saving config", msg.err)
		}
		return m, nil

	case configChangedMsg:
		listen := waitForConfigChange(m.changes)
		cfg, err := m.reload()
		if err == nil {
			err = m.applyConfig(cfg)
		}
		var cmd tea.Cmd
		if err != nil {
			m, cmd = m.fail("reloading config", err)
		} else {
			log.Info(log.CatConfig, "config reloaded", "path", m.configPath)
			m, cmd = m.toast("Config reloaded", toaster.StyleInfo)
		}
		return m, tea.Batch(cmd, listen)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.confirmQuit {
		m.confirmQuit = false
		if key.Matches(msg, m.keys.Confirm) {
			log.Info(log.CatUI, "quit confirmed")
			return m, tea.Quit
		}
		return m, nil
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Escape) {
			m.showHelp = false
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusInput:
		m.input, cmd = m.input.Update(msg)
	case focusEdit:
		m.editor, cmd = m.editor.Update(msg)
	default:
		return m.handleListKey(msg)
	}
	m.layout()
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.selectMessage(m.selected - 1)
	case key.Matches(msg, m.keys.Down):
		m.selectMessage(m.selected + 1)
	case key.Matches(msg, m.keys.Top):
		m.selectMessage(0)
	case key.Matches(msg, m.keys.Bottom):
		m.selectMessage(len(m.messages) - 1)

	case key.Matches(msg, m.keys.FocusInput):
		m.setFocus(focusInput)

	case key.Matches(msg, m.keys.Edit):
		if sel, ok := m.selectedMessage(); ok {
			m.editing = sel.ID
			m.editor.SetValue(sel.Text)
			m.setFocus(focusEdit)
		}

	case key.Matches(msg, m.keys.Delete):
		if sel, ok := m.selectedMessage(); ok {
			return m, deleteMessage(m.svc, sel.ID)
		}

	case key.Matches(msg, m.keys.ToggleBorders):
		m.cfg.UI.ShowBorders = !m.cfg.UI.ShowBorders
		m.layout()
		m.refreshTranscript()
		if m.configPath != "" {
			return m, saveUI(m.configPath, m.cfg.UI)
		}

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Escape):
		m.confirmQuit = true
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		if i, ok := m.messageAt(msg); ok && m.focus != focusEdit {
			m.setFocus(focusList)
			m.selectMessage(i)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// setFocus moves keyboard focus, keeping exactly one textarea focused at most.
func (m *Model) setFocus(f focus) {
	m.focus = f
	m.input.Blur()
	m.editor.Blur()
	switch f {
	case focusInput:
		m.input.Focus()
	case focusEdit:
		m.editor.Focus()
	}
	log.Debug(log.CatUI, "focus", "pane", f)
	m.layout()
}

func (m *Model) endEdit() {
	m.editing = ""
	m.editor.Reset()
	m.setFocus(focusList)
}

func (m Model) selectedMessage() (transcript.Message, bool) {
	if m.selected < 0 || m.selected >= len(m.messages) {
		return transcript.Message{}, false
	}
	return m.messages[m.selected], true
}

func (m *Model) replaceMessage(msg transcript.Message) {
	for i := range m.messages {
		if m.messages[i].ID == msg.ID {
			m.messages[i] = msg
			break
		}
	}
	m.refreshTranscript()
}

func (m *Model) removeMessage(id string) {
	for i := range m.messages {
		if m.messages[i].ID == id {
			m.messages = append(m.messages[:i], m.messages[i+1:]...)
			break
		}
	}
	m.selected = max(min(m.selected, len(m.messages)-1), 0)
	m.refreshTranscript()
}

func (m Model) toast(message string, style toaster.Style) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.toaster, cmd = m.toaster.Show(message, style, m.toastDuration)
	return m, cmd
}

// fail records err in the status line and shows it as a toast.
func (m Model) fail(action string, err error) (Model, tea.Cmd) {
	err = fmt.Errorf("%s: %w", action, err)
	log.ErrorErr(log.CatUI, "operation failed", err)
	m.status = err.Error()
	return m.toast(m.status, toaster.StyleError)
}

// applyConfig re-applies theme and editor settings from a reloaded config.
func (m *Model) applyConfig(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := applyTheme(cfg.Theme); err != nil {
		return err
	}
	if err := m.renderer.Reset(context.Background()); err != nil {
		log.Warn(log.CatCache, "failed to reset rendered messages", "error", err)
	}

	m.input.SetPlaceholder(cfg.Editor.Placeholder)
	m.input.SetStartMode(startMode(cfg.Editor))
	for _, ta := range []*vimtextarea.Model{&m.input, &m.editor} {
		ta.SetTabWidth(cfg.Editor.TabWidth)
		ta.SetMaxHeight(cfg.Editor.MaxHeight)
	}

	m.cfg = cfg
	m.layout()
	m.refreshTranscript()
	return nil
}

func applyTheme(theme config.ThemeConfig) error {
	if err := styles.ApplyTheme(theme.Styles()); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}
	return nil
}

// Config returns the configuration currently in effect.
func (m Model) Config() config.Config {
	return m.cfg
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	if m.watcher != nil {
		if err := m.watcher.Stop(); err != nil {
			return fmt.Errorf("stopping config watcher: %w", err)
		}
		m.watcher = nil
	}
	return nil
}
