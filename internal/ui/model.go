package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/atomicstack/single-mode-shortcuts/internal/dispatch"
	"github.com/atomicstack/single-mode-shortcuts/internal/notify"
	"github.com/atomicstack/single-mode-shortcuts/internal/state"
	"github.com/atomicstack/single-mode-shortcuts/internal/theme"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	headerSeparator  = "→"
	defaultRootTitle = "shortcuts"
	noMatchText      = "No matching map."
	footerText       = "type a key  backspace edit  ctrl+u clear  enter retry  esc quit"
	infoDuration     = 5 * time.Second
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options carries display settings for NewModel.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Notifier   notify.Notifier
}

// Model implements the Bubble Tea model for a launcher session.
type Model struct {
	ctx        context.Context
	session    state.SessionStore
	dispatcher *dispatch.Dispatcher
	notifier   notify.Notifier
	input      textinput.Model

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	outcome     dispatch.Outcome

	handlers map[reflect.Type]msgHandler
}

// NewModel builds a model over session. Keys are dispatched through d; ctx
// bounds any blocking work an action performs.
func NewModel(ctx context.Context, session state.SessionStore, d *dispatch.Dispatcher, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.Discard{}
	}
	m := &Model{
		ctx:        ctx,
		session:    session,
		dispatcher: d,
		notifier:   notifier,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		outcome:    dispatch.Continue,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.input = newInput()
	m.syncInput()
	m.registerHandlers()
	return m
}

func newInput() textinput.Model {
	in := textinput.New()
	in.Prompt = "» "
	in.Placeholder = "Enter shortcut"
	if styles.Prompt != nil {
		in.PromptStyle = styles.Prompt.Copy()
	}
	if styles.Input != nil {
		in.TextStyle = styles.Input.Copy()
	}
	if styles.Placeholder != nil {
		in.PlaceholderStyle = styles.Placeholder.Copy()
	}
	if styles.Cursor != nil {
		in.Cursor.Style = styles.Cursor.Copy()
	}
	in.Cursor.SetMode(cursor.CursorStatic)
	in.Focus()
	return in
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Outcome reports whether the session ended through an action.
func (m *Model) Outcome() dispatch.Outcome {
	return m.outcome
}

// Input returns the accumulated input.
func (m *Model) Input() string {
	return m.session.Input()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoDuration)
}

func (m *Model) clearMessages() {
	m.errMsg = ""
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
