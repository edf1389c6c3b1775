package ui

import (
	"fmt"
	"unicode"

	"github.com/atomicstack/single-mode-shortcuts/internal/dispatch"
	"github.com/atomicstack/single-mode-shortcuts/internal/keymap"
	"github.com/atomicstack/single-mode-shortcuts/internal/logging"
	"github.com/atomicstack/single-mode-shortcuts/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m.cancel()
	case tea.KeyCtrlU:
		m.clearMessages()
		m.session.Reset()
		m.syncInput()
		return nil
	case tea.KeyBackspace, tea.KeyCtrlH:
		m.removeLastRune()
		return nil
	case tea.KeyEnter:
		return m.retry()
	case tea.KeySpace:
		return m.typeRunes([]rune{' '})
	case tea.KeyRunes:
		if keyMsg.Alt || len(keyMsg.Runes) == 0 {
			return nil
		}
		return m.typeRunes(keyMsg.Runes)
	}
	return nil
}

// typeRunes dispatches each rune in turn, stopping at the first failure or
// at a terminating action.
func (m *Model) typeRunes(runes []rune) tea.Cmd {
	for _, r := range runes {
		if unicode.IsControl(r) {
			return nil
		}
	}
	m.clearMessages()
	defer m.syncInput()
	for _, r := range runes {
		res, err := m.dispatcher.OnChange(m.ctx, m.session.Input(), r)
		if cmd, stop := m.apply(res, err); stop {
			return cmd
		}
	}
	return nil
}

func (m *Model) retry() tea.Cmd {
	m.clearMessages()
	defer m.syncInput()
	res, err := m.dispatcher.Retry(m.ctx, m.session.Input())
	cmd, _ := m.apply(res, err)
	return cmd
}

// apply commits the dispatcher's verdict to the session. It reports stop when
// no further keys should be processed.
func (m *Model) apply(res dispatch.Result, err error) (tea.Cmd, bool) {
	m.session.SetInput(res.Input)
	if err != nil {
		m.reportFailure(res, err)
		return nil, true
	}
	if res.Fired() && m.verbose {
		m.setInfo(fmt.Sprintf("Ran %s", res.Action.Label()))
	}
	if res.Outcome == dispatch.Terminate {
		return m.terminate(res.Action), true
	}
	return nil, false
}

func (m *Model) reportFailure(res dispatch.Result, err error) {
	m.errMsg = err.Error()
	logging.Error(err)
	label := ""
	if res.Action != nil {
		label = res.Action.Label()
	}
	m.notifier.Failure(label, err)
}

func (m *Model) removeLastRune() {
	runes := []rune(m.session.Input())
	if len(runes) == 0 {
		return
	}
	m.clearMessages()
	next := string(runes[:len(runes)-1])
	events.Input.Edit(next)
	m.session.SetInput(next)
	m.syncInput()
}

func (m *Model) cancel() tea.Cmd {
	events.App.Exit("cancelled")
	return tea.Quit
}

func (m *Model) terminate(a keymap.Action) tea.Cmd {
	m.outcome = dispatch.Terminate
	events.App.Exit(keymap.Kind(a))
	return tea.Quit
}

func (m *Model) syncInput() {
	m.input.SetValue(m.session.Input())
	m.input.CursorEnd()
}
