package events

import "github.com/atomicstack/single-mode-shortcuts/internal/logging"

type ActionTracer struct{}

var Action = ActionTracer{}

func (ActionTracer) Spawn(program string, args []string) {
	logging.Trace("action.spawn", map[string]interface{}{"program": program, "args": args})
}

func (ActionTracer) Switch(workspace string) {
	logging.Trace("action.workspace.switch", map[string]interface{}{"workspace": workspace})
}

func (ActionTracer) Probe(workspace, probe string, found bool) {
	logging.Trace("action.workspace.probe", map[string]interface{}{
		"workspace": workspace,
		"probe":     probe,
		"found":     found,
	})
}

func (ActionTracer) Quit() {
	logging.Trace("action.quit", nil)
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(kind, label string) {
	logging.Trace("action.success", map[string]interface{}{"kind": kind, "label": label})
}
