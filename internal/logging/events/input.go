package events

import "github.com/atomicstack/single-mode-shortcuts/internal/logging"

type InputTracer struct{}

type resolution string

const (
	ResolvedNode resolution = "node"
	ResolvedLeaf resolution = "leaf"
	ResolvedNone resolution = "none"
)

var Input = InputTracer{}

func (InputTracer) Seed(value string) {
	logging.Trace("input.seed", map[string]interface{}{"input": value})
}

func (InputTracer) Key(previous string, key string, result resolution) {
	logging.Trace("input.key", map[string]interface{}{
		"previous": previous,
		"key":      key,
		"result":   string(result),
	})
}

func (InputTracer) Retain(input string) {
	logging.Trace("input.retain", map[string]interface{}{"input": input})
}

func (InputTracer) Reset(from string) {
	logging.Trace("input.reset", map[string]interface{}{"from": from})
}

func (InputTracer) Edit(input string) {
	logging.Trace("input.edit", map[string]interface{}{"input": input})
}
