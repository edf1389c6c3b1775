package events

import "github.com/atomicstack/single-mode-shortcuts/internal/logging"

type CatalogTracer struct{}

var Catalog = CatalogTracer{}

func (CatalogTracer) Loaded(source string, entries int) {
	logging.Trace("catalog.loaded", map[string]interface{}{"source": source, "entries": entries})
}

func (CatalogTracer) Error(source string, err error) {
	if err == nil {
		return
	}
	logging.Trace("catalog.error", map[string]interface{}{"source": source, "error": err.Error()})
}
