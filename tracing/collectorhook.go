package tracing

import (
	"fmt"
	"reflect"

	"github.com/sarchlab/qdt/dtconv"
	"github.com/sarchlab/qdt/hooking"
	"github.com/sarchlab/qdt/naming"
)

// Collect lets the collector receive audit records from a domain
func Collect(domain NamedHookable, collector Collector) {
	hooks := domain.Hooks()
	for _, hook := range hooks {
		hook, ok := hook.(*collectorHook)
		if ok && hook.c == collector {
			panic(fmt.Sprintf(
				"domain %s already has collector %s",
				domain.Name(), reflect.TypeOf(collector)))
		}
	}

	h := collectorHook{c: collector}
	domain.AcceptHook(&h)
}

// A collectorHook is a hook that forwards conversion events to a Collector
type collectorHook struct {
	c Collector
}

// Func calls the collector interfaces when the hook is triggered
func (h *collectorHook) Func(ctx hooking.HookCtx) {
	converter := ""
	if named, ok := ctx.Domain.(naming.Named); ok {
		converter = named.Name()
	}

	switch ctx.Pos {
	case dtconv.HookPosConverted:
		h.c.RecordConversion(converter, ctx.Item.(dtconv.Conversion))
	case dtconv.HookPosDurationRounded:
		h.c.RecordWarning(converter, ctx.Item.(dtconv.RoundingWarning))
	}
}
