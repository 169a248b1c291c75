// Package tracing collects audit records from duration converters and stores
// them for later inspection.
package tracing

import (
	"github.com/sarchlab/qdt/dtconv"
	"github.com/sarchlab/qdt/hooking"
	"github.com/sarchlab/qdt/naming"
)

// NamedHookable represents something that both has a name and can be hooked
type NamedHookable interface {
	naming.Named
	hooking.Hookable
	InvokeHook(hooking.HookCtx)
}

// A Collector can collect conversion audit records
type Collector interface {
	// RecordConversion records one rewritten circuit duration. The converter
	// argument names the converter that performed the rewrite.
	RecordConversion(converter string, conversion dtconv.Conversion)

	// RecordWarning records one rounding that exceeded the tolerance.
	RecordWarning(converter string, warning dtconv.RoundingWarning)
}
