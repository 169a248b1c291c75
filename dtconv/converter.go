package dtconv

import (
	"fmt"
	"log"
	"strings"

	"github.com/sarchlab/qdt/circuit"
	"github.com/sarchlab/qdt/hooking"
	"github.com/sarchlab/qdt/naming"
	"github.com/sarchlab/qdt/units"
)

// A Converter rewrites circuit schedules into whole steps of one hardware
// sample step. Hooks attached to the converter observe every rewrite and
// every rounding move that exceeds RoundingTolerance. With no hooks attached,
// rounding is reported through the converter's logger instead.
type Converter struct {
	naming.NamedBase
	hooking.HookableBase

	dtInSec float64
	logger  *log.Logger
}

// A Builder can build converters.
type Builder struct {
	dtInSec float64
	logger  *log.Logger
}

// MakeBuilder creates a builder with no sample step selected. The sample
// step must be set with WithDTInSec before building.
func MakeBuilder() Builder {
	return Builder{}
}

// WithDTInSec sets the hardware sample step length, in seconds.
func (b Builder) WithDTInSec(dtInSec float64) Builder {
	b.dtInSec = dtInSec
	return b
}

// WithLogger sets the logger that receives rounding warnings when no hook is
// registered.
func (b Builder) WithLogger(logger *log.Logger) Builder {
	b.logger = logger
	return b
}

// Build builds a converter.
func (b Builder) Build(name string) *Converter {
	naming.NameMustBeValid(name)
	dtMustBePositive(b.dtInSec)

	c := &Converter{
		NamedBase: naming.MakeNamedBase(name),
		dtInSec:   b.dtInSec,
		logger:    b.logger,
	}

	if c.logger == nil {
		c.logger = log.Default()
	}

	return c
}

// DTInSec returns the sample step length the converter rounds to.
func (c *Converter) DTInSec() float64 {
	return c.dtInSec
}

// DurationInDT returns the whole number of sample steps closest to
// durationInSec.
func (c *Converter) DurationInDT(durationInSec float64) int64 {
	durationMustBeReal(durationInSec)

	steps, errorInSec := roundToSteps(durationInSec, c.dtInSec)
	if errorInSec > RoundingTolerance {
		c.reportRounding(
			newRoundingWarning(steps, c.dtInSec, durationInSec, errorInSec))
	}

	return steps
}

// ConvertInPlace rewrites the schedule of qc from an SI time unit into "dt".
// A circuit without a schedule, or with a schedule already in "dt", is left
// untouched. The schedule unit must end in "s". Its metric prefix, if any,
// decides the scale.
func (c *Converter) ConvertInPlace(qc *circuit.Circuit) error {
	if !qc.Scheduled() {
		return nil
	}

	schedule := qc.Schedule
	if schedule.Unit == "dt" {
		return nil
	}

	if !strings.HasSuffix(schedule.Unit, "s") {
		return fmt.Errorf("%w: %q", ErrInvalidTimeUnit, schedule.Unit)
	}

	durationInSec := schedule.Duration
	if schedule.Unit != "s" {
		scaled, err := units.ApplyPrefix(durationInSec, schedule.Unit)
		if err != nil {
			return err
		}

		durationInSec = scaled
	}

	durationMustBeReal(durationInSec)

	steps, errorInSec := roundToSteps(durationInSec, c.dtInSec)
	if errorInSec > RoundingTolerance {
		c.reportRounding(
			newRoundingWarning(steps, c.dtInSec, durationInSec, errorInSec))
	}

	conversion := Conversion{
		CircuitID:          qc.ID,
		CircuitName:        qc.Name,
		FromDuration:       schedule.Duration,
		FromUnit:           schedule.Unit,
		DTInSec:            c.dtInSec,
		ToDT:               steps,
		RoundingErrorInSec: errorInSec,
	}

	schedule.Duration = float64(steps)
	schedule.Unit = "dt"

	if c.NumHooks() > 0 {
		c.InvokeHook(hooking.HookCtx{
			Domain: c,
			Pos:    HookPosConverted,
			Item:   conversion,
		})
	}

	return nil
}

// ConvertToNew converts like ConvertInPlace but leaves qc untouched. It
// returns a deep copy of the circuit with the schedule, if any, rewritten in
// "dt". The copy is returned even when there is nothing to convert.
func (c *Converter) ConvertToNew(qc *circuit.Circuit) (*circuit.Circuit, error) {
	converted := qc.Clone()

	if err := c.ConvertInPlace(converted); err != nil {
		return nil, err
	}

	return converted, nil
}

func (c *Converter) reportRounding(w RoundingWarning) {
	if c.NumHooks() == 0 {
		logRounding(c.logger, w)
		return
	}

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    HookPosDurationRounded,
		Item:   w,
	})
}
