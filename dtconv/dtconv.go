// Package dtconv rewrites circuit schedule durations, expressed in SI time
// units, into whole counts of a hardware sample step. The sample step length
// is commonly called dt and is a property of the device that will run the
// circuit.
package dtconv

import (
	"errors"
	"log"
	"math"

	"github.com/sarchlab/qdt/circuit"
	"github.com/sarchlab/qdt/hooking"
)

// RoundingTolerance is the absolute error, in seconds, above which rounding a
// duration to a whole number of steps is reported.
const RoundingTolerance = 1e-15

// ErrInvalidTimeUnit indicates that a schedule carries a unit that does not
// measure time.
var ErrInvalidTimeUnit = errors.New("invalid time unit")

// HookPosConverted is triggered after a circuit schedule is rewritten in dt.
// The item is a Conversion.
var HookPosConverted = &hooking.HookPos{Name: "Converted"}

// HookPosDurationRounded is triggered when rounding a duration moves it by
// more than RoundingTolerance. The item is a RoundingWarning.
var HookPosDurationRounded = &hooking.HookPos{Name: "Duration Rounded"}

// A Conversion describes one schedule rewrite from an SI duration to steps.
type Conversion struct {
	CircuitID          string  `json:"circuit_id"`
	CircuitName        string  `json:"circuit_name"`
	FromDuration       float64 `json:"from_duration"`
	FromUnit           string  `json:"from_unit"`
	DTInSec            float64 `json:"dt_in_sec"`
	ToDT               int64   `json:"to_dt"`
	RoundingErrorInSec float64 `json:"rounding_error_in_sec"`
}

// A RoundingWarning reports that a duration was not a whole number of steps.
// The conversion result stands. The warning records how far the rounded
// duration drifted from the requested one.
type RoundingWarning struct {
	DT             int64   `json:"dt"`
	ActualInSec    float64 `json:"actual_in_sec"`
	RequestedInSec float64 `json:"requested_in_sec"`
	ErrorInSec     float64 `json:"error_in_sec"`
}

// DurationInDT returns the whole number of steps of length dtInSec closest to
// durationInSec. A rounding move larger than RoundingTolerance is written to
// the standard logger. A duration whose step count does not fit in an int64
// panics.
func DurationInDT(durationInSec, dtInSec float64) int64 {
	durationMustBeReal(durationInSec)
	dtMustBePositive(dtInSec)

	steps, errorInSec := roundToSteps(durationInSec, dtInSec)
	if errorInSec > RoundingTolerance {
		logRounding(log.Default(),
			newRoundingWarning(steps, dtInSec, durationInSec, errorInSec))
	}

	return steps
}

// ConvertDurationsToDT rewrites the schedule of qc in place, reporting
// rounding through the standard logger. See Converter.ConvertInPlace for the
// conversion rules.
func ConvertDurationsToDT(qc *circuit.Circuit, dtInSec float64) error {
	c := MakeBuilder().WithDTInSec(dtInSec).Build("DurationConverter")
	return c.ConvertInPlace(qc)
}

func roundToSteps(
	durationInSec, dtInSec float64,
) (steps int64, errorInSec float64) {
	rounded := math.Round(durationInSec / dtInSec)
	stepCountMustBeRepresentable(rounded)

	steps = int64(rounded)
	errorInSec = math.Abs(durationInSec - float64(steps)*dtInSec)

	return steps, errorInSec
}

func newRoundingWarning(
	steps int64,
	dtInSec, requestedInSec, errorInSec float64,
) RoundingWarning {
	return RoundingWarning{
		DT:             steps,
		ActualInSec:    float64(steps) * dtInSec,
		RequestedInSec: requestedInSec,
		ErrorInSec:     errorInSec,
	}
}

func logRounding(logger *log.Logger, w RoundingWarning) {
	logger.Printf("Duration is rounded to %d [dt] = %e [s] from %e [s]",
		w.DT, w.ActualInSec, w.RequestedInSec)
}

func dtMustBePositive(dtInSec float64) {
	if math.IsNaN(dtInSec) || math.IsInf(dtInSec, 0) || dtInSec <= 0 {
		log.Panic("dt must be a positive number of seconds")
	}
}

func durationMustBeReal(durationInSec float64) {
	if math.IsNaN(durationInSec) || math.IsInf(durationInSec, 0) {
		log.Panic("invalid duration")
	}
}

// 1<<63 is the first float64 past the int64 range.
func stepCountMustBeRepresentable(steps float64) {
	if steps >= 1<<63 || steps < -(1<<63) {
		log.Panic("step count does not fit in an int64")
	}
}
