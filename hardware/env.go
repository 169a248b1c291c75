package hardware

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv.
const (
	EnvBackendName   = "QDT_BACKEND_NAME"
	EnvBackendDT     = "QDT_BACKEND_DT"
	EnvBackendQubits = "QDT_BACKEND_QUBITS"
)

var (
	// ErrNotConfigured is returned when the environment names no backend.
	ErrNotConfigured = errors.New(
		"hardware: no backend configured in the environment")

	// ErrBadConfig is returned when the environment names a backend that
	// cannot be assembled.
	ErrBadConfig = errors.New("hardware: bad backend configuration")
)

// FromEnv assembles a backend from environment variables, loading a .env
// file from the working directory first when one exists.
//
// QDT_BACKEND_NAME alone selects a registered backend. QDT_BACKEND_DT
// overrides its sample time, or, for an unregistered name, defines an ad-hoc
// backend together with QDT_BACKEND_QUBITS. An ad-hoc backend without a
// qubit count gets one qubit.
func FromEnv() (Backend, error) {
	_ = godotenv.Load()

	name := os.Getenv(EnvBackendName)
	dtStr := os.Getenv(EnvBackendDT)
	qubitsStr := os.Getenv(EnvBackendQubits)

	if name == "" && dtStr == "" {
		return Backend{}, ErrNotConfigured
	}

	b := Backend{Name: name}
	if b.Name == "" {
		b.Name = "EnvBackend"
	}

	if name != "" {
		registered, ok := Lookup(name)
		if !ok && dtStr == "" {
			return Backend{}, fmt.Errorf(
				"%w: unknown backend %q", ErrBadConfig, name)
		}

		if ok {
			b = registered
		}
	}

	if dtStr != "" {
		dt, err := strconv.ParseFloat(dtStr, 64)
		if err != nil {
			return Backend{}, fmt.Errorf(
				"%w: cannot parse %s: %q", ErrBadConfig, EnvBackendDT, dtStr)
		}

		b.DTInSec = dt
	}

	if qubitsStr != "" {
		numQubits, err := strconv.Atoi(qubitsStr)
		if err != nil {
			return Backend{}, fmt.Errorf(
				"%w: cannot parse %s: %q",
				ErrBadConfig, EnvBackendQubits, qubitsStr)
		}

		if numQubits <= 0 {
			return Backend{}, fmt.Errorf(
				"%w: number of qubits must be positive: %d",
				ErrBadConfig, numQubits)
		}

		b.NumQubits = numQubits
	}

	// An ad-hoc backend with no qubit count gets the smallest device.
	if b.NumQubits == 0 {
		b.NumQubits = 1
	}

	if math.IsNaN(b.DTInSec) || math.IsInf(b.DTInSec, 0) || b.DTInSec <= 0 {
		return Backend{}, fmt.Errorf(
			"%w: dt must be a positive number of seconds", ErrBadConfig)
	}

	return b, nil
}
