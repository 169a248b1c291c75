// Package hardware describes the quantum devices that circuits are converted
// for, keyed by the sample time their pulse hardware runs at.
package hardware

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/sarchlab/qdt/naming"
)

// A Backend describes one target device.
type Backend struct {
	Name      string  `json:"name"`
	NumQubits int     `json:"num_qubits"`
	DTInSec   float64 `json:"dt_in_sec"`
}

type backendRegistry struct {
	lock sync.RWMutex

	backends map[string]Backend
}

func (r *backendRegistry) register(b Backend) {
	naming.NameMustBeValid(b.Name)
	dtMustBePositive(b.DTInSec)
	numQubitsMustBePositive(b.NumQubits)

	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.backends[b.Name]; ok {
		panic(fmt.Sprintf("backend %s already registered", b.Name))
	}

	r.backends[b.Name] = b
}

func (r *backendRegistry) lookup(name string) (Backend, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	b, ok := r.backends[name]

	return b, ok
}

func (r *backendRegistry) list() []Backend {
	r.lock.RLock()
	defer r.lock.RUnlock()

	backends := make([]Backend, 0, len(r.backends))
	for _, b := range r.backends {
		backends = append(backends, b)
	}

	sort.Slice(backends, func(i, j int) bool {
		return backends[i].Name < backends[j].Name
	})

	return backends
}

func dtMustBePositive(dtInSec float64) {
	if math.IsNaN(dtInSec) || math.IsInf(dtInSec, 0) || dtInSec <= 0 {
		panic("backend dt must be a positive number of seconds")
	}
}

func numQubitsMustBePositive(numQubits int) {
	if numQubits <= 0 {
		panic("backend must have at least one qubit")
	}
}

var registry = &backendRegistry{
	backends: make(map[string]Backend),
}

// The IBM transmon devices sample at dt = 2/9 ns.
func init() {
	Register(Backend{Name: "IdealSimulator", NumQubits: 32, DTInSec: 1e-9})
	Register(Backend{Name: "Falcon", NumQubits: 27, DTInSec: 2.0 / 9.0 * 1e-9})
	Register(Backend{Name: "Hummingbird", NumQubits: 65, DTInSec: 2.0 / 9.0 * 1e-9})
	Register(Backend{Name: "Eagle", NumQubits: 127, DTInSec: 2.0 / 9.0 * 1e-9})
}

// Register adds a backend to the registry. It panics if the name is invalid,
// the sample time is not positive, or the name is already taken.
func Register(b Backend) {
	registry.register(b)
}

// Lookup finds a registered backend by name.
func Lookup(name string) (Backend, bool) {
	return registry.lookup(name)
}

// List returns all registered backends, sorted by name.
func List() []Backend {
	return registry.list()
}
