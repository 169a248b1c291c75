// Package circuit defines the quantum program model that schedule conversion
// operates on.
package circuit

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sarchlab/qdt/naming"
)

// ErrNoName indicates that a circuit file does not carry a circuit name.
var ErrNoName = errors.New("circuit: circuit must have a name")

// An Instruction is one gate or operation applied to a set of qubits.
// Instructions take effect in slice order.
type Instruction struct {
	Name   string    `json:"name"`
	Qubits []int     `json:"qubits"`
	Params []float64 `json:"params,omitempty"`
}

// A Schedule records the overall timing of a scheduled circuit. The unit "dt"
// means the duration counts hardware sample steps rather than seconds.
type Schedule struct {
	Duration float64 `json:"duration"`
	Unit     string  `json:"unit"`
}

// A Circuit is an ordered list of instructions over a fixed set of qubits.
// A nil Schedule means the circuit has not been scheduled.
type Circuit struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	NumQubits    int           `json:"num_qubits"`
	Instructions []Instruction `json:"instructions"`
	Schedule     *Schedule     `json:"schedule,omitempty"`
}

// New creates an empty circuit over the given number of qubits.
func New(name string, numQubits int) *Circuit {
	naming.NameMustBeValid(name)

	if numQubits < 0 {
		panic("number of qubits must not be negative")
	}

	return &Circuit{
		ID:        GetIDGenerator().Generate(),
		Name:      name,
		NumQubits: numQubits,
	}
}

// AddGate appends a named gate acting on the given qubits.
func (c *Circuit) AddGate(name string, qubits ...int) {
	c.AddInstruction(Instruction{Name: name, Qubits: qubits})
}

// AddInstruction appends an instruction to the end of the circuit.
func (c *Circuit) AddInstruction(inst Instruction) {
	for _, q := range inst.Qubits {
		if q < 0 || q >= c.NumQubits {
			panic(fmt.Sprintf(
				"qubit %d is out of range for circuit %s", q, c.Name))
		}
	}

	c.Instructions = append(c.Instructions, inst)
}

// SetSchedule records the overall duration of the circuit in the given unit.
func (c *Circuit) SetSchedule(duration float64, unit string) {
	c.Schedule = &Schedule{Duration: duration, Unit: unit}
}

// ClearSchedule removes the recorded duration.
func (c *Circuit) ClearSchedule() {
	c.Schedule = nil
}

// Scheduled returns true if the circuit has a recorded duration.
func (c *Circuit) Scheduled() bool {
	return c.Schedule != nil
}

// Clone returns a deep copy of the circuit. The copy is a distinct entity
// with its own ID. Changes to the copy never reach the original.
func (c *Circuit) Clone() *Circuit {
	cloned := &Circuit{
		ID:        GetIDGenerator().Generate(),
		Name:      c.Name,
		NumQubits: c.NumQubits,
	}

	if len(c.Instructions) > 0 {
		cloned.Instructions = make([]Instruction, len(c.Instructions))
	}

	for i, inst := range c.Instructions {
		cloned.Instructions[i] = Instruction{
			Name:   inst.Name,
			Qubits: append([]int(nil), inst.Qubits...),
			Params: append([]float64(nil), inst.Params...),
		}
	}

	if c.Schedule != nil {
		schedule := *c.Schedule
		cloned.Schedule = &schedule
	}

	return cloned
}

// LoadJSON reads a circuit from a JSON file. The circuit name must follow
// the naming convention. A circuit without an ID is assigned a fresh one.
func LoadJSON(path string) (*Circuit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := &Circuit{}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("circuit: cannot parse %s: %w", path, err)
	}

	if c.Name == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoName, path)
	}

	if err := checkName(c.Name); err != nil {
		return nil, fmt.Errorf("circuit: %s: %w", path, err)
	}

	if c.NumQubits < 0 {
		return nil, fmt.Errorf(
			"circuit: number of qubits must not be negative: %d", c.NumQubits)
	}

	if c.ID == "" {
		c.ID = GetIDGenerator().Generate()
	}

	return c, nil
}

// checkName reports the naming panic as an error, for circuits that come
// from files rather than from code.
func checkName(name string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	naming.NameMustBeValid(name)

	return nil
}

// SaveJSON writes the circuit to a JSON file, replacing what was there.
func (c *Circuit) SaveJSON(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0644)
}
