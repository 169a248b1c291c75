package circuit

import (
	"log"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/xid"
)

// IDGenerator hands out the IDs that circuits and audit records carry.
type IDGenerator interface {
	// Generate returns the next ID.
	Generate() string
}

var (
	idGeneratorMu    sync.Mutex
	idGeneratorInUse bool
	idGenerator      IDGenerator
)

// UseSequentialIDGenerator switches ID generation to a process-wide counter.
// Sequential IDs keep circuit files and audit records deterministic across
// runs. The generator type cannot change once an ID has been handed out.
func UseSequentialIDGenerator() {
	useIDGenerator(&sequentialIDGenerator{})
}

// UseParallelIDGenerator switches ID generation to xid. The IDs stay unique
// across goroutines and processes but are not deterministic.
func UseParallelIDGenerator() {
	useIDGenerator(parallelIDGenerator{})
}

func useIDGenerator(g IDGenerator) {
	idGeneratorMu.Lock()
	defer idGeneratorMu.Unlock()

	if idGeneratorInUse {
		log.Panic("cannot change id generator type after using it")
	}

	idGenerator = g
	idGeneratorInUse = true
}

// GetIDGenerator returns the ID generator of the current process, defaulting
// to the sequential one.
func GetIDGenerator() IDGenerator {
	idGeneratorMu.Lock()
	defer idGeneratorMu.Unlock()

	if !idGeneratorInUse {
		idGenerator = &sequentialIDGenerator{}
		idGeneratorInUse = true
	}

	return idGenerator
}

type sequentialIDGenerator struct {
	next uint64
}

func (g *sequentialIDGenerator) Generate() string {
	return strconv.FormatUint(atomic.AddUint64(&g.next, 1), 10)
}

type parallelIDGenerator struct{}

func (parallelIDGenerator) Generate() string {
	return xid.New().String()
}
