package datarecording

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const execInfoTable = "exec_info"

// Struct execInfo is fed to DataRecorder
type execInfo struct {
	Property string
	Value    string
}

// ExecRecorder records how a conversion run was launched
type ExecRecorder struct {
	tablename string
	recorder  DataRecorder
	entries   []execInfo
	ended     bool
}

// NewExecRecorder creates an ExecRecorder that writes into the given recorder
func NewExecRecorder(recorder DataRecorder) *ExecRecorder {
	e := &ExecRecorder{
		tablename: execInfoTable,
		recorder:  recorder,
		entries:   []execInfo{},
	}

	e.recorder.CreateTable(e.tablename, execInfo{})

	return e
}

// Start logs the current execution.
func (e *ExecRecorder) Start() {
	currentTime := time.Now()
	startTime := currentTime.Format("2006-01-02 15:04:05.000000000")
	timeEntry := execInfo{"Start Time", startTime}
	e.entries = append(e.entries, timeEntry)

	cmd := strings.Join(os.Args, " ")
	cmdEntry := execInfo{"Command", cmd}
	e.entries = append(e.entries, cmdEntry)

	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}

	cwd := filepath.Dir(ex)
	cwdEntry := execInfo{"Working Directory", cwd}
	e.entries = append(e.entries, cwdEntry)
}

// End writes the collected entries along with the program exit time. Calling
// End again does nothing, so End can both finish a run directly and back it
// up as an exit handler.
func (e *ExecRecorder) End() {
	if e.ended {
		return
	}
	e.ended = true

	for _, entry := range e.entries {
		e.recorder.InsertData(e.tablename, entry)
	}

	endTime := time.Now()
	endValue := endTime.Format("2006-01-02 15:04:05.000000000")
	timeEntry := execInfo{"End Time", endValue}
	e.recorder.InsertData(e.tablename, timeEntry)

	e.entries = nil

	e.recorder.Flush()
}
