package tracing

import (
	"sync"
	"time"

	"github.com/sarchlab/qdt/circuit"
	"github.com/sarchlab/qdt/datarecording"
	"github.com/sarchlab/qdt/dtconv"
	"github.com/tebeka/atexit"
)

const (
	conversionTable = "conversions"
	warningTable    = "rounding_warnings"

	timeFormat = "2006-01-02 15:04:05.000000000"
)

// DBCollector is a collector that can store conversion records into a
// database. DBCollectors can connect with different backends so that the
// records can be stored in different types of databases.
type DBCollector struct {
	mu      sync.Mutex
	backend datarecording.DataRecorder
}

// NewDBCollector creates a new DBCollector.
func NewDBCollector(backend datarecording.DataRecorder) *DBCollector {
	backend.CreateTable(conversionTable, ConversionRecord{})
	backend.CreateTable(warningTable, WarningRecord{})

	c := &DBCollector{
		backend: backend,
	}

	atexit.Register(func() {
		c.Terminate()
	})

	return c
}

// RecordConversion stores one rewritten circuit duration.
func (c *DBCollector) RecordConversion(
	converter string,
	conversion dtconv.Conversion,
) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := ConversionRecord{
		ID:                 circuit.GetIDGenerator().Generate(),
		Converter:          converter,
		CircuitID:          conversion.CircuitID,
		CircuitName:        conversion.CircuitName,
		FromDuration:       conversion.FromDuration,
		FromUnit:           conversion.FromUnit,
		DTInSec:            conversion.DTInSec,
		ToDT:               conversion.ToDT,
		RoundingErrorInSec: conversion.RoundingErrorInSec,
		Time:               time.Now().Format(timeFormat),
	}

	c.backend.InsertData(conversionTable, entry)
}

// RecordWarning stores one rounding that exceeded the tolerance.
func (c *DBCollector) RecordWarning(
	converter string,
	warning dtconv.RoundingWarning,
) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := WarningRecord{
		ID:             circuit.GetIDGenerator().Generate(),
		Converter:      converter,
		DT:             warning.DT,
		ActualInSec:    warning.ActualInSec,
		RequestedInSec: warning.RequestedInSec,
		ErrorInSec:     warning.ErrorInSec,
		Time:           time.Now().Format(timeFormat),
	}

	c.backend.InsertData(warningTable, entry)
}

// Terminate flushes the collected records.
func (c *DBCollector) Terminate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.backend.Flush()
}
