package engine

import "time"

// EventType represents different lifecycle phases in statement execution
type EventType string

const (
	EventParseStart   EventType = "parse_start"
	EventParseEnd     EventType = "parse_end"
	EventSnapshotLoad EventType = "snapshot_load"
	EventExecStart    EventType = "exec_start"
	EventExecEnd      EventType = "exec_end"
	EventSnapshotSave EventType = "snapshot_save"
)

// Event represents a lifecycle event in statement execution
type Event struct {
	Type      EventType   // Type of event
	ExecID    string      // Execution ID for tracing
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (e.g., statement text, row counts)
}

// Observer interface for event subscribers
// Observers receive events at major execution phases
type Observer interface {
	OnEvent(event Event)
}
