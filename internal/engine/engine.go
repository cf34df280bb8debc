package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Adnangad/RDBMS/internal/catalog"
	"github.com/Adnangad/RDBMS/internal/executor"
	"github.com/Adnangad/RDBMS/internal/parser"
)

// ErrSyntax is the generic fallback for input no statement parser
// recognizes, and for recognized-but-unwired statements (DROP TABLE,
// ALTER TABLE).
var ErrSyntax = errors.New("Syntax error or unsupported command.")

// SnapshotStore persists the whole catalog. The engine reads the entire
// snapshot before every statement and rewrites it after each mutating
// statement; durability comes purely from the full rewrite.
type SnapshotStore interface {
	Load() (*catalog.Catalog, error)
	Save(*catalog.Catalog) error
}

// Engine is the main entry point for the database system. The mutex
// serializes whole load-mutate-store cycles: without it two concurrent
// statements could interleave their snapshot reads and writes and one
// write would silently clobber the other.
type Engine struct {
	store     SnapshotStore
	observers []Observer
	mu        sync.Mutex
}

// New creates a new Engine instance backed by the given snapshot store.
func New(store SnapshotStore) *Engine {
	return &Engine{
		store:     store,
		observers: make([]Observer, 0),
	}
}

// Execute processes one statement string and returns the result. The
// catalog is reconstructed from the snapshot at the start of every call
// and discarded at the end; no state is cached between calls.
func (e *Engine) Execute(statement string) (*executor.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	execID := uuid.New().String()

	e.notify(Event{Type: EventParseStart, ExecID: execID, Data: statement})
	stmt, err := parser.Parse(statement)
	if err != nil {
		if errors.Is(err, parser.ErrNotRecognized) {
			return nil, ErrSyntax
		}
		return nil, err
	}
	e.notify(Event{Type: EventParseEnd, ExecID: execID, Data: fmt.Sprintf("%T", stmt)})

	cat, err := e.store.Load()
	if err != nil {
		return nil, fmt.Errorf("snapshot load failed: %w", err)
	}
	e.notify(Event{Type: EventSnapshotLoad, ExecID: execID, Data: len(cat.Tables)})

	e.notify(Event{Type: EventExecStart, ExecID: execID})
	result, err := executor.Execute(stmt, cat)
	if err != nil {
		if errors.Is(err, executor.ErrUnsupportedStatement) {
			return nil, ErrSyntax
		}
		return nil, err
	}
	e.notify(Event{Type: EventExecEnd, ExecID: execID, Data: map[string]interface{}{
		"rows_affected": result.RowsAffected,
		"rows_returned": len(result.Rows),
	}})

	if executor.Mutates(stmt) {
		if err := e.store.Save(cat); err != nil {
			return nil, fmt.Errorf("snapshot save failed: %w", err)
		}
		e.notify(Event{Type: EventSnapshotSave, ExecID: execID, Data: len(cat.Tables)})
	}

	return result, nil
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
