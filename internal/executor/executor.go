package executor

import (
	"errors"

	"github.com/Adnangad/RDBMS/internal/catalog"
	"github.com/Adnangad/RDBMS/internal/parser/ast"
)

// ErrUnsupportedStatement marks statements the parser recognizes but the
// engine does not dispatch (DROP TABLE, ALTER TABLE). The caller renders
// these as the generic syntax error.
var ErrUnsupportedStatement = errors.New("unsupported statement")

// Result is the outcome of one executed statement: either a message with
// an affected-row count, or a sequence of result rows.
type Result struct {
	Columns      []string      `json:"columns,omitempty"`
	Rows         []catalog.Row `json:"rows,omitempty"`
	Message      string        `json:"message,omitempty"`
	RowsAffected int           `json:"rows_affected,omitempty"`
	Error        string        `json:"error,omitempty"`
}

// Execute dispatches a parsed statement against the catalog.
func Execute(stmt ast.Statement, cat *catalog.Catalog) (*Result, error) {
	switch s := stmt.(type) {
	case *ast.CreateTableStatement:
		return executeCreateTable(s, cat)
	case *ast.InsertStatement:
		return executeInsert(s, cat)
	case *ast.SelectStatement:
		return executeSelect(s, cat)
	case *ast.UpdateStatement:
		return executeUpdate(s, cat)
	case *ast.DeleteStatement:
		return executeDelete(s, cat)
	default:
		// DROP TABLE and ALTER TABLE are parsed but never dispatched.
		return nil, ErrUnsupportedStatement
	}
}

// Mutates reports whether a successful execution of the statement
// changes the catalog, i.e. whether the snapshot must be rewritten.
func Mutates(stmt ast.Statement) bool {
	switch stmt.(type) {
	case *ast.CreateTableStatement, *ast.InsertStatement, *ast.UpdateStatement, *ast.DeleteStatement:
		return true
	}
	return false
}
