package executor

import (
	"fmt"

	"github.com/Adnangad/RDBMS/internal/catalog"
	"github.com/Adnangad/RDBMS/internal/parser/ast"
)

// executeDelete removes the rows satisfying the conjunction of all WHERE
// conditions and returns the count removed. Unknown columns and failed
// casts abort before any row is removed.
func executeDelete(stmt *ast.DeleteStatement, cat *catalog.Catalog) (*Result, error) {
	table, ok := cat.Table(stmt.TableName)
	if !ok {
		return nil, catalog.NewTableNotFound(stmt.TableName)
	}

	conds, err := castConditions(table, stmt.Where)
	if err != nil {
		return nil, err
	}

	kept := make([]catalog.Row, 0, len(table.Rows))
	for _, row := range table.Rows {
		if !matchesAll(row, conds) {
			kept = append(kept, row)
		}
	}

	removed := len(table.Rows) - len(kept)
	table.Rows = kept
	catalog.BuildIndexes(table, nil)

	return &Result{
		Message:      fmt.Sprintf("%d row(s) deleted.", removed),
		RowsAffected: removed,
	}, nil
}
