package executor

import (
	"github.com/Adnangad/RDBMS/internal/catalog"
	"github.com/Adnangad/RDBMS/internal/parser/ast"
)

// executeInsert appends one row after casting every value to its
// column's declared type and checking the primary-key and unique
// constraints. A failed cast or a duplicate aborts the whole statement
// before any row is appended.
func executeInsert(stmt *ast.InsertStatement, cat *catalog.Catalog) (*Result, error) {
	table, ok := cat.Table(stmt.TableName)
	if !ok {
		return nil, catalog.NewTableNotFound(stmt.TableName)
	}

	row := make(catalog.Row, len(stmt.Columns))
	for i, colName := range stmt.Columns {
		col, ok := table.Column(colName)
		if !ok {
			return nil, catalog.NewUnknownColumn(colName)
		}
		val, err := catalog.CastValue(stmt.Values[i], col.Type)
		if err != nil {
			return nil, catalog.NewCastError(colName)
		}
		row[colName] = val
	}

	// Constraint checks run against the current indexes, before the
	// append. A row may omit an indexed column; absent values are not
	// checked (no NOT-NULL enforcement).
	if pk := table.PrimaryKey(); pk != "" {
		if val, ok := row[pk]; ok {
			if idx, ok := table.Indexes[pk]; ok && idx.Contains(val) {
				return nil, catalog.NewPrimaryKeyViolation(table.Name, pk, val)
			}
		}
	}
	for _, uniqueCol := range table.UniqueColumns() {
		if val, ok := row[uniqueCol]; ok {
			if idx, ok := table.Indexes[uniqueCol]; ok && idx.Contains(val) {
				return nil, catalog.NewUniqueViolation(table.Name, uniqueCol, val)
			}
		}
	}

	table.Rows = append(table.Rows, row)
	catalog.BuildIndexes(table, nil)

	return &Result{Message: "1 row(s) inserted.", RowsAffected: 1}, nil
}
