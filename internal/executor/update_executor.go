package executor

import (
	"fmt"

	"github.com/Adnangad/RDBMS/internal/catalog"
	"github.com/Adnangad/RDBMS/internal/parser/ast"
)

// executeUpdate applies the SET assignments to every WHERE-matched row.
// All casts — WHERE values and every assignment value — are validated
// before any row is written, so a statement either mutates completely or
// not at all. Returns the count of rows matched.
func executeUpdate(stmt *ast.UpdateStatement, cat *catalog.Catalog) (*Result, error) {
	table, ok := cat.Table(stmt.TableName)
	if !ok {
		return nil, catalog.NewTableNotFound(stmt.TableName)
	}

	conds, err := castConditions(table, stmt.Where)
	if err != nil {
		return nil, err
	}

	type typedAssignment struct {
		column string
		value  interface{}
	}
	assignments := make([]typedAssignment, 0, len(stmt.Assignments))
	for _, assign := range stmt.Assignments {
		col, ok := table.Column(assign.Column)
		if !ok {
			return nil, catalog.NewUnknownColumn(assign.Column)
		}
		val, err := catalog.CastValue(assign.Value, col.Type)
		if err != nil {
			return nil, catalog.NewCastError(assign.Column)
		}

		// For a primary-key or unique assignment, the new value must not
		// already exist anywhere in the table. The scan covers all rows,
		// including ones the WHERE clause will match, so an update that
		// would collide with any existing row is rejected up front.
		if col.PrimaryKey || col.Unique {
			for _, row := range table.Rows {
				existing, present := row[assign.Column]
				if !present || !catalog.Satisfies(existing, "=", val) {
					continue
				}
				if col.PrimaryKey {
					return nil, catalog.NewPrimaryKeyViolation(table.Name, assign.Column, val)
				}
				return nil, catalog.NewUniqueViolation(table.Name, assign.Column, val)
			}
		}

		assignments = append(assignments, typedAssignment{column: assign.Column, value: val})
	}

	matched := 0
	for _, row := range table.Rows {
		if !matchesAll(row, conds) {
			continue
		}
		for _, assign := range assignments {
			row[assign.column] = assign.value
		}
		matched++
	}

	catalog.BuildIndexes(table, nil)

	return &Result{
		Message:      fmt.Sprintf("%d row(s) updated.", matched),
		RowsAffected: matched,
	}, nil
}
