package executor

import (
	"errors"

	"github.com/Adnangad/RDBMS/internal/catalog"
	"github.com/Adnangad/RDBMS/internal/parser/ast"
)

func executeSelect(stmt *ast.SelectStatement, cat *catalog.Catalog) (*Result, error) {
	table, ok := cat.Table(stmt.TableName)
	if !ok {
		return nil, catalog.NewTableNotFound(stmt.TableName)
	}

	var rows []catalog.Row
	var err error

	if stmt.Join != nil {
		right, ok := cat.Table(stmt.Join.Table)
		if !ok {
			return nil, catalog.NewTableNotFound(stmt.Join.Table)
		}
		if stmt.Join.LeftTable != stmt.TableName {
			return nil, errors.New("Invalid JOIN condition")
		}
		rows = nestedLoopJoin(table, right, stmt.Join)
		if len(stmt.Where) > 0 {
			rows, err = applyJoinedConditions(rows, stmt.Where, table, right)
			if err != nil {
				return nil, err
			}
		}
		rows, err = project(rows, stmt.Fields)
		if err != nil {
			return nil, err
		}
		return &Result{Columns: resultColumns(stmt, table, right), Rows: rows}, nil
	}

	if len(stmt.Where) > 0 {
		rows, err = applyConditions(table, stmt.Where)
		if err != nil {
			return nil, err
		}
	} else {
		// Full scans hand back detached rows so results never alias the
		// catalog's row maps.
		rows = make([]catalog.Row, len(table.Rows))
		for i, row := range table.Rows {
			rows[i] = row.Copy()
		}
	}

	rows, err = project(rows, stmt.Fields)
	if err != nil {
		return nil, err
	}
	return &Result{Columns: resultColumns(stmt, table, nil), Rows: rows}, nil
}

// resultColumns expands the projection list for the result header: `*`
// becomes the schema's declaration order, prefixed per table for joins.
func resultColumns(stmt *ast.SelectStatement, left, right *catalog.Table) []string {
	if !(len(stmt.Fields) == 1 && stmt.Fields[0] == "*") {
		return stmt.Fields
	}
	var columns []string
	if right == nil {
		return left.ColumnNames()
	}
	for _, name := range left.ColumnNames() {
		columns = append(columns, left.Name+"."+name)
	}
	for _, name := range right.ColumnNames() {
		columns = append(columns, right.Name+"."+name)
	}
	return columns
}
