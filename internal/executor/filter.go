package executor

import (
	"github.com/Adnangad/RDBMS/internal/catalog"
	"github.com/Adnangad/RDBMS/internal/parser/ast"
)

// typedCondition is a WHERE conjunct whose value has been cast to the
// referenced column's declared type.
type typedCondition struct {
	Column   string
	Operator string
	Value    interface{}
}

// castConditions resolves and type-checks every conjunct against the
// table's schema. An unknown column or a failed cast aborts the whole
// statement.
func castConditions(table *catalog.Table, conds []ast.Condition) ([]typedCondition, error) {
	typed := make([]typedCondition, 0, len(conds))
	for _, cond := range conds {
		col, ok := table.Column(cond.Column)
		if !ok {
			return nil, catalog.NewUnknownColumn(cond.Column)
		}
		val, err := catalog.CastValue(cond.Value, col.Type)
		if err != nil {
			return nil, catalog.NewCastError(cond.Column)
		}
		typed = append(typed, typedCondition{Column: cond.Column, Operator: cond.Operator, Value: val})
	}
	return typed, nil
}

// matches evaluates one conjunct against a row. A row missing the column
// never matches.
func (c typedCondition) matches(row catalog.Row) bool {
	val, ok := row[c.Column]
	if !ok {
		return false
	}
	return catalog.Satisfies(val, c.Operator, c.Value)
}

// matchesAll evaluates the full conjunction against a row.
func matchesAll(row catalog.Row, conds []typedCondition) bool {
	for _, c := range conds {
		if !c.matches(row) {
			return false
		}
	}
	return true
}

// applyConditions narrows the table's row set one conjunct at a time.
// The first conjunct may take the equality-index shortcut: it only
// applies when starting from the full row set, with the `=` operator, on
// an indexed column. Every other conjunct and operator scans the current
// row set.
func applyConditions(table *catalog.Table, conds []ast.Condition) ([]catalog.Row, error) {
	typed, err := castConditions(table, conds)
	if err != nil {
		return nil, err
	}

	rows := table.Rows
	for i, cond := range typed {
		if i == 0 && cond.Operator == "=" {
			if idx, ok := table.Indexes[cond.Column]; ok {
				positions := idx.Lookup(cond.Value)
				filtered := make([]catalog.Row, 0, len(positions))
				for _, pos := range positions {
					filtered = append(filtered, table.Rows[pos])
				}
				rows = filtered
				continue
			}
		}

		var filtered []catalog.Row
		for _, row := range rows {
			if cond.matches(row) {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}
	return rows, nil
}
