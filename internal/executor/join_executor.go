package executor

import (
	"strings"

	"github.com/Adnangad/RDBMS/internal/catalog"
	"github.com/Adnangad/RDBMS/internal/parser/ast"
)

// nestedLoopJoin emits one combined row per pair of rows whose join
// columns compare equal. Combined keys are the original column names
// prefixed with "<table>.". Rows missing the join column never match.
func nestedLoopJoin(left, right *catalog.Table, join *ast.JoinClause) []catalog.Row {
	var joined []catalog.Row
	for _, lrow := range left.Rows {
		lval, ok := lrow[join.LeftColumn]
		if !ok {
			continue
		}
		for _, rrow := range right.Rows {
			rval, ok := rrow[join.RightColumn]
			if !ok {
				continue
			}
			if !catalog.Satisfies(lval, "=", rval) {
				continue
			}
			combined := make(catalog.Row, len(lrow)+len(rrow))
			for k, v := range lrow {
				combined[left.Name+"."+k] = v
			}
			for k, v := range rrow {
				combined[right.Name+"."+k] = v
			}
			joined = append(joined, combined)
		}
	}
	return joined
}

// resolveJoinedColumn maps a (possibly bare) filter column onto the
// prefixed key of a combined row and the owning table's declared type.
// Bare names resolve left table first, then right.
func resolveJoinedColumn(name string, left, right *catalog.Table) (string, catalog.ColumnType, bool) {
	if table, col, found := strings.Cut(name, "."); found {
		if table == left.Name {
			if c, ok := left.Column(col); ok {
				return name, c.Type, true
			}
		}
		if table == right.Name {
			if c, ok := right.Column(col); ok {
				return name, c.Type, true
			}
		}
		return "", "", false
	}
	if c, ok := left.Column(name); ok {
		return left.Name + "." + name, c.Type, true
	}
	if c, ok := right.Column(name); ok {
		return right.Name + "." + name, c.Type, true
	}
	return "", "", false
}

// applyJoinedConditions filters combined rows. Every conjunct scans; the
// equality-index shortcut never applies to joined rows. Filter values
// are cast via the owning table's declared column type.
func applyJoinedConditions(rows []catalog.Row, conds []ast.Condition, left, right *catalog.Table) ([]catalog.Row, error) {
	for _, cond := range conds {
		key, colType, ok := resolveJoinedColumn(cond.Column, left, right)
		if !ok {
			return nil, catalog.NewUnknownColumn(cond.Column)
		}
		val, err := catalog.CastValue(cond.Value, colType)
		if err != nil {
			return nil, catalog.NewCastError(cond.Column)
		}

		var filtered []catalog.Row
		for _, row := range rows {
			rv, present := row[key]
			if !present {
				continue
			}
			if catalog.Satisfies(rv, cond.Operator, val) {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}
	return rows, nil
}
