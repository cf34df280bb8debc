package catalog

// Row represents a single table row.
// Key = column name, Value = typed cell value (int64, string, float64 or bool).
type Row map[string]interface{}

func (r Row) Copy() Row {
	cp := make(Row, len(r))
	for k, v := range r {
		cp[k] = v
	}
	return cp
}
