package catalog

import "log/slog"

// BuildIndexes rebuilds every equality index of a table from its row set.
// Called after any mutation that touches the table; rebuilding wholesale
// keeps index entries free of dangling positions when rows are replaced
// or removed. Rows missing the indexed column are simply absent from the
// index (no NOT-NULL enforcement).
func BuildIndexes(t *Table, logger *slog.Logger) {
	t.Indexes = make(map[string]*Index)

	for _, colName := range t.IndexedColumns() {
		idx := NewIndex(colName)
		for pos, row := range t.Rows {
			val, ok := row[colName]
			if !ok {
				continue
			}
			key := ValueKey(val)
			idx.Data[key] = append(idx.Data[key], pos)
		}
		t.Indexes[colName] = idx

		if logger != nil {
			logger.Debug("index built",
				slog.String("table", t.Name),
				slog.String("column", colName),
				slog.Int("unique_values", len(idx.Data)))
		}
	}
}

// BuildCatalogIndexes rebuilds indexes for every table in the catalog.
func BuildCatalogIndexes(c *Catalog, logger *slog.Logger) {
	for _, t := range c.Tables {
		BuildIndexes(t, logger)
	}
}
