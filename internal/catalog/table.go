package catalog

// Table holds a table's schema, its row set and its equality indexes.
type Table struct {
	Name    string
	Columns []Column // declaration order defines default projection order
	Rows    []Row
	Indexes map[string]*Index
}

// Column returns the declared column with the given name.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// PrimaryKey returns the primary-key column name, or "" if none.
func (t *Table) PrimaryKey() string {
	for _, c := range t.Columns {
		if c.PrimaryKey {
			return c.Name
		}
	}
	return ""
}

// UniqueColumns returns the names of columns declared UNIQUE,
// excluding the primary key (tracked separately).
func (t *Table) UniqueColumns() []string {
	var cols []string
	for _, c := range t.Columns {
		if c.Unique {
			cols = append(cols, c.Name)
		}
	}
	return cols
}

// IndexedColumns returns the primary key plus the unique columns,
// i.e. every column that owns an equality index.
func (t *Table) IndexedColumns() []string {
	var cols []string
	for _, c := range t.Columns {
		if c.PrimaryKey || c.Unique {
			cols = append(cols, c.Name)
		}
	}
	return cols
}
