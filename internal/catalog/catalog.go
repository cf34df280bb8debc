package catalog

// Catalog is the full in-memory representation of all tables for one
// engine invocation. It is reconstructed from the snapshot before every
// statement and discarded afterwards.
type Catalog struct {
	Tables map[string]*Table
}

func New() *Catalog {
	return &Catalog{Tables: make(map[string]*Table)}
}

// Table looks up a table by name.
func (c *Catalog) Table(name string) (*Table, bool) {
	t, ok := c.Tables[name]
	return t, ok
}
