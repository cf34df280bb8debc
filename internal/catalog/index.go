package catalog

// Index is an in-memory equality index on a single column. Keys are the
// stringified column values; entries are row positions into the owning
// table's row set, never row aliases. Only `=` lookups go through an
// index; every other operator scans.
type Index struct {
	Column string           `json:"column"`
	Data   map[string][]int `json:"data"` // stringified value → row positions
}

func NewIndex(column string) *Index {
	return &Index{Column: column, Data: make(map[string][]int)}
}

// Lookup returns the positions of rows holding the given typed value.
func (idx *Index) Lookup(val interface{}) []int {
	return idx.Data[ValueKey(val)]
}

// Contains reports whether any row holds the given typed value.
func (idx *Index) Contains(val interface{}) bool {
	return len(idx.Data[ValueKey(val)]) > 0
}
