package storage

// tableDoc is the persisted form of one table inside the snapshot
// document. The snapshot is a single JSON object mapping table name to
// tableDoc, read in full before and rewritten in full after each
// mutating statement.
type tableDoc struct {
	Columns       []string                    `json:"columns"`
	Types         map[string]string           `json:"types"`
	PrimaryKey    string                      `json:"primary_key,omitempty"`
	UniqueColumns []string                    `json:"unique_columns"`
	Rows          []map[string]interface{}    `json:"rows"`
	Indexes       map[string]map[string][]int `json:"indexes"`
}

type snapshotDoc map[string]tableDoc
