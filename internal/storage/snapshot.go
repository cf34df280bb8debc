package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/Adnangad/RDBMS/internal/catalog"
)

// Store reads and writes the whole catalog as one snapshot file.
type Store struct {
	path   string
	logger *slog.Logger
}

func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// Load reads the entire snapshot and reconstructs the catalog. A missing
// file is an empty catalog. Row values are normalized to the schema
// types (JSON numbers arrive as float64) and indexes are rebuilt from
// the row set, so stale persisted index entries can never alias rows.
func (s *Store) Load() (*catalog.Catalog, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return catalog.New(), nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var doc snapshotDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	cat := catalog.New()
	for name, td := range doc {
		table, err := buildTable(name, td)
		if err != nil {
			return nil, fmt.Errorf("failed to load table %s: %w", name, err)
		}
		cat.Tables[name] = table
	}
	catalog.BuildCatalogIndexes(cat, s.logger)

	s.logger.Debug("snapshot loaded",
		slog.String("path", s.path),
		slog.Int("table_count", len(cat.Tables)))

	return cat, nil
}

// Save rewrites the entire snapshot from the catalog.
func (s *Store) Save(cat *catalog.Catalog) error {
	doc := make(snapshotDoc, len(cat.Tables))
	for name, table := range cat.Tables {
		doc[name] = buildDoc(table)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	s.logger.Debug("snapshot saved",
		slog.String("path", s.path),
		slog.Int("table_count", len(cat.Tables)))

	return nil
}

func buildTable(name string, td tableDoc) (*catalog.Table, error) {
	unique := make(map[string]bool, len(td.UniqueColumns))
	for _, col := range td.UniqueColumns {
		unique[col] = true
	}

	columns := make([]catalog.Column, 0, len(td.Columns))
	for _, colName := range td.Columns {
		rawType, ok := td.Types[colName]
		if !ok {
			return nil, fmt.Errorf("column %q has no declared type", colName)
		}
		colType, ok := catalog.LookupColumnType(rawType)
		if !ok {
			return nil, fmt.Errorf("column %q has unsupported type %q", colName, rawType)
		}
		columns = append(columns, catalog.Column{
			Name:       colName,
			Type:       colType,
			PrimaryKey: colName == td.PrimaryKey,
			Unique:     unique[colName],
		})
	}

	table := &catalog.Table{Name: name, Columns: columns, Rows: make([]catalog.Row, 0, len(td.Rows))}
	for i, raw := range td.Rows {
		row := make(catalog.Row, len(raw))
		for colName, val := range raw {
			col, ok := table.Column(colName)
			if !ok {
				return nil, fmt.Errorf("row %d references unknown column %q", i, colName)
			}
			normalized, ok := catalog.NormalizeValue(val, col.Type)
			if !ok {
				return nil, fmt.Errorf("row %d has a %s value that is not a valid %s", i, colName, col.Type)
			}
			row[colName] = normalized
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func buildDoc(table *catalog.Table) tableDoc {
	td := tableDoc{
		Columns:       table.ColumnNames(),
		Types:         make(map[string]string, len(table.Columns)),
		PrimaryKey:    table.PrimaryKey(),
		UniqueColumns: table.UniqueColumns(),
		Rows:          make([]map[string]interface{}, 0, len(table.Rows)),
		Indexes:       make(map[string]map[string][]int, len(table.Indexes)),
	}
	if td.UniqueColumns == nil {
		td.UniqueColumns = []string{}
	}
	for _, col := range table.Columns {
		td.Types[col.Name] = string(col.Type)
	}
	for _, row := range table.Rows {
		td.Rows = append(td.Rows, map[string]interface{}(row))
	}
	for colName, idx := range table.Indexes {
		td.Indexes[colName] = idx.Data
	}
	return td
}
