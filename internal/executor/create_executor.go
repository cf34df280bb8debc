package executor

import (
	"fmt"
	"strings"

	"github.com/Adnangad/RDBMS/internal/catalog"
	"github.com/Adnangad/RDBMS/internal/parser/ast"
)

// executeCreateTable creates an empty table with its schema and empty
// equality indexes for the primary-key and unique columns. The first
// unsupported column type aborts without creating anything.
func executeCreateTable(stmt *ast.CreateTableStatement, cat *catalog.Catalog) (*Result, error) {
	if _, exists := cat.Table(stmt.TableName); exists {
		return nil, catalog.NewTableExists(stmt.TableName)
	}

	unique := make(map[string]bool, len(stmt.UniqueColumns))
	for _, name := range stmt.UniqueColumns {
		unique[name] = true
	}

	columns := make([]catalog.Column, 0, len(stmt.Columns))
	for _, def := range stmt.Columns {
		ct, ok := catalog.LookupColumnType(def.Type)
		if !ok {
			return nil, catalog.NewUnsupportedType(strings.ToLower(def.Type))
		}
		columns = append(columns, catalog.Column{
			Name:       def.Name,
			Type:       ct,
			PrimaryKey: def.Name == stmt.PrimaryKey,
			Unique:     unique[def.Name],
		})
	}

	table := &catalog.Table{
		Name:    stmt.TableName,
		Columns: columns,
		Rows:    []catalog.Row{},
	}
	catalog.BuildIndexes(table, nil)
	cat.Tables[stmt.TableName] = table

	return &Result{Message: fmt.Sprintf("Table '%s' created.", stmt.TableName)}, nil
}
