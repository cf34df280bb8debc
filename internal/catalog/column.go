package catalog

import "strings"

// ColumnType is the canonical type tag stored in the snapshot.
type ColumnType string

const (
	ColumnTypeInt   ColumnType = "int"
	ColumnTypeText  ColumnType = "text"
	ColumnTypeFloat ColumnType = "float"
	ColumnTypeBool  ColumnType = "bool"
)

// typeAliases maps every accepted spelling of a column type to its
// canonical tag. Matching is case-insensitive.
var typeAliases = map[string]ColumnType{
	"int":     ColumnTypeInt,
	"text":    ColumnTypeText,
	"varchar": ColumnTypeText,
	"float":   ColumnTypeFloat,
	"decimal": ColumnTypeFloat,
	"bool":    ColumnTypeBool,
	"boolean": ColumnTypeBool,
}

// LookupColumnType canonicalizes a raw type name from a CREATE TABLE
// statement. The second return value is false for unsupported types.
func LookupColumnType(raw string) (ColumnType, bool) {
	ct, ok := typeAliases[strings.ToLower(raw)]
	return ct, ok
}

type Column struct {
	Name       string     `json:"name"`
	Type       ColumnType `json:"type"`
	PrimaryKey bool       `json:"primary_key"`
	Unique     bool       `json:"unique"`
}
