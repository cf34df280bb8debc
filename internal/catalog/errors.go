package catalog

import "fmt"

// ConstraintError reports a primary-key or unique-constraint violation.
// Raised before any mutating write for the offending statement.
type ConstraintError struct {
	Table      string
	Column     string
	Value      interface{}
	Constraint string // "primary_key" or "unique"
}

func (e *ConstraintError) Error() string {
	if e.Constraint == "primary_key" {
		return fmt.Sprintf("Primary key '%s' violation", e.Column)
	}
	return fmt.Sprintf("Unique constraint '%s' violation", e.Column)
}

func NewPrimaryKeyViolation(table, column string, value interface{}) *ConstraintError {
	return &ConstraintError{Table: table, Column: column, Value: value, Constraint: "primary_key"}
}

func NewUniqueViolation(table, column string, value interface{}) *ConstraintError {
	return &ConstraintError{Table: table, Column: column, Value: value, Constraint: "unique"}
}

// SchemaError reports a problem with the statement's use of the schema:
// a missing or duplicate table, or an unsupported column type.
type SchemaError struct {
	Kind  string // "table_exists", "table_not_found", "unsupported_type"
	Table string
	Type  string
}

func (e *SchemaError) Error() string {
	switch e.Kind {
	case "table_exists":
		return fmt.Sprintf("Table '%s' already exists.", e.Table)
	case "table_not_found":
		return fmt.Sprintf("Table '%s' does not exist.", e.Table)
	default:
		return fmt.Sprintf("Unsupported column type '%s'", e.Type)
	}
}

func NewTableExists(table string) *SchemaError {
	return &SchemaError{Kind: "table_exists", Table: table}
}

func NewTableNotFound(table string) *SchemaError {
	return &SchemaError{Kind: "table_not_found", Table: table}
}

func NewUnsupportedType(typeName string) *SchemaError {
	return &SchemaError{Kind: "unsupported_type", Type: typeName}
}

// ColumnError reports a reference to an unknown column or a value that
// cannot be cast to the column's declared type.
type ColumnError struct {
	Kind   string // "unknown" or "cast"
	Column string
}

func (e *ColumnError) Error() string {
	if e.Kind == "cast" {
		return fmt.Sprintf("Invalid data type for column '%s'", e.Column)
	}
	return fmt.Sprintf("Invalid column '%s'", e.Column)
}

func NewUnknownColumn(column string) *ColumnError {
	return &ColumnError{Kind: "unknown", Column: column}
}

func NewCastError(column string) *ColumnError {
	return &ColumnError{Kind: "cast", Column: column}
}
