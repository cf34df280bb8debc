package ast

import (
	"bytes"
	"fmt"
	"strings"
)

// Statement represents a standalone statement (SELECT, INSERT, etc.).
// Literal values are carried as raw text; coercion to the column's
// declared type is the execution engine's job.
type Statement interface {
	statementNode()
	String() string
}

// ColumnDef is one column definition inside CREATE TABLE.
type ColumnDef struct {
	Name string
	Type string // raw type name as written; canonicalized by the engine
}

// CreateTableStatement: CREATE TABLE t (col type [PRIMARY [KEY]] [UNIQUE], ...)
type CreateTableStatement struct {
	TableName     string
	Columns       []ColumnDef
	PrimaryKey    string // single primary-key column; last marker wins
	UniqueColumns []string
}

func (s *CreateTableStatement) statementNode() {}
func (s *CreateTableStatement) String() string {
	var out bytes.Buffer
	out.WriteString("CREATE TABLE ")
	out.WriteString(s.TableName)
	out.WriteString(" (")
	for i, c := range s.Columns {
		out.WriteString(c.Name + " " + c.Type)
		if i < len(s.Columns)-1 {
			out.WriteString(", ")
		}
	}
	out.WriteString(")")
	return out.String()
}

// InsertStatement: INSERT INTO t (col1, col2) VALUES (val1, val2)
type InsertStatement struct {
	TableName string
	Columns   []string
	Values    []string // raw literal texts, quotes already stripped
}

func (s *InsertStatement) statementNode() {}
func (s *InsertStatement) String() string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		s.TableName, strings.Join(s.Columns, ", "), strings.Join(s.Values, ", "))
}

// Condition is one AND-joined conjunct of a WHERE clause.
type Condition struct {
	Column   string // possibly table-qualified ("orders.id") for joined rows
	Operator string // one of >=, <=, !=, =, >, <
	Value    string // raw literal text
}

func (c Condition) String() string {
	return fmt.Sprintf("%s %s %s", c.Column, c.Operator, c.Value)
}

// JoinClause: JOIN t2 ON t1.c1 = t2.c2
type JoinClause struct {
	Table       string // right-hand table
	LeftTable   string
	LeftColumn  string
	RightTable  string
	RightColumn string
}

// SelectStatement: SELECT fields FROM t [JOIN ...] [WHERE ...]
type SelectStatement struct {
	TableName string
	Fields    []string // literal "*" or bare/qualified column names
	Join      *JoinClause
	Where     []Condition
}

func (s *SelectStatement) statementNode() {}
func (s *SelectStatement) String() string {
	var out bytes.Buffer
	out.WriteString("SELECT ")
	out.WriteString(strings.Join(s.Fields, ", "))
	out.WriteString(" FROM ")
	out.WriteString(s.TableName)
	if s.Join != nil {
		out.WriteString(fmt.Sprintf(" JOIN %s ON %s.%s = %s.%s",
			s.Join.Table, s.Join.LeftTable, s.Join.LeftColumn,
			s.Join.RightTable, s.Join.RightColumn))
	}
	writeWhere(&out, s.Where)
	return out.String()
}

// Assignment is one col = value pair of an UPDATE SET list.
type Assignment struct {
	Column string
	Value  string // raw literal text
}

// UpdateStatement: UPDATE t SET assignments WHERE ... (WHERE is mandatory)
type UpdateStatement struct {
	TableName   string
	Assignments []Assignment
	Where       []Condition
}

func (s *UpdateStatement) statementNode() {}
func (s *UpdateStatement) String() string {
	var out bytes.Buffer
	out.WriteString("UPDATE ")
	out.WriteString(s.TableName)
	out.WriteString(" SET ")
	for i, a := range s.Assignments {
		out.WriteString(a.Column + " = " + a.Value)
		if i < len(s.Assignments)-1 {
			out.WriteString(", ")
		}
	}
	writeWhere(&out, s.Where)
	return out.String()
}

// DeleteStatement: DELETE FROM t WHERE ... (WHERE is mandatory)
type DeleteStatement struct {
	TableName string
	Where     []Condition
}

func (s *DeleteStatement) statementNode() {}
func (s *DeleteStatement) String() string {
	var out bytes.Buffer
	out.WriteString("DELETE FROM ")
	out.WriteString(s.TableName)
	writeWhere(&out, s.Where)
	return out.String()
}

// DropTableStatement is recognized by the parser but not dispatched by
// the engine.
type DropTableStatement struct {
	TableName string
}

func (s *DropTableStatement) statementNode() {}
func (s *DropTableStatement) String() string { return "DROP TABLE " + s.TableName }

// AlterTableStatement is recognized by the parser but not dispatched by
// the engine.
type AlterTableStatement struct {
	TableName  string
	Action     string // "add" or "drop"
	Column     string
	ColumnType string // set for "add"
}

func (s *AlterTableStatement) statementNode() {}
func (s *AlterTableStatement) String() string {
	if s.Action == "add" {
		return fmt.Sprintf("ALTER TABLE %s ADD %s %s", s.TableName, s.Column, s.ColumnType)
	}
	return fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s", s.TableName, s.Column)
}

func writeWhere(out *bytes.Buffer, conds []Condition) {
	if len(conds) == 0 {
		return
	}
	out.WriteString(" WHERE ")
	for i, c := range conds {
		out.WriteString(c.String())
		if i < len(conds)-1 {
			out.WriteString(" AND ")
		}
	}
}
