package parser

import (
	"errors"
	"testing"

	"github.com/Adnangad/RDBMS/internal/parser/ast"
)

func TestParseCreateTable(t *testing.T) {
	stmt, err := Parse("CREATE TABLE users (id int primary key, name varchar unique, age int);")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	create, ok := stmt.(*ast.CreateTableStatement)
	if !ok {
		t.Fatalf("expected CreateTableStatement, got %T", stmt)
	}
	if create.TableName != "users" {
		t.Errorf("expected table users, got %q", create.TableName)
	}
	if len(create.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(create.Columns))
	}
	if create.Columns[0].Name != "id" || create.Columns[0].Type != "int" {
		t.Errorf("unexpected first column: %+v", create.Columns[0])
	}
	if create.PrimaryKey != "id" {
		t.Errorf("expected primary key id, got %q", create.PrimaryKey)
	}
	if len(create.UniqueColumns) != 1 || create.UniqueColumns[0] != "name" {
		t.Errorf("expected unique columns [name], got %v", create.UniqueColumns)
	}
}

func TestParseInsert(t *testing.T) {
	stmt, err := Parse("INSERT INTO users (id, name, active) VALUES (1, 'alice', true);")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ins, ok := stmt.(*ast.InsertStatement)
	if !ok {
		t.Fatalf("expected InsertStatement, got %T", stmt)
	}
	if ins.TableName != "users" {
		t.Errorf("expected table users, got %q", ins.TableName)
	}
	wantCols := []string{"id", "name", "active"}
	wantVals := []string{"1", "alice", "true"}
	for i := range wantCols {
		if ins.Columns[i] != wantCols[i] {
			t.Errorf("column %d: expected %q, got %q", i, wantCols[i], ins.Columns[i])
		}
		if ins.Values[i] != wantVals[i] {
			t.Errorf("value %d: expected %q, got %q", i, wantVals[i], ins.Values[i])
		}
	}
}

func TestParseInsertArityMismatch(t *testing.T) {
	_, err := Parse("INSERT INTO users (id, name) VALUES (1);")
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedError, got %v", err)
	}
	if malformed.Kind != "INSERT" {
		t.Errorf("expected INSERT kind, got %q", malformed.Kind)
	}
}

func TestParseSelectVariants(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		fields     []string
		whereCount int
	}{
		{"star no where", "SELECT * FROM users;", []string{"*"}, 0},
		{"explicit fields", "SELECT id, name FROM users;", []string{"id", "name"}, 0},
		{"single condition", "SELECT * FROM users WHERE age > 21;", []string{"*"}, 1},
		{"conjunction", "SELECT * FROM users WHERE age > 21 AND name = 'bob';", []string{"*"}, 2},
		{"no semicolon", "SELECT * FROM users", []string{"*"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			sel, ok := stmt.(*ast.SelectStatement)
			if !ok {
				t.Fatalf("expected SelectStatement, got %T", stmt)
			}
			if len(sel.Fields) != len(tt.fields) {
				t.Fatalf("expected %d fields, got %d", len(tt.fields), len(sel.Fields))
			}
			for i, f := range tt.fields {
				if sel.Fields[i] != f {
					t.Errorf("field %d: expected %q, got %q", i, f, sel.Fields[i])
				}
			}
			if len(sel.Where) != tt.whereCount {
				t.Errorf("expected %d conditions, got %d", tt.whereCount, len(sel.Where))
			}
		})
	}
}

func TestParseSelectJoin(t *testing.T) {
	stmt, err := Parse("SELECT * FROM users JOIN orders ON users.id = orders.user_id WHERE orders.total > 100;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sel := stmt.(*ast.SelectStatement)
	if sel.Join == nil {
		t.Fatal("expected join clause")
	}
	if sel.Join.Table != "orders" {
		t.Errorf("expected joined table orders, got %q", sel.Join.Table)
	}
	if sel.Join.LeftTable != "users" || sel.Join.LeftColumn != "id" {
		t.Errorf("unexpected left side: %s.%s", sel.Join.LeftTable, sel.Join.LeftColumn)
	}
	if sel.Join.RightTable != "orders" || sel.Join.RightColumn != "user_id" {
		t.Errorf("unexpected right side: %s.%s", sel.Join.RightTable, sel.Join.RightColumn)
	}
	if len(sel.Where) != 1 || sel.Where[0].Column != "orders.total" {
		t.Errorf("unexpected where: %+v", sel.Where)
	}
}

func TestParseComparisonOperators(t *testing.T) {
	tests := []struct {
		input string
		op    string
	}{
		{"SELECT * FROM t WHERE a = 1;", "="},
		{"SELECT * FROM t WHERE a != 1;", "!="},
		{"SELECT * FROM t WHERE a > 1;", ">"},
		{"SELECT * FROM t WHERE a < 1;", "<"},
		{"SELECT * FROM t WHERE a >= 1;", ">="},
		{"SELECT * FROM t WHERE a <= 1;", "<="},
	}

	for _, tt := range tests {
		stmt, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tt.input, err)
		}
		sel := stmt.(*ast.SelectStatement)
		if len(sel.Where) != 1 || sel.Where[0].Operator != tt.op {
			t.Errorf("input %q: expected operator %q, got %+v", tt.input, tt.op, sel.Where)
		}
	}
}

func TestParseUpdate(t *testing.T) {
	stmt, err := Parse("UPDATE users SET name = 'carol', age = 31 WHERE id = 2;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	upd, ok := stmt.(*ast.UpdateStatement)
	if !ok {
		t.Fatalf("expected UpdateStatement, got %T", stmt)
	}
	if len(upd.Assignments) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(upd.Assignments))
	}
	if upd.Assignments[0].Column != "name" || upd.Assignments[0].Value != "carol" {
		t.Errorf("unexpected first assignment: %+v", upd.Assignments[0])
	}
	if len(upd.Where) != 1 || upd.Where[0].Column != "id" || upd.Where[0].Value != "2" {
		t.Errorf("unexpected where: %+v", upd.Where)
	}
}

func TestParseUpdateRequiresWhere(t *testing.T) {
	_, err := Parse("UPDATE users SET name = 'x';")
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedError, got %v", err)
	}
}

func TestParseDelete(t *testing.T) {
	stmt, err := Parse("DELETE FROM users WHERE age < 18 AND active = false;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	del, ok := stmt.(*ast.DeleteStatement)
	if !ok {
		t.Fatalf("expected DeleteStatement, got %T", stmt)
	}
	if del.TableName != "users" {
		t.Errorf("expected table users, got %q", del.TableName)
	}
	if len(del.Where) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(del.Where))
	}
	if del.Where[1].Column != "active" || del.Where[1].Value != "false" {
		t.Errorf("unexpected second condition: %+v", del.Where[1])
	}
}

func TestParseDeleteRequiresWhere(t *testing.T) {
	_, err := Parse("DELETE FROM users;")
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedError, got %v", err)
	}
}

func TestParseRejectsOr(t *testing.T) {
	_, err := Parse("SELECT * FROM users WHERE a = 1 OR b = 2;")
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedError, got %v", err)
	}
}

func TestParseDropAndAlter(t *testing.T) {
	stmt, err := Parse("DROP TABLE users;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := stmt.(*ast.DropTableStatement); !ok {
		t.Fatalf("expected DropTableStatement, got %T", stmt)
	}

	stmt, err = Parse("ALTER TABLE users ADD nickname varchar;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	alter, ok := stmt.(*ast.AlterTableStatement)
	if !ok {
		t.Fatalf("expected AlterTableStatement, got %T", stmt)
	}
	if alter.Action != "add" || alter.Column != "nickname" || alter.ColumnType != "varchar" {
		t.Errorf("unexpected alter statement: %+v", alter)
	}
}

func TestParseNotRecognized(t *testing.T) {
	inputs := []string{
		"GRANT ALL ON users;",
		"hello world",
		"",
		"   ",
	}
	for _, in := range inputs {
		_, err := Parse(in)
		if !errors.Is(err, ErrNotRecognized) {
			t.Errorf("input %q: expected ErrNotRecognized, got %v", in, err)
		}
	}
}

func TestParseMalformedVsNotRecognized(t *testing.T) {
	// Leading keyword known but grammar broken: malformed, not generic.
	_, err := Parse("SELECT FROM users;")
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedError, got %v", err)
	}

	// Unknown leading word with an illegal character: not recognized.
	_, err = Parse("FETCH @ FROM users;")
	if !errors.Is(err, ErrNotRecognized) {
		t.Fatalf("expected ErrNotRecognized, got %v", err)
	}
}

func TestParseTrailingGarbage(t *testing.T) {
	_, err := Parse("SELECT * FROM users; extra")
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedError, got %v", err)
	}
}
