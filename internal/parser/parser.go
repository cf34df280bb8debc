package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Adnangad/RDBMS/internal/parser/ast"
	"github.com/Adnangad/RDBMS/internal/parser/lexer"
)

// ErrNotRecognized marks input whose leading keyword is not a statement
// the engine knows. The caller falls through to a generic syntax error;
// it is never surfaced as-is.
var ErrNotRecognized = errors.New("statement not recognized")

// MalformedError reports input that starts like a known statement but
// violates its grammar (arity mismatch, missing delimiter, bad clause).
type MalformedError struct {
	Kind   string // statement keyword, e.g. "INSERT"
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("Malformed %s statement: %s", e.Kind, e.Reason)
}

// statementKeywords are the leading keywords the parser dispatches on.
var statementKeywords = map[string]bool{
	"SELECT": true, "INSERT": true, "CREATE": true,
	"UPDATE": true, "DELETE": true, "DROP": true, "ALTER": true,
}

// Parse converts a single trimmed command string into a structured
// statement. Stored state is never touched here.
func Parse(input string) (ast.Statement, error) {
	tokens, err := lexer.Tokenize(strings.TrimSpace(input))
	if err != nil {
		// Decide between "not recognized" and "malformed" by the
		// leading word, since tokenizing failed partway through.
		fields := strings.Fields(input)
		if len(fields) > 0 && statementKeywords[strings.ToUpper(fields[0])] {
			return nil, &MalformedError{Kind: strings.ToUpper(fields[0]), Reason: err.Error()}
		}
		return nil, ErrNotRecognized
	}
	if len(tokens) == 0 {
		return nil, ErrNotRecognized
	}
	p := New(tokens)
	return p.Parse()
}

type Parser struct {
	tokens  []lexer.Token
	curPos  int
	curTok  lexer.Token
	peekTok lexer.Token
}

func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens, curPos: 0}
	// Read two tokens to set curTok and peekTok
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	if p.curPos < len(p.tokens) {
		p.peekTok = p.tokens[p.curPos]
		p.curPos++
	} else {
		p.peekTok = lexer.Token{Type: lexer.EOF}
	}
}

func (p *Parser) Parse() (ast.Statement, error) {
	switch p.curTok.Type {
	case lexer.SELECT:
		return p.parseSelect()
	case lexer.INSERT:
		return p.parseInsert()
	case lexer.CREATE:
		return p.parseCreateTable()
	case lexer.UPDATE:
		return p.parseUpdate()
	case lexer.DELETE:
		return p.parseDelete()
	case lexer.DROP:
		return p.parseDropTable()
	case lexer.ALTER:
		return p.parseAlterTable()
	default:
		return nil, ErrNotRecognized
	}
}

func (p *Parser) parseCreateTable() (*ast.CreateTableStatement, error) {
	stmt := &ast.CreateTableStatement{}
	p.nextToken() // CREATE

	if p.curTok.Type != lexer.TABLE {
		return nil, malformed("CREATE TABLE", "expected TABLE, got %q", p.curTok.Literal)
	}
	p.nextToken()

	if p.curTok.Type != lexer.IDENTIFIER {
		return nil, malformed("CREATE TABLE", "expected table name, got %q", p.curTok.Literal)
	}
	stmt.TableName = p.curTok.Literal
	p.nextToken()

	if p.curTok.Type != lexer.PAREN_OPEN {
		return nil, malformed("CREATE TABLE", "expected ( before column definitions")
	}
	p.nextToken()

	for {
		if p.curTok.Type != lexer.IDENTIFIER {
			return nil, malformed("CREATE TABLE", "expected column name, got %q", p.curTok.Literal)
		}
		name := p.curTok.Literal
		p.nextToken()

		if p.curTok.Type != lexer.IDENTIFIER {
			return nil, malformed("CREATE TABLE", "column %q is missing a type", name)
		}
		stmt.Columns = append(stmt.Columns, ast.ColumnDef{Name: name, Type: p.curTok.Literal})
		p.nextToken()

		// Constraint markers; the last PRIMARY seen wins
		for p.curTok.Type == lexer.PRIMARY || p.curTok.Type == lexer.UNIQUE {
			if p.curTok.Type == lexer.PRIMARY {
				stmt.PrimaryKey = name
				p.nextToken()
				if p.curTok.Type == lexer.KEY {
					p.nextToken()
				}
			} else {
				stmt.UniqueColumns = append(stmt.UniqueColumns, name)
				p.nextToken()
			}
		}

		if p.curTok.Type == lexer.COMMA {
			p.nextToken()
			continue
		}
		if p.curTok.Type == lexer.PAREN_CLOSE {
			p.nextToken()
			break
		}
		return nil, malformed("CREATE TABLE", "expected , or ) after column definition, got %q", p.curTok.Literal)
	}

	if err := p.expectEnd("CREATE TABLE"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseInsert() (*ast.InsertStatement, error) {
	stmt := &ast.InsertStatement{}
	p.nextToken() // INSERT

	if p.curTok.Type != lexer.INTO {
		return nil, malformed("INSERT", "expected INTO, got %q", p.curTok.Literal)
	}
	p.nextToken()

	if p.curTok.Type != lexer.IDENTIFIER {
		return nil, malformed("INSERT", "expected table name, got %q", p.curTok.Literal)
	}
	stmt.TableName = p.curTok.Literal
	p.nextToken()

	if p.curTok.Type != lexer.PAREN_OPEN {
		return nil, malformed("INSERT", "expected ( before column list")
	}
	p.nextToken()

	for {
		if p.curTok.Type != lexer.IDENTIFIER {
			return nil, malformed("INSERT", "expected column name, got %q", p.curTok.Literal)
		}
		stmt.Columns = append(stmt.Columns, p.curTok.Literal)
		p.nextToken()
		if p.curTok.Type == lexer.COMMA {
			p.nextToken()
			continue
		}
		break
	}
	if p.curTok.Type != lexer.PAREN_CLOSE {
		return nil, malformed("INSERT", "expected ) after column list, got %q", p.curTok.Literal)
	}
	p.nextToken()

	if p.curTok.Type != lexer.VALUES {
		return nil, malformed("INSERT", "expected VALUES, got %q", p.curTok.Literal)
	}
	p.nextToken()

	if p.curTok.Type != lexer.PAREN_OPEN {
		return nil, malformed("INSERT", "expected ( before value list")
	}
	p.nextToken()

	for {
		val, err := p.parseValueLiteral("INSERT")
		if err != nil {
			return nil, err
		}
		stmt.Values = append(stmt.Values, val)
		if p.curTok.Type == lexer.COMMA {
			p.nextToken()
			continue
		}
		break
	}
	if p.curTok.Type != lexer.PAREN_CLOSE {
		return nil, malformed("INSERT", "expected ) after value list, got %q", p.curTok.Literal)
	}
	p.nextToken()

	if len(stmt.Columns) != len(stmt.Values) {
		return nil, malformed("INSERT", "column count (%d) does not match value count (%d)",
			len(stmt.Columns), len(stmt.Values))
	}

	if err := p.expectEnd("INSERT"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseSelect() (*ast.SelectStatement, error) {
	stmt := &ast.SelectStatement{}
	p.nextToken() // SELECT

	// Projection: * or a comma-separated list of (qualified) column names
	if p.curTok.Type == lexer.ASTERISK {
		stmt.Fields = []string{"*"}
		p.nextToken()
	} else {
		for {
			name, err := p.parseQualifiedIdent("SELECT")
			if err != nil {
				return nil, err
			}
			stmt.Fields = append(stmt.Fields, name)
			if p.curTok.Type == lexer.COMMA {
				p.nextToken()
				continue
			}
			break
		}
	}

	if p.curTok.Type != lexer.FROM {
		return nil, malformed("SELECT", "expected FROM, got %q", p.curTok.Literal)
	}
	p.nextToken()

	if p.curTok.Type != lexer.IDENTIFIER {
		return nil, malformed("SELECT", "expected table name, got %q", p.curTok.Literal)
	}
	stmt.TableName = p.curTok.Literal
	p.nextToken()

	// JOIN is detected before WHERE
	if p.curTok.Type == lexer.JOIN {
		join, err := p.parseJoin()
		if err != nil {
			return nil, err
		}
		stmt.Join = join
	}

	if p.curTok.Type == lexer.WHERE {
		conds, err := p.parseWhere("SELECT")
		if err != nil {
			return nil, err
		}
		stmt.Where = conds
	}

	if err := p.expectEnd("SELECT"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseJoin() (*ast.JoinClause, error) {
	join := &ast.JoinClause{}
	p.nextToken() // JOIN

	if p.curTok.Type != lexer.IDENTIFIER {
		return nil, malformed("SELECT", "expected joined table name, got %q", p.curTok.Literal)
	}
	join.Table = p.curTok.Literal
	p.nextToken()

	if p.curTok.Type != lexer.ON {
		return nil, malformed("SELECT", "expected ON after JOIN table")
	}
	p.nextToken()

	var err error
	join.LeftTable, join.LeftColumn, err = p.parseDottedPair()
	if err != nil {
		return nil, err
	}
	if p.curTok.Type != lexer.EQUALS {
		return nil, malformed("SELECT", "JOIN condition must be an equality")
	}
	p.nextToken()
	join.RightTable, join.RightColumn, err = p.parseDottedPair()
	if err != nil {
		return nil, err
	}
	return join, nil
}

// parseDottedPair parses <table>.<column> as used in an ON clause.
func (p *Parser) parseDottedPair() (string, string, error) {
	if p.curTok.Type != lexer.IDENTIFIER {
		return "", "", malformed("SELECT", "expected table-qualified column in ON clause, got %q", p.curTok.Literal)
	}
	table := p.curTok.Literal
	p.nextToken()
	if p.curTok.Type != lexer.DOT {
		return "", "", malformed("SELECT", "ON clause column %q must be table-qualified", table)
	}
	p.nextToken()
	if p.curTok.Type != lexer.IDENTIFIER {
		return "", "", malformed("SELECT", "expected column name after %q.", table)
	}
	column := p.curTok.Literal
	p.nextToken()
	return table, column, nil
}

func (p *Parser) parseUpdate() (*ast.UpdateStatement, error) {
	stmt := &ast.UpdateStatement{}
	p.nextToken() // UPDATE

	if p.curTok.Type != lexer.IDENTIFIER {
		return nil, malformed("UPDATE", "expected table name, got %q", p.curTok.Literal)
	}
	stmt.TableName = p.curTok.Literal
	p.nextToken()

	if p.curTok.Type != lexer.SET {
		return nil, malformed("UPDATE", "expected SET, got %q", p.curTok.Literal)
	}
	p.nextToken()

	for {
		if p.curTok.Type != lexer.IDENTIFIER {
			return nil, malformed("UPDATE", "expected column name in SET list, got %q", p.curTok.Literal)
		}
		col := p.curTok.Literal
		p.nextToken()
		if p.curTok.Type != lexer.EQUALS {
			return nil, malformed("UPDATE", "expected = after column %q", col)
		}
		p.nextToken()
		val, err := p.parseValueLiteral("UPDATE")
		if err != nil {
			return nil, err
		}
		stmt.Assignments = append(stmt.Assignments, ast.Assignment{Column: col, Value: val})
		if p.curTok.Type == lexer.COMMA {
			p.nextToken()
			continue
		}
		break
	}

	// An UPDATE without WHERE is rejected here, never executed as an
	// unconditional update.
	if p.curTok.Type != lexer.WHERE {
		return nil, malformed("UPDATE", "WHERE clause is required")
	}
	conds, err := p.parseWhere("UPDATE")
	if err != nil {
		return nil, err
	}
	stmt.Where = conds

	if err := p.expectEnd("UPDATE"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseDelete() (*ast.DeleteStatement, error) {
	stmt := &ast.DeleteStatement{}
	p.nextToken() // DELETE

	if p.curTok.Type != lexer.FROM {
		return nil, malformed("DELETE", "expected FROM, got %q", p.curTok.Literal)
	}
	p.nextToken()

	if p.curTok.Type != lexer.IDENTIFIER {
		return nil, malformed("DELETE", "expected table name, got %q", p.curTok.Literal)
	}
	stmt.TableName = p.curTok.Literal
	p.nextToken()

	if p.curTok.Type != lexer.WHERE {
		return nil, malformed("DELETE", "WHERE clause is required")
	}
	conds, err := p.parseWhere("DELETE")
	if err != nil {
		return nil, err
	}
	stmt.Where = conds

	if err := p.expectEnd("DELETE"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseDropTable() (*ast.DropTableStatement, error) {
	p.nextToken() // DROP
	if p.curTok.Type != lexer.TABLE {
		return nil, malformed("DROP TABLE", "expected TABLE, got %q", p.curTok.Literal)
	}
	p.nextToken()
	if p.curTok.Type != lexer.IDENTIFIER {
		return nil, malformed("DROP TABLE", "expected table name, got %q", p.curTok.Literal)
	}
	stmt := &ast.DropTableStatement{TableName: p.curTok.Literal}
	p.nextToken()
	if err := p.expectEnd("DROP TABLE"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseAlterTable() (*ast.AlterTableStatement, error) {
	p.nextToken() // ALTER
	if p.curTok.Type != lexer.TABLE {
		return nil, malformed("ALTER TABLE", "expected TABLE, got %q", p.curTok.Literal)
	}
	p.nextToken()
	if p.curTok.Type != lexer.IDENTIFIER {
		return nil, malformed("ALTER TABLE", "expected table name, got %q", p.curTok.Literal)
	}
	stmt := &ast.AlterTableStatement{TableName: p.curTok.Literal}
	p.nextToken()

	switch p.curTok.Type {
	case lexer.ADD:
		stmt.Action = "add"
		p.nextToken()
		if p.curTok.Type != lexer.IDENTIFIER {
			return nil, malformed("ALTER TABLE", "expected column name after ADD")
		}
		stmt.Column = p.curTok.Literal
		p.nextToken()
		if p.curTok.Type != lexer.IDENTIFIER {
			return nil, malformed("ALTER TABLE", "column %q is missing a type", stmt.Column)
		}
		stmt.ColumnType = p.curTok.Literal
		p.nextToken()
	case lexer.DROP:
		stmt.Action = "drop"
		p.nextToken()
		if p.curTok.Type != lexer.COLUMN {
			return nil, malformed("ALTER TABLE", "expected COLUMN after DROP")
		}
		p.nextToken()
		if p.curTok.Type != lexer.IDENTIFIER {
			return nil, malformed("ALTER TABLE", "expected column name after DROP COLUMN")
		}
		stmt.Column = p.curTok.Literal
		p.nextToken()
	default:
		return nil, malformed("ALTER TABLE", "expected ADD or DROP COLUMN, got %q", p.curTok.Literal)
	}

	if err := p.expectEnd("ALTER TABLE"); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseWhere parses WHERE <cond> [AND <cond> ...]. Only conjunctions are
// supported; OR is rejected.
func (p *Parser) parseWhere(kind string) ([]ast.Condition, error) {
	p.nextToken() // WHERE

	var conds []ast.Condition
	for {
		cond, err := p.parseCondition(kind)
		if err != nil {
			return nil, err
		}
		conds = append(conds, cond)

		if p.curTok.Type == lexer.AND {
			p.nextToken()
			continue
		}
		if p.curTok.Type == lexer.OR {
			return nil, malformed(kind, "OR is not supported in WHERE clauses")
		}
		break
	}
	return conds, nil
}

func (p *Parser) parseCondition(kind string) (ast.Condition, error) {
	col, err := p.parseQualifiedIdent(kind)
	if err != nil {
		return ast.Condition{}, err
	}

	var op string
	switch p.curTok.Type {
	case lexer.GTE:
		op = ">="
	case lexer.LTE:
		op = "<="
	case lexer.NOT_EQUALS:
		op = "!="
	case lexer.EQUALS:
		op = "="
	case lexer.GT:
		op = ">"
	case lexer.LT:
		op = "<"
	default:
		return ast.Condition{}, malformed(kind, "expected comparison operator after %q, got %q", col, p.curTok.Literal)
	}
	p.nextToken()

	val, err := p.parseValueLiteral(kind)
	if err != nil {
		return ast.Condition{}, err
	}
	return ast.Condition{Column: col, Operator: op, Value: val}, nil
}

// parseQualifiedIdent parses ident or ident.ident and returns it as a
// single dotted name.
func (p *Parser) parseQualifiedIdent(kind string) (string, error) {
	if p.curTok.Type != lexer.IDENTIFIER {
		return "", malformed(kind, "expected column name, got %q", p.curTok.Literal)
	}
	name := p.curTok.Literal
	p.nextToken()
	if p.curTok.Type == lexer.DOT {
		p.nextToken()
		if p.curTok.Type != lexer.IDENTIFIER {
			return "", malformed(kind, "expected column name after %q.", name)
		}
		name = name + "." + p.curTok.Literal
		p.nextToken()
	}
	return name, nil
}

// parseValueLiteral accepts a quoted string, a number, TRUE/FALSE, or a
// bare word, and returns its raw text. Type coercion happens in the
// engine against the column's declared type.
func (p *Parser) parseValueLiteral(kind string) (string, error) {
	switch p.curTok.Type {
	case lexer.STRING, lexer.NUMBER, lexer.IDENTIFIER:
		val := p.curTok.Literal
		p.nextToken()
		return val, nil
	case lexer.TRUE:
		p.nextToken()
		return "true", nil
	case lexer.FALSE:
		p.nextToken()
		return "false", nil
	default:
		return "", malformed(kind, "expected a value, got %q", p.curTok.Literal)
	}
}

// expectEnd consumes an optional trailing semicolon and requires EOF.
func (p *Parser) expectEnd(kind string) error {
	if p.curTok.Type == lexer.SEMICOLON {
		p.nextToken()
	}
	if p.curTok.Type != lexer.EOF {
		return malformed(kind, "unexpected trailing input %q", p.curTok.Literal)
	}
	return nil
}

func malformed(kind, format string, args ...interface{}) *MalformedError {
	return &MalformedError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}
