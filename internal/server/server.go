package server

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Adnangad/RDBMS/internal/catalog"
	"github.com/Adnangad/RDBMS/internal/engine"
	"github.com/Adnangad/RDBMS/internal/executor"
	"github.com/Adnangad/RDBMS/internal/session"
)

// Server is the task-manager HTTP façade. It authenticates users,
// validates requests and translates domain operations into statement
// text for the engine. The engine performs no sanitization of its own,
// so every user value embedded into a statement goes through
// escapeValue first.
type Server struct {
	engine       *engine.Engine
	sessions     *session.Store
	salt         string
	allowOrigins []string
	logger       *slog.Logger
}

func New(eng *engine.Engine, sessions *session.Store, salt string, allowOrigins []string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		engine:       eng,
		sessions:     sessions,
		salt:         salt,
		allowOrigins: allowOrigins,
		logger:       logger,
	}
}

// InitSchema creates the users and tasks tables. A table that already
// exists is fine: the snapshot survives restarts.
func (s *Server) InitSchema() error {
	statements := []string{
		"CREATE TABLE users (id int primary key, username varchar unique, email varchar unique, password text);",
		"CREATE TABLE tasks (id int primary key, title varchar, description text, priority varchar, status varchar, user_id int);",
	}
	for _, stmt := range statements {
		if _, err := s.engine.Execute(stmt); err != nil {
			var schemaErr *catalog.SchemaError
			if errors.As(err, &schemaErr) && schemaErr.Kind == "table_exists" {
				continue
			}
			return fmt.Errorf("schema init failed: %w", err)
		}
	}
	return nil
}

// Router builds the gin engine with CORS and all routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Token"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	api.POST("/users/register", s.registerUser)
	api.POST("/users/login", s.loginUser)

	authed := api.Group("")
	authed.Use(s.requireToken())
	authed.POST("/users/logout", s.logoutUser)
	authed.GET("/users/me", s.currentUser)
	authed.PUT("/users/update", s.updateUser)
	authed.POST("/tasks", s.createTask)
	authed.GET("/tasks", s.listTasks)
	authed.PUT("/tasks", s.updateTask)
	authed.DELETE("/tasks", s.deleteTask)

	return r
}

// Run starts the HTTP façade on the given address.
func (s *Server) Run(addr string) error {
	s.logger.Info("HTTP façade listening", slog.String("addr", addr))
	return s.Router().Run(addr)
}

// requireToken resolves the X-Token header through the session store and
// stores the user id on the request context.
func (s *Server) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Token")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Missing authentication token"})
			return
		}
		userID, ok := s.sessions.Lookup(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid or expired token"})
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}

func userID(c *gin.Context) int64 {
	return c.GetInt64("user_id")
}

// hashPassword hashes a password using SHA-256 with the configured salt.
func (s *Server) hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password + s.salt))
	return hex.EncodeToString(sum[:])
}

// escapeValue doubles single quotes so the value survives the lexer's
// quote handling when embedded into statement text.
func escapeValue(v string) string {
	return strings.ReplaceAll(v, "'", "''")
}

// query runs a statement expected to return rows.
func (s *Server) query(stmt string) ([]catalog.Row, error) {
	res, err := s.engine.Execute(stmt)
	if err != nil {
		return nil, err
	}
	return res.Rows, nil
}

// exec runs a mutating statement.
func (s *Server) exec(stmt string) (*executor.Result, error) {
	return s.engine.Execute(stmt)
}

// nextID allocates the next sequential id for a table.
func (s *Server) nextID(table string) (int64, error) {
	rows, err := s.query(fmt.Sprintf("SELECT * FROM %s;", table))
	if err != nil {
		return 0, err
	}
	return int64(len(rows)) + 1, nil
}

// rowInt64 reads an int column from a result row.
func rowInt64(row catalog.Row, col string) int64 {
	v, _ := row[col].(int64)
	return v
}

func rowString(row catalog.Row, col string) string {
	v, _ := row[col].(string)
	return v
}
