package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateUserRequest struct {
	Username string `json:"username" binding:"required"`
}

func (s *Server) registerUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Username and email cannot be empty"})
		return
	}

	existing, err := s.query(fmt.Sprintf("SELECT * FROM users WHERE username = '%s';", escapeValue(username)))
	if err == nil && len(existing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Username already exists"})
		return
	}
	existing, err = s.query(fmt.Sprintf("SELECT * FROM users WHERE email = '%s';", escapeValue(email)))
	if err == nil && len(existing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Email already exists"})
		return
	}

	id, err := s.nextID("users")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	stmt := fmt.Sprintf(
		"INSERT INTO users (id, username, email, password) VALUES (%d, '%s', '%s', '%s');",
		id, escapeValue(username), escapeValue(email), s.hashPassword(req.Password))
	if _, err := s.exec(stmt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	token := s.sessions.Create(id)
	c.JSON(http.StatusOK, gin.H{
		"message": "User created successfully",
		"token":   token,
		"user_id": id,
	})
}

func (s *Server) loginUser(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	username := strings.TrimSpace(req.Username)
	rows, err := s.query(fmt.Sprintf("SELECT * FROM users WHERE username = '%s';", escapeValue(username)))
	if err != nil || len(rows) == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid username or password"})
		return
	}

	user := rows[0]
	if rowString(user, "password") != s.hashPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid username or password"})
		return
	}

	id := rowInt64(user, "id")
	token := s.sessions.Create(id)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user_id": id,
	})
}

func (s *Server) logoutUser(c *gin.Context) {
	s.sessions.Revoke(userID(c))
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (s *Server) currentUser(c *gin.Context) {
	rows, err := s.query(fmt.Sprintf("SELECT id, username, email FROM users WHERE id = %d;", userID(c)))
	if err != nil || len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": rows[0]})
}

func (s *Server) updateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username cannot be empty"})
		return
	}

	existing, err := s.query(fmt.Sprintf(
		"SELECT * FROM users WHERE username = '%s' AND id != %d;", escapeValue(username), userID(c)))
	if err == nil && len(existing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
		return
	}

	stmt := fmt.Sprintf("UPDATE users SET username = '%s' WHERE id = %d;", escapeValue(username), userID(c))
	if _, err := s.exec(stmt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Username updated successfully"})
}
