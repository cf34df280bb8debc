package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Adnangad/RDBMS/internal/catalog"
)

type createTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

type updateTaskRequest struct {
	TaskID      int64   `json:"task_id" binding:"required"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

type deleteTaskRequest struct {
	TaskID int64 `json:"task_id" binding:"required"`
}

func validPriority(p string) bool {
	return p == "Low" || p == "Medium" || p == "High"
}

func validStatus(s string) bool {
	return s == "Pending" || s == "Completed"
}

func (s *Server) createTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
		return
	}
	priority := req.Priority
	if !validPriority(priority) {
		priority = "Medium"
	}
	status := req.Status
	if !validStatus(status) {
		status = "Pending"
	}

	id, err := s.nextID("tasks")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	stmt := fmt.Sprintf(
		"INSERT INTO tasks (id, title, description, priority, status, user_id) VALUES (%d, '%s', '%s', '%s', '%s', %d);",
		id, escapeValue(title), escapeValue(req.Description), priority, status, userID(c))
	if _, err := s.exec(stmt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "sql": stmt})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task created successfully", "sql": stmt, "task_id": id})
}

func (s *Server) listTasks(c *gin.Context) {
	stmt := fmt.Sprintf("SELECT * FROM tasks WHERE user_id = %d", userID(c))
	if status := c.Query("status"); validStatus(status) {
		stmt += fmt.Sprintf(" AND status = '%s'", status)
	}
	if priority := c.Query("priority"); validPriority(priority) {
		stmt += fmt.Sprintf(" AND priority = '%s'", priority)
	}
	stmt += ";"

	rows, err := s.query(stmt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "sql": stmt})
		return
	}
	if rows == nil {
		rows = []catalog.Row{}
	}
	c.JSON(http.StatusOK, gin.H{"tasks": rows, "sql": stmt})
}

func (s *Server) updateTask(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	owned, err := s.query(fmt.Sprintf(
		"SELECT * FROM tasks WHERE id = %d AND user_id = %d;", req.TaskID, userID(c)))
	if err != nil || len(owned) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found or unauthorized"})
		return
	}

	var updates []string
	if req.Title != nil {
		if title := strings.TrimSpace(*req.Title); title != "" {
			updates = append(updates, fmt.Sprintf("title = '%s'", escapeValue(title)))
		}
	}
	if req.Description != nil {
		updates = append(updates, fmt.Sprintf("description = '%s'", escapeValue(*req.Description)))
	}
	if req.Priority != nil && validPriority(*req.Priority) {
		updates = append(updates, fmt.Sprintf("priority = '%s'", *req.Priority))
	}
	if req.Status != nil && validStatus(*req.Status) {
		updates = append(updates, fmt.Sprintf("status = '%s'", *req.Status))
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	stmt := fmt.Sprintf("UPDATE tasks SET %s WHERE id = %d;", strings.Join(updates, ", "), req.TaskID)
	if _, err := s.exec(stmt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "sql": stmt})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task updated successfully", "sql": stmt})
}

func (s *Server) deleteTask(c *gin.Context) {
	var req deleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	owned, err := s.query(fmt.Sprintf(
		"SELECT * FROM tasks WHERE id = %d AND user_id = %d;", req.TaskID, userID(c)))
	if err != nil || len(owned) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found or unauthorized"})
		return
	}

	stmt := fmt.Sprintf("DELETE FROM tasks WHERE id = %d;", req.TaskID)
	if _, err := s.exec(stmt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "sql": stmt})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully", "sql": stmt})
}
