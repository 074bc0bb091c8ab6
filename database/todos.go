package database

import (
	"errors"
	"strings"

	"github.com/sahilchouksey/todo-graphql-api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// likeEscaper neutralizes LIKE/ILIKE wildcards so a search term matches
// literally ("100%" must not match every row).
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListTodos retrieves all todos, optionally filtered by a case-insensitive
// substring match over title, priority and status.
func (s *GORMStore) ListTodos(search string) ([]model.Todo, error) {
	var todos []model.Todo
	tx := s.db.Preload("CreatedBy")
	if search != "" {
		pattern := "%" + likeEscaper.Replace(search) + "%"
		tx = tx.Where("title ILIKE ? OR priority ILIKE ? OR status ILIKE ?", pattern, pattern, pattern)
	}
	result := tx.Find(&todos)
	return todos, result.Error
}

// GetTodoByID retrieves a single todo by its primary key
func (s *GORMStore) GetTodoByID(id uint) (*model.Todo, error) {
	var todo model.Todo
	if err := s.db.Preload("CreatedBy").First(&todo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &todo, nil
}

// CreateTodo persists a new todo and fills in its generated fields.
// Associations are never written through the todo row.
func (s *GORMStore) CreateTodo(todo *model.Todo) error {
	return s.db.Omit(clause.Associations).Create(todo).Error
}

// SaveTodo persists all fields of an existing todo
func (s *GORMStore) SaveTodo(todo *model.Todo) error {
	return s.db.Omit(clause.Associations).Save(todo).Error
}

// DeleteTodo removes a todo by ID
func (s *GORMStore) DeleteTodo(id uint) error {
	result := s.db.Delete(&model.Todo{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
