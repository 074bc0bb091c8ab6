package database

import (
	"errors"

	"github.com/sahilchouksey/todo-graphql-api/model"
)

// ErrNotFound is returned when a row does not exist, regardless of the
// backing implementation.
var ErrNotFound = errors.New("record not found")

// Storage defines the interface that all database implementations must satisfy
type Storage interface {
	// Lifecycle methods
	Init() error
	Close() error
	HealthCheck() error

	// GORM DB access
	GetDB() interface{}

	// Todo methods
	ListTodos(search string) ([]model.Todo, error)
	GetTodoByID(id uint) (*model.Todo, error)
	CreateTodo(todo *model.Todo) error
	SaveTodo(todo *model.Todo) error
	DeleteTodo(id uint) error

	// User methods
	ListUsers() ([]model.User, error)
	GetUserByID(id uint) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	CreateUser(user *model.User) error
	SaveUser(user *model.User) error
	DeleteUser(id uint) error
}
