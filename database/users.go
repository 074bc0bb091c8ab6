package database

import (
	"errors"

	"github.com/sahilchouksey/todo-graphql-api/model"
	"gorm.io/gorm"
)

// ListUsers retrieves all registered users
func (s *GORMStore) ListUsers() ([]model.User, error) {
	var users []model.User
	result := s.db.Find(&users)
	return users, result.Error
}

// GetUserByID retrieves a user by primary key
func (s *GORMStore) GetUserByID(id uint) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by their unique email
func (s *GORMStore) GetUserByEmail(email string) (*model.User, error) {
	return s.getUserWhere("email = ?", email)
}

// GetUserByUsername retrieves a user by their unique username
func (s *GORMStore) GetUserByUsername(username string) (*model.User, error) {
	return s.getUserWhere("username = ?", username)
}

func (s *GORMStore) getUserWhere(query string, arg interface{}) (*model.User, error) {
	var user model.User
	if err := s.db.Where(query, arg).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser persists a new user
func (s *GORMStore) CreateUser(user *model.User) error {
	return s.db.Create(user).Error
}

// SaveUser persists all fields of an existing user
func (s *GORMStore) SaveUser(user *model.User) error {
	return s.db.Save(user).Error
}

// DeleteUser removes a user by ID
func (s *GORMStore) DeleteUser(id uint) error {
	result := s.db.Delete(&model.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
