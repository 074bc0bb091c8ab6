package model

import (
	"fmt"
	"strings"
	"time"
)

// Priority levels a todo can carry. Stored uppercase.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Status values a todo moves through. Stored uppercase.
type Status string

const (
	StatusActive Status = "ACTIVE"
	StatusDone   Status = "DONE"
	StatusClosed Status = "CLOSED"
)

// ParsePriority normalizes case-insensitive input ("low") to the stored
// form ("LOW"). Anything outside the enumerated set is rejected.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToUpper(s)); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	default:
		return "", fmt.Errorf("invalid priority %q, must be one of LOW, MEDIUM, HIGH", s)
	}
}

// ParseStatus normalizes case-insensitive input to the stored form.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToUpper(s)); st {
	case StatusActive, StatusDone, StatusClosed:
		return st, nil
	default:
		return "", fmt.Errorf("invalid status %q, must be one of ACTIVE, DONE, CLOSED", s)
	}
}

// Todo represents a single todo item
type Todo struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:50;not null" json:"title"`
	Description  string    `gorm:"not null" json:"description"`
	Priority     Priority  `gorm:"type:varchar(10);default:'LOW'" json:"priority"`
	Status       Status    `gorm:"type:varchar(10);default:'ACTIVE'" json:"status"`
	CreatedByID  *uint     `json:"created_by_id,omitempty"`
	CreatedBy    *User     `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"created_by,omitempty"`
	CreateDate   time.Time `gorm:"autoCreateTime" json:"create_date"`
	ModifiedDate time.Time `gorm:"autoUpdateTime" json:"modified_date"`
}
