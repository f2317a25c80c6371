package domain

import "time"

// Todo is immutable once stored; the store only hands out copies.
type Todo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DueDate     time.Time `json:"dueDate"`
	IsCompleted bool      `json:"isCompleted"`
}
