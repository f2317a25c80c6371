package dto

import (
	"time"
	"todo-api/internal/domain"
)

// TodoRequest fields left out of the body keep their zero values.
type TodoRequest struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DueDate     Timestamp `json:"dueDate"`
	IsCompleted bool      `json:"isCompleted"`
}

type TodoResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DueDate     time.Time `json:"dueDate"`
	IsCompleted bool      `json:"isCompleted"`
}

func (r TodoRequest) ToDomain() domain.Todo {
	return domain.Todo{
		ID:          r.ID,
		Name:        r.Name,
		DueDate:     r.DueDate.Time.UTC(),
		IsCompleted: r.IsCompleted,
	}
}

func NewTodoResponse(t domain.Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Name:        t.Name,
		DueDate:     t.DueDate,
		IsCompleted: t.IsCompleted,
	}
}

func NewTodoListResponse(todos []domain.Todo) []TodoResponse {
	response := make([]TodoResponse, 0, len(todos))
	for _, t := range todos {
		response = append(response, NewTodoResponse(t))
	}
	return response
}
