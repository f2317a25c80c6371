// Package validation holds the rules a todo must satisfy at creation time.
package validation

import (
	"time"
	"todo-api/internal/domain"
)

// Field names match the JSON representation of a todo.
const (
	FieldDueDate     = "dueDate"
	FieldIsCompleted = "isCompleted"
)

const (
	MsgDueDateInPast = "Cannot have due date in the past."
	MsgCompleted     = "Cannot add completed task."
)

// Errors maps a field name to every message raised against it.
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e Errors) has(field string) bool {
	return len(e[field]) > 0
}

// NewTodo checks a todo about to be created. All rules run; the result is
// empty when the todo is acceptable.
func NewTodo(todo domain.Todo, now time.Time) Errors {
	errs := make(Errors)

	if todo.DueDate.Before(now) {
		errs.Add(FieldDueDate, MsgDueDateInPast)
	}
	if todo.IsCompleted {
		errs.Add(FieldIsCompleted, MsgCompleted)
	}

	return errs
}
