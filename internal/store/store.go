package store

import (
	"todo-api/internal/domain"
)

// TodoStore keeps todos in insertion order. Ids are not unique: Get returns
// the first match and Delete removes every match.
type TodoStore interface {
	List() ([]domain.Todo, error)
	Get(id int64) (domain.Todo, bool)
	Add(todo domain.Todo) (domain.Todo, error)
	Delete(id int64) (int, error)
}

// Find returns the first todo with the given id.
func Find(todos []domain.Todo, id int64) (domain.Todo, bool) {
	for _, t := range todos {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Todo{}, false
}

// RemoveAll drops every todo with the given id in place and returns the
// shortened slice plus the number of removed entries.
func RemoveAll(todos []domain.Todo, id int64) ([]domain.Todo, int) {
	kept := todos[:0]
	for _, t := range todos {
		if t.ID != id {
			kept = append(kept, t)
		}
	}

	removed := len(todos) - len(kept)
	// clear the tail so dropped values don't linger in the backing array
	clear(todos[len(kept):])

	return kept, removed
}
