package service

import (
	"fmt"
	"todo-api/internal/domain"
	"todo-api/internal/store"
)

type TodoService struct {
	store store.TodoStore
}

func New(store store.TodoStore) (*TodoService, error) {
	if store == nil {
		return nil, ErrStoreNil
	}

	return &TodoService{store: store}, nil
}

func (s *TodoService) ListTodos() ([]domain.Todo, error) {
	todos, err := s.store.List()
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (s *TodoService) GetTodo(id int64) (domain.Todo, error) {
	todo, ok := s.store.Get(id)
	if !ok {
		return domain.Todo{}, ErrNotFound
	}
	return todo, nil
}

// CreateTodo stores the todo as given. Creation rules are enforced by the
// caller before this point.
func (s *TodoService) CreateTodo(todo domain.Todo) (domain.Todo, error) {
	created, err := s.store.Add(todo)
	if err != nil {
		return domain.Todo{}, fmt.Errorf("add todo %d: %w", todo.ID, err)
	}
	return created, nil
}

// DeleteTodo removes every todo with the id. Deleting an unknown id is not
// an error.
func (s *TodoService) DeleteTodo(id int64) (int, error) {
	removed, err := s.store.Delete(id)
	if err != nil {
		return 0, fmt.Errorf("delete todo %d: %w", id, err)
	}
	return removed, nil
}
