package memory

import (
	"sync"
	"todo-api/internal/domain"
	"todo-api/internal/store"
)

type TodoStore struct {
	mu    sync.RWMutex
	todos []domain.Todo
}

func New() *TodoStore {
	return &TodoStore{
		todos: make([]domain.Todo, 0),
	}
}

func (ts *TodoStore) List() ([]domain.Todo, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	// callers get their own copy
	todos := make([]domain.Todo, len(ts.todos))
	copy(todos, ts.todos)

	return todos, nil
}

func (ts *TodoStore) Get(id int64) (domain.Todo, bool) {
	ts.mu.RLock()
	todo, ok := store.Find(ts.todos, id)
	ts.mu.RUnlock()

	return todo, ok
}

func (ts *TodoStore) Add(todo domain.Todo) (domain.Todo, error) {
	ts.mu.Lock()
	ts.todos = append(ts.todos, todo)
	ts.mu.Unlock()

	return todo, nil
}

func (ts *TodoStore) Delete(id int64) (int, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	var removed int
	ts.todos, removed = store.RemoveAll(ts.todos, id)

	return removed, nil
}
