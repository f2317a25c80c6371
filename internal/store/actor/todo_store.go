// Package actor implements the todo store with a single owner goroutine.
// Every operation is sent through a bounded mailbox and executed in order
// by that goroutine, so the slice itself needs no lock.
package actor

import (
	"context"
	"errors"
	"sync"
	"todo-api/internal/domain"
	"todo-api/internal/store"
)

var ErrStoreClosed = errors.New("todo store is closed")

type TodoStore struct {
	mailbox chan func()
	quit    chan struct{}
	done    chan struct{}
	once    sync.Once

	// owned by run
	todos []domain.Todo
}

func New(mailboxSize int) *TodoStore {
	if mailboxSize < 0 {
		mailboxSize = 0
	}

	s := &TodoStore{
		mailbox: make(chan func(), mailboxSize),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
		todos:   make([]domain.Todo, 0),
	}
	go s.run()

	return s
}

func (s *TodoStore) run() {
	defer close(s.done)

	for {
		select {
		case op := <-s.mailbox:
			op()
		case <-s.quit:
			// finish whatever was accepted before Close
			for {
				select {
				case op := <-s.mailbox:
					op()
				default:
					return
				}
			}
		}
	}
}

// do runs op on the owner goroutine and waits for it to finish.
func (s *TodoStore) do(op func()) error {
	select {
	case <-s.quit:
		return ErrStoreClosed
	default:
	}

	reply := make(chan struct{})
	task := func() {
		op()
		close(reply)
	}

	select {
	case s.mailbox <- task:
	case <-s.quit:
		return ErrStoreClosed
	}

	select {
	case <-reply:
		return nil
	case <-s.done:
		// reply is closed before done when the op made it in
		select {
		case <-reply:
			return nil
		default:
			return ErrStoreClosed
		}
	}
}

func (s *TodoStore) List() ([]domain.Todo, error) {
	var todos []domain.Todo
	err := s.do(func() {
		todos = make([]domain.Todo, len(s.todos))
		copy(todos, s.todos)
	})
	if err != nil {
		return nil, err
	}

	return todos, nil
}

func (s *TodoStore) Get(id int64) (domain.Todo, bool) {
	var (
		todo domain.Todo
		ok   bool
	)
	if err := s.do(func() { todo, ok = store.Find(s.todos, id) }); err != nil {
		return domain.Todo{}, false
	}

	return todo, ok
}

func (s *TodoStore) Add(todo domain.Todo) (domain.Todo, error) {
	if err := s.do(func() { s.todos = append(s.todos, todo) }); err != nil {
		return domain.Todo{}, err
	}

	return todo, nil
}

func (s *TodoStore) Delete(id int64) (int, error) {
	var removed int
	if err := s.do(func() { s.todos, removed = store.RemoveAll(s.todos, id) }); err != nil {
		return 0, err
	}

	return removed, nil
}

// Close stops accepting operations, drains the mailbox and waits for the
// owner goroutine to exit or ctx to expire. It is safe to call twice.
func (s *TodoStore) Close(ctx context.Context) error {
	s.once.Do(func() { close(s.quit) })

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
