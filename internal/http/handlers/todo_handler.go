package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"
	"todo-api/internal/domain"
	"todo-api/internal/export"
	"todo-api/internal/http/dto"
	"todo-api/internal/service"
	"todo-api/internal/validation"

	"github.com/charmbracelet/log"
)

const maxBodyBytes = 1 << 20

type TodoService interface {
	ListTodos() ([]domain.Todo, error)
	GetTodo(id int64) (domain.Todo, error)
	CreateTodo(todo domain.Todo) (domain.Todo, error)
	DeleteTodo(id int64) (int, error)
}

// createFunc is the create step after the body has been decoded.
type createFunc func(w http.ResponseWriter, r *http.Request, todo domain.Todo)

type TodoHandler struct {
	todoService TodoService
	exporter    *export.Exporter
	logger      *log.Logger
	now         func() time.Time

	create createFunc
}

func New(todoService TodoService, logger *log.Logger) *TodoHandler {
	h := &TodoHandler{
		todoService: todoService,
		exporter:    export.NewExporter(todoService),
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
	h.create = h.validateNew(h.store)

	return h
}

// GET /todos
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	todos, err := h.todoService.ListTodos()
	if err != nil {
		h.logger.Error("list todos failed", "err", err)
		writeError(w, http.StatusInternalServerError, "failed getting todos")

		return
	}

	writeJSON(w, http.StatusOK, dto.NewTodoListResponse(todos))
}

// GET /todos/{id}
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	todo, err := h.todoService.GetTodo(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			writeError(w, http.StatusNotFound, service.ErrNotFound.Error())
			return
		default:
			h.logger.Error("get todo failed", "id", id, "err", err)
			writeError(w, http.StatusInternalServerError, "failed getting todo")
			return
		}
	}

	writeJSON(w, http.StatusOK, dto.NewTodoResponse(todo))
}

// POST /todos
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TodoRequest
	problems, err := decodeChecked(http.MaxBytesReader(w, r.Body, maxBodyBytes), todoSchema, &req)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())

		return
	}
	if len(problems) > 0 {
		writeValidationProblem(w, problems)

		return
	}

	h.create(w, r, req.ToDomain())
}

// validateNew runs the creation rules before next. On any violation the
// whole set is reported and next is never called.
func (h *TodoHandler) validateNew(next createFunc) createFunc {
	return func(w http.ResponseWriter, r *http.Request, todo domain.Todo) {
		if errs := validation.NewTodo(todo, h.now()); len(errs) > 0 {
			h.logger.Debug("todo rejected", "id", todo.ID, "errors", errs)
			writeValidationProblem(w, errs)

			return
		}

		next(w, r, todo)
	}
}

func (h *TodoHandler) store(w http.ResponseWriter, r *http.Request, todo domain.Todo) {
	created, err := h.todoService.CreateTodo(todo)
	if err != nil {
		h.logger.Error("create todo failed", "id", todo.ID, "err", err)
		writeError(w, http.StatusInternalServerError, "failed creating todo")

		return
	}

	w.Header().Set("Location", "/todos/"+strconv.FormatInt(created.ID, 10))
	writeJSON(w, http.StatusCreated, dto.NewTodoResponse(created))
}

// DELETE /todos/{id}
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	removed, err := h.todoService.DeleteTodo(id)
	if err != nil {
		h.logger.Error("delete todo failed", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "failed deleting todo")

		return
	}
	h.logger.Debug("todos deleted", "id", id, "removed", removed)

	w.WriteHeader(http.StatusNoContent)
}

// GET /todos/export?format=json|csv|pdf
func (h *TodoHandler) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := h.exporter.Export(r.URL.Query().Get("format"))
	if err != nil {
		switch {
		case errors.Is(err, export.ErrUnknownFormat):
			writeError(w, http.StatusBadRequest, err.Error())
			return
		default:
			h.logger.Error("export todos failed", "err", err)
			writeError(w, http.StatusInternalServerError, "failed exporting todos")
			return
		}
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Body)
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid todo id")

		return 0, false
	}
	return id, true
}
