package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"todo-api/internal/domain"

	"github.com/jung-kurt/gofpdf"
)

var ErrUnknownFormat = errors.New("unknown export format")

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

type TodoLister interface {
	ListTodos() ([]domain.Todo, error)
}

// Document is a rendered export ready to be written out.
type Document struct {
	ContentType string
	Filename    string
	Body        []byte
}

type Exporter struct {
	src TodoLister
}

func NewExporter(src TodoLister) *Exporter { return &Exporter{src: src} }

func (e *Exporter) Export(format string) (Document, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatJSON
	}

	// reject before touching the source
	switch format {
	case FormatJSON, FormatCSV, FormatPDF:
	default:
		return Document{}, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	todos, err := e.src.ListTodos()
	if err != nil {
		return Document{}, err
	}

	switch format {
	case FormatCSV:
		b, err := renderCSV(todos)
		return Document{ContentType: "text/csv", Filename: "todos.csv", Body: b}, err
	case FormatPDF:
		b, err := renderPDF(todos)
		return Document{ContentType: "application/pdf", Filename: "todos.pdf", Body: b}, err
	default:
		if todos == nil {
			todos = []domain.Todo{}
		}
		b, err := json.MarshalIndent(todos, "", "  ")
		return Document{ContentType: "application/json", Filename: "todos.json", Body: b}, err
	}
}

func renderCSV(todos []domain.Todo) ([]byte, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)

	_ = w.Write([]string{"id", "name", "due_date", "is_completed"})
	for _, t := range todos {
		_ = w.Write([]string{
			strconv.FormatInt(t.ID, 10),
			t.Name,
			t.DueDate.UTC().Format(time.RFC3339),
			strconv.FormatBool(t.IsCompleted),
		})
	}
	w.Flush()

	if err := w.Error(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func renderPDF(todos []domain.Todo) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Todo List")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	if len(todos) == 0 {
		pdf.Cell(40, 6, "No todos.")
	}
	for _, t := range todos {
		status := "open"
		if t.IsCompleted {
			status = "done"
		}
		line := fmt.Sprintf("#%d  %s  due %s  [%s]", t.ID, t.Name, t.DueDate.UTC().Format("2006-01-02 15:04"), status)
		pdf.MultiCell(0, 6, line, "0", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
