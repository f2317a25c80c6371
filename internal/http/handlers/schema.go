package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"todo-api/internal/http/dto"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// rootField keys problems that belong to the whole document.
const rootField = "$"

const todoSchemaURL = "todo.schema.json"

// isoTimestampFormat is wider than date-time: the offset and the time part
// are both optional.
const isoTimestampFormat = "iso-timestamp"

// Absent members are allowed and decode to zero values, so the creation
// rules report them.
const todoSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "id": {"type": "integer"},
    "name": {"type": "string"},
    "dueDate": {"type": "string", "format": "iso-timestamp"},
    "isCompleted": {"type": "boolean"}
  }
}`

var todoSchema = mustCompileTodoSchema()

func mustCompileTodoSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true
	if compiler.Formats == nil {
		compiler.Formats = make(map[string]func(any) bool)
	}
	compiler.Formats[isoTimestampFormat] = isISOTimestamp

	if err := compiler.AddResource(todoSchemaURL, strings.NewReader(todoSchemaJSON)); err != nil {
		panic(fmt.Sprintf("add todo schema: %v", err))
	}
	return compiler.MustCompile(todoSchemaURL)
}

func isISOTimestamp(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	_, err := dto.ParseTimestamp(s)
	return err == nil
}

var errMalformedBody = errors.New("malformed request body")

// decodeChecked reads a JSON body, checks it against schema and decodes it
// into dst. Shape problems come back as field -> messages; a non-nil error
// means the body could not be used at all.
func decodeChecked(body io.Reader, schema *jsonschema.Schema, dst any) (map[string][]string, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedBody, err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return map[string][]string{rootField: {"The request body is not valid JSON."}}, nil
	}

	if err := schema.Validate(doc); err != nil {
		problems := make(map[string][]string)
		collectSchemaErrors(problems, err)
		return problems, nil
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return map[string][]string{rootField: {err.Error()}}, nil
	}

	return nil, nil
}

func collectSchemaErrors(problems map[string][]string, err error) {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		problems[rootField] = append(problems[rootField], err.Error())
		return
	}
	collectCauses(problems, ve)
}

func collectCauses(problems map[string][]string, ve *jsonschema.ValidationError) {
	if len(ve.Causes) == 0 {
		field := pointerToField(ve.InstanceLocation)
		problems[field] = append(problems[field], ve.Message)
		return
	}

	for _, cause := range ve.Causes {
		collectCauses(problems, cause)
	}
}

// pointerToField turns "/dueDate" into "dueDate" and "" into "$".
func pointerToField(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return rootField
	}

	parts := strings.Split(ptr, "/")
	for i, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		parts[i] = strings.ReplaceAll(part, "~0", "~")
	}
	return strings.Join(parts, ".")
}
