package api

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/p-n-ai/edupilot/internal/platform/apperr"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	roadmapSchema = mustSchema("schemas/roadmap_request.json")
	quizSchema    = mustSchema("schemas/quiz_input.json")
)

func mustSchema(name string) *gojsonschema.Schema {
	b, err := schemaFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("reading schema %s: %v", name, err))
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(b))
	if err != nil {
		panic(fmt.Sprintf("compiling schema %s: %v", name, err))
	}
	return s
}

// validateBody checks a raw JSON document against schema and reports every
// violation in a single ValidationError.
func validateBody(schema *gojsonschema.Schema, body []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return &apperr.ValidationError{Message: "request body must be a JSON object", Err: err}
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return &apperr.ValidationError{Message: strings.Join(msgs, "; ")}
}
