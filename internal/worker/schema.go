package worker

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/notesos/ingest/constants"
	"github.com/notesos/ingest/internal/common"
)

// Payload schemas are the externally agreed queue contracts. A payload that
// fails its queue's schema is a producer bug, not a transient fault.
func buildPayloadSchema(queue string) map[string]any {
	switch queue {
	case constants.QueueChunking:
		return map[string]any{
			"type":                 "object",
			"additionalProperties": true,
			"properties": map[string]any{
				"document_id": map[string]any{"type": "string", "minLength": 1},
				"text":        map[string]any{"type": "string"},
			},
			"required": []string{"document_id"},
		}
	case constants.QueueFactCheck:
		return map[string]any{
			"type":                 "object",
			"additionalProperties": true,
			"properties": map[string]any{
				"document_id": map[string]any{"type": "string", "minLength": 1},
			},
			"required": []string{"document_id"},
		}
	case constants.QueueGrading:
		return map[string]any{
			"type":                 "object",
			"additionalProperties": true,
			"properties": map[string]any{
				"answer_id": map[string]any{"type": "string", "minLength": 1},
				"is_voice":  map[string]any{"type": "boolean"},
			},
			"required": []string{"answer_id"},
		}
	default:
		return nil
	}
}

func compilePayloadSchema(queue string) (*jsonschema.Schema, error) {
	if !constants.IsKnownQueue(queue) {
		return nil, fmt.Errorf("unknown queue %q", queue)
	}
	b, err := json.Marshal(buildPayloadSchema(queue))
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("payload.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	return compiler.Compile("payload.json")
}

func validatePayload(schema *jsonschema.Schema, payload map[string]any) error {
	// The compiled validator wants plain JSON values.
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: payload does not match queue contract: %v", common.ErrValidation, err)
	}
	return nil
}
