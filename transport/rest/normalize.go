package rest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Shape says whether a normalized body is a sequence of entities or a single
// entity.
type Shape int

const (
	ShapeList Shape = iota + 1
	ShapeSingle
)

func (s Shape) String() string {
	switch s {
	case ShapeList:
		return "list"
	case ShapeSingle:
		return "single"
	default:
		return "unknown"
	}
}

// Normalized is the canonical form of a successful backend response body.
type Normalized struct {
	Shape  Shape
	List   []json.RawMessage
	Single json.RawMessage
}

// matcher tries one envelope pattern against a response body.
type matcher func(body json.RawMessage, envelope map[string]json.RawMessage, plural string) (Normalized, bool)

// The backend has not used one consistent envelope across integration
// points, so normalization is an ordered list of pattern matchers: first
// match wins. This is a compatibility shim, kept deliberately permissive.
var matchers = []matcher{
	matchBareList,
	matchDataList,
	matchPluralList,
	matchDataObject,
}

// Normalize converts an arbitrary successful response body into either a
// list or a single entity. An unrecognized shape is never an error: the body
// passes through as a single entity, loudly, and callers validate
// structurally before use.
func Normalize(body json.RawMessage, plural string) Normalized {
	var envelope map[string]json.RawMessage
	if !isArray(body) {
		// Decode failure just means the body is not an object envelope;
		// the matchers will fall through.
		_ = json.Unmarshal(body, &envelope)
	}

	for _, match := range matchers {
		if normalized, ok := match(body, envelope, plural); ok {
			return normalized
		}
	}

	log.Warn().Str("resource", plural).Msg("unrecognized response envelope, passing body through as a single entity")

	return Normalized{Shape: ShapeSingle, Single: body}
}

func matchBareList(body json.RawMessage, _ map[string]json.RawMessage, _ string) (Normalized, bool) {
	return asList(body)
}

func matchDataList(_ json.RawMessage, envelope map[string]json.RawMessage, _ string) (Normalized, bool) {
	return asList(envelope["data"])
}

func matchPluralList(_ json.RawMessage, envelope map[string]json.RawMessage, plural string) (Normalized, bool) {
	return asList(envelope[plural])
}

func matchDataObject(_ json.RawMessage, envelope map[string]json.RawMessage, _ string) (Normalized, bool) {
	data := bytes.TrimSpace(envelope["data"])
	if len(data) == 0 || data[0] != '{' {
		return Normalized{}, false
	}

	return Normalized{Shape: ShapeSingle, Single: data}, true
}

func asList(raw json.RawMessage) (Normalized, bool) {
	if !isArray(raw) {
		return Normalized{}, false
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return Normalized{}, false
	}

	return Normalized{Shape: ShapeList, List: list}, true
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)

	return len(trimmed) > 0 && trimmed[0] == '['
}

// DecodeList decodes a normalized list into typed entities.
func DecodeList[T any](normalized Normalized) ([]T, error) {
	if normalized.Shape != ShapeList {
		return nil, fmt.Errorf("expected a list body, got %s", normalized.Shape)
	}

	items := make([]T, 0, len(normalized.List))

	for _, raw := range normalized.List {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("failed to decode list item: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}

// DecodeSingle decodes a normalized single entity.
func DecodeSingle[T any](normalized Normalized, out *T) error {
	if normalized.Shape != ShapeSingle {
		return fmt.Errorf("expected a single body, got %s", normalized.Shape)
	}

	if err := json.Unmarshal(normalized.Single, out); err != nil {
		return fmt.Errorf("failed to decode entity: %w", err)
	}

	return nil
}
