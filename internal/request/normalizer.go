package request

import (
	"bytes"

	"github.com/aleister1102/httpget/internal/common"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

// Spec is the canonical request built from one input payload.
type Spec struct {
	URL     string
	Headers map[string]string
}

// Normalizer turns raw stdin bytes into a Spec for a fixed Shape.
type Normalizer struct {
	shape  Shape
	strict bool
	logger zerolog.Logger
}

// NewNormalizer creates a normalizer for shape. With strict set, input that
// is not valid JSON of the shape's top-level kind is rejected instead of
// being treated as empty.
func NewNormalizer(shape Shape, strict bool, logger zerolog.Logger) *Normalizer {
	return &Normalizer{
		shape:  shape,
		strict: strict,
		logger: logger.With().Str("component", "Normalizer").Str("shape", shape.String()).Logger(),
	}
}

// Normalize is a convenience for a lenient, non-logging normalizer.
func Normalize(shape Shape, raw []byte) (*Spec, error) {
	return NewNormalizer(shape, false, zerolog.Nop()).Normalize(raw)
}

// Normalize extracts the url and headers from raw. It returns
// common.ErrMissingURL when no usable url is present, and an
// *common.InputParseError only in strict mode.
func (n *Normalizer) Normalize(raw []byte) (*Spec, error) {
	root, err := n.parseRoot(raw)
	if err != nil {
		return nil, err
	}

	var urlValue, headersValue gjson.Result
	switch n.shape {
	case ShapeEnvelope:
		params := root.Get("params")
		if params.IsObject() {
			urlValue = params.Get("url")
			headersValue = params.Get("headers")
		}
	case ShapeObject:
		urlValue = root.Get("url")
		headersValue = root.Get("headers")
	case ShapeArray:
		items := root.Array()
		if len(items) > 0 {
			urlValue = items[0]
		}
		if len(items) > 1 {
			headersValue = items[1]
		}
	case ShapePairs:
		items := root.Array()
		if len(items) > 0 && items[0].IsObject() {
			urlValue = items[0].Get("url")
		}
		if len(items) > 1 {
			headersValue = items[1]
		}
	default:
		return nil, common.NewValidationError("shape", n.shape, "unknown shape")
	}

	if urlValue.Type != gjson.String || urlValue.Str == "" {
		return nil, common.ErrMissingURL
	}

	return &Spec{
		URL:     urlValue.Str,
		Headers: n.extractHeaders(headersValue, n.shape == ShapeObject),
	}, nil
}

// parseRoot validates raw and returns the top-level value. Invalid JSON or
// a top-level value of the wrong kind yields an empty default.
func (n *Normalizer) parseRoot(raw []byte) (gjson.Result, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || !gjson.ValidBytes(trimmed) {
		if n.strict {
			if len(trimmed) == 0 {
				return gjson.Result{}, common.NewInputParseError("empty input")
			}
			return gjson.Result{}, common.NewInputParseError("input is not valid JSON")
		}
		n.logger.Debug().Int("bytes", len(raw)).Msg("Input is not valid JSON, continuing with empty default")
		return n.emptyDefault(), nil
	}

	root := gjson.ParseBytes(trimmed)
	wantArray := n.shape.expectsArray()
	if (wantArray && !root.IsArray()) || (!wantArray && !root.IsObject()) {
		if n.strict {
			if wantArray {
				return gjson.Result{}, common.NewInputParseError("expected a JSON array")
			}
			return gjson.Result{}, common.NewInputParseError("expected a JSON object")
		}
		n.logger.Debug().Str("type", root.Type.String()).Msg("Input has unexpected top-level kind, continuing with empty default")
		return n.emptyDefault(), nil
	}
	return root, nil
}

func (n *Normalizer) emptyDefault() gjson.Result {
	if n.shape.expectsArray() {
		return gjson.Parse("[]")
	}
	return gjson.Parse("{}")
}

// extractHeaders collects string-valued entries of an object. When
// allowEncoded is set, a JSON string holding an object is decoded first.
// Anything else means no headers.
func (n *Normalizer) extractHeaders(value gjson.Result, allowEncoded bool) map[string]string {
	headers := make(map[string]string)
	if !value.Exists() {
		return headers
	}

	if allowEncoded && value.Type == gjson.String {
		if !gjson.Valid(value.Str) {
			n.logger.Debug().Msg("Headers string is not valid JSON, ignoring")
			return headers
		}
		value = gjson.Parse(value.Str)
	}

	if !value.IsObject() {
		n.logger.Debug().Str("type", value.Type.String()).Msg("Headers value is not an object, ignoring")
		return headers
	}

	value.ForEach(func(key, val gjson.Result) bool {
		if val.Type != gjson.String {
			n.logger.Debug().Str("header", key.String()).Str("type", val.Type.String()).Msg("Skipping non-string header value")
			return true
		}
		headers[key.String()] = val.Str
		return true
	})
	return headers
}
