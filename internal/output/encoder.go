// Package output renders a fetch outcome in the convention of the active shape.
package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/aleister1102/httpget/internal/common"
	"github.com/aleister1102/httpget/internal/request"
	"github.com/aleister1102/httpget/internal/starthub"
)

// Missing-url messages per shape
const (
	envelopeMissingURL = "missing required param 'url'"
	arrayMissingURL    = "missing required url at index 0"
	objectMissingURL   = "missing required field 'url'"
	pairsMissingURL    = "missing required 'url' in element 0"
)

type result struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

// state mirrors the key order the harness has always received.
type state struct {
	Body   string `json:"body"`
	Status int    `json:"status"`
}

type statusOnly struct {
	Status int `json:"status"`
}

type bodyOnly struct {
	Body string `json:"body"`
}

type failure struct {
	Error string `json:"error"`
}

// Encoder writes exactly one success or failure record per invocation.
type Encoder struct {
	shape  request.Shape
	stdout io.Writer
	stderr io.Writer
}

// NewEncoder creates an encoder for shape writing to the given streams.
func NewEncoder(shape request.Shape, stdout, stderr io.Writer) *Encoder {
	return &Encoder{
		shape:  shape,
		stdout: stdout,
		stderr: stderr,
	}
}

// Success writes a completed response.
func (e *Encoder) Success(url string, status int, body string) error {
	switch e.shape {
	case request.ShapeEnvelope:
		if err := starthub.FormatState(e.stdout, state{Body: body, Status: status}); err != nil {
			return err
		}
		_, err := fmt.Fprintf(e.stderr, "GET %s -> %d\n", url, status)
		return err
	case request.ShapeArray:
		return e.writeJSON(e.stdout, []result{{Status: status, Body: body}})
	case request.ShapeObject:
		return e.writeJSON(e.stdout, result{Status: status, Body: body})
	case request.ShapePairs:
		return e.writeJSON(e.stdout, []any{statusOnly{Status: status}, bodyOnly{Body: body}})
	default:
		return common.NewValidationError("shape", e.shape, "unknown shape")
	}
}

// Failure writes a terminal error to the error stream.
func (e *Encoder) Failure(err error) error {
	msg := e.message(err)

	switch e.shape {
	case request.ShapeEnvelope:
		var reqErr *common.RequestFailedError
		if errors.As(err, &reqErr) {
			_, werr := fmt.Fprintf(e.stderr, "Request error: %s\n", msg)
			return werr
		}
		_, werr := fmt.Fprintf(e.stderr, "Error: %s\n", msg)
		return werr
	case request.ShapeArray, request.ShapePairs:
		return e.writeJSON(e.stderr, []failure{{Error: msg}})
	case request.ShapeObject:
		return e.writeJSON(e.stderr, failure{Error: msg})
	default:
		return common.NewValidationError("shape", e.shape, "unknown shape")
	}
}

func (e *Encoder) message(err error) string {
	if err == nil {
		return "unknown error"
	}
	if !errors.Is(err, common.ErrMissingURL) {
		return err.Error()
	}
	switch e.shape {
	case request.ShapeEnvelope:
		return envelopeMissingURL
	case request.ShapeArray:
		return arrayMissingURL
	case request.ShapeObject:
		return objectMissingURL
	case request.ShapePairs:
		return pairsMissingURL
	default:
		return err.Error()
	}
}

func (e *Encoder) writeJSON(w io.Writer, v any) error {
	payload, err := starthub.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", payload)
	return err
}
