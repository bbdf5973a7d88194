// Package starthub reads and writes the tagged state line a host harness
// scrapes out of a program's mixed stdout stream.
package starthub

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/aleister1102/httpget/internal/common"
)

// StatePrefix marks the structured state line. Its spelling is part of the
// harness contract.
const StatePrefix = "::starthub:state::"

// ErrNoState is returned when a stream contains no state line.
var ErrNoState = errors.New("no valid starthub output found")

// FormatState writes v as a single state line.
func FormatState(w io.Writer, v any) error {
	payload, err := Marshal(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, StatePrefix+string(payload)+"\n")
	return err
}

// Marshal encodes v as compact JSON without HTML escaping and without a
// trailing newline.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, common.WrapError(err, "failed to encode JSON")
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ScrapeState returns the payload of the first state line in r. The prefix
// may appear anywhere in the line; the rest of the line must be valid JSON.
func ScrapeState(r io.Reader) (json.RawMessage, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		idx := strings.Index(line, StatePrefix)
		if idx < 0 {
			continue
		}
		payload := strings.TrimSpace(line[idx+len(StatePrefix):])
		if !json.Valid([]byte(payload)) {
			return nil, common.NewError("failed to parse starthub output: invalid JSON payload")
		}
		return json.RawMessage(payload), nil
	}
	if err := scanner.Err(); err != nil {
		return nil, common.WrapError(err, "failed to read stream")
	}
	return nil, ErrNoState
}
