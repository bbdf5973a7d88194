package starthub

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatState(t *testing.T) {
	var buf bytes.Buffer
	err := FormatState(&buf, map[string]any{"status": 200, "body": "<p>a & b</p>"})
	require.NoError(t, err)
	assert.Equal(t, "::starthub:state::{\"body\":\"<p>a & b</p>\",\"status\":200}\n", buf.String())
}

func TestScrapeState(t *testing.T) {
	stream := strings.Join([]string{
		"some log line",
		`::starthub:state::{"body":"hello","status":200}`,
		`::starthub:state::{"body":"second","status":500}`,
	}, "\n")

	payload, err := ScrapeState(strings.NewReader(stream))
	require.NoError(t, err)
	assert.JSONEq(t, `{"body":"hello","status":200}`, string(payload))
}

func TestScrapeState_PrefixMidLine(t *testing.T) {
	payload, err := ScrapeState(strings.NewReader(`[wasm] ::starthub:state::{"status":204,"body":""}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":204,"body":""}`, string(payload))
}

func TestScrapeState_Missing(t *testing.T) {
	_, err := ScrapeState(strings.NewReader("GET https://example.com -> 200\n"))
	assert.ErrorIs(t, err, ErrNoState)
}

func TestScrapeState_InvalidPayload(t *testing.T) {
	_, err := ScrapeState(strings.NewReader("::starthub:state::{not json"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoState)
	assert.Contains(t, err.Error(), "failed to parse starthub output")
}

func TestFormatThenScrape(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("noise\n")
	require.NoError(t, FormatState(&buf, struct {
		Body   string `json:"body"`
		Status int    `json:"status"`
	}{Body: "line1\nline2", Status: 201}))

	payload, err := ScrapeState(&buf)
	require.NoError(t, err)
	assert.JSONEq(t, `{"body":"line1\nline2","status":201}`, string(payload))
}
