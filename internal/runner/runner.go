// Package runner performs one fetch invocation: read the payload, issue the
// request, write the outcome.
package runner

import (
	"context"
	"io"

	"github.com/aleister1102/httpget/internal/common"
	"github.com/aleister1102/httpget/internal/httpclient"
	"github.com/aleister1102/httpget/internal/output"
	"github.com/aleister1102/httpget/internal/request"
	"github.com/rs/zerolog"
)

// Fetcher issues a single GET request.
type Fetcher interface {
	Get(ctx context.Context, url string, headers map[string]string) (*httpclient.HTTPResponse, error)
}

// Runner wires the normalizer, fetcher and encoder for one shape.
type Runner struct {
	shape      request.Shape
	strict     bool
	normalizer *request.Normalizer
	fetcher    Fetcher
	logger     zerolog.Logger
}

// New creates a runner for shape.
func New(shape request.Shape, strict bool, fetcher Fetcher, logger zerolog.Logger) *Runner {
	return &Runner{
		shape:      shape,
		strict:     strict,
		normalizer: request.NewNormalizer(shape, strict, logger),
		fetcher:    fetcher,
		logger:     logger.With().Str("component", "Runner").Logger(),
	}
}

// Run reads the whole payload from in and writes exactly one outcome. The
// returned error is the terminal condition already reported on stderr, or a
// failure writing the outcome itself.
func (r *Runner) Run(ctx context.Context, in io.Reader, stdout, stderr io.Writer) error {
	enc := output.NewEncoder(r.shape, stdout, stderr)

	raw, err := io.ReadAll(in)
	if err != nil {
		if r.strict {
			return r.fail(enc, common.NewInputParseError(err.Error()))
		}
		r.logger.Debug().Err(err).Int("bytes", len(raw)).Msg("Failed to read input, continuing with what was read")
	}

	spec, err := r.normalizer.Normalize(raw)
	if err != nil {
		return r.fail(enc, err)
	}

	resp, err := r.fetcher.Get(ctx, spec.URL, spec.Headers)
	if err != nil {
		return r.fail(enc, err)
	}

	r.logger.Info().Str("url", spec.URL).Int("status_code", resp.StatusCode).Msg("Request completed")

	if err := enc.Success(spec.URL, resp.StatusCode, resp.BodyText()); err != nil {
		return common.WrapError(err, "failed to write result")
	}
	return nil
}

func (r *Runner) fail(enc *output.Encoder, cause error) error {
	r.logger.Warn().Err(cause).Msg("Request not completed")
	if err := enc.Failure(cause); err != nil {
		return common.WrapError(err, "failed to write error")
	}
	return cause
}
