package storeimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mirrorworks/instamirror/internal/store"
	apperrors "github.com/mirrorworks/instamirror/pkg/errors"
	"github.com/mirrorworks/instamirror/pkg/retry"
)

const throttledCode = "THROTTLED"

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message    string `json:"message"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

// gqlUserError matches the wire shape; the field path arrives as a string
// array.
type gqlUserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// execute posts one GraphQL document and decodes the data envelope into out.
// Throttling (HTTP 429 or a THROTTLED error code) is the only failure that
// gets retried; everything else is returned on the first attempt.
func (c *StoreImpl) execute(ctx context.Context, opName, query string, variables map[string]any, out any) error {
	payload, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", opName, err)
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
		if err != nil {
			return retry.Permanent(fmt.Errorf("%s: %w", opName, err))
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Shopify-Access-Token", c.token)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.Permanent(fmt.Errorf("%s: %w", opName, err))
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return retry.Permanent(fmt.Errorf("%s: read response: %w", opName, err))
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			return apperrors.ErrThrottled
		}
		if resp.StatusCode != http.StatusOK {
			return retry.Permanent(fmt.Errorf("%s: store returned status %d: %s", opName, resp.StatusCode, strings.TrimSpace(string(raw))))
		}

		var envelope struct {
			Data   json.RawMessage `json:"data"`
			Errors []gqlError      `json:"errors"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return retry.Permanent(fmt.Errorf("%s: decode response: %w", opName, err))
		}
		for _, gqlErr := range envelope.Errors {
			if gqlErr.Extensions.Code == throttledCode {
				return apperrors.ErrThrottled
			}
		}
		if len(envelope.Errors) > 0 {
			return retry.Permanent(fmt.Errorf("%s: %s", opName, envelope.Errors[0].Message))
		}

		if out != nil {
			if err := json.Unmarshal(envelope.Data, out); err != nil {
				return retry.Permanent(fmt.Errorf("%s: decode data: %w", opName, err))
			}
		}
		return nil
	}

	return retry.Do(ctx, c.logger, opName, operation, c.retryCfg)
}

func toUserErrors(in []gqlUserError) []store.UserError {
	if len(in) == 0 {
		return nil
	}
	out := make([]store.UserError, 0, len(in))
	for _, e := range in {
		out = append(out, store.UserError{
			Field:   strings.Join(e.Field, "."),
			Message: e.Message,
		})
	}
	return out
}
