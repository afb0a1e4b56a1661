package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into a *ResponseError. op names
// the failed call ("Login", "Upload", ...) and is used for the fallback
// message when the body carries no detail/error/message field.
func mapHTTPError(resp *resty.Response, op string) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := bodyMessage(resp.Body())
	if msg == "" {
		msg = fmt.Sprintf("%s failed: %d", op, resp.StatusCode())
	}

	return NewResponseError(resp.StatusCode(), msg)
}

// bodyMessage pulls the human readable reason out of an error body. The
// backend uses "detail" for auth errors and "error" elsewhere.
func bodyMessage(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	for _, key := range []string{"detail", "error", "message"} {
		if s, ok := payload[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
