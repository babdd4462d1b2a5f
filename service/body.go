package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/demoshop/checkout.web/models"
)

const responseSnippetLength = 200

// ParseResponseBody parses the raw text of a backend response, returning its
// fields and the received value re-encoded as JSON. An empty or
// whitespace-only body is an empty object. Valid JSON that is not an object
// has no fields. Text that is not a single JSON value is a malformed
// response, whatever the status code.
func ParseResponseBody(statusCode int, text string) (models.ResponseBody, string, error) {
	if strings.TrimSpace(text) == "" {
		return models.ResponseBody{}, "{}", nil
	}

	decoder := json.NewDecoder(bytes.NewBufferString(text))
	decoder.UseNumber()

	var value interface{}
	err := decoder.Decode(&value)
	if err == nil {
		var extra json.RawMessage
		if extraErr := decoder.Decode(&extra); !errors.Is(extraErr, io.EOF) {
			err = fmt.Errorf("unexpected data after JSON value")
		}
	}
	if err != nil {
		message := fmt.Sprintf("Server returned invalid JSON. Status: %d. Response: %s", statusCode, truncate(text, responseSnippetLength))
		return nil, "", newCheckoutError(MalformedResponse, statusCode, message, err)
	}

	received, err := json.Marshal(value)
	if err != nil {
		return nil, "", fmt.Errorf("error encoding response body: [%w]", err)
	}

	object, ok := value.(map[string]interface{})
	if !ok {
		return models.ResponseBody{}, string(received), nil
	}

	return models.ResponseBody(object), string(received), nil
}

// truncate returns at most n runes of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
