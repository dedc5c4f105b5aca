package analysis

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrParse means the model's reply could not be coerced into the expected
// structure by any parse tier.
var ErrParse = errors.New("could not parse JSON from completion response")

var fencedJSONPattern = regexp.MustCompile("(?s)```json\\s*\\n(.*?)\\n```")

// ExtractFencedJSON pulls the body out of a ```json fenced block.
func ExtractFencedJSON(text string) (string, bool) {
	match := fencedJSONPattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// ExtractObjectSpan returns the widest {...} span in the text.
func ExtractObjectSpan(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// ExtractArraySpan returns the widest [...] span in the text.
func ExtractArraySpan(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// decodeJSON tries the parse tiers in order: the whole text as JSON, then
// a fenced ```json block, then a bare object or array span.
func decodeJSON(text string, v any) error {
	if err := json.Unmarshal([]byte(text), v); err == nil {
		return nil
	}

	if block, ok := ExtractFencedJSON(text); ok {
		if err := json.Unmarshal([]byte(block), v); err == nil {
			return nil
		}
	}

	if span, ok := ExtractObjectSpan(text); ok {
		if err := json.Unmarshal([]byte(span), v); err == nil {
			return nil
		}
	}

	if span, ok := ExtractArraySpan(text); ok {
		if err := json.Unmarshal([]byte(span), v); err == nil {
			return nil
		}
	}

	return ErrParse
}
