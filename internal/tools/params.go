package tools

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParseParameters turns the run-job "parameters" argument into the form
// values Jenkins accepts. The input must be a JSON object whose values
// are strings, numbers, or booleans; blank input means "no parameters".
func ParseParameters(raw string) (map[string]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, fmt.Errorf("parameters must be a JSON object: %w", err)
	}

	params := make(map[string]string, len(obj))
	for k, v := range obj {
		switch val := v.(type) {
		case string:
			params[k] = val
		case float64:
			params[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			params[k] = strconv.FormatBool(val)
		default:
			return nil, fmt.Errorf("parameter %q must be a string, number, or boolean", k)
		}
	}
	return params, nil
}
