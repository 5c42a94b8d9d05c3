package tools

import (
	"testing"
)

func TestParseParameters_Blank(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n"} {
		params, err := ParseParameters(raw)
		if err != nil {
			t.Errorf("ParseParameters(%q) unexpected error: %v", raw, err)
		}
		if params != nil {
			t.Errorf("ParseParameters(%q) = %v, want nil", raw, params)
		}
	}
}

func TestParseParameters_Scalars(t *testing.T) {
	params, err := ParseParameters(`{"BRANCH": "main", "COUNT": 3, "RATIO": 0.5, "DRY_RUN": false}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"BRANCH":  "main",
		"COUNT":   "3",
		"RATIO":   "0.5",
		"DRY_RUN": "false",
	}
	for k, v := range want {
		if params[k] != v {
			t.Errorf("params[%s] = %q, want %q", k, params[k], v)
		}
	}
	if len(params) != len(want) {
		t.Errorf("expected %d params, got %d", len(want), len(params))
	}
}

func TestParseParameters_Invalid(t *testing.T) {
	cases := []string{
		`{"BRANCH": `,           // truncated
		`["a", "b"]`,            // not an object
		`"just a string"`,       // not an object
		`{"NESTED": {"a": 1}}`,  // non-scalar value
		`{"LIST": [1, 2]}`,      // non-scalar value
		`{"NOTHING": null}`,     // non-scalar value
	}
	for _, raw := range cases {
		if _, err := ParseParameters(raw); err == nil {
			t.Errorf("ParseParameters(%q) expected error, got none", raw)
		}
	}
}
