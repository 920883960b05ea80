package llm

import (
	"encoding/json"
	"testing"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"padded", "  \n```json\n{\"a\":1}\n```  \n", `{"a":1}`},
		{"single line", "```json {\"a\":1}```", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFence(tt.in); got != tt.want {
				t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRawContent_PlainTextIsJSONString(t *testing.T) {
	raw := rawContent("Photosynthesis makes glucose.", false)
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		t.Fatalf("plain text content is not a JSON string: %v", err)
	}
	if s != "Photosynthesis makes glucose." {
		t.Errorf("got %q", s)
	}
}
