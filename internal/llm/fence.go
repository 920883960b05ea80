package llm

import (
	"encoding/json"
	"strings"
)

// stripCodeFence removes a surrounding markdown code fence such as
// ```json ... ``` that some models wrap around JSON output.
func stripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop the info string (e.g. "json") on the opening line.
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// rawContent builds response content from model text. Structured
// requests get the fence stripped; plain text is kept verbatim but
// encoded as a JSON string so Content always holds valid JSON.
func rawContent(text string, structured bool) json.RawMessage {
	if structured {
		return json.RawMessage(stripCodeFence(text))
	}
	b, _ := json.Marshal(text)
	return b
}
