package llm

import "strings"

// CleanJSONBlock strips what models wrap around a JSON document: markdown code fences, a
// conversational preamble, or trailing chatter. Text without any JSON is returned trimmed.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Drop a language tag such as "json" on the opening fence line.
		if idx := strings.Index(text, "\n"); idx >= 0 {
			tag := text[:idx]
			if len(tag) < 20 && !strings.ContainsAny(tag, " {[") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	if doc, ok := ExtractJSON(text); ok {
		return doc
	}
	return text
}

// ExtractJSON returns the first balanced JSON object or array in text.
// Brackets inside string literals are ignored.
func ExtractJSON(text string) (string, bool) {
	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
