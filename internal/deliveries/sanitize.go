package deliveries

import "strings"

// Sanitize isolates a JSON object embedded in the extraction service's
// free-text reply. Code fences are stripped first, then the first structurally
// balanced {...} span is extracted with a string-aware scan, so braces inside
// string values do not truncate the object. When no balanced object exists the
// trimmed original text is returned unchanged and downstream parsing fails
// cleanly.
func Sanitize(raw string) string {
	stripped := stripCodeFences(raw)
	if obj, ok := firstBalancedObject(stripped); ok {
		return obj
	}
	return strings.TrimSpace(raw)
}

// stripCodeFences removes surrounding Markdown code fences, including a
// language tag on the opening fence (```json).
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = s[3:]
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		// Opening fence may carry a language tag; drop the rest of that line
		// only when it is a bare tag, not content.
		firstLine := strings.TrimSpace(s[:idx])
		if firstLine == "" || isFenceTag(firstLine) {
			s = s[idx+1:]
		}
	} else {
		s = strings.TrimSpace(s)
		if isFenceTag(s) {
			return ""
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func isFenceTag(line string) bool {
	if len(line) > 10 {
		return false
	}
	for _, r := range line {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// firstBalancedObject returns the first substring that forms a balanced JSON
// object, tracking string literals and escape sequences.
func firstBalancedObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
