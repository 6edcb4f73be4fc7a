package advice

// extractJSONSpan locates the first syntactically balanced brace-delimited
// span in s and returns the span, its start offset, and whether one was found.
//
// Balance counting tracks string and escape state so braces inside string
// values do not affect nesting. Quote state is only tracked inside a span;
// quotes in surrounding prose are ignored. When a response carries several
// brace-delimited spans the first balanced one wins: models occasionally echo
// example payloads after the real answer.
func extractJSONSpan(s string) (span string, start int, ok bool) {
	depth := 0
	start = -1
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			if escaped {
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					return s[start : i+1], start, true
				}
			}
		}
	}

	return "", -1, false
}
