package latex

import "strings"

// Args scans text for up to n brace-delimited arguments.
//
// Text before an argument's opening brace is ignored. Nested brace pairs
// inside an argument are kept verbatim; the outermost pair is not.
// Each argument is trimmed. Scanning stops once n arguments are complete.
// ok is false if the text ends first, in which case the caller must
// discard the record.
func Args(text string, n int) (args []string, ok bool) {
	if n <= 0 {
		return nil, true
	}

	args = make([]string, 0, n)
	var current strings.Builder
	depth := 0

	for _, r := range text {
		switch {
		case r == '{':
			if depth > 0 {
				current.WriteRune(r)
			}
			depth++
		case r == '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth > 0 {
				current.WriteRune(r)
				continue
			}
			args = append(args, strings.TrimSpace(current.String()))
			current.Reset()
			if len(args) == n {
				return args, true
			}
		case depth > 0:
			current.WriteRune(r)
		}
	}

	return args, false
}

// splitRecords splits text on marker and drops everything before the
// first occurrence.
func splitRecords(text, marker string) []string {
	parts := strings.Split(text, marker)
	if len(parts) < 2 {
		return nil
	}
	return parts[1:]
}
