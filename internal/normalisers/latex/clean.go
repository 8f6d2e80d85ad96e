package latex

import "strings"

// escapes maps LaTeX escapes and spacing commands to display text.
// All patterns start with a backslash and none is a prefix of another.
var escapes = strings.NewReplacer(
	`\&`, "&",
	`\\`, "",
	`\enskip`, " ",
	`\cdotp`, "·",
	`\/`, "/",
	`\item`, "",
	`\%`, "%",
	`\#`, "#",
)

// Clean converts a LaTeX fragment into display text.
//
// Escapes are replaced until none remain, then whitespace runs
// (including newlines) collapse to single spaces and the ends are trimmed.
// Clean is idempotent.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	// A replacement can splice two fragments into a new escape
	// (e.g. `\en\\skip`), so iterate to a fixed point. Every
	// replacement shortens the text, so this terminates.
	for {
		next := escapes.Replace(text)
		if next == text {
			break
		}
		text = next
	}

	return strings.Join(strings.Fields(text), " ")
}
