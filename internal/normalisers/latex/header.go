package latex

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/cvsync/internal/core/domain"
)

var (
	namePattern     = regexp.MustCompile(`\\name\{([^}]+)\}\{([^}]+)\}`)
	positionPattern = regexp.MustCompile(`\\position\{((?:[^{}]|\\[{}]|\{[^}]*\})*)\}`)
	quotePattern    = regexp.MustCompile("\\\\quote\\{``([^\"]+)\"")
)

// positionSeparator is the awesome-cv separator between position titles.
const positionSeparator = `{\enskip\cdotp\enskip}`

// ParsePersonalInfo extracts the header fields from the main document.
// A missing command leaves its field empty.
func ParsePersonalInfo(text string) domain.PersonalInfo {
	var info domain.PersonalInfo

	if m := namePattern.FindStringSubmatch(text); m != nil {
		info.FirstName = m[1]
		info.LastName = m[2]
	}

	if m := positionPattern.FindStringSubmatch(text); m != nil {
		info.Position = Clean(strings.ReplaceAll(m[1], positionSeparator, ", "))
	}

	if m := quotePattern.FindStringSubmatch(text); m != nil {
		info.Quote = Clean(m[1])
	}

	return info
}
