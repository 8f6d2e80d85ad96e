package latex

import (
	"regexp"

	"github.com/custodia-labs/cvsync/internal/core/domain"
)

// Record markers and their argument counts.
const (
	EntryMarker = `\cventry`
	SkillMarker = `\cvskill`
	HonorMarker = `\cvhonor`

	entryArgs = 5
	skillArgs = 2
	honorArgs = 4
)

// itemPattern matches \item{...} where the body may hold one level of
// nested braces.
var itemPattern = regexp.MustCompile(`\\item\s*\{((?:[^{}]|\{[^{}]*\})+)\}`)

// Result holds the records extracted from one document together with the
// number of malformed records that were dropped.
type Result[T any] struct {
	Records []T
	Dropped int
}

// ParseEntries extracts \cventry{title}{org}{location}{dates}{details} records.
// Bullet items are pulled out of the details argument.
func ParseEntries(text string) Result[domain.Entry] {
	var res Result[domain.Entry]

	for _, part := range splitRecords(text, EntryMarker) {
		args, ok := Args(part, entryArgs)
		if !ok {
			res.Dropped++
			continue
		}

		res.Records = append(res.Records, domain.Entry{
			Title:    Clean(args[0]),
			Org:      Clean(args[1]),
			Location: Clean(args[2]),
			Dates:    Clean(args[3]),
			Items:    ParseItems(args[4]),
		})
	}

	return res
}

// ParseSkills extracts \cvskill{category}{skills} records.
func ParseSkills(text string) Result[domain.SkillRecord] {
	var res Result[domain.SkillRecord]

	for _, part := range splitRecords(text, SkillMarker) {
		args, ok := Args(part, skillArgs)
		if !ok {
			res.Dropped++
			continue
		}

		res.Records = append(res.Records, domain.SkillRecord{
			Category: Clean(args[0]),
			Skills:   Clean(args[1]),
		})
	}

	return res
}

// ParseCredentials extracts \cvhonor{name}{issuer}{id}{date} records.
func ParseCredentials(text string) Result[domain.CredentialRecord] {
	var res Result[domain.CredentialRecord]

	for _, part := range splitRecords(text, HonorMarker) {
		args, ok := Args(part, honorArgs)
		if !ok {
			res.Dropped++
			continue
		}

		res.Records = append(res.Records, domain.CredentialRecord{
			Name:   Clean(args[0]),
			Issuer: Clean(args[1]),
			ID:     Clean(args[2]),
			Date:   Clean(args[3]),
		})
	}

	return res
}

// ParseItems returns the cleaned body of every \item{...} in text.
func ParseItems(text string) []string {
	matches := itemPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	items := make([]string, 0, len(matches))
	for _, m := range matches {
		items = append(items, Clean(m[1]))
	}
	return items
}

// ParseInterests extracts the freeform interest list.
func ParseInterests(text string) []string {
	return ParseItems(text)
}
