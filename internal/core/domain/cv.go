package domain

// PersonalInfo holds the header fields of the main CV document.
type PersonalInfo struct {
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Position  string `json:"position" yaml:"position"`
	Quote     string `json:"quote" yaml:"quote"`
}

// FullName joins the first and last name.
func (p PersonalInfo) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Entry is an experience or education record with its bullet items.
type Entry struct {
	Title    string   `json:"title" yaml:"title"`
	Org      string   `json:"org" yaml:"org"`
	Location string   `json:"location" yaml:"location"`
	Dates    string   `json:"dates" yaml:"dates"`
	Items    []string `json:"items" yaml:"items"`
}

// SkillRecord is one category/value pair.
type SkillRecord struct {
	Category string `json:"category" yaml:"category"`
	Skills   string `json:"skills" yaml:"skills"`
}

// CredentialRecord is a certificate or honour with its issuer.
// Date may be empty.
type CredentialRecord struct {
	Name   string `json:"name" yaml:"name"`
	Issuer string `json:"issuer" yaml:"issuer"`
	ID     string `json:"id" yaml:"id"`
	Date   string `json:"date" yaml:"date"`
}

// Line renders the credential as a single display line.
// An empty date yields just the name, with no trailing separator.
func (c CredentialRecord) Line() string {
	if c.Date == "" {
		return c.Name
	}
	return c.Name + " - " + c.Date
}

// DropCounts counts malformed records dropped per source category.
type DropCounts struct {
	Experience  int `json:"experience" yaml:"experience"`
	Education   int `json:"education" yaml:"education"`
	Skills      int `json:"skills" yaml:"skills"`
	Credentials int `json:"credentials" yaml:"credentials"`
}

// Total returns the number of dropped records across all categories.
func (d DropCounts) Total() int {
	return d.Experience + d.Education + d.Skills + d.Credentials
}

// CV is everything extracted from the sources in a single run.
// Records are in source order.
type CV struct {
	Personal    PersonalInfo       `json:"personal" yaml:"personal"`
	Experience  []Entry            `json:"experience" yaml:"experience"`
	Education   []Entry            `json:"education" yaml:"education"`
	Skills      []SkillRecord      `json:"skills" yaml:"skills"`
	Credentials []CredentialRecord `json:"credentials" yaml:"credentials"`
	Interests   []string           `json:"interests" yaml:"interests"`
	Dropped     DropCounts         `json:"dropped" yaml:"dropped"`
}

// SourceSet holds the raw text of the six LaTeX source documents.
type SourceSet struct {
	Main            string
	Experience      string
	Education       string
	Skills          string
	Certificates    string
	Extracurricular string
}
