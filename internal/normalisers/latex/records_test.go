package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cvsync/internal/core/domain"
)

const experienceTeX = `%-------------------------------------------------------------------------------
%	SECTION TITLE
%-------------------------------------------------------------------------------
\cvsection{Work Experience}

\begin{cventries}

  \cventry
    {Engineer} % Job title
    {Acme} % Organization
    {NY} % Location
    {2020-2022} % Date(s)
    {
      \begin{cvitems} % Description(s) of tasks/responsibilities
        \item {Built X}
        \item {Led Y}
      \end{cvitems}
    }

  \cventry
    {Senior Engineer}
    {R\&D Labs}
    {Remote}
    {2022 -- Present}
    {
      \begin{cvitems}
        \item {Cut costs by 30\%}
        \item {Shipped \textbf{v2}}
      \end{cvitems}
    }

\end{cventries}
`

func TestParseEntries(t *testing.T) {
	res := ParseEntries(experienceTeX)

	require.Len(t, res.Records, 2)
	assert.Zero(t, res.Dropped)

	assert.Equal(t, domain.Entry{
		Title:    "Engineer",
		Org:      "Acme",
		Location: "NY",
		Dates:    "2020-2022",
		Items:    []string{"Built X", "Led Y"},
	}, res.Records[0])

	second := res.Records[1]
	assert.Equal(t, "Senior Engineer", second.Title)
	assert.Equal(t, "R&D Labs", second.Org)
	assert.Equal(t, "2022 -- Present", second.Dates)
	assert.Equal(t, []string{"Cut costs by 30%", `Shipped \textbf{v2}`}, second.Items)
}

func TestParseEntries_NoItems(t *testing.T) {
	res := ParseEntries(`\cventry{Student}{Uni}{City}{2010}{}`)

	require.Len(t, res.Records, 1)
	assert.Empty(t, res.Records[0].Items)
}

func TestParseEntries_MalformedRecordDropped(t *testing.T) {
	text := `
\cventry{First}{Org A}{Loc}{2019}{\item{a}}
\cventry{Broken}{Org B}{Loc}
\cventry{Third}{Org C}{Loc}{2021}{\item{c}}
`
	res := ParseEntries(text)

	require.Len(t, res.Records, 2)
	assert.Equal(t, 1, res.Dropped)
	assert.Equal(t, "First", res.Records[0].Title)
	assert.Equal(t, []string{"a"}, res.Records[0].Items)
	assert.Equal(t, "Third", res.Records[1].Title)
	assert.Equal(t, []string{"c"}, res.Records[1].Items)
}

func TestParseEntries_Empty(t *testing.T) {
	res := ParseEntries("no entries at all")
	assert.Empty(t, res.Records)
	assert.Zero(t, res.Dropped)
}

func TestParseSkills(t *testing.T) {
	text := `
\begin{cvskills}
  \cvskill
    {Technical Skills} % Category
    {Go, Python \& SQL} % Skills
  \cvskill
    {Tools \& Platforms}
    {Docker, Kubernetes}
\end{cvskills}
\cvskill{Missing value}
`
	res := ParseSkills(text)

	require.Len(t, res.Records, 2)
	assert.Equal(t, 1, res.Dropped)
	assert.Equal(t, domain.SkillRecord{Category: "Technical Skills", Skills: "Go, Python & SQL"}, res.Records[0])
	assert.Equal(t, domain.SkillRecord{Category: "Tools & Platforms", Skills: "Docker, Kubernetes"}, res.Records[1])
}

// A closing \end{...} after an incomplete record still supplies a braced
// argument, so only records at the very end of a file can come up short.
func TestParseSkills_TrailingEnvironmentCompletesRecord(t *testing.T) {
	res := ParseSkills("\\cvskill{Lonely}\n\\end{cvskills}")

	require.Len(t, res.Records, 1)
	assert.Equal(t, domain.SkillRecord{Category: "Lonely", Skills: "cvskills"}, res.Records[0])
}

func TestParseCredentials(t *testing.T) {
	text := `
\cvhonor{Certified Kubernetes Administrator}{CNCF}{LF-123}{2023}
\cvhonor{Scrum Master}{Scrum.org}{}{}
\cvhonor{Incomplete}{Issuer}
`
	res := ParseCredentials(text)

	require.Len(t, res.Records, 2)
	assert.Equal(t, 1, res.Dropped)
	assert.Equal(t, domain.CredentialRecord{
		Name:   "Certified Kubernetes Administrator",
		Issuer: "CNCF",
		ID:     "LF-123",
		Date:   "2023",
	}, res.Records[0])
	assert.Equal(t, "Scrum Master", res.Records[1].Name)
	assert.Empty(t, res.Records[1].Date)
}

func TestParseItems(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "simple items",
			input:    `\item{One} \item {Two}`,
			expected: []string{"One", "Two"},
		},
		{
			name:     "item spanning lines",
			input:    "\\item {Running\n   marathons}",
			expected: []string{"Running marathons"},
		},
		{
			name:     "one level of nested braces",
			input:    `\item{Built {X} fast}`,
			expected: []string{"Built {X} fast"},
		},
		{
			name:     "escapes cleaned",
			input:    `\item{Chess \& Go}`,
			expected: []string{"Chess & Go"},
		},
		{
			name:     "bare item without braces ignored",
			input:    `\item plain text`,
			expected: nil,
		},
		{
			name:     "no items",
			input:    "",
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseItems(tc.input))
		})
	}
}

func TestParseInterests(t *testing.T) {
	text := `
\cvsection{Interests}
\begin{cvitems}
  \item {Trail running}
  \item {Open-source software}
\end{cvitems}
`
	assert.Equal(t, []string{"Trail running", "Open-source software"}, ParseInterests(text))
}
