package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cvsync/internal/adapters/driven/htmltree"
	"github.com/custodia-labs/cvsync/internal/core/ports/driven"
)

// testPage mirrors the structure of a real CV page, including content
// owned by no region that must survive every update untouched.
const testPage = `<!DOCTYPE html>
<html>
<head>
<title>Old Name - Old Position CV</title>
<meta name="description" content="old quote">
<meta property="og:title" content="Old Name - Old Position">
<meta property="og:description" content="old quote">
<meta name="twitter:title" content="Old Name - Old Position">
<meta name="twitter:description" content="old quote">
</head>
<body>
<header class="container"><h1>Jane Doe</h1><h2>Old Position</h2></header>
<div class="about-me-section"><hgroup><h3>About</h3><p>old quote</p></hgroup></div>
<main>
<h3 id="experience">Experience</h3><div class="job-experience"><strong>OldCo,</strong> <span class="job-title">Intern</span><p>2010</p></div><p class="keep">Experience footer</p>
<h3 id="education">Education</h3><div class="education-experience"><strong>Old Degree</strong><p>Old Uni</p><p>2009</p></div><p class="keep">Education footer</p>
<h3 id="interests">Interests</h3><p>Old interest one</p><p>Old interest two</p><h3 id="contact">Contact</h3>
</main>
<aside id="sidebar">
<section class="sidebar-section"><h4>Skills</h4><ul><li>old skill</li></ul></section>
<section class="sidebar-section"><h4>Technical Skills</h4><ul><li>old tech</li></ul></section>
<section class="sidebar-section"><h4>Languages</h4><ul><li>old language</li></ul></section>
<section class="sidebar-section"><h4>Trainings</h4><ul><li>old training</li></ul></section>
</aside>
<div class="accordion-container">
<div class="accordion-item"><button class="accordion-header"><span>Skills</span></button><div class="accordion-panel"><ul><li>old skill</li></ul></div></div>
<div class="accordion-item"><button class="accordion-header"><span>Technical Skills</span></button><div class="accordion-panel"><ul><li>old tech</li></ul></div></div>
<div class="accordion-item"><button class="accordion-header"><span>Languages</span></button><div class="accordion-panel"><ul><li>old language</li></ul></div></div>
<div class="accordion-item"><button class="accordion-header"><span>Trainings</span></button><div class="accordion-panel"><ul><li>old training</li></ul></div></div>
</div>
</body>
</html>`

func parsePage(t *testing.T, page string) *htmltree.Tree {
	t.Helper()
	tree, err := htmltree.Parse(strings.NewReader(page))
	require.NoError(t, err)
	return tree
}

func renderTree(t *testing.T, tree driven.DocumentTree) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, tree.Render(&buf))
	return buf.String()
}

// siblingsAfter returns "tag.class" for up to n element siblings following anchor.
func siblingsAfter(anchor driven.Node, n int) []string {
	var out []string
	for s := anchor.Next(); s != nil && len(out) < n; s = s.Next() {
		class, _ := s.Attr("class")
		out = append(out, s.Tag()+"."+class)
	}
	return out
}
