// Package latex extracts CV records from awesome-cv style LaTeX documents.
// It handles a fixed set of record shapes (\cventry, \cvskill, \cvhonor,
// \item lists) plus the \name, \position and \quote header commands,
// and normalises escapes and whitespace into display text.
package latex
