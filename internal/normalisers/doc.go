// Package normalisers turns source markup into domain records.
//
// Each subpackage handles one source format; latex understands the
// awesome-cv document class used by the CV sources.
package normalisers
