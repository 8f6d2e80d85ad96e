// Package domain defines the core business entities for cvsync.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CV: Every record extracted from the LaTeX sources in one run
//   - PersonalInfo, Entry, SkillRecord, CredentialRecord: Extracted records
//   - Element: A node subtree to be generated into the destination page
//   - Bucket: Skill values grouped under a destination category label
//   - SyncReport: The outcome of one synchronisation run
//   - Settings: Resolved project layout and behaviour settings
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
