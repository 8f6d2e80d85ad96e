// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The region engine works only through the driven.DocumentTree and
// driven.Node ports, so it has no knowledge of how the page is parsed
// or rendered.
package services
