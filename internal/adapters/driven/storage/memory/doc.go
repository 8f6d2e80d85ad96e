// Package memory provides in-memory implementations of driven ports.
// They back the service tests and the --no-history mode of the CLI.
package memory
