// Package backup keeps timestamped copies of the CV page next to it and
// restores the most recent one on revert.
//
// Backups are named <base>-YYYYMMDD-HHMMSS.<ext>.backup, so lexical order
// is chronological order.
package backup
