package driven

// ProgressReporter receives user-facing progress messages.
// It is purely observational; nothing reads back from it.
type ProgressReporter interface {
	// Banner prints a framed title.
	Banner(title string)

	// Stage announces numbered stage n of total.
	Stage(n, total int, message string)

	// Success reports a completed step.
	Success(format string, args ...any)

	// Detail reports an indented informational line.
	Detail(format string, args ...any)

	// Warn reports a recoverable problem.
	Warn(format string, args ...any)

	// Fail reports an unrecoverable problem.
	Fail(format string, args ...any)

	// Done prints the closing frame with a final message.
	Done(message string)
}
