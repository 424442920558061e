package splitics

import "fmt"

// InvalidFormatError is returned when the input does not begin with a
// BEGIN:VCALENDAR line. It is raised before any chunk is delivered.
type InvalidFormatError struct {
	// Line is the offending first line, empty for empty input.
	Line string
}

func (e *InvalidFormatError) Error() string {
	if e.Line == "" {
		return "input is empty, expected a calendar starting with " + beginCalendar
	}
	return fmt.Sprintf("input does not start with %s, got %q", beginCalendar, e.Line)
}

// WriteConflictError is returned by a file sink when the destination for a
// chunk already exists and overwriting was not enabled. Chunks delivered
// before the conflict remain on disk.
type WriteConflictError struct {
	Path string
}

func (e *WriteConflictError) Error() string {
	return fmt.Sprintf("output file already exists: %s (use overwrite to replace existing files)", e.Path)
}

// WriteIOError wraps a storage failure while delivering a chunk.
type WriteIOError struct {
	Path string
	Err  error
}

func (e *WriteIOError) Error() string {
	return fmt.Sprintf("error writing %s: %s", e.Path, e.Err)
}

func (e *WriteIOError) Unwrap() error {
	return e.Err
}

// InvalidSizeError is returned by ParseSize for size specifications it
// cannot understand.
type InvalidSizeError struct {
	Spec string
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("cannot understand size specification %q", e.Spec)
}
