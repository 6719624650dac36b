package domain

import "fmt"

// SizeError reports dimensions that cannot form a valid puzzle: a side
// length with no m·n block decomposition, or a supplied block shape that
// disagrees with the matrix. Construction fails outright; there is no
// repair path.
type SizeError struct{ msg string }

func (e *SizeError) Error() string { return e.msg }

func SizeErrorf(format string, args ...any) error {
	return &SizeError{msg: fmt.Sprintf(format, args...)}
}

// ShapeError reports input that is not representable as a flat or square
// arrangement of cells: ragged rows, non-square matrices, values outside
// [0, N].
type ShapeError struct{ msg string }

func (e *ShapeError) Error() string { return e.msg }

func ShapeErrorf(format string, args ...any) error {
	return &ShapeError{msg: fmt.Sprintf(format, args...)}
}

// AssignmentError reports programmer misuse of Grid.Assign: writing into an
// already-filled cell or passing a value outside [1, N]. It never occurs
// during normal solving.
type AssignmentError struct{ msg string }

func (e *AssignmentError) Error() string { return e.msg }

func AssignmentErrorf(format string, args ...any) error {
	return &AssignmentError{msg: fmt.Sprintf(format, args...)}
}
