package plane

import "errors"

var (
	// ErrEmptyGrid indicates a viewport without rows or columns.
	ErrEmptyGrid = errors.New("plane: viewport must have at least one row and one column")
	// ErrBadBounds indicates non-finite or empty coordinate bounds.
	ErrBadBounds = errors.New("plane: bounds must be finite with min < max")
	// ErrNilFunction indicates Render was called without a function or constructor.
	ErrNilFunction = errors.New("plane: function and value constructor are required")
)
