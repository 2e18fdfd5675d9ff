package params

import "github.com/pkg/errors"

// Failures from declaration, parsing and retrieval wrap one of these
// sentinels, so callers classify them with errors.Is.
var (
	// ErrDeclaration is a programmer error: conflicting or otherwise
	// invalid parameter names at registration time.
	ErrDeclaration = errors.New("invalid declaration")

	ErrUnknownOption     = errors.New("unknown option")
	ErrUnknownPositional = errors.New("unknown positional parameter")
	ErrMissingValue      = errors.New("option wants a value")
	ErrConversion        = errors.New("invalid value")
	ErrRequired          = errors.New("required parameter not found")

	// Retrieval errors, never returned from Parse.
	ErrParamNotFound = errors.New("parameter not found")
	ErrTypeMismatch  = errors.New("parameter declared with a different type")
)

// Default help flag was provided, and should be handled.
var ErrDefaultHelp = errors.New("help flag")
