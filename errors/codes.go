package errors

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category:
//   - E1xxx: Parse errors
//   - E9xxx: Host errors (cancellation, misuse)
type ErrorCode string

const (
	// Parse errors (E1xxx)
	E1001 ErrorCode = "E1001" // Unexpected token
	E1003 ErrorCode = "E1003" // Invalid syntax
	E1007 ErrorCode = "E1007" // Unclosed delimiter
	E1009 ErrorCode = "E1009" // Maximum nesting depth exceeded
	E1011 ErrorCode = "E1011" // Unexpected trailing input

	// Host errors (E9xxx)
	E9001 ErrorCode = "E9001" // Parse cancelled
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E1001: "unexpected token",
	E1003: "invalid syntax",
	E1007: "unclosed delimiter",
	E1009: "maximum nesting depth exceeded",
	E1011: "unexpected trailing input",
	E9001: "parse cancelled",
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// Category returns the error category based on the code prefix.
func (c ErrorCode) Category() string {
	if len(c) < 2 {
		return "unknown"
	}
	switch c[1] {
	case '1':
		return "parse"
	case '9':
		return "host"
	default:
		return "unknown"
	}
}
