package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Declaration errors — raised while recording declarations in a registry.
const (
	// ErrCodeDuplicateDeclaration indicates the same concrete type or setup
	// name was declared more than once in a single registry.
	ErrCodeDuplicateDeclaration ErrorCode = "DUPLICATE_DECLARATION"
	// ErrCodeInvalidDeclaration indicates a declaration that can never be
	// applied, e.g. a capability the concrete type does not implement.
	ErrCodeInvalidDeclaration ErrorCode = "INVALID_DECLARATION"
	// ErrCodeInvalidSetup indicates a setup registration with an unusable
	// shape: a nil function or an empty name.
	ErrCodeInvalidSetup ErrorCode = "INVALID_SETUP"
)

// Startup errors — raised while applying declarations during initialization.
const (
	// ErrCodeMissingSection indicates a static configuration declaration whose
	// key path is absent from the configuration source.
	ErrCodeMissingSection ErrorCode = "MISSING_CONFIG_SECTION"
	// ErrCodeInstantiation indicates a configuration type could not be
	// instantiated or populated from its section.
	ErrCodeInstantiation ErrorCode = "INSTANTIATION_FAILED"
	// ErrCodeInvalidConfig indicates a bound configuration instance failed
	// its declared validation rules.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeSetupFailed indicates a setup function returned an error.
	ErrCodeSetupFailed ErrorCode = "SETUP_FAILED"
)

// Resolution errors — raised by the container.
const (
	// ErrCodeNotRegistered indicates a resolve for a capability with no
	// registration.
	ErrCodeNotRegistered ErrorCode = "NOT_REGISTERED"
	// ErrCodeWrongType indicates a resolved instance did not satisfy the
	// requested type.
	ErrCodeWrongType ErrorCode = "WRONG_TYPE"
	// ErrCodeScopeRequired indicates a scoped registration was resolved
	// without an active scope.
	ErrCodeScopeRequired ErrorCode = "SCOPE_REQUIRED"
)

var fatalCodes = map[ErrorCode]bool{
	ErrCodeDuplicateDeclaration: true,
	ErrCodeInvalidDeclaration:   true,
	ErrCodeInvalidSetup:         true,
	ErrCodeMissingSection:       true,
	ErrCodeInstantiation:        true,
	ErrCodeInvalidConfig:        true,
	ErrCodeSetupFailed:          true,
	ErrCodeNotRegistered:        false,
	ErrCodeWrongType:            false,
	ErrCodeScopeRequired:        false,
}

// IsFatalCode returns true if an error code aborts initialization.
// Startup favors fail-fast: a misconfigured registration setup should never
// run with only some services bound.
func IsFatalCode(code ErrorCode) bool {
	return fatalCodes[code]
}
