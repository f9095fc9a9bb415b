package mapper

import "errors"

// Sentinel errors classifying mapping failures. Schema-level and
// type-system-level errors are unrecoverable because the output vocabulary
// would be self-inconsistent without them; reference failures are isolated
// to the single triple they affect.
var (
	// ErrUnsupportedClassKind marks a class kind outside the closed set the
	// mapper recognizes. Fatal for the whole run.
	ErrUnsupportedClassKind = errors.New("unsupported class kind")

	// ErrUnsupportedPrimitiveType marks a primitive type outside the closed
	// set. Fatal for the whole run.
	ErrUnsupportedPrimitiveType = errors.New("unsupported primitive type")

	// ErrUnresolvedReference marks a navigation relationship, constraint or
	// foreign identifier that cannot be resolved. Recoverable: the single
	// triple is skipped and processing continues.
	ErrUnresolvedReference = errors.New("unresolved reference")
)

// IsRecoverable reports whether an error may be absorbed by skipping the
// affected triple. Everything else — unsupported metadata and sink I/O
// failures — must stop the run.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrUnresolvedReference)
}
