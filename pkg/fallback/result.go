package fallback

import "errors"

// Result reports the outcome of a mutating graph operation.
type Result int

const (
	// ResultOK means the node or route was added.
	ResultOK Result = iota
	// ResultExists means the node or route is already present. Nothing changed.
	ResultExists
	// ResultNotExists means a route endpoint is not a registered node.
	ResultNotExists
	// ResultNotAllowed means the route would close a cycle within its tag.
	ResultNotAllowed
	// ResultFailed means the operation failed for a reason outside the
	// graph's state, such as a name a calling layer could not resolve.
	// Graph itself never returns it.
	ResultFailed
	// ResultCorrupted means an internal invariant was found broken, for
	// example a stored route pointing at an unregistered node. The graph must
	// not be trusted afterwards.
	ResultCorrupted
)

var (
	// ErrExists is returned by [Result.Err] for [ResultExists].
	ErrExists = errors.New("already exists")

	// ErrNotExists is returned by [Result.Err] for [ResultNotExists].
	ErrNotExists = errors.New("node does not exist")

	// ErrNotAllowed is returned by [Result.Err] for [ResultNotAllowed].
	ErrNotAllowed = errors.New("route would create a cycle")

	// ErrFailed is returned by [Result.Err] for [ResultFailed].
	ErrFailed = errors.New("operation failed")

	// ErrCorrupted is returned by [Result.Err] for [ResultCorrupted].
	ErrCorrupted = errors.New("graph is corrupted")
)

var resultNames = [...]string{
	ResultOK:         "ok",
	ResultExists:     "exists",
	ResultNotExists:  "not-exists",
	ResultNotAllowed: "not-allowed",
	ResultFailed:     "failed",
	ResultCorrupted:  "corrupted",
}

// String returns a short lower-case name such as "not-allowed".
func (r Result) String() string {
	if r < 0 || int(r) >= len(resultNames) {
		return "unknown"
	}
	return resultNames[r]
}

// OK reports whether r is [ResultOK].
func (r Result) OK() bool { return r == ResultOK }

// Err converts r into one of the package's sentinel errors, or nil for
// [ResultOK]. Unknown values map to [ErrFailed].
func (r Result) Err() error {
	switch r {
	case ResultOK:
		return nil
	case ResultExists:
		return ErrExists
	case ResultNotExists:
		return ErrNotExists
	case ResultNotAllowed:
		return ErrNotAllowed
	case ResultCorrupted:
		return ErrCorrupted
	default:
		return ErrFailed
	}
}
