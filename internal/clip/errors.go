package clip

import "fmt"

// Kind classifies a clipboard failure.
type Kind int

const (
	// KindUnavailable: the clipboard could not be opened or emptied.
	KindUnavailable Kind = iota + 1
	// KindAllocation: the transfer block could not be allocated or locked.
	KindAllocation
	// KindInstall: the clipboard rejected the content.
	KindInstall
)

func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "resource unavailable"
	case KindAllocation:
		return "allocation failure"
	case KindInstall:
		return "install failure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a failure of one of the clipboard steps. Compare against the
// sentinels with errors.Is:
//
//	if errors.Is(err, clip.ErrUnavailable) { ... }
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// Sentinels matching any *Error of the same Kind.
var (
	ErrUnavailable = &Error{Kind: KindUnavailable, Msg: KindUnavailable.String()}
	ErrAllocation  = &Error{Kind: KindAllocation, Msg: KindAllocation.String()}
	ErrInstall     = &Error{Kind: KindInstall, Msg: KindInstall.String()}
)

func newError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
