package reservation

import "errors"

// The engine surfaces exactly three error kinds. Callers match with
// errors.Is; messages carry the offending field or id.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")

	// ErrUnavailable marks transient backend failures that are safe to
	// retry. The in-process engine never produces it; remote provider
	// adapters translate transport errors into it.
	ErrUnavailable = errors.New("unavailable")
)

func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }
func IsNotFound(err error) bool        { return errors.Is(err, ErrNotFound) }
func IsUnavailable(err error) bool     { return errors.Is(err, ErrUnavailable) }
