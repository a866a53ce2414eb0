package render

import (
	"errors"
	"fmt"

	"github.com/vango-dev/hookdom/pkg/hooks"
)

// ErrNoContainer is returned by Render when the container is nil.
var ErrNoContainer = errors.New("hookdom: render container is nil")

// ErrUpdateStorm is returned when state updates keep scheduling re-renders
// beyond the configured MaxUpdateDepth.
var ErrUpdateStorm = errors.New("hookdom: maximum update depth exceeded")

// StormError reports the instance whose update exceeded the limit.
type StormError struct {
	ID    hooks.InstanceID
	Limit int
}

func (e *StormError) Error() string {
	return fmt.Sprintf("hookdom: maximum update depth exceeded: %d re-render passes, last scheduled by instance %d", e.Limit, e.ID)
}

// Is reports whether target is ErrUpdateStorm.
func (e *StormError) Is(target error) bool {
	return target == ErrUpdateStorm
}

// catch converts the hook errors raised as panics into err. Other panics
// are not ours and keep unwinding.
func catch(err *error) {
	v := recover()
	if v == nil {
		return
	}
	if herr := hooks.HookError(v); herr != nil {
		*err = herr
		return
	}
	panic(v)
}
