package hooks

import (
	"errors"
	"fmt"
)

// ErrOutsideComponent matches every OutsideComponentError via errors.Is.
var ErrOutsideComponent = errors.New("hookdom: hook called outside a component")

// ErrHookOrder matches every HookOrderError via errors.Is.
var ErrHookOrder = errors.New("hookdom: hook order changed between renders")

// OutsideComponentError is raised when a hook runs while no component
// instance is executing, or against an instance that is not the innermost
// executing one.
type OutsideComponentError struct {
	Hook string     // "UseState" or "UseEffect"
	ID   InstanceID // instance named by the context, 0 if none
}

func (e *OutsideComponentError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("hookdom: %s called outside a component", e.Hook)
	}
	return fmt.Sprintf("hookdom: %s called for instance %d, which is not rendering", e.Hook, e.ID)
}

// Is reports whether target is ErrOutsideComponent.
func (e *OutsideComponentError) Is(target error) bool {
	return target == ErrOutsideComponent
}

// HookOrderError reports that an instance called a different number or
// kind of hooks than on its previous render.
type HookOrderError struct {
	ID       InstanceID
	Index    int      // slot where the mismatch was detected
	Expected HookKind // zero when the count differs
	Got      HookKind
	Want     int // hook count of the previous render
	Have     int // hook count of this render so far
}

func (e *HookOrderError) Error() string {
	switch {
	case e.Expected != 0 && e.Got != 0:
		return fmt.Sprintf("hookdom: hook order changed in instance %d at slot %d: expected %s, got %s",
			e.ID, e.Index, e.Expected, e.Got)
	case e.Have > e.Want:
		return fmt.Sprintf("hookdom: hook order changed in instance %d: extra %s hook at slot %d (previous render had %d)",
			e.ID, e.Got, e.Index, e.Want)
	default:
		return fmt.Sprintf("hookdom: hook order changed in instance %d: expected %d hooks, got %d",
			e.ID, e.Want, e.Have)
	}
}

// Is reports whether target is ErrHookOrder.
func (e *HookOrderError) Is(target error) bool {
	return target == ErrHookOrder
}

// HookError returns v as an error when v (typically a recovered panic value)
// is one of the errors raised by hook calls, and nil otherwise.
func HookError(v any) error {
	switch err := v.(type) {
	case *OutsideComponentError:
		return err
	case *HookOrderError:
		return err
	}
	return nil
}
