package vdom

import (
	"context"
	"log/slog"
	"reflect"
	"sync/atomic"
)

// Type is the constraint for the first argument of H: a tag name or a
// function component.
type Type interface {
	~string | ~func(ctx context.Context, props Props) *VNode
}

var factoryLogger atomic.Pointer[slog.Logger]

// SetLogger enables construction tracing at debug level. Passing nil disables it.
func SetLogger(l *slog.Logger) {
	factoryLogger.Store(l)
}

var componentType = reflect.TypeOf(Component(nil))

// H builds a VNode from a type, a property bag and child values.
//
// The "key" prop is split out into VNode.Key and "children" is dropped from
// Props. Nil children are removed and slice children are spliced in one level
// deep, preserving order. H never fails.
func H[T Type](typ T, props Props, children ...any) *VNode {
	node := &VNode{}

	switch t := any(typ).(type) {
	case string:
		node.Tag = t
	case Component:
		node.Comp = t
	case func(context.Context, Props) *VNode:
		node.Comp = t
	default:
		rv := reflect.ValueOf(typ)
		if rv.Kind() == reflect.String {
			node.Tag = rv.String()
		} else {
			node.Comp = rv.Convert(componentType).Interface().(Component)
		}
	}

	if len(props) > 0 {
		rest := make(Props, len(props))
		for k, v := range props {
			switch k {
			case "key":
				node.Key = v
			case "children":
			default:
				rest[k] = v
			}
		}
		node.Props = rest
	}

	node.Children = flatten(children)

	if l := factoryLogger.Load(); l != nil {
		l.Debug("vdom: build", "tag", node.Tag, "component", node.IsComponent(),
			"props", len(node.Props), "children", len(node.Children))
	}
	return node
}

// Fragment returns its children unchanged. Passed as a child of H, the
// children are spliced into the parent without a wrapping element.
func Fragment(children ...any) []any {
	if l := factoryLogger.Load(); l != nil {
		l.Debug("vdom: fragment", "children", len(children))
	}
	return children
}

// flatten drops nil children and splices slice children one level deep.
func flatten(children []any) []any {
	if len(children) == 0 {
		return nil
	}
	out := make([]any, 0, len(children))
	for _, child := range children {
		switch c := child.(type) {
		case nil:
		case *VNode:
			if c != nil {
				out = append(out, c)
			}
		case []any:
			for _, inner := range c {
				if !isNil(inner) {
					out = append(out, inner)
				}
			}
		case []*VNode:
			for _, inner := range c {
				if inner != nil {
					out = append(out, inner)
				}
			}
		case []string:
			for _, inner := range c {
				out = append(out, inner)
			}
		default:
			v := reflect.ValueOf(child)
			if k := v.Kind(); k != reflect.Slice && k != reflect.Array {
				out = append(out, child)
				continue
			}
			for i := 0; i < v.Len(); i++ {
				inner := v.Index(i).Interface()
				if !isNil(inner) {
					out = append(out, inner)
				}
			}
		}
	}
	return out
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	n, ok := v.(*VNode)
	return ok && n == nil
}
