package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vango-dev/hookdom/internal/identity"
	"github.com/vango-dev/hookdom/pkg/dom"
	"github.com/vango-dev/hookdom/pkg/vdom"
)

// applyProps patches the attributes, class, style and listeners of el from
// old to next. A nil old applies next to a fresh element.
func (r *Renderer) applyProps(el dom.Node, old, next vdom.Props) {
	for _, key := range sortedKeys(old) {
		if key == "children" {
			continue
		}
		if _, ok := next[key]; ok {
			continue
		}
		if event, ok := eventName(key); ok && identity.IsFunc(old[key]) {
			el.RemoveEventListener(event, old[key])
			r.recordMutation("removeEventListener")
			r.trace("render: remove listener", "key", key)
			continue
		}
		el.RemoveAttribute(key)
		r.recordMutation("removeAttribute")
		r.trace("render: remove attribute", "key", key)
	}

	for _, key := range sortedKeys(next) {
		if key == "children" {
			continue
		}
		prev, had := old[key]
		value := next[key]
		if had && identity.Identical(prev, value) {
			continue
		}
		r.setProp(el, key, prev, had, value)
	}
}

func (r *Renderer) setProp(el dom.Node, key string, prev any, had bool, value any) {
	if event, ok := eventName(key); ok && identity.IsFunc(value) {
		if had && identity.IsFunc(prev) {
			el.RemoveEventListener(event, prev)
			r.recordMutation("removeEventListener")
		}
		el.AddEventListener(event, value)
		r.recordMutation("addEventListener")
		r.trace("render: add listener", "key", key)
		return
	}

	if key == "className" {
		if s, ok := value.(string); ok {
			el.SetClassName(s)
			r.recordMutation("setClassName")
			r.trace("render: set class", "value", s)
			return
		}
	}

	if key == "style" {
		if applied := r.setStyle(el, value); applied {
			return
		}
	}

	switch v := value.(type) {
	case bool:
		if v {
			el.SetAttribute(key, "")
			r.recordMutation("setAttribute")
			r.trace("render: set attribute", "key", key, "value", "")
			return
		}
	case string:
		el.SetAttribute(key, v)
		r.recordMutation("setAttribute")
		r.trace("render: set attribute", "key", key, "value", v)
		return
	case nil:
	default:
		if text, ok := vdom.TextOf(v); ok {
			el.SetAttribute(key, text)
			r.recordMutation("setAttribute")
			r.trace("render: set attribute", "key", key, "value", text)
			return
		}
	}
	el.RemoveAttribute(key)
	r.recordMutation("removeAttribute")
	r.trace("render: remove attribute", "key", key)
}

// setStyle assigns each declared property of a style map. Properties that
// are no longer declared are left in place. It reports whether value was a
// style map.
func (r *Renderer) setStyle(el dom.Node, value any) bool {
	var styles map[string]string
	switch s := value.(type) {
	case map[string]string:
		styles = s
	case map[string]any:
		styles = make(map[string]string, len(s))
		for k, v := range s {
			if text, ok := vdom.TextOf(v); ok {
				styles[k] = text
			} else if v != nil {
				styles[k] = fmt.Sprint(v)
			}
		}
	default:
		return false
	}
	for _, prop := range sortedKeys(styles) {
		el.SetStyle(prop, styles[prop])
		r.recordMutation("setStyle")
	}
	r.trace("render: set style", "properties", len(styles))
	return true
}

// eventName maps an "onXxx" prop key to its event name ("xxx").
func eventName(key string) (string, bool) {
	if len(key) <= 2 || !strings.HasPrefix(key, "on") {
		return "", false
	}
	return strings.ToLower(key[2:]), true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
