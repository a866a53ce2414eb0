package vdom

// If returns node when condition is true, nil otherwise. A nil child is
// dropped by H, so If can be used inline.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// IfElse returns ifTrue when condition is true, ifFalse otherwise.
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// Range maps items to child values. The result is spliced by H.
//
//	Ul(nil, Range(todos, func(t Todo, i int) any {
//	    return Li(Props{"key": t.ID}, t.Title)
//	}))
func Range[T any](items []T, fn func(item T, index int) any) []any {
	out := make([]any, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i))
	}
	return out
}

// Repeat calls fn n times and collects the results.
func Repeat(n int, fn func(i int) any) []any {
	if n <= 0 {
		return nil
	}
	out := make([]any, n)
	for i := 0; i < n; i++ {
		out[i] = fn(i)
	}
	return out
}
