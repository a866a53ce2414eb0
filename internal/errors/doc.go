// Package errors provides coded, actionable error messages for the hookdom
// command line.
//
// Library packages return plain sentinel and typed errors. The CLI maps them
// to a HookdomError with FromError, which attaches a registered code, a
// short message, a longer explanation and a fix hint:
//
//	err := errors.FromError(r.Render(ctx, tree, root), "E000")
//	errors.PrintError(err)
//	// ERROR E002: Hook order changed between renders
//	//
//	//   A component called a different number or kind of hooks than on its
//	//   previous render. Hook slots are matched by call order.
//	//
//	//   Hint: Call UseState and UseEffect unconditionally at the top of the
//	//   component body.
//
// # Error Codes
//
//   - E001-E099: runtime errors raised by the renderer and the hook store
//   - E120-E149: configuration errors
//   - E150-E169: snapshot upload errors
//   - E170-E189: preview server errors
package errors
