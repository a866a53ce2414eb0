package errors

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/vango-dev/hookdom/pkg/hooks"
	"github.com/vango-dev/hookdom/pkg/render"
)

// Category represents the type of error.
type Category string

const (
	CategoryRuntime  Category = "runtime"
	CategoryConfig   Category = "config"
	CategorySnapshot Category = "snapshot"
	CategoryServer   Category = "server"
	CategoryCLI      Category = "cli"
)

// Location is a position in a file, typically a config file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// HookdomError is a coded error with an explanation and a fix hint.
type HookdomError struct {
	// Code is a unique error identifier (e.g., "E002").
	Code string

	Category Category
	Message  string
	Detail   string

	// Location points into the file the error is about, if any.
	Location *Location

	// Context holds the file lines around Location.
	Context []string

	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *HookdomError) Error() string {
	msg := e.Message
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	if e.Code != "" {
		return e.Code + ": " + msg
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *HookdomError) Unwrap() error {
	return e.Wrapped
}

// WithLocation points the error at a line of file and loads the lines
// around it.
func (e *HookdomError) WithLocation(file string, line, column int) *HookdomError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// WithSuggestion replaces the fix hint.
func (e *HookdomError) WithSuggestion(s string) *HookdomError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the explanation.
func (e *HookdomError) WithDetail(d string) *HookdomError {
	e.Detail = d
	return e
}

// Wrap sets the underlying error.
func (e *HookdomError) Wrap(err error) *HookdomError {
	e.Wrapped = err
	return e
}

func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2
	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}
	return lines
}

// New creates a HookdomError from a registered error code.
func New(code string) *HookdomError {
	template, ok := registry[code]
	if !ok {
		return &HookdomError{Code: code, Message: "Unknown error"}
	}
	return &HookdomError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
	}
}

// Newf creates a HookdomError with a formatted message and no code.
func Newf(category Category, format string, args ...any) *HookdomError {
	return &HookdomError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError converts err into a HookdomError. Errors already carrying a
// code are returned as they are, known library errors get their own code,
// and anything else is wrapped under fallback.
func FromError(err error, fallback string) *HookdomError {
	if err == nil {
		return nil
	}
	var he *HookdomError
	if errors.As(err, &he) {
		return he
	}
	code := Classify(err)
	if code == "" {
		code = fallback
	}
	return New(code).Wrap(err)
}

// Classify returns the registered code of a library error, or "".
func Classify(err error) string {
	switch {
	case errors.Is(err, hooks.ErrOutsideComponent):
		return "E001"
	case errors.Is(err, hooks.ErrHookOrder):
		return "E002"
	case errors.Is(err, render.ErrNoContainer):
		return "E003"
	case errors.Is(err, render.ErrUpdateStorm):
		return "E004"
	}
	return ""
}
