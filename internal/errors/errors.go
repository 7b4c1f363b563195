// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package errors implements the panic/recover error propagation idiom used
// throughout this module: internal stages panic with a *Error on malformed
// input, and the exported Encode/Decode entry points recover it into a
// normal error return.
package errors

import "fmt"

// Kind categorizes an Error, matching the error kinds of the wire format.
type Kind int

const (
	Internal Kind = iota
	InvalidSymbol
	EmptyInput
	TruncatedStream
	MalformedHeader
	DuplicateSymbolInHeader
	CodewordCollision
)

func (k Kind) String() string {
	switch k {
	case InvalidSymbol:
		return "invalid symbol"
	case EmptyInput:
		return "empty input"
	case TruncatedStream:
		return "truncated stream"
	case MalformedHeader:
		return "malformed header"
	case DuplicateSymbolInHeader:
		return "duplicate symbol in header"
	case CodewordCollision:
		return "codeword collision"
	default:
		return "internal error"
	}
}

// Error is the concrete error type produced by this module.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "textbwt: " + e.Kind.String()
	}
	return "textbwt: " + e.Kind.String() + ": " + e.Msg
}

// E constructs an *Error of the given kind.
func E(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Errorf constructs an *Error of the given kind with a formatted message.
func Errorf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap coerces a generic error into an *Error of the given kind, leaving it
// untouched if it is already one.
func Wrap(err error, kind Kind) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*Error); ok {
		return err
	}
	return &Error{Kind: kind, Msg: err.Error()}
}

// Panic panics with err. If err is nil, Panic is a no-op.
func Panic(err error) {
	if err != nil {
		panic(err)
	}
}

// Recover must be called in a defer. It recovers a panic produced by Panic
// (or any error-valued panic raised by this module's internal stages) and
// stores it in *err. Panics carrying a runtime.Error or a non-error value
// are re-raised rather than swallowed.
func Recover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtimeError:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}

// runtimeError mirrors runtime.Error's interface without importing the
// runtime package, so that a genuine runtime panic (index out of range, nil
// dereference, etc.) is always re-raised rather than silently swallowed.
type runtimeError interface {
	error
	RuntimeError()
}
