// Copyright 2025 go-sortbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import "fmt"

// ErrorKind classifies failures by where they are detected.
type ErrorKind int

const (
	// KindInput covers bad datasets, bad run counts and unknown algorithms.
	// It is detected before any worker starts.
	KindInput ErrorKind = iota + 1

	// KindWorker covers an algorithm failing at runtime, including domain
	// violations, panics and cancellation.
	KindWorker

	// KindIO covers failures writing the results document.
	KindIO
)

// String returns a human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindInput:
		return "input error"
	case KindWorker:
		return "worker error"
	case KindIO:
		return "io error"
	default:
		return "unknown error"
	}
}

// Sentinels for errors.Is. An *Error matches the sentinel of its kind.
var (
	ErrInput  = &Error{Kind: KindInput}
	ErrWorker = &Error{Kind: KindWorker}
	ErrIO     = &Error{Kind: KindIO}
)

// Error is a classified failure. Op names the operation that failed, for
// example "load dataset" or "bubble_sort".
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

// Errorf builds an *Error of kind k wrapping a formatted error.
func Errorf(k ErrorKind, op, format string, args ...any) *Error {
	return &Error{Kind: k, Op: op, Err: fmt.Errorf(format, args...)}
}

// Wrap classifies err as kind k. A nil err returns nil.
func Wrap(k ErrorKind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: k, Op: op, Err: err}
}

func (e *Error) Error() string {
	switch {
	case e.Op == "" && e.Err == nil:
		return e.Kind.String()
	case e.Err == nil:
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	case e.Op == "":
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Err == nil && t.Kind == e.Kind
}
