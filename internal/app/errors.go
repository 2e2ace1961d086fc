/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package app

import "fmt"

// Exit codes of the errno command.
const (
	ExitOK    = 0
	ExitUsage = 2
	ExitIO    = 3
)

// Error wraps an error with an exit code.
type Error struct {
	code int
	err  error
}

// Error returns a printable message.
func (e *Error) Error() string { return e.err.Error() }

// Unwrap exposes the wrapped error.
func (e *Error) Unwrap() error { return e.err }

// ExitCode returns the process exit code.
func (e *Error) ExitCode() int { return e.code }

// Wrap wraps err with the given exit code.
func Wrap(code int, err error) error {
	if err == nil {
		return nil
	}
	return &Error{code: code, err: err}
}

// Wrapf wraps err with formatted context.
func Wrapf(code int, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{code: code, err: fmt.Errorf(format+": %w", append(args, err)...)}
}
