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

// Package errno exposes the operating system's last-error code as a typed
// value and renders it as a human-readable UTF-8 message.
//
// Messages are produced by the OS in the encoding of the current locale.
// Rendering converts them to UTF-8 and never fails because of their content:
// undecodable bytes are written as "\xNN" escape tokens, and a code the OS
// has no message for is written as "error 0x" plus its hex value. The only
// error rendering can return is the one reported by the destination writer.
//
// Usage:
//
//	if _, err := unix.Open(path, unix.O_RDONLY, 0); err != nil {
//	    e, _ := errno.FromError(err)
//	    log.Printf("open: %v", e)     // message in the current locale
//	    log.Printf("open: %+v", e)    // errno 13 (0x000d): Permission denied
//	}
package errno

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"syscall"

	"dirpx.dev/errno/code"
	"dirpx.dev/errno/sysmsg"
)

// Errno is a platform error code: errno on Unix, a Win32 error code on
// Windows. It has no structure; two values are equal when their bits are.
//
// Errno implements error. Error and the %v verb render the OS message with
// the default Renderer.
type Errno int32

// Last returns the platform's current last-error code.
//
// On Unix with cgo this is the C errno of the calling OS thread; use
// runtime.LockOSThread around the C call that sets it and the call to Last.
func Last() Errno { return Errno(sysmsg.Last()) }

// SetLast sets the platform's last-error code. SetLast(e) followed by Last()
// on the same thread yields e.
func SetLast(e Errno) { sysmsg.SetLast(int32(e)) }

// FromError extracts an Errno or a syscall.Errno from err's chain.
func FromError(err error) (Errno, bool) {
	if err == nil {
		return 0, false
	}
	var e Errno
	if errors.As(err, &e) {
		return e, true
	}
	var se syscall.Errno
	if errors.As(err, &se) {
		return Errno(int32(se)), true
	}
	return 0, false
}

// Parse accepts a decimal ("13"), hex ("0x0d") or, on Unix, symbolic
// ("EACCES") error code.
func Parse(s string) (Errno, error) {
	c, err := code.Parse(s)
	if err != nil {
		return 0, err
	}
	return Errno(c), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Errno { return Errno(code.MustParse(s)) }

// Code returns e as a code.Code.
func (e Errno) Code() code.Code { return code.Code(e) }

// Name returns the platform's symbolic name for e, e.g. "EACCES", or "".
func (e Errno) Name() string { return code.Name(code.Code(e)) }

// Hex returns e as "0x" plus at least four lowercase hex digits.
func (e Errno) Hex() string { return code.Code(e).Hex() }

// Error implements the built-in error interface.
func (e Errno) Error() string {
	var sb strings.Builder
	// strings.Builder never fails.
	_ = Default().Render(&sb, e)
	return sb.String()
}

// String returns the rendered message, same as Error.
func (e Errno) String() string { return e.Error() }

// Unwrap returns the syscall.Errno with the same value, so errors.Is(e,
// fs.ErrNotExist) and friends behave as they do for standard library errors.
func (e Errno) Unwrap() error { return syscall.Errno(uint32(e)) }

// WriteTo renders e to w with the default Renderer. It implements
// io.WriterTo. The returned error, if any, comes from w.
func (e Errno) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := Default().Render(cw, e)
	return cw.n, err
}

// Format implements fmt.Formatter.
//
//	%v, %s  rendered message
//	%+v     errno <n> (0x<hex>): <message>
//	%q      rendered message, double-quoted
//	%d %x %X %o %b
//	        the number; %x, %X use the unsigned bit pattern
func (e Errno) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "errno %d (%s): ", int32(e), e.Hex())
		}
		_, _ = e.WriteTo(s)
	case 's':
		_, _ = e.WriteTo(s)
	case 'q':
		_, _ = io.WriteString(s, strconv.Quote(e.Error()))
	case 'x', 'X':
		fmt.Fprintf(s, fmt.FormatString(s, verb), uint32(e))
	case 'd', 'o', 'b':
		fmt.Fprintf(s, fmt.FormatString(s, verb), int32(e))
	default:
		fmt.Fprintf(s, "%%!%c(errno.Errno=%d)", verb, int32(e))
	}
}

// MarshalText implements encoding.TextMarshaler with the decimal form.
func (e Errno) MarshalText() ([]byte, error) { return code.Code(e).MarshalText() }

// UnmarshalText implements encoding.TextUnmarshaler. It accepts every form
// Parse does.
func (e *Errno) UnmarshalText(text []byte) error {
	var c code.Code
	if err := c.UnmarshalText(text); err != nil {
		return err
	}
	*e = Errno(c)
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
