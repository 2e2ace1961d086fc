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

// Package sysmsg acquires raw error messages from the operating system.
//
// A Source turns an error code into a Message: the message bytes exactly as
// the OS produced them (minus trailing line breaks and spaces) together with
// the codeset they are encoded in. Converting those bytes to UTF-8 is the
// job of package decode; sysmsg never interprets them.
//
// System returns the implementation for the running platform:
//
//   - Unix with cgo: strerror(3) in the encoding named by
//     nl_langinfo(CODESET), so the message follows the C locale selected
//     with SetLocale;
//   - Windows: FormatMessage, transcoded from UTF-16 to UTF-8;
//   - anything else: the message table compiled into package syscall.
//
// Static and Func build Sources for tests and for programs that bring their
// own message catalog.
//
// Last and SetLast access the platform's last-error slot. On Unix with cgo
// that is the C errno variable, which is per OS thread: callers that need a
// stable value must stay on one thread (runtime.LockOSThread). Everywhere
// else it is a process-wide slot owned by this package, since the Go runtime
// does not leave the thread's last-error value for user code to read.
package sysmsg
