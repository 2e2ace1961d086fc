//go:build !(cgo && unix)

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

package sysmsg

import "sync/atomic"

// lastErr is the process-wide last-error slot. On Windows the runtime clears
// the thread's value before each system call, so it cannot be read back.
var lastErr atomic.Int32

func last() int32 { return lastErr.Load() }

func setLast(code int32) { lastErr.Store(code) }
