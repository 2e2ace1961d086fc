//go:build cgo && unix

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

/*
#include <errno.h>
#include <langinfo.h>
#include <locale.h>
#include <stdlib.h>
#include <string.h>

static int sysmsg_get_errno(void) { return errno; }
static void sysmsg_set_errno(int e) { errno = e; }
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"

	"dirpx.dev/errno/codeset"
)

// mu serializes strerror, nl_langinfo and setlocale, which may return
// pointers into static storage.
var mu sync.Mutex

func message(code int32) Message {
	mu.Lock()
	defer mu.Unlock()

	text := C.GoString(C.strerror(C.int(code)))
	return Message{
		Text:    Trim([]byte(text)),
		Codeset: langinfoCodeset(),
	}
}

func currentCodeset() codeset.Codeset {
	mu.Lock()
	defer mu.Unlock()
	return langinfoCodeset()
}

// langinfoCodeset must be called with mu held.
func langinfoCodeset() codeset.Codeset {
	return codeset.Of([]byte(C.GoString(C.nl_langinfo(C.CODESET))))
}

func setLocale(name string) (string, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	mu.Lock()
	defer mu.Unlock()

	res := C.setlocale(C.LC_ALL, cname)
	if res == nil {
		return "", fmt.Errorf("%w: %q", ErrLocaleUnavailable, name)
	}
	return C.GoString(res), nil
}

func last() int32 { return int32(C.sysmsg_get_errno()) }

func setLast(code int32) { C.sysmsg_set_errno(C.int(code)) }
