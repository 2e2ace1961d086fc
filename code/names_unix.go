//go:build unix

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

package code

import (
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// maxNamed bounds the reverse lookup table. No Unix we support defines
// errno values anywhere near it.
const maxNamed = 4096

var (
	namesOnce sync.Once
	byName    map[string]Code
)

func name(c Code) string {
	if c <= 0 {
		return ""
	}
	return unix.ErrnoName(syscall.Errno(c))
}

// lookup resolves a symbolic name. Aliases that share a number with another
// name (EWOULDBLOCK vs EAGAIN) are only found under the name x/sys reports.
func lookup(s string) (Code, bool) {
	namesOnce.Do(func() {
		byName = make(map[string]Code)
		for c := Code(1); c < maxNamed; c++ {
			if n := name(c); n != "" {
				byName[n] = c
			}
		}
	})
	c, ok := byName[s]
	return c, ok
}
