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

package codeset

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

var (
	// ErrUnknown is returned when no index knows the codeset name.
	ErrUnknown = errors.New("errno/codeset: unknown codeset")

	// ErrUnsupported is returned when the name is registered with IANA but
	// golang.org/x/text has no implementation for it (e.g. "ISO-2022-KR").
	ErrUnsupported = errors.New("errno/codeset: unsupported codeset")
)

// Resolver maps a codeset name to the encoding that converts it.
type Resolver interface {
	// Resolve returns the encoding for c, or an error wrapping ErrUnknown or
	// ErrUnsupported. It never returns a nil encoding with a nil error.
	Resolve(c Codeset) (encoding.Encoding, error)
}

// NewResolver constructs an immutable Resolver snapshot.
//
// Build process overview:
//
//  1. Seed the builder with the library default aliases.
//  2. Apply user-provided options (aliases, explicit encodings) in order.
//  3. Normalize and validate every name and alias target.
//  4. Freeze everything into fresh maps owned by the resolver.
//
// Errors returned from this function indicate invalid option values.
func NewResolver(opts ...Option) (Resolver, error) {
	b := newBuilder()

	for k, v := range defaultAliases {
		b.aliases[k] = v
	}

	for _, opt := range opts {
		opt(b)
	}

	r := &resolver{
		aliases:   make(map[string]string, len(b.aliases)),
		encodings: make(map[string]encoding.Encoding, len(b.encodings)),
	}
	for name, target := range b.aliases {
		key := Normalize(name)
		target = strings.TrimSpace(target)
		if key == "" || target == "" {
			return nil, fmt.Errorf("codeset: invalid alias %q -> %q: %w", name, target, ErrCodesetInvalid)
		}
		r.aliases[key] = target
	}
	for name, enc := range b.encodings {
		key := Normalize(name)
		if key == "" || enc == nil {
			return nil, fmt.Errorf("codeset: invalid encoding registration for %q: %w", name, ErrCodesetInvalid)
		}
		r.encodings[key] = enc
	}
	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultResolver Resolver
)

// DefaultResolver returns the shared resolver built from library defaults
// only. It is constructed on first use.
func DefaultResolver() Resolver {
	defaultOnce.Do(func() {
		r, err := NewResolver()
		if err != nil {
			// Library defaults are static; failing here is a programming error.
			panic(err)
		}
		defaultResolver = r
	})
	return defaultResolver
}

// resolver is the immutable Resolver implementation. Lookups only read the
// frozen maps and the x/text indexes, so it is safe for concurrent use.
type resolver struct {
	// aliases maps normalized vendor names to names the indexes understand.
	aliases map[string]string

	// encodings holds explicit registrations keyed by normalized name.
	encodings map[string]encoding.Encoding
}

func (r *resolver) Resolve(c Codeset) (encoding.Encoding, error) {
	key := Normalize(string(c))
	if key == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknown)
	}
	if enc, ok := r.encodings[key]; ok {
		return enc, nil
	}

	name := key
	if target, ok := r.aliases[key]; ok {
		name = target
		if enc, ok := r.encodings[Normalize(target)]; ok {
			return enc, nil
		}
	}
	return lookupIndexes(name)
}

// lookupIndexes asks the x/text indexes for name, most authoritative first.
func lookupIndexes(name string) (encoding.Encoding, error) {
	registered := false
	for _, idx := range []*ianaindex.Index{ianaindex.IANA, ianaindex.MIME} {
		enc, err := idx.Encoding(name)
		if err != nil {
			continue
		}
		if enc != nil {
			return enc, nil
		}
		// Known to IANA, not implemented by x/text. Keep looking: the WHATWG
		// index sometimes maps the label to a compatible superset.
		registered = true
	}

	// The WHATWG "replacement" encoding turns any input into a single U+FFFD;
	// for an error message that is no better than not converting at all.
	if enc, err := htmlindex.Get(name); err == nil && enc != nil && enc != encoding.Replacement {
		return enc, nil
	}

	if registered {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
}
