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

import "golang.org/x/text/encoding"

// Option configures the Resolver at build time.
// All options are applied to an internal builder and then frozen into an
// immutable Resolver.
type Option func(*builder)

// WithAlias maps a vendor codeset name to a name the x/text indexes (or an
// explicit WithEncoding registration) understand. It replaces any library
// default alias for the same name.
func WithAlias(name, target string) Option {
	return func(b *builder) { b.aliases[name] = target }
}

// WithEncoding registers enc for name. Explicit registrations take precedence
// over aliases and over the x/text indexes.
func WithEncoding(name string, enc encoding.Encoding) Option {
	return func(b *builder) { b.encodings[name] = enc }
}

// WithAliases merges a whole alias table, as loaded from configuration.
func WithAliases(m map[string]string) Option {
	return func(b *builder) {
		for k, v := range m {
			b.aliases[k] = v
		}
	}
}

type builder struct {
	// aliases holds raw (not yet normalized) name -> target rewrites.
	aliases map[string]string
	// encodings holds raw name -> encoding registrations.
	encodings map[string]encoding.Encoding
}

func newBuilder() *builder {
	return &builder{
		// sized to the library defaults; user additions are usually few
		aliases:   make(map[string]string, len(defaultAliases)),
		encodings: make(map[string]encoding.Encoding),
	}
}
