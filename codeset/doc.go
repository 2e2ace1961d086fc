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

// Package codeset defines the name of the encoding the operating system uses
// for its narrow-character messages, and resolves such names to converters.
//
// On Unix the codeset is whatever nl_langinfo(CODESET) reports for the
// current locale: "UTF-8", "EUC-JP", "KOI8-U", "ANSI_X3.4-1968", and a long
// tail of vendor spellings ("eucJP", "ISO8859-1", "646"). The value is read
// fresh for every message because locale state is process-global and may
// change between calls; this package never caches it.
//
// # Fast path
//
// Codeset.IsCanonical is an exact byte comparison against "UTF-8". Messages
// in that codeset are validated in place instead of being converted.
//
// # Resolution model
//
// A Resolver turns a codeset name into a golang.org/x/text encoding. It looks
// the name up in this order:
//
//  1. encodings registered with WithEncoding;
//  2. aliases (library defaults plus WithAlias), which rewrite vendor names to
//     IANA names;
//  3. the IANA index, then the MIME index (golang.org/x/text/encoding/ianaindex);
//  4. the WHATWG index (golang.org/x/text/encoding/htmlindex).
//
// Names registered with IANA that x/text does not implement yield
// ErrUnsupported; anything else unknown yields ErrUnknown. Both are normal
// outcomes for callers, which are expected to degrade rather than fail.
//
// # Building a resolver
//
//	r, err := codeset.NewResolver(
//	    codeset.WithAlias("ujis", "EUC-JP"),
//	    codeset.WithEncoding("x-custom", myEncoding),
//	)
//	if err != nil {
//	    // empty alias name or target, nil encoding, ...
//	}
//	enc, err := r.Resolve("eucJP")
//
// A Resolver is an immutable snapshot and is safe for concurrent use.
package codeset
