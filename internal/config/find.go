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

package config

import "os"

// EnvVar names the environment variable holding the config path.
const EnvVar = "ERRNO_CONFIG"

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".errno.yaml"

// FindConfigPath resolves the configuration path. explicit reports whether
// the path was requested by the user rather than defaulted.
//
// Precedence:
//  1. explicit argument
//  2. ERRNO_CONFIG env var
//  3. default .errno.yaml in the current working directory
func FindConfigPath(arg string) (path string, explicit bool) {
	if arg != "" {
		return arg, true
	}
	if v := os.Getenv(EnvVar); v != "" {
		return v, true
	}
	return DefaultPath, false
}
