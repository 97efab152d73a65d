// Copyright 2024 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package yang parses YANG (RFC 7950) schema files into an in-memory
// model, ready for consumption by code generators and schema validators.
//
// ParseFile is the entry point.  It parses the named module, reads every
// transitively included submodule and imported module from the directory of
// the file that references it, merges submodule bodies into their owning
// module, and expands each uses statement by splicing in the referenced
// grouping's data definitions.  The returned module's body holds the
// resolved data tree in source order; a uses whose grouping cannot be found
// is left in place.
//
// The package does not evaluate xpath (when, must and leafref path
// arguments are carried verbatim), does not apply augments, deviations or
// refinements (they are collected for downstream tooling), and performs no
// semantic validation beyond what reference resolution requires.
//
// All processing is synchronous and happens on the calling goroutine.  Two
// concurrent ParseFile calls are independent; a returned module is never
// touched again by this package and is safe to share once the call
// returns.
package yang
