// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package jsident decides whether a string is a valid ECMAScript identifier,
// that is, a name that may be used to declare a variable.
//
// Validation is parameterized by two things:
//
//   - A [Grammar], which selects the lexical rules of either ECMAScript 5
//     ([ES5]) or ECMAScript 2015 and later ([ES2015]). The two differ in which
//     Unicode characters may appear in names, in which escape sequences may
//     spell those characters, and in which words are reserved.
//   - A [Strictness], which selects whether the words reserved only by strict
//     mode code (arguments and eval) are rejected.
//
// A candidate is validated in a single linear pass:
//
//  1. The empty string is never an identifier.
//  2. Escape sequences are resolved. Both grammars accept \uXXXX; [ES2015]
//     also accepts \u{X...}. [ES5] rejects any code point outside the Basic
//     Multilingual Plane.
//  3. The first code point must be an identifier start character.
//  4. Every other code point must be an identifier continue character.
//  5. The resolved name must not be a reserved word.
//
// A candidate is treated as a standalone binding name. Contextual rules, such
// as reserved words being permitted as property names, are not considered.
//
// All functions in this package are pure and safe for concurrent use. The
// character and reserved-word tables they consult are built once, when the
// package is initialized.
package jsident
