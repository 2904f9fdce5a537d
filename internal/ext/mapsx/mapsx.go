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

// Package mapsx contains helpers for set-like maps.
package mapsx

import "iter"

// Set constructs a set-like map from the given elements.
func Set[K comparable](elems ...K) map[K]struct{} {
	s := make(map[K]struct{}, len(elems))
	for _, elem := range elems {
		s[elem] = struct{}{}
	}
	return s
}

// CollectSet is like [slices.Collect], but builds a set-like map.
func CollectSet[K comparable](seq iter.Seq[K]) map[K]struct{} {
	return InsertKeys(make(map[K]struct{}), seq)
}

// InsertKeys inserts the keys yielded by seq into m, mapped to the zero value.
func InsertKeys[M ~map[K]V, K comparable, V any](m M, seq iter.Seq[K]) M {
	for k := range seq {
		var zero V
		m[k] = zero
	}
	return m
}

// Contains is a helper for checking if a map contains some key.
func Contains[M ~map[K]V, K comparable, V any](m M, k K) bool {
	_, ok := m[k]
	return ok
}
