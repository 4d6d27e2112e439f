// Copyright 2022 Matrix Origin
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

package hashmap

// HashMap is the encapsulated dictionary interface exposed to the
// outside. Keys and values may be any value, including nil; keys must
// be comparable with ==. Implementations are not safe for concurrent
// use.
type HashMap interface {
	// Put inserts or updates the entry for key. It returns the previous
	// value and true when the key was already present.
	Put(key, value any) (prev any, replaced bool)
	// Get returns the value stored under key. The bool result keeps a
	// stored nil value distinguishable from an absent key.
	Get(key any) (value any, ok bool)
	// Contains reports whether an entry for key exists.
	Contains(key any) bool
	// Remove deletes the entry for key and returns its value.
	Remove(key any) (value any, removed bool)
	// Size returns the live entry count.
	Size() int
	// Equal reports whether both maps hold the same key/value pairs.
	Equal(other HashMap) bool
	// HashCode returns the map's structural hash code.
	HashCode() int32
	// String renders all entries, one per line.
	String() string
}
