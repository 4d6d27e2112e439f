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

import (
	"github.com/matrixorigin/chainmap/pkg/container/hashtable"
)

// ChainMap is a HashMap backed by a separate-chaining hash table.
type ChainMap struct {
	tbl *hashtable.ChainTable
}

var _ HashMap = new(ChainMap)

// New creates a ChainMap with the default capacity (16) and load
// factor (0.75).
func New() *ChainMap {
	m, err := NewWithCapacityAndFactor(hashtable.DefaultCapacity, hashtable.DefaultLoadFactor)
	if err != nil {
		panic(err)
	}
	return m
}

// NewWithCapacity creates a ChainMap with the requested initial
// capacity and the default load factor. The capacity must not be
// negative.
func NewWithCapacity(capacity int) (*ChainMap, error) {
	return NewWithCapacityAndFactor(capacity, hashtable.DefaultLoadFactor)
}

// NewWithCapacityAndFactor creates a ChainMap with the requested
// initial capacity and load factor. The capacity must not be negative
// and the load factor must lie in [0, 1].
func NewWithCapacityAndFactor(capacity int, loadFactor float64) (*ChainMap, error) {
	tbl, err := hashtable.NewChainTable(capacity, loadFactor)
	if err != nil {
		return nil, err
	}
	return &ChainMap{tbl: tbl}, nil
}

func (m *ChainMap) Put(key, value any) (any, bool) {
	return m.tbl.Put(key, value)
}

func (m *ChainMap) Get(key any) (any, bool) {
	return m.tbl.Get(key)
}

func (m *ChainMap) Contains(key any) bool {
	return m.tbl.Contains(key)
}

func (m *ChainMap) Remove(key any) (any, bool) {
	return m.tbl.Remove(key)
}

func (m *ChainMap) Size() int {
	return m.tbl.Size()
}

// Equal reports whether other is also a ChainMap holding exactly the
// same key/value pairs.
func (m *ChainMap) Equal(other HashMap) bool {
	o, ok := other.(*ChainMap)
	if !ok {
		return false
	}
	if o == nil {
		return false
	}
	return m.tbl.Equal(o.tbl)
}

func (m *ChainMap) HashCode() int32 {
	return m.tbl.HashCode()
}

func (m *ChainMap) String() string {
	return m.tbl.String()
}
