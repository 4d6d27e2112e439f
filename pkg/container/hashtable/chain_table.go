// Copyright 2022 Matrix Origin
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

package hashtable

import (
	"fmt"
	"math"
	"strings"

	"github.com/matrixorigin/chainmap/pkg/common/moerr"
)

const (
	// DefaultCapacity is the bucket count used when none is requested.
	DefaultCapacity = 16

	// DefaultLoadFactor is the load factor used when none is requested.
	DefaultLoadFactor = 0.75

	// MaxCapacity is the largest permitted bucket count. Once reached,
	// the table stops growing.
	MaxCapacity = 1 << 30
)

// node is a single key/value entry in a bucket chain. The key hash is
// computed once at insertion and cached for the node's lifetime.
type node struct {
	hash  int32
	key   any
	value any
	next  *node
}

// ChainTable is a separate-chaining hash table. Each bucket holds a
// singly linked chain of nodes; the bucket count is always a power of
// two so indexing reduces to hash & (capacity - 1).
//
// Keys and values may be any value, including nil; keys must be
// comparable with ==, as with the built-in map. The table is not safe
// for concurrent use.
type ChainTable struct {
	buckets    []*node
	capacity   int
	threshold  int
	loadFactor float64
	size       int
}

// NewChainTable creates a table with the requested initial bucket count
// and load factor. The bucket count is normalized to the next power of
// two in [1, MaxCapacity]; the growth threshold is computed from the
// requested count as floor(capacity * loadFactor). Buckets are not
// allocated until the first Put.
func NewChainTable(capacity int, loadFactor float64) (*ChainTable, error) {
	if capacity < 0 {
		return nil, moerr.NewInvalidArgNoCtx("initial capacity", capacity)
	}
	if !(loadFactor >= 0 && loadFactor <= 1) {
		return nil, moerr.NewInvalidArgNoCtx("load factor", loadFactor)
	}
	return &ChainTable{
		capacity:   tableSizeFor(capacity),
		threshold:  int(float64(capacity) * loadFactor),
		loadFactor: loadFactor,
	}, nil
}

// tableSizeFor returns the next power of two >= capacity, at least 1
// and at most MaxCapacity, via the usual bit-smearing trick.
func tableSizeFor(capacity int) int {
	capacity -= 1
	capacity |= capacity >> 1
	capacity |= capacity >> 2
	capacity |= capacity >> 4
	capacity |= capacity >> 8
	capacity |= capacity >> 16
	if capacity < 0 {
		return 1
	}
	if capacity > MaxCapacity {
		return MaxCapacity
	}
	return capacity + 1
}

func (ht *ChainTable) bucketIndex(hash int32, capacity int) int {
	return int(hash & int32(capacity-1))
}

// Put inserts or updates the entry for key. It returns the previous
// value and true when an existing entry was updated, or nil and false
// when a new entry was appended. New entries go to the tail of their
// chain; the table grows when size exceeds the threshold.
func (ht *ChainTable) Put(key, value any) (any, bool) {
	hash := spread(key)
	if ht.buckets == nil {
		ht.resize()
	}
	idx := ht.bucketIndex(hash, ht.capacity)
	if n := ht.buckets[idx]; n == nil {
		ht.buckets[idx] = &node{hash: hash, key: key, value: value}
	} else {
		var last *node
		for ; n != nil; n = n.next {
			if n.hash == hash && (key == nil || key == n.key) {
				prev := n.value
				n.value = value
				return prev, true
			}
			last = n
		}
		last.next = &node{hash: hash, key: key, value: value}
	}
	ht.size++
	if ht.size > ht.threshold {
		ht.resize()
	}
	return nil, false
}

// Get returns the value stored under key. The second result reports
// whether the key is present, which keeps a stored nil value
// distinguishable from an absent key.
func (ht *ChainTable) Get(key any) (any, bool) {
	n := ht.lookup(key)
	if n == nil {
		return nil, false
	}
	return n.value, true
}

// Contains reports whether an entry for key exists, regardless of the
// stored value.
func (ht *ChainTable) Contains(key any) bool {
	return ht.lookup(key) != nil
}

// Remove unlinks the entry for key from its chain and returns its
// value. Removal never shrinks the bucket array or recomputes the
// threshold.
func (ht *ChainTable) Remove(key any) (any, bool) {
	if ht.buckets == nil {
		return nil, false
	}
	hash := spread(key)
	idx := ht.bucketIndex(hash, ht.capacity)
	n := ht.buckets[idx]
	if n == nil {
		return nil, false
	}
	if n.hash == hash && (key == nil || key == n.key) {
		ht.buckets[idx] = n.next
		n.next = nil
		ht.size--
		return n.value, true
	}
	for n.next != nil {
		victim := n.next
		if victim.hash == hash && (key == nil || key == victim.key) {
			n.next = victim.next
			victim.next = nil
			ht.size--
			return victim.value, true
		}
		n = victim
	}
	return nil, false
}

// Size returns the live entry count.
func (ht *ChainTable) Size() int {
	return ht.size
}

func (ht *ChainTable) lookup(key any) *node {
	if ht.buckets == nil {
		return nil
	}
	hash := spread(key)
	for n := ht.buckets[ht.bucketIndex(hash, ht.capacity)]; n != nil; n = n.next {
		if n.hash == hash && (key == nil || key == n.key) {
			return n
		}
	}
	return nil
}

// resize either performs the lazy initial bucket allocation or doubles
// the table. Doubling moves every node by prepending it onto its new
// chain, which reverses the relative order of nodes that stay in the
// same bucket. That order flip is part of the table's contract.
func (ht *ChainTable) resize() {
	if ht.buckets == nil {
		ht.buckets = make([]*node, ht.capacity)
		return
	}
	newCapacity := ht.capacity << 1
	ht.threshold <<= 1
	if newCapacity >= MaxCapacity {
		newCapacity = MaxCapacity
		ht.threshold = math.MaxInt32
	}
	newBuckets := make([]*node, newCapacity)
	for _, head := range ht.buckets {
		for n := head; n != nil; {
			next := n.next
			idx := ht.bucketIndex(n.hash, newCapacity)
			n.next = newBuckets[idx]
			newBuckets[idx] = n
			n = next
		}
	}
	ht.capacity = newCapacity
	ht.buckets = newBuckets
}

// Equal reports whether both tables hold exactly the same key/value
// pairs. Every entry of ht must be locatable in other through other's
// own lookup, with equal key and equal value. Values are compared with
// ==.
func (ht *ChainTable) Equal(other *ChainTable) bool {
	if ht == other {
		return true
	}
	if other == nil || ht.size != other.size {
		return false
	}
	for _, head := range ht.buckets {
		for n := head; n != nil; n = n.next {
			match := other.lookup(n.key)
			if match == nil || match.key != n.key || match.value != n.value {
				return false
			}
		}
	}
	return true
}

// HashCode returns the table's structural hash: the wrapping sum of
// every node's hash, where a node hashes to valueHash ^ cachedKeyHash.
// Summation makes the result independent of bucket layout, so two equal
// tables hash equally regardless of insertion order.
func (ht *ChainTable) HashCode() int32 {
	var sum int32
	for _, head := range ht.buckets {
		for n := head; n != nil; n = n.next {
			var vh int32
			if n.value != nil {
				vh = hashCode(n.value)
			}
			sum += vh ^ n.hash
		}
	}
	return sum
}

// String renders every entry, one per line, in bucket traversal order.
// The traversal order is not part of the table's contract.
func (ht *ChainTable) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, head := range ht.buckets {
		for n := head; n != nil; n = n.next {
			fmt.Fprintf(&sb, "\tkey = %v\t\tvalue = %v\n", n.key, n.value)
		}
	}
	sb.WriteString("}")
	return sb.String()
}
