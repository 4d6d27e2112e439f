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
	"math/bits"
	"math/rand"
	"reflect"
	"unsafe"
)

var hashkey [4]uint64

func init() {
	hashkey[0] = rand.Uint64()
	hashkey[1] = rand.Uint64()
	hashkey[2] = rand.Uint64()
	hashkey[3] = rand.Uint64()
}

const (
	m1 = 0xa0761d6478bd642f
	m2 = 0xe7037ed1a0b428db
	m3 = 0x8ebc6af09c88c6e3
	m4 = 0x589965cc75374cc3
	m5 = 0x1d8e4e27c47d124f
)

func wyhash(data unsafe.Pointer, seed, s uint64) uint64 {
	var a, b uint64
	seed ^= hashkey[0] ^ m1
	switch {
	case s == 0:
		return seed
	case s < 4:
		a = uint64(*(*byte)(data))
		a |= uint64(*(*byte)(unsafe.Add(data, s>>1))) << 8
		a |= uint64(*(*byte)(unsafe.Add(data, s-1))) << 16
	case s == 4:
		a = r4(data, 0)
		b = a
	case s < 8:
		a = r4(data, 0)
		b = r4(data, s-4)
	case s == 8:
		a = r8(data, 0)
		b = a
	case s <= 16:
		a = r8(data, 0)
		b = r8(data, s-8)
	default:
		l := s
		if l > 48 {
			seed1 := seed
			seed2 := seed
			for ; l > 48; l -= 48 {
				seed = mix(r8(data, 0)^m2, r8(data, 8)^seed)
				seed1 = mix(r8(data, 16)^m3, r8(data, 24)^seed1)
				seed2 = mix(r8(data, 32)^m4, r8(data, 40)^seed2)
				data = unsafe.Add(data, 48)
			}
			seed ^= seed1 ^ seed2
		}
		for ; l > 16; l -= 16 {
			seed = mix(r8(data, 0)^m2, r8(data, 8)^seed)
			data = unsafe.Add(data, 16)
		}
		a = r8(data, l-16)
		b = r8(data, l-8)
	}

	return mix(m5^uint64(s), mix(a^m2, b^seed))
}

func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return hi ^ lo
}

func r4(data unsafe.Pointer, p uint64) uint64 {
	return uint64(*(*uint32)(unsafe.Add(data, p)))
}

func r8(data unsafe.Pointer, p uint64) uint64 {
	return *(*uint64)(unsafe.Add(data, p))
}

func wyhash64(x uint64) uint64 {
	return mix(m5^8, mix(x^m2, x^hashkey[1]^hashkey[0]^m1))
}

func strhash(s string) uint64 {
	if len(s) == 0 {
		return wyhash(nil, 0, 0)
	}
	ptr := unsafe.Pointer((*reflect.StringHeader)(unsafe.Pointer(&s)).Data)
	return wyhash(ptr, 0, uint64(len(s)))
}

// hashCode computes the native 32-bit hash code of a key. Codes are
// stable for the lifetime of the process and consistent with interface
// equality: k1 == k2 implies hashCode(k1) == hashCode(k2).
func hashCode(key any) int32 {
	var h uint64
	switch k := key.(type) {
	case bool:
		if k {
			h = wyhash64(1)
		} else {
			h = wyhash64(0)
		}
	case int:
		h = wyhash64(uint64(k))
	case int8:
		h = wyhash64(uint64(k))
	case int16:
		h = wyhash64(uint64(k))
	case int32:
		h = wyhash64(uint64(k))
	case int64:
		h = wyhash64(uint64(k))
	case uint:
		h = wyhash64(uint64(k))
	case uint8:
		h = wyhash64(uint64(k))
	case uint16:
		h = wyhash64(uint64(k))
	case uint32:
		h = wyhash64(uint64(k))
	case uint64:
		h = wyhash64(k)
	case uintptr:
		h = wyhash64(uint64(k))
	case float32:
		if k == 0 {
			k = 0 // +0.0 and -0.0 compare equal
		}
		h = wyhash64(uint64(math.Float32bits(k)))
	case float64:
		if k == 0 {
			k = 0
		}
		h = wyhash64(math.Float64bits(k))
	case complex64:
		re, im := real(k), imag(k)
		if re == 0 {
			re = 0
		}
		if im == 0 {
			im = 0
		}
		h = mix(uint64(math.Float32bits(re))^m2, uint64(math.Float32bits(im))^hashkey[2])
	case complex128:
		re, im := real(k), imag(k)
		if re == 0 {
			re = 0
		}
		if im == 0 {
			im = 0
		}
		h = mix(math.Float64bits(re)^m2, math.Float64bits(im)^hashkey[2])
	case string:
		h = strhash(k)
	default:
		// any remaining comparable key hashes through its rendered
		// form; equal values render identically
		h = strhash(fmt.Sprintf("%v", key))
	}
	return int32(h ^ h>>32)
}

// spread folds the high bits of a key's hash code into the low bits so
// that power-of-two masking still discriminates keys with poor low-bit
// entropy. A nil key always spreads to 0.
func spread(key any) int32 {
	if key == nil {
		return 0
	}
	h := hashCode(key)
	return h ^ int32(uint32(h)>>16)
}
