// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns the hash of x through its family's Hashable instance.
// Values that compare [Equal] hash alike.
func Hash(x any) uint64 {
	return dispatch(HashMethod, TagOf(x))(x)
}

// hashOrdered combines the hashes of elems in order, seeded by the family name.
func hashOrdered(family string, elems ...any) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(family)
	var buf [8]byte
	for _, e := range elems {
		binary.LittleEndian.PutUint64(buf[:], Hash(e))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// hashUnordered combines element hashes independently of their order.
func hashUnordered(family string, elems ...any) uint64 {
	var sum, xor uint64
	for _, e := range elems {
		h := Hash(e)
		sum += h
		xor ^= h
	}
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], sum)
	binary.LittleEndian.PutUint64(buf[8:], xor)
	d := xxhash.New()
	_, _ = d.WriteString(family)
	_, _ = d.Write(buf[:])
	return d.Sum64()
}
