package saturn

import (
	"encoding/binary"
	"math/bits"
)

// The integer fields are always stored big-endian on the disc. They are
// loaded in host order and swapped when the host disagrees.
var hostOrder binary.ByteOrder = binary.NativeEndian

func isBigEndian(order binary.ByteOrder) bool {
	var b [2]byte
	order.PutUint16(b[:], 1)
	return b[0] == 0
}

func toHost(order binary.ByteOrder, b []byte) int32 {
	v := order.Uint32(b)
	if !isBigEndian(order) {
		v = bits.ReverseBytes32(v)
	}
	return int32(v)
}

func fromHost(order binary.ByteOrder, b []byte, v int32) {
	u := uint32(v)
	if !isBigEndian(order) {
		u = bits.ReverseBytes32(u)
	}
	order.PutUint32(b, u)
}
