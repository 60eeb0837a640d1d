package soft

import (
	"encoding/binary"
	"math"
)

// Memory is the calling domain's address space as the backend sees it:
// 32-bit offsets, little endian. wazero's api.Memory satisfies it.
type Memory interface {
	Read(offset, byteCount uint32) ([]byte, bool)
	Write(offset uint32, v []byte) bool
}

// Bytes is a flat Memory backed by a slice.
type Bytes []byte

// Read implements Memory.
func (b Bytes) Read(offset, byteCount uint32) ([]byte, bool) {
	end := uint64(offset) + uint64(byteCount)
	if end > uint64(len(b)) {
		return nil, false
	}
	return b[offset:end], true
}

// Write implements Memory.
func (b Bytes) Write(offset uint32, v []byte) bool {
	end := uint64(offset) + uint64(len(v))
	if end > uint64(len(b)) {
		return false
	}
	copy(b[offset:], v)
	return true
}

// maxString bounds NUL-terminated reads.
const maxString = 1 << 20

func offset(p uintptr) (uint32, bool) {
	if p == 0 || uint64(p) > math.MaxUint32 {
		return 0, false
	}
	return uint32(p), true
}

func writeU32s(m Memory, p uintptr, vals ...uint32) bool {
	off, ok := offset(p)
	if !ok || m == nil {
		return false
	}
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[4*i:], v)
	}
	return m.Write(off, buf)
}

func writeI32s(m Memory, p uintptr, vals ...int32) bool {
	u := make([]uint32, len(vals))
	for i, v := range vals {
		u[i] = uint32(v)
	}
	return writeU32s(m, p, u...)
}

func writeF32s(m Memory, p uintptr, vals ...float32) bool {
	u := make([]uint32, len(vals))
	for i, v := range vals {
		u[i] = math.Float32bits(v)
	}
	return writeU32s(m, p, u...)
}

// span returns the byte range of n 32-bit words at p, if it fits the
// 32-bit address space and m holds all of it.
func span(m Memory, p uintptr, n int) (off, size uint32, ok bool) {
	off, ok = offset(p)
	if !ok || m == nil || n < 0 {
		return 0, 0, false
	}
	end := uint64(off) + 4*uint64(n)
	if end > math.MaxUint32+1 {
		return 0, 0, false
	}
	size = uint32(4 * uint64(n))
	if _, ok = m.Read(off, size); !ok {
		return 0, 0, false
	}
	return off, size, true
}

func readU32s(m Memory, p uintptr, n int) ([]uint32, bool) {
	if n == 0 {
		return nil, true
	}
	off, size, ok := span(m, p, n)
	if !ok {
		return nil, false
	}
	buf, ok := m.Read(off, size)
	if !ok {
		return nil, false
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(buf[4*i:])
	}
	return out, true
}

// readAttribs reads an EGL attribute list: key/value pairs ending at
// EGL_NONE. A null list is empty.
func readAttribs(m Memory, p uintptr) (map[int32]int32, bool) {
	attrs := make(map[int32]int32)
	if p == 0 {
		return attrs, true
	}
	for i := 0; i < 256; i++ {
		kv, ok := readU32s(m, p+uintptr(8*i), 1)
		if !ok {
			return nil, false
		}
		if kv[0] == eglNone {
			return attrs, true
		}
		v, ok := readU32s(m, p+uintptr(8*i+4), 1)
		if !ok {
			return nil, false
		}
		attrs[int32(kv[0])] = int32(v[0])
	}
	return nil, false
}

// readString reads length bytes at p, or up to the first NUL when length
// is negative.
func readString(m Memory, p uintptr, length int32) (string, bool) {
	off, ok := offset(p)
	if !ok || m == nil {
		return "", false
	}
	if length >= 0 {
		b, ok := m.Read(off, uint32(length))
		return string(b), ok
	}
	var out []byte
	for len(out) < maxString {
		b, ok := m.Read(off+uint32(len(out)), 1)
		if !ok {
			return "", false
		}
		if b[0] == 0 {
			return string(out), true
		}
		out = append(out, b[0])
	}
	return "", false
}
