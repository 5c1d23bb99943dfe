package tensor

import (
	"fmt"
	"math"
	"unsafe"
)

// Raw is a host tensor: a descriptor plus one contiguous allocation laid out
// with the descriptor's declared padding. The logical element (0,0,0,0)
// lives at Info().OffsetFirstElementInBytes().
type Raw struct {
	info *Info
	data []byte
}

// NewRaw allocates a zero-initialized host tensor without padding.
func NewRaw(shape Shape, dtype DataType) (*Raw, error) {
	return NewRawWithPadding(shape, dtype, PaddingSize{})
}

// NewRawWithPadding allocates a zero-initialized host tensor whose buffer
// carries the given padding around the logical extent.
func NewRawWithPadding(shape Shape, dtype DataType, padding PaddingSize) (*Raw, error) {
	info, err := NewInfo(shape, dtype)
	if err != nil {
		return nil, err
	}
	info.SetPadding(padding)
	return NewRawFromInfo(info), nil
}

// NewRawFromInfo allocates a zero-initialized host tensor for an existing
// descriptor. The descriptor is owned by the tensor afterwards.
func NewRawFromInfo(info *Info) *Raw {
	return &Raw{
		info: info,
		data: make([]byte, info.TotalSizeInBytes()),
	}
}

// Info returns the tensor's descriptor.
func (r *Raw) Info() *Info {
	return r.info
}

// Data returns the raw allocation, padding included.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *Raw) Data() []byte {
	return r.data
}

// AsFloat32 interprets the whole allocation as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *Raw) AsFloat32() []float32 {
	if r.info.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.info.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy reinterpretation of the allocation
	return unsafe.Slice((*float32)(unsafe.Pointer(&r.data[0])), len(r.data)/4)
}

// ElementOffset returns the byte offset of logical coordinate (x,y,z,w).
// Coordinates may reach into declared padding (negative x or y included).
func (r *Raw) ElementOffset(x, y, z, w int) int {
	strides := r.info.StridesInBytes()
	return r.info.OffsetFirstElementInBytes() +
		x*strides[0] + y*strides[1] + z*strides[2] + w*strides[3]
}

// Float32At returns the float32 element at (x,y,z,w).
func (r *Raw) Float32At(x, y, z, w int) float32 {
	off := r.ElementOffset(x, y, z, w)
	bits := uint32(r.data[off]) | uint32(r.data[off+1])<<8 |
		uint32(r.data[off+2])<<16 | uint32(r.data[off+3])<<24
	return math.Float32frombits(bits)
}

// SetFloat32 stores a float32 element at (x,y,z,w).
func (r *Raw) SetFloat32(x, y, z, w int, v float32) {
	off := r.ElementOffset(x, y, z, w)
	bits := math.Float32bits(v)
	r.data[off] = byte(bits)
	r.data[off+1] = byte(bits >> 8)
	r.data[off+2] = byte(bits >> 16)
	r.data[off+3] = byte(bits >> 24)
}

// Uint8At returns the byte-sized element at (x,y,z,w).
func (r *Raw) Uint8At(x, y, z, w int) uint8 {
	return r.data[r.ElementOffset(x, y, z, w)]
}

// SetUint8 stores a byte-sized element at (x,y,z,w).
func (r *Raw) SetUint8(x, y, z, w int, v uint8) {
	r.data[r.ElementOffset(x, y, z, w)] = v
}
