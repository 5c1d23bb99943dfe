package tensor

// QuantizationInfo holds the affine quantization parameters of a tensor:
// real = Scale * (quantized - Offset).
type QuantizationInfo struct {
	Scale  float32
	Offset int
}

// Equal checks if two quantization parameter sets are identical.
func (q QuantizationInfo) Equal(other QuantizationInfo) bool {
	return q.Scale == other.Scale && q.Offset == other.Offset
}

// HaveDifferentQuantization reports whether any of the given descriptors
// carries quantization parameters differing from the reference descriptor's.
func HaveDifferentQuantization(ref *Info, others ...*Info) bool {
	for _, o := range others {
		if !ref.Quantization().Equal(o.Quantization()) {
			return true
		}
	}
	return false
}
