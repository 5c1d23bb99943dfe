// Package tensor provides the descriptor and host-buffer types used by the
// seam concatenation core: shapes, data types, affine quantization
// parameters, declared padding and valid regions.
package tensor

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors. Unknown is the zero value so that an
// uninitialized descriptor never masquerades as a typed one.
const (
	Unknown DataType = iota
	Float32
	Float16
	Int32
	Uint8
	Int8
	QAsymmU8 // asymmetric affine-quantized uint8
	QAsymmS8 // asymmetric affine-quantized int8
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float16:
		return 2
	case Uint8, Int8, QAsymmU8, QAsymmS8:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float16:
		return "float16"
	case Int32:
		return "int32"
	case Uint8:
		return "uint8"
	case Int8:
		return "int8"
	case QAsymmU8:
		return "qasymmu8"
	case QAsymmS8:
		return "qasymms8"
	default:
		return "unknown"
	}
}

// ParseDataType is the inverse of String. Unrecognized names map to
// Unknown.
func ParseDataType(s string) DataType {
	switch s {
	case "float32":
		return Float32
	case "float16":
		return Float16
	case "int32":
		return Int32
	case "uint8":
		return Uint8
	case "int8":
		return Int8
	case "qasymmu8":
		return QAsymmU8
	case "qasymms8":
		return QAsymmS8
	default:
		return Unknown
	}
}

// IsQuantizedAsymmetric reports whether values of this type live in an
// affine-quantized domain (scale/offset pair attached to the descriptor).
func (dt DataType) IsQuantizedAsymmetric() bool {
	return dt == QAsymmU8 || dt == QAsymmS8
}
