package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/seam/internal/tensor"
	"github.com/born-ml/seam/internal/window"
)

func TestArgListSliceOffset(t *testing.T) {
	raw, err := tensor.NewRawWithPadding(tensor.Shape{5, 4, 3, 2}, tensor.Float32,
		tensor.PaddingSize{Left: 2, Top: 1})
	require.NoError(t, err)

	var slice window.Window
	slice.Set(window.DimX, window.Dimension{Start: 0, End: 8, Step: 8})
	slice.Set(window.DimY, window.Dimension{Start: 2, End: 4, Step: 1})
	slice.Set(window.DimZ, window.Dimension{Start: 1, End: 2, Step: 1})
	slice.Set(window.DimW, window.Dimension{Start: 1, End: 2, Step: 1})

	var args ArgList
	args.Add4DTensor(raw, slice)
	args.AddScalar(3)
	args.AddScalar(5)

	require.Len(t, args.Tensors, 1)
	assert.Equal(t, []uint32{3, 5}, args.Scalars)

	strides := raw.Info().StridesInBytes()
	want := raw.Info().OffsetFirstElementInBytes() +
		2*strides[1] + 1*strides[2] + 1*strides[3]
	assert.Equal(t, want, args.Tensors[0].Offset)
	assert.Equal(t, strides, args.Tensors[0].Strides)
}
