// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package array_test

import (
	"math"
	"testing"

	"github.com/colvec/arrowcore/arrow"
	"github.com/colvec/arrowcore/arrow/array"
	"github.com/colvec/arrowcore/arrow/memory"
	"github.com/colvec/arrowcore/internal/testing/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericValues(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	arr := newNumeric(mem, []int32{1, 2, 3, 4, 5}, tools.Bools(1, 1, 0, 1, 1))
	defer arr.Release()

	a := arr.(*array.Int32)
	assert.Equal(t, 5, a.Len())
	assert.Equal(t, 1, a.NullN())
	assert.Equal(t, []int32{1, 2, 3, 4, 5}, a.Values())
	assert.Equal(t, int32(4), a.Value(3))
	assert.True(t, a.IsNull(2))
	assert.False(t, a.IsValid(2))
	assert.Equal(t, "[1 2 (null) 4 5]", a.String())
	assert.NoError(t, a.Validate())
	assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Int32, a.DataType()))
}

func TestNumericNoBitmap(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	arr := newNumeric(mem, []uint16{7, 8, 9}, nil)
	defer arr.Release()

	assert.Equal(t, 0, arr.NullN())
	assert.Nil(t, arr.NullBitmapBytes())
	for i := 0; i < arr.Len(); i++ {
		assert.True(t, arr.IsValid(i))
		assert.False(t, arr.IsNull(i))
	}
}

func TestNumericSlice(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	arr := newNumeric(mem, []float64{1.5, 2.5, 3.5, 4.5, 5.5}, tools.Bools(1, 0, 1, 1, 0))
	defer arr.Release()

	slice := arr.SliceLen(1, 3).(*array.Float64)
	defer slice.Release()

	assert.Equal(t, 3, slice.Len())
	assert.Equal(t, 1, slice.Offset())
	assert.Equal(t, 1, slice.NullN())
	assert.Equal(t, []float64{2.5, 3.5, 4.5}, slice.Values())
	assert.True(t, slice.IsNull(0))
	assert.Equal(t, 3.5, slice.Value(1))
	assert.Equal(t, "[(null) 3.5 4.5]", slice.String())
	assert.NoError(t, slice.Validate())

	empty := arr.Slice(5)
	defer empty.Release()
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 0, empty.NullN())

	assert.Panics(t, func() { arr.Slice(6) })
	assert.Panics(t, func() { arr.Slice(-1) })
	assert.Panics(t, func() { arr.SliceLen(0, -1) })
}

func TestNumericSliceOutlivesParent(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	arr := newNumeric(mem, []int64{10, 20, 30}, nil)
	slice := arr.Slice(1)
	arr.Release()

	assert.Equal(t, []int64{20, 30}, slice.(*array.Int64).Values())
	slice.Release()
}

func TestNumericMarshalJSON(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	arr := newNumeric(mem, []uint8{1, 2, 3}, tools.Bools(1, 0, 1))
	defer arr.Release()

	out, err := arr.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[1, null, 3]`, string(out))
}

func TestNumericValidate(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	tests := []struct {
		name   string
		vals   []byte
		bitmap []byte
		length int
		offset int
		err    bool
		msg    string
	}{
		{name: "exact", vals: make([]byte, 4*4), length: 4},
		{name: "short values", vals: make([]byte, 3*4), length: 4, err: true, msg: "arrow/array: int32 values buffer has 12 bytes, need 16: invalid"},
		{name: "offset past values", vals: make([]byte, 4*4), length: 3, offset: 2, err: true},
		{name: "bitmap", vals: make([]byte, 4*4), bitmap: []byte{0xff}, length: 4},
		{name: "short bitmap", vals: make([]byte, 9*4), bitmap: []byte{0xff}, length: 9, err: true, msg: "arrow/array: validity bitmap has 1 bytes, need 2: invalid"},
		{name: "empty", length: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var validity *memory.Buffer
			if tc.bitmap != nil {
				validity = newBuffer(mem, tc.bitmap)
			}
			values := newBuffer(mem, tc.vals)
			defer memory.ReleaseBuffers([]*memory.Buffer{validity, values})

			data := array.NewData(arrow.PrimitiveTypes.Int32, tc.length, []*memory.Buffer{validity, values}, nil, array.UnknownNullCount, tc.offset)
			defer data.Release()

			arr := array.NewNumericData[int32](data)
			defer arr.Release()

			err := arr.Validate()
			if tc.err {
				assert.ErrorIs(t, err, arrow.ErrInvalid)
				if tc.msg != "" {
					assert.EqualError(t, err, tc.msg)
				}
				return
			}
			assert.NoError(t, err)
			if tc.bitmap != nil {
				assert.GreaterOrEqual(t, len(arr.NullBitmapBytes()), bitmapLen(tc.offset+tc.length))
			}
		})
	}
}

func TestNumericEqualsFloats(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	nan := math.NaN()
	a := newNumeric(mem, []float32{1, float32(nan), 3}, nil)
	defer a.Release()
	b := newNumeric(mem, []float32{1, float32(nan), 3}, nil)
	defer b.Release()

	assert.True(t, a.Equals(a), "identical arrays are always equal")
	assert.False(t, a.Equals(b))
	assert.False(t, array.ApproxEqual(a, b))
	assert.True(t, array.ApproxEqual(a, b, array.WithNaNsEqual(true)))
}
