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
	"testing"

	"github.com/colvec/arrowcore/arrow"
	"github.com/colvec/arrowcore/arrow/array"
	"github.com/colvec/arrowcore/arrow/memory"
	"github.com/stretchr/testify/assert"
)

func TestDataReset(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	values := newBuffer(mem, arrow.GetBytes([]int16{1, 2, 3}))
	data := array.NewData(arrow.PrimitiveTypes.Int16, 3, []*memory.Buffer{nil, values}, nil, 0, 0)
	values.Release()

	// the data keeps the buffer alive
	assert.Equal(t, 6, data.Buffers()[1].Len())
	assert.NotZero(t, mem.CurrentAlloc())

	data.Retain()
	data.Release()
	assert.NotNil(t, data.Buffers())

	data.Release()
	assert.Nil(t, data.Buffers())
}

func TestDataAccessors(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	validity := newBuffer(mem, []byte{0xff})
	values := newBuffer(mem, make([]byte, 40))
	defer memory.ReleaseBuffers([]*memory.Buffer{validity, values})

	data := array.NewData(arrow.PrimitiveTypes.Int32, 10, []*memory.Buffer{validity, values}, nil, array.UnknownNullCount, 0)
	defer data.Release()

	assert.Equal(t, 10, data.Len())
	assert.Equal(t, 0, data.Offset())
	assert.Nil(t, data.Children())
	assert.Same(t, arrow.PrimitiveTypes.Int32, data.DataType())
}

func TestNewSliceData(t *testing.T) {
	bitmap := memory.NewBufferBytes([]byte{0xf0, 0x0f})
	values := memory.NewBufferBytes(make([]byte, 16))

	tests := []struct {
		name  string
		nulls int
		i, j  int64
		exp   int
	}{
		{name: "no nulls", nulls: 0, i: 2, j: 6, exp: 0},
		{name: "all nulls", nulls: 16, i: 2, j: 6, exp: 4},
		{name: "computed", nulls: 8, i: 2, j: 6, exp: 2},
		{name: "computed offset", nulls: 8, i: 6, j: 14, exp: 2},
		{name: "empty", nulls: 8, i: 5, j: 5, exp: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := array.NewData(arrow.PrimitiveTypes.Uint8, 16, []*memory.Buffer{bitmap, values}, nil, tc.nulls, 0)
			defer data.Release()

			slice := array.NewSliceData(data, tc.i, tc.j)
			defer slice.Release()

			assert.Equal(t, int(tc.j-tc.i), slice.Len())
			assert.Equal(t, int(tc.i), slice.Offset())
			assert.Equal(t, tc.exp, slice.NullN())
			assert.Same(t, data.Buffers()[1], slice.Buffers()[1])

			nested := array.NewSliceData(slice, 0, tc.j-tc.i)
			defer nested.Release()
			assert.Equal(t, slice.Offset(), nested.Offset())
			assert.Equal(t, tc.exp, nested.NullN())
		})
	}

	data := array.NewData(arrow.PrimitiveTypes.Uint8, 16, []*memory.Buffer{bitmap, values}, nil, 0, 0)
	defer data.Release()
	assert.Panics(t, func() { array.NewSliceData(data, -1, 2) })
	assert.Panics(t, func() { array.NewSliceData(data, 3, 2) })
	assert.Panics(t, func() { array.NewSliceData(data, 0, 17) })
}
