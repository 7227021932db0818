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
	"github.com/colvec/arrowcore/arrow"
	"github.com/colvec/arrowcore/arrow/array"
	"github.com/colvec/arrowcore/arrow/bitutil"
	"github.com/colvec/arrowcore/arrow/memory"
	"github.com/colvec/arrowcore/internal/testing/tools"
)

// newBuffer copies b into a buffer allocated from mem.
func newBuffer(mem memory.Allocator, b []byte) *memory.Buffer {
	buf := memory.NewResizableBuffer(mem)
	buf.Resize(len(b))
	copy(buf.Bytes(), b)
	return buf
}

func newValidity(mem memory.Allocator, valid []bool) *memory.Buffer {
	if valid == nil {
		return nil
	}
	return newBuffer(mem, tools.BitmapFromBools(valid))
}

func nullCount(valid []bool) int {
	n := 0
	for _, v := range valid {
		if !v {
			n++
		}
	}
	return n
}

// newNumeric returns a numeric array of vals typed after T. A nil valid
// slice produces an array without a validity bitmap.
func newNumeric[T arrow.NumericType](mem memory.Allocator, vals []T, valid []bool) arrow.Array {
	return newNumericOf(mem, tools.GetDataType[T](), vals, valid)
}

func newNumericOf[T arrow.NumericType](mem memory.Allocator, dt arrow.DataType, vals []T, valid []bool) arrow.Array {
	validity := newValidity(mem, valid)
	values := newBuffer(mem, arrow.GetBytes(vals))
	defer memory.ReleaseBuffers([]*memory.Buffer{validity, values})

	data := array.NewData(dt, len(vals), []*memory.Buffer{validity, values}, nil, nullCount(valid), 0)
	defer data.Release()
	return array.MakeFromData(data)
}

func newStrings(mem memory.Allocator, vals []string, valid []bool) arrow.Array {
	offsets := make([]int32, len(vals)+1)
	var payload []byte
	for i, v := range vals {
		payload = append(payload, v...)
		offsets[i+1] = int32(len(payload))
	}

	validity := newValidity(mem, valid)
	offsetBuf := newBuffer(mem, arrow.GetBytes(offsets))
	dataBuf := newBuffer(mem, payload)
	defer memory.ReleaseBuffers([]*memory.Buffer{validity, offsetBuf, dataBuf})

	data := array.NewData(arrow.BinaryTypes.String, len(vals), []*memory.Buffer{validity, offsetBuf, dataBuf}, nil, nullCount(valid), 0)
	defer data.Release()
	return array.MakeFromData(data)
}

// bitmapLen is the number of bytes needed for a validity bitmap of n slots.
func bitmapLen(n int) int { return int(bitutil.BytesForBits(int64(n))) }
