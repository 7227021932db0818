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

package array

import (
	"fmt"
	"sync/atomic"

	"github.com/colvec/arrowcore/arrow"
	"github.com/colvec/arrowcore/arrow/bitutil"
	"github.com/colvec/arrowcore/arrow/internal/debug"
	"golang.org/x/xerrors"
)

const (
	// UnknownNullCount specifies the NullN should be calculated from the null bitmap buffer.
	UnknownNullCount = -1

	// NullValueStr represents a null value in arrow.Array.String
	NullValueStr = "(null)"
)

type array struct {
	refCount        int64
	data            *Data
	nullBitmapBytes []byte
}

// Retain increases the reference count by 1.
// Retain may be called simultaneously from multiple goroutines.
func (a *array) Retain() {
	atomic.AddInt64(&a.refCount, 1)
}

// Release decreases the reference count by 1.
// Release may be called simultaneously from multiple goroutines.
// When the reference count goes to zero, the memory is freed.
func (a *array) Release() {
	debug.Assert(atomic.LoadInt64(&a.refCount) > 0, "too many releases")

	if atomic.AddInt64(&a.refCount, -1) == 0 {
		a.data.Release()
		a.data, a.nullBitmapBytes = nil, nil
	}
}

// DataType returns the type metadata for this instance.
func (a *array) DataType() arrow.DataType { return a.data.dtype }

// NullN returns the number of null values in the array.
func (a *array) NullN() int { return a.data.NullN() }

// NullBitmapBytes returns a byte slice of the validity bitmap.
func (a *array) NullBitmapBytes() []byte { return a.nullBitmapBytes }

func (a *array) Data() arrow.ArrayData { return a.data }

// Len returns the number of elements in the array.
func (a *array) Len() int { return a.data.length }

// Offset returns the logical start of the array within its buffers.
func (a *array) Offset() int { return a.data.offset }

// IsNull returns true if value at index is null.
// NOTE: IsNull will panic if NullBitmapBytes is not empty and 0 > i ≥ Len.
func (a *array) IsNull(i int) bool {
	return len(a.nullBitmapBytes) != 0 && bitutil.BitIsNotSet(a.nullBitmapBytes, a.data.offset+i)
}

// IsValid returns true if value at index is not null.
// NOTE: IsValid will panic if NullBitmapBytes is not empty and 0 > i ≥ Len.
func (a *array) IsValid(i int) bool {
	return len(a.nullBitmapBytes) == 0 || bitutil.BitIsSet(a.nullBitmapBytes, a.data.offset+i)
}

// Slice returns a zero-copy view over [offset, Len()).
func (a *array) Slice(offset int) arrow.Array {
	return a.SliceLen(offset, a.data.length-offset)
}

// SliceLen returns a zero-copy view of at most length elements starting at
// offset. A length running past the end is clamped to the remaining elements.
func (a *array) SliceLen(offset, length int) arrow.Array {
	if offset < 0 || offset > a.data.length || length < 0 {
		panic(fmt.Errorf("arrow/array: slice [%d:+%d] out of range for array of length %d", offset, length, a.data.length))
	}
	if rem := a.data.length - offset; length > rem {
		length = rem
	}

	data := NewSliceData(a.data, int64(offset), int64(offset+length))
	defer data.Release()
	return MakeFromData(data)
}

func (a *array) setData(data *Data) {
	// Retain before releasing in case a.data is the same as data.
	data.Retain()

	if a.data != nil {
		a.data.Release()
	}

	if len(data.buffers) > 0 && data.buffers[0] != nil {
		a.nullBitmapBytes = data.buffers[0].Bytes()
	} else {
		a.nullBitmapBytes = nil
	}
	a.data = data
}

// validateBitmap checks that the validity bitmap, when present, covers
// every slot of the array.
func (a *array) validateBitmap() error {
	if len(a.data.buffers) == 0 || a.data.buffers[0] == nil {
		return nil
	}
	need := bitutil.BytesForBits(int64(a.data.offset + a.data.length))
	if got := int64(a.data.buffers[0].Len()); got < need {
		return xerrors.Errorf("arrow/array: validity bitmap has %d bytes, need %d: %w", got, need, arrow.ErrInvalid)
	}
	return nil
}

type arraymarshal interface {
	arrow.Array

	getOneForMarshal(i int) interface{}
}

// MakeFromData constructs a strongly-typed array instance from generic Data.
func MakeFromData(data arrow.ArrayData) arrow.Array {
	switch data.DataType().ID() {
	case arrow.INT8:
		return NewNumericData[int8](data)
	case arrow.INT16:
		return NewNumericData[int16](data)
	case arrow.INT32:
		return NewNumericData[int32](data)
	case arrow.INT64:
		return NewNumericData[int64](data)
	case arrow.UINT8:
		return NewNumericData[uint8](data)
	case arrow.UINT16:
		return NewNumericData[uint16](data)
	case arrow.UINT32:
		return NewNumericData[uint32](data)
	case arrow.UINT64:
		return NewNumericData[uint64](data)
	case arrow.FLOAT32:
		return NewNumericData[float32](data)
	case arrow.FLOAT64:
		return NewNumericData[float64](data)
	case arrow.STRING:
		return NewStringData(data)
	case arrow.DICTIONARY:
		return NewDictionaryData(data)
	case arrow.NULL, arrow.BOOL, arrow.FLOAT16, arrow.BINARY:
		panic("unsupported data type: " + data.DataType().ID().String())
	default:
		panic("invalid data type: " + data.DataType().ID().String())
	}
}

// NewSlice constructs a zero-copy slice of the array with the indicated
// indices i and j, corresponding to array[i:j].
// The returned array must be Release()'d after use.
//
// NewSlice panics if the slice is outside the valid range of the input array.
// NewSlice panics if j < i.
func NewSlice(arr arrow.Array, i, j int64) arrow.Array {
	data := NewSliceData(arr.Data(), i, j)
	defer data.Release()
	return MakeFromData(data)
}
