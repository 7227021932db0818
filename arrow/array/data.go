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
	"sync/atomic"

	"github.com/colvec/arrowcore/arrow"
	"github.com/colvec/arrowcore/arrow/bitutil"
	"github.com/colvec/arrowcore/arrow/internal/debug"
	"github.com/colvec/arrowcore/arrow/memory"
)

// Data represents the memory and metadata of an Arrow array.
type Data struct {
	refCount  int64
	dtype     arrow.DataType
	nulls     int64
	offset    int
	length    int
	buffers   []*memory.Buffer
	childData []arrow.ArrayData
}

// NewData creates a new Data. Buffers and child data are retained and
// released again when the Data reference count drops to zero.
//
// If nulls is UnknownNullCount it is computed from the validity bitmap the
// first time NullN is called.
func NewData(dtype arrow.DataType, length int, buffers []*memory.Buffer, childData []arrow.ArrayData, nulls, offset int) *Data {
	for _, b := range buffers {
		if b != nil {
			b.Retain()
		}
	}

	for _, child := range childData {
		if child != nil {
			child.Retain()
		}
	}

	return &Data{
		refCount:  1,
		dtype:     dtype,
		nulls:     int64(nulls),
		length:    length,
		offset:    offset,
		buffers:   buffers,
		childData: childData,
	}
}

// NewSliceData returns a new slice that shares backing data with the input.
// The returned Data slice starts at i and extends j-i elements.
// The input must be released separately.
func NewSliceData(data arrow.ArrayData, i, j int64) arrow.ArrayData {
	if i < 0 || j > int64(data.Len()) || i > j {
		panic("arrow/array: index out of range")
	}

	nulls := UnknownNullCount
	if data.NullN() == 0 {
		nulls = 0
	} else if data.NullN() == data.Len() {
		nulls = int(j - i)
	}

	return NewData(data.DataType(), int(j-i), data.Buffers(), data.Children(), nulls, data.Offset()+int(i))
}

// Retain increases the reference count by 1.
// Retain may be called simultaneously from multiple goroutines.
func (d *Data) Retain() {
	atomic.AddInt64(&d.refCount, 1)
}

// Release decreases the reference count by 1.
// When the reference count goes to zero, the memory is freed.
// Release may be called simultaneously from multiple goroutines.
func (d *Data) Release() {
	debug.Assert(atomic.LoadInt64(&d.refCount) > 0, "too many releases")

	if atomic.AddInt64(&d.refCount, -1) == 0 {
		for _, b := range d.buffers {
			if b != nil {
				b.Release()
			}
		}

		for _, b := range d.childData {
			if b != nil {
				b.Release()
			}
		}
		d.buffers, d.childData = nil, nil
	}
}

// DataType returns the DataType of the data.
func (d *Data) DataType() arrow.DataType { return d.dtype }

// NullN returns the number of nulls. When the count was not supplied at
// construction it is computed once from the validity bitmap and cached.
func (d *Data) NullN() int {
	if n := atomic.LoadInt64(&d.nulls); n >= 0 {
		return int(n)
	}

	n := 0
	if len(d.buffers) > 0 && d.buffers[0] != nil {
		n = d.length - bitutil.CountSetBits(d.buffers[0].Bytes(), d.offset, d.length)
	}
	atomic.StoreInt64(&d.nulls, int64(n))
	return n
}

// Len returns the length.
func (d *Data) Len() int { return d.length }

// Offset returns the offset.
func (d *Data) Offset() int { return d.offset }

// Buffers returns the buffers.
func (d *Data) Buffers() []*memory.Buffer { return d.buffers }

// Children returns the child data of nested arrays.
func (d *Data) Children() []arrow.ArrayData { return d.childData }

var (
	_ arrow.ArrayData = (*Data)(nil)
)
