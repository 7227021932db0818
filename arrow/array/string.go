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
	"strings"
	"unsafe"

	"github.com/colvec/arrowcore/arrow"
	"github.com/goccy/go-json"
	"golang.org/x/xerrors"
)

// String represents an immutable sequence of variable-length UTF-8 strings.
type String struct {
	array
	offsets []int32
	values  string
}

// NewStringData constructs a new String array from data. The buffers are
// the validity bitmap, the int32 offsets and the concatenated bytes.
func NewStringData(data arrow.ArrayData) *String {
	a := &String{}
	a.refCount = 1
	a.setData(data.(*Data))
	return a
}

// Value returns the slice at index i. This value should not be mutated.
func (a *String) Value(i int) string {
	i = i + a.data.offset
	return a.values[a.offsets[i]:a.offsets[i+1]]
}

// ValueOffset returns the offset of the value at index i.
func (a *String) ValueOffset(i int) int {
	if i < 0 || i >= a.data.length {
		panic("arrow/array: index out of range")
	}
	return int(a.offsets[i+a.data.offset])
}

// ValueLen returns the length in bytes of the value at index i.
func (a *String) ValueLen(i int) int {
	beg := a.data.offset + i
	return int(a.offsets[beg+1] - a.offsets[beg])
}

// ValueOffsets returns the offsets of the values in this array, starting
// at the array's offset.
func (a *String) ValueOffsets() []int32 {
	beg := a.data.offset
	end := beg + a.data.length + 1
	return a.offsets[beg:end]
}

func (a *String) String() string {
	o := new(strings.Builder)
	o.WriteString("[")
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			o.WriteString(" ")
		}
		switch {
		case a.IsNull(i):
			o.WriteString(NullValueStr)
		default:
			fmt.Fprintf(o, "%q", a.Value(i))
		}
	}
	o.WriteString("]")
	return o.String()
}

func (a *String) setData(data *Data) {
	if len(data.buffers) != 3 {
		panic("arrow/array: len(data.buffers) != 3")
	}

	var values string
	if vdata := data.buffers[2]; vdata != nil {
		b := vdata.Bytes()
		values = *(*string)(unsafe.Pointer(&b))
	}

	var offsets []int32
	if odata := data.buffers[1]; odata != nil {
		offsets = arrow.CastFromBytesTo[int32](odata.Bytes())
	}

	if data.length > 0 {
		expNumOffsets := data.offset + data.length + 1
		if len(offsets) < expNumOffsets {
			panic(fmt.Errorf("arrow/array: string offset buffer must have at least %d values", expNumOffsets))
		}
		if int(offsets[expNumOffsets-1]) > len(values) {
			panic("arrow/array: string offsets out of bounds of data buffer")
		}
	}

	a.array.setData(data)
	a.values, a.offsets = values, offsets
}

func (a *String) getOneForMarshal(i int) interface{} {
	if a.IsValid(i) {
		return a.Value(i)
	}
	return nil
}

func (a *String) MarshalJSON() ([]byte, error) {
	vals := make([]interface{}, a.Len())
	for i := range vals {
		vals[i] = a.getOneForMarshal(i)
	}
	return json.Marshal(vals)
}

// Equals reports whether o holds the same values as a, see Equal.
func (a *String) Equals(o arrow.Array) bool { return Equal(a, o) }

// RangeEquals compares a[start:end] with o[otherStart:otherStart+end-start].
func (a *String) RangeEquals(start, end, otherStart int, o arrow.Array) bool {
	return SliceEqual(a, int64(start), int64(end), o, int64(otherStart), int64(otherStart+end-start))
}

// Validate checks that the offsets are non-decreasing and stay within the
// data buffer.
func (a *String) Validate() error {
	if err := a.validateBitmap(); err != nil {
		return err
	}
	if a.data.length == 0 {
		return nil
	}

	offsets := a.ValueOffsets()
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return xerrors.Errorf("arrow/array: string offsets decrease at position %d: %w", i-1, arrow.ErrInvalid)
		}
	}
	if offsets[0] < 0 {
		return xerrors.Errorf("arrow/array: negative string offset %d: %w", offsets[0], arrow.ErrInvalid)
	}
	return nil
}

func (a *String) valuesEqual(o arrow.Array, _ equalOption) func(i, j int) bool {
	r := o.(*String)
	return func(i, j int) bool { return a.Value(i) == r.Value(j) }
}

var (
	_ arrow.Array = (*String)(nil)
)
