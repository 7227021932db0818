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

	"github.com/colvec/arrowcore/arrow"
	"github.com/colvec/arrowcore/arrow/internal/debug"
	"github.com/goccy/go-json"
	"golang.org/x/xerrors"
)

// Numeric represents an immutable sequence of fixed-width numeric values.
//
// The values slice starts at the array's offset, so Value(i) is the i-th
// logical element regardless of how the array was sliced.
type Numeric[T arrow.NumericType] struct {
	array
	values []T
}

type (
	Int8    = Numeric[int8]
	Int16   = Numeric[int16]
	Int32   = Numeric[int32]
	Int64   = Numeric[int64]
	Uint8   = Numeric[uint8]
	Uint16  = Numeric[uint16]
	Uint32  = Numeric[uint32]
	Uint64  = Numeric[uint64]
	Float32 = Numeric[float32]
	Float64 = Numeric[float64]
)

// NewNumericData constructs a new numeric array from data. The first buffer
// is the validity bitmap and the second holds the values.
func NewNumericData[T arrow.NumericType](data arrow.ArrayData) *Numeric[T] {
	a := &Numeric[T]{}
	a.refCount = 1
	a.setData(data.(*Data))
	return a
}

// Value returns the value at the specified index.
func (a *Numeric[T]) Value(i int) T { return a.values[i] }

// Values returns the values.
func (a *Numeric[T]) Values() []T { return a.values }

func (a *Numeric[T]) String() string {
	o := new(strings.Builder)
	o.WriteString("[")
	for i, v := range a.values {
		if i > 0 {
			fmt.Fprintf(o, " ")
		}
		switch {
		case a.IsNull(i):
			o.WriteString(NullValueStr)
		default:
			fmt.Fprintf(o, "%v", v)
		}
	}
	o.WriteString("]")
	return o.String()
}

func (a *Numeric[T]) setData(data *Data) {
	debug.Assert(len(data.buffers) == 2, "arrow/array: numeric arrays need a validity and a values buffer")
	if fw, ok := data.dtype.(arrow.FixedWidthDataType); ok {
		debug.Assert(fw.Bytes() == arrow.SizeOf[T](), "arrow/array: value width does not match data type")
	}

	a.array.setData(data)
	a.values = nil
	if len(data.buffers) < 2 || data.buffers[1] == nil {
		return
	}

	vals := arrow.CastFromBytesTo[T](data.buffers[1].Bytes())
	beg := a.array.data.offset
	end := beg + a.array.data.length
	// a short buffer is reported by Validate
	if end <= len(vals) {
		a.values = vals[beg:end]
	}
}

func (a *Numeric[T]) getOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.values[i]
}

func (a *Numeric[T]) MarshalJSON() ([]byte, error) {
	vals := make([]interface{}, a.Len())
	for i := range vals {
		vals[i] = a.getOneForMarshal(i)
	}
	return json.Marshal(vals)
}

// Equals reports whether o holds the same values as a, see Equal.
func (a *Numeric[T]) Equals(o arrow.Array) bool { return Equal(a, o) }

// RangeEquals compares a[start:end] with o[otherStart:otherStart+end-start].
func (a *Numeric[T]) RangeEquals(start, end, otherStart int, o arrow.Array) bool {
	return SliceEqual(a, int64(start), int64(end), o, int64(otherStart), int64(otherStart+end-start))
}

// Validate checks that the buffers are large enough for the offset and
// length of the array.
func (a *Numeric[T]) Validate() error {
	if len(a.data.buffers) != 2 {
		return xerrors.Errorf("arrow/array: %s array expects 2 buffers, got %d: %w", a.DataType(), len(a.data.buffers), arrow.ErrInvalid)
	}
	if err := a.validateBitmap(); err != nil {
		return err
	}

	need := (a.data.offset + a.data.length) * arrow.SizeOf[T]()
	got := 0
	if vals := a.data.buffers[1]; vals != nil {
		got = vals.Len()
	}
	if a.data.length > 0 && got < need {
		return xerrors.Errorf("arrow/array: %s values buffer has %d bytes, need %d: %w", a.DataType(), got, need, arrow.ErrInvalid)
	}
	return nil
}

// valuesEqual returns a comparator of the values at i in a and j in o.
// Callers guarantee o is of the same type and both slots are valid.
func (a *Numeric[T]) valuesEqual(o arrow.Array, opt equalOption) func(i, j int) bool {
	lv, rv := a.values, o.(*Numeric[T]).values
	if opt.approx && arrow.IsFloating(a.DataType().ID()) {
		return func(i, j int) bool { return opt.floatsEqual(float64(lv[i]), float64(rv[j])) }
	}
	return func(i, j int) bool { return lv[i] == rv[j] }
}

var (
	_ arrow.Array = (*Int8)(nil)
	_ arrow.Array = (*Uint64)(nil)
	_ arrow.Array = (*Float64)(nil)
)
