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
	"bytes"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/colvec/arrowcore/arrow"
	"github.com/colvec/arrowcore/arrow/internal/debug"
	"github.com/goccy/go-json"
	"golang.org/x/xerrors"
)

// Dictionary represents the type for dictionary-encoded data with a data
// dependent dictionary.
//
// A dictionary array contains an array of non-negative integers (the
// "dictionary indices") along with a data type containing a "dictionary"
// corresponding to the distinct values represented in the data.
//
// For example, the array:
//
//	["foo", "bar", "foo", "bar", "foo", "bar"]
//
// with dictionary ["bar", "foo"], would have the representation of:
//
//	indices: [1, 0, 1, 0, 1, 0]
//	dictionary: ["bar", "foo"]
//
// The indices in principle may be any integer type. Length, offset, null
// count and validity are those of the indices. The dictionary belongs to the
// data type and is shared, never copied, by every array and slice of it.
type Dictionary struct {
	array

	dictType *arrow.DictionaryType
	indices  arrow.Array
	dict     arrow.Array
}

// NewDictionaryArray constructs a dictionary array from the dictionary
// type and an array of indices. Nothing is copied: the result shares the
// buffers of indices and the dictionary of typ.
//
// No validation is done here, see Validate.
func NewDictionaryArray(typ *arrow.DictionaryType, indices arrow.Array) *Dictionary {
	idata := indices.Data()
	data := NewData(typ, indices.Len(), idata.Buffers(), []arrow.ArrayData{idata}, indices.NullN(), indices.Offset())
	defer data.Release()
	return NewDictionaryData(data)
}

// NewDictionaryData creates a dictionary array from data whose type is a
// *arrow.DictionaryType. The buffers are those of the indices; the single
// child, when present, carries the type the indices were built with.
func NewDictionaryData(data arrow.ArrayData) *Dictionary {
	a := &Dictionary{}
	a.refCount = 1
	a.setData(data.(*Data))
	return a
}

func (d *Dictionary) Retain() {
	atomic.AddInt64(&d.refCount, 1)
}

func (d *Dictionary) Release() {
	debug.Assert(atomic.LoadInt64(&d.refCount) > 0, "too many releases")

	if atomic.AddInt64(&d.refCount, -1) == 0 {
		d.data.Release()
		d.data, d.nullBitmapBytes = nil, nil
		d.indices.Release()
		d.indices = nil
		d.dict.Release()
		d.dict = nil
	}
}

func (d *Dictionary) setData(data *Data) {
	dt, ok := data.dtype.(*arrow.DictionaryType)
	if !ok {
		panic(fmt.Errorf("%w: arrow/array: dictionary array requires a dictionary type, got %s", arrow.ErrType, data.dtype))
	}
	if dt.Dictionary == nil {
		panic("arrow/array: no dictionary set in type for Dictionary array")
	}

	d.array.setData(data)
	d.dictType = dt

	indexType := dt.IndexType
	if len(data.childData) > 0 && data.childData[0] != nil {
		indexType = data.childData[0].DataType()
	}
	if !arrow.TypeEqual(indexType, dt.IndexType) {
		debug.Log(func() string {
			return fmt.Sprintf("arrow/array: dictionary indices of type %s do not match index type %s", indexType, dt.IndexType)
		})
	}

	indexData := NewData(indexType, data.length, data.buffers, nil, int(atomic.LoadInt64(&data.nulls)), data.offset)
	defer indexData.Release()

	if d.indices != nil {
		d.indices.Release()
	}
	d.indices = MakeFromData(indexData)

	dt.Dictionary.Retain()
	if d.dict != nil {
		d.dict.Release()
	}
	d.dict = dt.Dictionary
}

// DictionaryType returns the dictionary type of the array.
func (d *Dictionary) DictionaryType() *arrow.DictionaryType { return d.dictType }

// Dictionary returns the values array that makes up the dictionary for this
// array. It is owned by the dictionary array; call Retain to keep it beyond
// the lifetime of d.
func (d *Dictionary) Dictionary() arrow.Array { return d.dict }

// Indices returns the underlying array of indices, sliced like d. It is
// owned by the dictionary array; call Retain to keep it beyond the
// lifetime of d.
func (d *Dictionary) Indices() arrow.Array { return d.indices }

// GetValueIndex returns the dictionary index stored at position i. The
// result is meaningless when i is null.
func (d *Dictionary) GetValueIndex(i int) int {
	return valueIndex(d.indices, i)
}

func valueIndex(indices arrow.Array, i int) int {
	code, _ := indexCode(indices, i)
	return int(code)
}

// indexCode returns the index at position i as a 64-bit two's complement
// pattern together with its sign. Two codes of any widths are equal iff
// both results are.
func indexCode(indices arrow.Array, i int) (code uint64, neg bool) {
	switch idx := indices.(type) {
	case *Int8:
		v := idx.Value(i)
		return uint64(v), v < 0
	case *Uint8:
		return uint64(idx.Value(i)), false
	case *Int16:
		v := idx.Value(i)
		return uint64(v), v < 0
	case *Uint16:
		return uint64(idx.Value(i)), false
	case *Int32:
		v := idx.Value(i)
		return uint64(v), v < 0
	case *Uint32:
		return uint64(idx.Value(i)), false
	case *Int64:
		v := idx.Value(i)
		return uint64(v), v < 0
	case *Uint64:
		return idx.Value(i), false
	}
	debug.Assert(false, "unreachable dictionary index")
	return 0, true
}

func formatCode(code uint64, neg bool) string {
	if neg {
		return strconv.FormatInt(int64(code), 10)
	}
	return strconv.FormatUint(code, 10)
}

// Validate checks the type of the indices, which must be an integer type
// of any width or signedness. The values of the indices are not checked
// against the size of the dictionary, see ValidateFull.
func (d *Dictionary) Validate() error {
	if typ := d.indices.DataType(); !arrow.IsInteger(typ.ID()) {
		return xerrors.Errorf("arrow/array: dictionary indices must be of integer type, got %s: %w", typ, arrow.ErrInvalidIndexType)
	}
	return nil
}

// ValidateFull runs Validate and then checks that every valid index lies
// within [0, Dictionary().Len()).
func (d *Dictionary) ValidateFull() error {
	if err := d.Validate(); err != nil {
		return err
	}

	n := d.dict.Len()
	for i := 0; i < d.Len(); i++ {
		if d.IsNull(i) {
			continue
		}
		if code, neg := indexCode(d.indices, i); neg || code >= uint64(n) {
			return xerrors.Errorf("arrow/array: dictionary index %s at position %d out of range [0, %d): %w", formatCode(code, neg), i, n, arrow.ErrIndex)
		}
	}
	return nil
}

func (d *Dictionary) getOneForMarshal(i int) interface{} {
	if d.IsNull(i) {
		return nil
	}
	vidx := d.GetValueIndex(i)
	return d.dict.(arraymarshal).getOneForMarshal(vidx)
}

// MarshalJSON renders the decoded values, not the indices.
func (d *Dictionary) MarshalJSON() ([]byte, error) {
	vals := make([]interface{}, d.Len())
	for i := range vals {
		vals[i] = d.getOneForMarshal(i)
	}
	return json.Marshal(vals)
}

func (d *Dictionary) String() string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "{ dictionary: %v\n  indices: %v }", d.dict, d.indices)
	return b.String()
}

// Equals reports whether o is a dictionary array of an equal dictionary
// type with equal indices. Indices are compared as codes; the dictionary
// values are compared once, as part of the type.
func (d *Dictionary) Equals(o arrow.Array) bool { return Equal(d, o) }

// RangeEquals compares d[start:end] with o[otherStart:otherStart+end-start].
func (d *Dictionary) RangeEquals(start, end, otherStart int, o arrow.Array) bool {
	return SliceEqual(d, int64(start), int64(end), o, int64(otherStart), int64(otherStart+end-start))
}

func (d *Dictionary) valuesEqual(o arrow.Array, opt equalOption) func(i, j int) bool {
	r := o.(*Dictionary)
	if arrow.TypeEqual(d.indices.DataType(), r.indices.DataType()) {
		return d.indices.(valueComparer).valuesEqual(r.indices, opt)
	}
	return func(i, j int) bool {
		lc, lneg := indexCode(d.indices, i)
		rc, rneg := indexCode(r.indices, j)
		return lc == rc && lneg == rneg
	}
}

var (
	_ arrow.Array = (*Dictionary)(nil)
)
