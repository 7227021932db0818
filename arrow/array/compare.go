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
	"math"

	"github.com/colvec/arrowcore/arrow"
)

// valueComparer is implemented by every concrete array. The returned
// function compares the value at i in the receiver with the value at j in
// other; it is only called for slots that are valid on both sides and
// other always has the receiver's type.
type valueComparer interface {
	arrow.Array

	valuesEqual(other arrow.Array, opt equalOption) func(i, j int) bool
}

// Equal reports whether the two provided arrays are equal.
//
// Arrays are equal when they have the same length and type and every slot
// is either null in both arrays or valid in both with equal values. The
// bytes beneath a null slot are never looked at.
func Equal(left, right arrow.Array) bool {
	return arrayEqual(left, right, equalOption{})
}

// SliceEqual reports whether slices left[lbeg:lend] and right[rbeg:rend] are equal.
//
// The ranges are compared in place, no slice is allocated. SliceEqual
// panics if either range is outside its array.
func SliceEqual(left arrow.Array, lbeg, lend int64, right arrow.Array, rbeg, rend int64) bool {
	checkRange(left, lbeg, lend)
	checkRange(right, rbeg, rend)

	switch {
	case lend-lbeg != rend-rbeg:
		return false
	case left == right && lbeg == rbeg:
		return true
	case !typeEqual(left.DataType(), right.DataType(), equalOption{}):
		return false
	}
	return rangeEqual(left, int(lbeg), right, int(rbeg), int(lend-lbeg), equalOption{})
}

// EqualOption is a functional option type used to configure how arrays
// are compared by ApproxEqual.
type EqualOption func(*equalOption)

type equalOption struct {
	approx bool    // floating values compared within atol
	atol   float64 // absolute tolerance
	nansEq bool    // whether NaNs are considered equal.
}

const defaultAbsoluteTolerance = 1e-5

// WithNaNsEqual configures the comparison functions so that NaNs are
// considered equal.
func WithNaNsEqual(v bool) EqualOption {
	return func(o *equalOption) {
		o.nansEq = v
	}
}

// WithAbsTolerance configures the comparison functions so that 2 floating
// point values v1 and v2 are considered equal if |v1-v2| <= atol.
func WithAbsTolerance(atol float64) EqualOption {
	return func(o *equalOption) {
		o.atol = atol
	}
}

// ApproxEqual reports whether the two provided arrays are approximately
// equal. Floating point values, including those held in dictionaries, are
// compared within a tolerance; everything else is compared as in Equal.
func ApproxEqual(left, right arrow.Array, opts ...EqualOption) bool {
	opt := equalOption{approx: true, atol: defaultAbsoluteTolerance}
	for _, o := range opts {
		o(&opt)
	}
	return arrayEqual(left, right, opt)
}

func (opt equalOption) floatsEqual(a, b float64) bool {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return opt.nansEq && math.IsNaN(a) && math.IsNaN(b)
	case math.IsInf(a, 0) || math.IsInf(b, 0):
		return a == b
	}
	return math.Abs(a-b) <= opt.atol
}

func arrayEqual(left, right arrow.Array, opt equalOption) bool {
	switch {
	case left == right:
		return true
	case left.Len() != right.Len():
		return false
	case !typeEqual(left.DataType(), right.DataType(), opt):
		return false
	}
	return rangeEqual(left, 0, right, 0, left.Len(), opt)
}

// typeEqual is arrow.TypeEqual, except that dictionaries are compared with
// the tolerance of opt.
func typeEqual(left, right arrow.DataType, opt equalOption) bool {
	if !opt.approx {
		return arrow.TypeEqual(left, right)
	}

	l, ok := left.(*arrow.DictionaryType)
	if !ok {
		return arrow.TypeEqual(left, right)
	}
	r, ok := right.(*arrow.DictionaryType)
	switch {
	case !ok:
		return false
	case l == r:
		return true
	case !arrow.TypeEqual(l.IndexType, r.IndexType) || l.Ordered != r.Ordered:
		return false
	case l.Dictionary == nil || r.Dictionary == nil:
		return l.Dictionary == nil && r.Dictionary == nil
	}
	return arrayEqual(l.Dictionary, r.Dictionary, opt)
}

// rangeEqual compares n slots starting at lbeg in left and rbeg in right,
// which must be of equal types.
//
// Each position is merged on validity first: null on both sides is equal,
// null on one side only is unequal, and only valid pairs have their values
// compared.
func rangeEqual(left arrow.Array, lbeg int, right arrow.Array, rbeg, n int, opt equalOption) bool {
	if n == 0 {
		return true
	}

	lc, ok := left.(valueComparer)
	if !ok {
		panic(fmt.Errorf("arrow/array: unknown array type %T", left))
	}
	valuesEqual := lc.valuesEqual(right, opt)

	for i := 0; i < n; i++ {
		li, ri := lbeg+i, rbeg+i
		lvalid, rvalid := left.IsValid(li), right.IsValid(ri)
		switch {
		case !lvalid && !rvalid:
			continue
		case lvalid != rvalid:
			return false
		case !valuesEqual(li, ri):
			return false
		}
	}
	return true
}

func checkRange(arr arrow.Array, beg, end int64) {
	if beg < 0 || beg > end || end > int64(arr.Len()) {
		panic(fmt.Errorf("arrow/array: range [%d:%d] out of bounds for array of length %d", beg, end, arr.Len()))
	}
}
