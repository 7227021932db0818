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

package arrow

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// NumericType is the set of Go types backing the primitive numeric arrays.
type NumericType interface {
	constraints.Integer | constraints.Float
}

// CastFromBytesTo reinterprets the slice b to a slice of type T.
//
// NOTE: len(b) must be a multiple of T's size.
func CastFromBytesTo[T NumericType](b []byte) []T {
	if cap(b) == 0 {
		return nil
	}
	var z T
	size := int(unsafe.Sizeof(z))
	ptr := (*T)(unsafe.Pointer(unsafe.SliceData(b)))
	return unsafe.Slice(ptr, cap(b)/size)[:len(b)/size]
}

// GetBytes reinterprets the slice of values as a slice of bytes
// sharing the same memory.
func GetBytes[T NumericType](in []T) []byte {
	if cap(in) == 0 {
		return nil
	}
	var z T
	size := int(unsafe.Sizeof(z))
	ptr := (*byte)(unsafe.Pointer(unsafe.SliceData(in)))
	return unsafe.Slice(ptr, cap(in)*size)[:len(in)*size]
}

// SizeOf returns the width in bytes of a value of T.
func SizeOf[T NumericType]() int {
	var z T
	return int(unsafe.Sizeof(z))
}
