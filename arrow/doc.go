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

/*
Package arrow provides an implementation of the core of the Apache Arrow
columnar format: a type system, reference-counted immutable memory and
typed, nullable arrays that share their storage when sliced.

Arrays

An arrow.Array is a fixed-length, nullable, sliceable sequence of values of
a single DataType. Concrete arrays live in the array package: primitive
numeric arrays, UTF-8 string arrays and dictionary-encoded arrays.

Dictionary encoding

A dictionary-encoded array stores integer codes (the indices) into a shared
array of distinct values (the dictionary). The dictionary is owned by the
DictionaryType, so every array of that type shares the same values:

	dictionary: ["foo", "bar", "baz"]
	indices:    [1, 2, null, 0, 2, 0]
	logical:    ["bar", "baz", null, "foo", "baz", "foo"]

Memory

Arrays and buffers are reference counted through Retain and Release. Slicing
never copies: a slice retains the parent's buffers and adjusts its offset
and length. Nothing is mutated after construction, so arrays may be read
from multiple goroutines without synchronization.
*/
package arrow

// stringer
//go:generate stringer -type=Type
