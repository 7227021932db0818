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
Package array provides the concrete Arrow arrays: fixed-width numeric
arrays, UTF-8 strings and dictionary-encoded arrays, together with the
zero-copy slicing and null-aware equality they share.

Arrays are built from Data, which ties a DataType to a set of reference
counted buffers, an offset and a length. The first buffer is always the
validity bitmap; a nil bitmap means every slot is valid.

	data := array.NewData(arrow.PrimitiveTypes.Int16, 6,
		[]*memory.Buffer{validity, values}, nil, array.UnknownNullCount, 0)
	defer data.Release()
	indices := array.MakeFromData(data)
	defer indices.Release()

	typ := arrow.DictionaryOf(arrow.PrimitiveTypes.Int16, dict)
	defer typ.Release()
	arr := array.NewDictionaryArray(typ, indices)
	defer arr.Release()
*/
package array
