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

package tools

import (
	"reflect"

	"github.com/colvec/arrowcore/arrow"
	"golang.org/x/exp/constraints"
)

var typMap = map[reflect.Type]arrow.DataType{
	reflect.TypeOf(int8(0)):    arrow.PrimitiveTypes.Int8,
	reflect.TypeOf(int16(0)):   arrow.PrimitiveTypes.Int16,
	reflect.TypeOf(int32(0)):   arrow.PrimitiveTypes.Int32,
	reflect.TypeOf(int64(0)):   arrow.PrimitiveTypes.Int64,
	reflect.TypeOf(uint8(0)):   arrow.PrimitiveTypes.Uint8,
	reflect.TypeOf(uint16(0)):  arrow.PrimitiveTypes.Uint16,
	reflect.TypeOf(uint32(0)):  arrow.PrimitiveTypes.Uint32,
	reflect.TypeOf(uint64(0)):  arrow.PrimitiveTypes.Uint64,
	reflect.TypeOf(float32(0)): arrow.PrimitiveTypes.Float32,
	reflect.TypeOf(float64(0)): arrow.PrimitiveTypes.Float64,
	reflect.TypeOf(""):         arrow.BinaryTypes.String,
}

// GetDataType returns the arrow type matching the Go type T.
func GetDataType[T constraints.Integer | constraints.Float | string]() arrow.DataType {
	var z T
	return typMap[reflect.TypeOf(z)]
}
