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

package arrow_test

import (
	"testing"

	"github.com/colvec/arrowcore/arrow"
	"github.com/stretchr/testify/assert"
)

func TestCastFromBytesTo(t *testing.T) {
	vals := []int32{1, -2, 3}
	b := arrow.GetBytes(vals)
	assert.Len(t, b, 12)

	got := arrow.CastFromBytesTo[int32](b)
	assert.Equal(t, vals, got)

	// the cast shares memory with its input
	got[1] = 7
	assert.Equal(t, int32(7), vals[1])

	assert.Equal(t, []uint16{0x0201, 0x0403}, arrow.CastFromBytesTo[uint16]([]byte{1, 2, 3, 4}))
	assert.Nil(t, arrow.CastFromBytesTo[float64](nil))
	assert.Nil(t, arrow.GetBytes[int8](nil))
}

func TestSizeOf(t *testing.T) {
	assert.Equal(t, 1, arrow.SizeOf[uint8]())
	assert.Equal(t, 2, arrow.SizeOf[int16]())
	assert.Equal(t, 4, arrow.SizeOf[float32]())
	assert.Equal(t, 8, arrow.SizeOf[uint64]())
}
