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

package memory_test

import (
	"testing"

	"github.com/colvec/arrowcore/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResizableBuffer(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	buf := memory.NewResizableBuffer(mem)
	buf.Retain() // refCount == 2

	exp := 10
	buf.Resize(exp)
	assert.NotNil(t, buf.Bytes())
	assert.Equal(t, exp, len(buf.Bytes()))
	assert.Equal(t, exp, buf.Len())
	assert.True(t, buf.Mutable())

	buf.Release() // refCount == 1
	assert.NotNil(t, buf.Bytes())

	buf.Release() // refCount == 0
	assert.Nil(t, buf.Bytes())
	assert.Zero(t, buf.Len())
}

func TestBufferBytesNotOwned(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	buf := memory.NewBufferBytes(data)
	buf.Retain()
	buf.Release()
	buf.Release()

	// wrapped bytes are never freed
	assert.Equal(t, data, buf.Bytes())
	assert.False(t, buf.Mutable())
}

func TestBufferReset(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	buf := memory.NewResizableBuffer(mem)

	newBytes := []byte("some-new-bytes")
	buf.Reset(newBytes)
	assert.Equal(t, newBytes, buf.Bytes())
	assert.Equal(t, len(newBytes), buf.Len())
}

func TestBufferSlice(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	buf := memory.NewResizableBuffer(mem)
	buf.Resize(1024)
	assert.Equal(t, 1024, mem.CurrentAlloc())
	for i := range buf.Bytes() {
		buf.Bytes()[i] = byte(i)
	}

	slice := memory.SliceBuffer(buf, 512, 256)
	require.Same(t, buf, slice.Parent())
	buf.Release()

	// the slice keeps its parent alive
	assert.Equal(t, 1024, mem.CurrentAlloc())
	assert.Equal(t, 256, slice.Len())
	assert.EqualValues(t, 0, slice.Bytes()[0])
	assert.EqualValues(t, 255, slice.Bytes()[255])

	slice.Release()
	assert.Zero(t, mem.CurrentAlloc())
}

func TestBufferResizeShrink(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	buf := memory.NewResizableBuffer(mem)
	defer buf.Release()

	buf.Resize(200)
	assert.Equal(t, 256, buf.Cap())

	buf.ResizeNoShrink(10)
	assert.Equal(t, 10, buf.Len())
	assert.Equal(t, 256, buf.Cap())

	buf.Resize(10)
	assert.Equal(t, 64, buf.Cap())

	buf.Resize(0)
	assert.Zero(t, buf.Cap())
}

func TestReleaseBuffers(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	a := memory.NewResizableBuffer(mem)
	a.Resize(16)
	b := memory.NewResizableBuffer(mem)
	b.Resize(32)

	memory.ReleaseBuffers([]*memory.Buffer{a, nil, b})
}
