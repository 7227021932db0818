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

package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocatorsAlign(t *testing.T) {
	allocators := map[string]Allocator{
		"go":      NewGoAllocator(),
		"checked": NewCheckedAllocator(NewGoAllocator()),
	}

	for name, mem := range allocators {
		t.Run(name, func(t *testing.T) {
			for _, sz := range []int{1, 33, 64, 65, 4097, 8192} {
				buf := mem.Allocate(sz)
				require.Len(t, buf, sz)
				assert.Equal(t, sz, cap(buf), "capacity is trimmed to the request")
				assert.Zero(t, addressOf(buf)%alignment, "size %d not aligned", sz)
				mem.Free(buf)
			}

			empty := mem.Allocate(0)
			assert.NotNil(t, empty)
			assert.Empty(t, empty)
			mem.Free(empty)
		})
	}
}

func TestAllocatorReallocateKeepsPrefix(t *testing.T) {
	mem := NewCheckedAllocator(NewGoAllocator())
	defer mem.AssertSize(t, 0)

	for _, sz := range []int{100, 200, 300} {
		buf := mem.Allocate(200)
		for i := range buf {
			buf[i] = byte(i)
		}

		out := mem.Reallocate(sz, buf)
		require.Len(t, out, sz)
		for i := 0; i < sz && i < 200; i++ {
			if out[i] != byte(i) {
				t.Fatalf("byte %d lost after reallocating 200 -> %d bytes", i, sz)
			}
		}
		assert.Equal(t, sz, mem.CurrentAlloc())
		mem.Free(out)
	}
}

func TestRounding(t *testing.T) {
	for _, tc := range []struct{ v, round, exp int }{
		{0, 64, 0},
		{1, 64, 64},
		{60, 64, 64},
		{64, 64, 64},
		{65, 64, 128},
		{13, 8, 16},
		{16, 8, 16},
	} {
		assert.Equal(t, tc.exp, roundToPowerOf2(tc.v, tc.round), "round(%d, %d)", tc.v, tc.round)
		if tc.round == 64 {
			assert.Equal(t, tc.exp, roundUpToMultipleOf64(tc.v))
		}
	}
}
