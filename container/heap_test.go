/*
Copyright 2025 Codenotary Inc. All rights reserved.

SPDX-License-Identifier: BUSL-1.1
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://mariadb.com/bsl11/

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package container

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireHeapInvariant[T any](t *testing.T, h *Heap[T]) {
	t.Helper()

	data := h.ToSlice()
	for i := range data {
		for _, c := range []int{2*i + 1, 2*i + 2} {
			if c < len(data) {
				require.GreaterOrEqual(t, h.cmp(data[i], data[c]), 0)
			}
		}
	}
}

func TestHeapPushPop(t *testing.T) {
	h := NewOrderedHeap[int]()
	require.True(t, h.IsEmpty())

	numElements := 100
	for i := 0; i < numElements; i++ {
		h.Push(rand.Intn(50))
		requireHeapInvariant(t, h)
	}
	require.Equal(t, numElements, h.Len())

	prev, err := h.Pop()
	require.NoError(t, err)
	for !h.IsEmpty() {
		v, err := h.Pop()
		require.NoError(t, err)
		require.LessOrEqual(t, v, prev)
		requireHeapInvariant(t, h)
		prev = v
	}

	_, err = h.Pop()
	require.ErrorIs(t, err, ErrEmptyContainer)
}

func TestHeapScenario(t *testing.T) {
	h := NewOrderedHeap(3, 1, 4, 1, 5)
	requireHeapInvariant(t, h)

	v, err := h.Pop()
	require.NoError(t, err)
	require.Equal(t, 5, v)

	v, err = h.Pop()
	require.NoError(t, err)
	require.Equal(t, 4, v)
}

func TestHeapSingleElement(t *testing.T) {
	h := NewOrderedHeap(42)

	v, err := h.Pop()
	require.NoError(t, err)
	require.Equal(t, 42, v)
	require.True(t, h.IsEmpty())
}

func TestHeapReplace(t *testing.T) {
	h := NewOrderedHeap[int]()

	_, err := h.Replace(1)
	require.ErrorIs(t, err, ErrEmptyContainer)

	for _, v := range []int{5, 3, 8, 1} {
		h.Push(v)
	}

	old, err := h.Replace(4)
	require.NoError(t, err)
	require.Equal(t, 8, old)
	requireHeapInvariant(t, h)
	require.Equal(t, 4, h.Len())

	top, ok := h.Peek()
	require.True(t, ok)
	require.Equal(t, 5, top)
}

func TestHeapPeek(t *testing.T) {
	h := NewOrderedHeap[int]()

	_, ok := h.Peek()
	require.False(t, ok)

	h.Push(2)
	h.Push(7)

	top, ok := h.Peek()
	require.True(t, ok)
	require.Equal(t, 7, top)
	require.Equal(t, 2, h.Len())
}

func TestHeapCustomComparator(t *testing.T) {
	// min-heap: inverted ranking
	h, err := NewHeap(func(a, b int) int { return b - a }, 3, 1, 4, 1, 5)
	require.NoError(t, err)

	expected := []int{1, 1, 3, 4, 5}
	for _, e := range expected {
		v, err := h.Pop()
		require.NoError(t, err)
		require.Equal(t, e, v)
	}

	_, err = NewHeap[int](nil)
	require.ErrorIs(t, err, ErrIllegalArguments)
}

func TestHeapHeapifyInvariant(t *testing.T) {
	values := rand.Perm(257)
	h := NewOrderedHeap(values...)
	requireHeapInvariant(t, h)
	require.Equal(t, len(values), h.Len())
}

func TestHeapEmplace(t *testing.T) {
	h := NewOrderedHeap[int]()
	require.ErrorIs(t, h.Emplace(1), ErrNoFactory)

	fh, err := NewHeapWithFactory(Ordered[int], func(args ...any) int {
		return args[0].(int) * 10
	})
	require.NoError(t, err)

	require.NoError(t, fh.Emplace(3))
	require.NoError(t, fh.Emplace(7))

	top, ok := fh.Peek()
	require.True(t, ok)
	require.Equal(t, 70, top)
}

func TestHeapClear(t *testing.T) {
	h := NewOrderedHeap(1, 2, 3)

	h.Clear()
	require.True(t, h.IsEmpty())
	require.Zero(t, h.Len())
	require.Empty(t, h.ToSlice())

	h.Push(9)
	require.Equal(t, 1, h.Len())
}
