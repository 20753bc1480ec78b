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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriorityQueueOrdering(t *testing.T) {
	pq := NewOrderedPriorityQueue[int]()
	require.True(t, pq.IsEmpty())

	for _, v := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		pq.Push(v)
	}
	require.Equal(t, 8, pq.Len())

	expected := []int{9, 6, 5, 4, 3, 2, 1, 1}
	for _, e := range expected {
		v, err := pq.Pop()
		require.NoError(t, err)
		require.Equal(t, e, v)
	}

	_, err := pq.Pop()
	require.ErrorIs(t, err, ErrEmptyContainer)
}

func TestPriorityQueueCustomComparator(t *testing.T) {
	type task struct {
		name     string
		priority int
	}

	pq, err := NewPriorityQueue(func(a, b task) int {
		return a.priority - b.priority
	})
	require.NoError(t, err)

	pq.Push(task{name: "low", priority: 1})
	pq.Push(task{name: "high", priority: 10})
	pq.Push(task{name: "mid", priority: 5})

	next, ok := pq.Peek()
	require.True(t, ok)
	require.Equal(t, "high", next.name)

	old, err := pq.Replace(task{name: "urgent", priority: 20})
	require.NoError(t, err)
	require.Equal(t, "high", old.name)

	v, err := pq.Pop()
	require.NoError(t, err)
	require.Equal(t, "urgent", v.name)

	_, err = NewPriorityQueue[task](nil)
	require.ErrorIs(t, err, ErrIllegalArguments)
}

func TestPriorityQueueEmplace(t *testing.T) {
	pq := NewOrderedPriorityQueue[int]()
	require.ErrorIs(t, pq.Emplace(1), ErrNoFactory)

	fpq, err := NewPriorityQueueWithFactory(Ordered[int], func(args ...any) int {
		return args[0].(int) + args[1].(int)
	})
	require.NoError(t, err)

	require.NoError(t, fpq.Emplace(1, 2))
	require.NoError(t, fpq.Emplace(10, 20))

	top, ok := fpq.Peek()
	require.True(t, ok)
	require.Equal(t, 30, top)
}

func TestPriorityQueueClearAndSnapshot(t *testing.T) {
	pq := NewOrderedPriorityQueue(2, 9, 4)

	snap := pq.ToSlice()
	require.Len(t, snap, 3)
	require.Equal(t, 9, snap[0]) // heap order puts the root first

	pq.Clear()
	require.True(t, pq.IsEmpty())

	_, ok := pq.Peek()
	require.False(t, ok)
}
