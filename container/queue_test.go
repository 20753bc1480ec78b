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

func TestQueueFIFO(t *testing.T) {
	q := NewQueue[int]()

	numElements := 100
	for i := 0; i < numElements; i++ {
		q.Push(i)
	}
	require.Equal(t, numElements, q.Len())

	for i := 0; i < numElements; i++ {
		front, ok := q.Front()
		require.True(t, ok)
		require.Equal(t, i, front)

		v, err := q.Pop()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	require.True(t, q.IsEmpty())
}

func TestQueueEmpty(t *testing.T) {
	q := NewQueue[string]()

	_, err := q.Pop()
	require.ErrorIs(t, err, ErrEmptyContainer)

	_, err = q.Peek()
	require.ErrorIs(t, err, ErrEmptyContainer)

	_, ok := q.Front()
	require.False(t, ok)
}

func TestQueueScenario(t *testing.T) {
	q := NewQueue[string]()
	q.Push("a")
	q.Push("b")

	v, err := q.Pop()
	require.NoError(t, err)
	require.Equal(t, "a", v)

	peek, err := q.Peek()
	require.NoError(t, err)
	require.Equal(t, "b", peek)
}

func TestQueueEmplace(t *testing.T) {
	q := NewQueue[int]()
	require.ErrorIs(t, q.Emplace(1), ErrNoFactory)

	fq := NewQueueWithFactory(func(args ...any) int {
		return args[0].(int) * args[1].(int)
	})
	require.NoError(t, fq.Emplace(2, 3))
	require.NoError(t, fq.Emplace(4, 5))
	require.Equal(t, []int{6, 20}, fq.ToSlice())
}

func TestQueueCloneEqualSwap(t *testing.T) {
	a := NewQueue(1, 2, 3)

	cp, err := a.Clone(nil)
	require.NoError(t, err)

	eq, err := QueuesEqual(a, cp, nil)
	require.NoError(t, err)
	require.True(t, eq)

	_, err = cp.Pop()
	require.NoError(t, err)
	eq, err = QueuesEqual(a, cp, nil)
	require.NoError(t, err)
	require.False(t, eq)

	b := NewQueue(7)
	require.NoError(t, SwapQueues(a, b))
	require.Equal(t, []int{7}, a.ToSlice())
	require.Equal(t, []int{1, 2, 3}, b.ToSlice())

	f := func(args ...any) int { return args[0].(int) }
	require.ErrorIs(t, SwapQueues(a, NewQueueWithFactory(f)), ErrFactoryMismatch)
	require.ErrorIs(t, SwapQueues[int](nil, b), ErrIllegalArguments)

	_, err = QueuesEqual[int](nil, b, nil)
	require.ErrorIs(t, err, ErrIllegalArguments)
}
