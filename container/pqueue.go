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

import "golang.org/x/exp/constraints"

// PriorityQueue exposes a binary heap under queue naming. Every operation
// maps one-to-one onto the heap with an identical contract.
type PriorityQueue[T any] struct {
	heap *Heap[T]
}

func NewPriorityQueue[T any](cmp Comparator[T], values ...T) (*PriorityQueue[T], error) {
	h, err := NewHeap(cmp, values...)
	if err != nil {
		return nil, err
	}
	return &PriorityQueue[T]{heap: h}, nil
}

func NewPriorityQueueWithFactory[T any](cmp Comparator[T], factory Factory[T], values ...T) (*PriorityQueue[T], error) {
	h, err := NewHeapWithFactory(cmp, factory, values...)
	if err != nil {
		return nil, err
	}
	return &PriorityQueue[T]{heap: h}, nil
}

func NewOrderedPriorityQueue[T constraints.Ordered](values ...T) *PriorityQueue[T] {
	return &PriorityQueue[T]{heap: NewOrderedHeap(values...)}
}

func (pq *PriorityQueue[T]) Push(v T) {
	pq.heap.Push(v)
}

func (pq *PriorityQueue[T]) Pop() (T, error) {
	return pq.heap.Pop()
}

func (pq *PriorityQueue[T]) Peek() (T, bool) {
	return pq.heap.Peek()
}

func (pq *PriorityQueue[T]) Replace(v T) (T, error) {
	return pq.heap.Replace(v)
}

func (pq *PriorityQueue[T]) Emplace(args ...any) error {
	return pq.heap.Emplace(args...)
}

func (pq *PriorityQueue[T]) Len() int {
	return pq.heap.Len()
}

func (pq *PriorityQueue[T]) IsEmpty() bool {
	return pq.heap.IsEmpty()
}

func (pq *PriorityQueue[T]) Clear() {
	pq.heap.Clear()
}

// ToSlice snapshots the backing array in heap order, not priority order.
func (pq *PriorityQueue[T]) ToSlice() []T {
	return pq.heap.ToSlice()
}
