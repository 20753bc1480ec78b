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
	"fmt"

	"golang.org/x/exp/constraints"
)

// Heap is a binary heap over a dense slice: every parent outranks its
// children under the configured comparator, so the root is always the
// highest-priority element.
type Heap[T any] struct {
	data    []T
	cmp     Comparator[T]
	factory Factory[T]
}

// NewHeap heapifies values bottom-up in O(n). The comparator is required.
func NewHeap[T any](cmp Comparator[T], values ...T) (*Heap[T], error) {
	if cmp == nil {
		return nil, fmt.Errorf("%w: nil comparator", ErrIllegalArguments)
	}

	h := &Heap[T]{data: append([]T(nil), values...), cmp: cmp}
	h.heapify()
	return h, nil
}

func NewHeapWithFactory[T any](cmp Comparator[T], factory Factory[T], values ...T) (*Heap[T], error) {
	h, err := NewHeap(cmp, values...)
	if err != nil {
		return nil, err
	}
	h.factory = factory
	return h, nil
}

// NewOrderedHeap uses the stock Ordered comparator, yielding a max-heap.
func NewOrderedHeap[T constraints.Ordered](values ...T) *Heap[T] {
	h := &Heap[T]{data: append([]T(nil), values...), cmp: Ordered[T]}
	h.heapify()
	return h
}

func (h *Heap[T]) Push(v T) {
	h.data = append(h.data, v)
	h.siftUp(len(h.data) - 1)
}

// Pop removes and returns the root. The last element moves to the root
// position and sifts down.
func (h *Heap[T]) Pop() (T, error) {
	var zero T

	if len(h.data) == 0 {
		return zero, ErrEmptyContainer
	}

	root := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data[last] = zero
	h.data = h.data[:last]

	if last > 0 {
		h.siftDown(0)
	}
	return root, nil
}

// Replace overwrites the root with v, restores the heap invariant with a
// single sift-down and returns the old root. Strictly cheaper than Pop
// followed by Push.
func (h *Heap[T]) Replace(v T) (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}

	root := h.data[0]
	h.data[0] = v
	h.siftDown(0)

	return root, nil
}

// Peek returns the root without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	return h.data[0], true
}

func (h *Heap[T]) Emplace(args ...any) error {
	if h.factory == nil {
		return ErrNoFactory
	}
	h.Push(h.factory(args...))
	return nil
}

func (h *Heap[T]) Len() int {
	return len(h.data)
}

func (h *Heap[T]) IsEmpty() bool {
	return len(h.data) == 0
}

func (h *Heap[T]) Clear() {
	h.data = nil
}

// ToSlice snapshots the backing array in heap order, not priority order.
func (h *Heap[T]) ToSlice() []T {
	return append([]T(nil), h.data...)
}

func (h *Heap[T]) heapify() {
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp(h.data[i], h.data[parent]) <= 0 {
			return
		}

		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

// Ties favor the current position: a child replaces its parent only when
// it strictly outranks it.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.data)
	for {
		top := i
		if l := 2*i + 1; l < n && h.cmp(h.data[l], h.data[top]) > 0 {
			top = l
		}
		if r := 2*i + 2; r < n && h.cmp(h.data[r], h.data[top]) > 0 {
			top = r
		}
		if top == i {
			return
		}

		h.data[i], h.data[top] = h.data[top], h.data[i]
		i = top
	}
}
