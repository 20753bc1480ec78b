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

import "fmt"

// Queue is a FIFO view over a doubly-linked list: elements are pushed at
// the tail and popped at the head in arrival order.
type Queue[T any] struct {
	list *List[T]
}

func NewQueue[T any](values ...T) *Queue[T] {
	return &Queue[T]{list: NewList(values...)}
}

func NewQueueWithFactory[T any](factory Factory[T], values ...T) *Queue[T] {
	return &Queue[T]{list: NewListWithFactory(factory, values...)}
}

func (q *Queue[T]) Push(v T) {
	q.list.PushBack(v)
}

func (q *Queue[T]) Pop() (T, error) {
	return q.list.PopFront()
}

// Peek returns the element at the head of the queue.
func (q *Queue[T]) Peek() (T, error) {
	return q.list.Front()
}

// Front is the non-failing variant of Peek.
func (q *Queue[T]) Front() (T, bool) {
	v, err := q.list.Front()
	return v, err == nil
}

func (q *Queue[T]) Emplace(args ...any) error {
	return q.list.EmplaceBack(args...)
}

func (q *Queue[T]) Len() int {
	return q.list.Len()
}

func (q *Queue[T]) IsEmpty() bool {
	return q.list.IsEmpty()
}

func (q *Queue[T]) Clear() {
	q.list.Clear()
}

// ToSlice snapshots the queue head to tail.
func (q *Queue[T]) ToSlice() []T {
	return q.list.ToSlice()
}

// Clone deep-copies every element into a new queue. A nil fn selects the
// default deep copy.
func (q *Queue[T]) Clone(fn CloneFunc[T]) (*Queue[T], error) {
	cp, err := cloneList(q.list, fn)
	if err != nil {
		return nil, err
	}
	return &Queue[T]{list: cp}, nil
}

// QueuesEqual compares a and b element-wise. A nil eq compares with
// reflect.DeepEqual.
func QueuesEqual[T any](a, b *Queue[T], eq EqualFunc[T]) (bool, error) {
	if a == nil || b == nil {
		return false, fmt.Errorf("%w: nil queue", ErrIllegalArguments)
	}
	return listsEqual(a.list, b.list, eq), nil
}

// SwapQueues exchanges the contents of a and b in O(1). Both queues must
// share the same factory configuration.
func SwapQueues[T any](a, b *Queue[T]) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil queue", ErrIllegalArguments)
	}
	if !sameFactory(a.list.factory, b.list.factory) {
		return ErrFactoryMismatch
	}
	return SwapLists(a.list, b.list)
}
