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

// Package container provides generic linear and priority-ordered
// containers: a doubly-linked list, LIFO/FIFO/double-ended views over it,
// and a binary-heap priority queue. Containers are not safe for concurrent
// use; concurrent mutation of one instance requires external
// synchronization.
package container

import "fmt"

type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// List is a doubly-linked sequence with O(1) endpoint operations and O(n)
// indexed operations. Stack, Queue and Deque are policy views over it.
type List[T any] struct {
	head    *node[T]
	tail    *node[T]
	n       int
	factory Factory[T]
}

func NewList[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// NewListWithFactory configures the list for Emplace operations: the
// factory builds every emplaced value.
func NewListWithFactory[T any](factory Factory[T], values ...T) *List[T] {
	l := NewList(values...)
	l.factory = factory
	return l
}

func (l *List[T]) Len() int {
	return l.n
}

func (l *List[T]) IsEmpty() bool {
	return l.n == 0
}

func (l *List[T]) PushFront(v T) {
	nd := &node[T]{value: v, next: l.head}
	if l.head == nil {
		l.tail = nd
	} else {
		l.head.prev = nd
	}
	l.head = nd

	l.n++
}

func (l *List[T]) PushBack(v T) {
	nd := &node[T]{value: v, prev: l.tail}
	if l.tail == nil {
		l.head = nd
	} else {
		l.tail.next = nd
	}
	l.tail = nd

	l.n++
}

func (l *List[T]) PopFront() (T, error) {
	if l.n == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}

	nd := l.head
	v := nd.value
	l.unlink(nd)

	return v, nil
}

func (l *List[T]) PopBack() (T, error) {
	if l.n == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}

	nd := l.tail
	v := nd.value
	l.unlink(nd)

	return v, nil
}

// InsertAt splices v in so that it becomes the element at index i.
// Valid indices range over [0, Len()]; i == Len() appends.
func (l *List[T]) InsertAt(v T, i int) error {
	if i < 0 || i > l.n {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, l.n)
	}

	switch i {
	case 0:
		l.PushFront(v)
	case l.n:
		l.PushBack(v)
	default:
		at := l.nodeAt(i)
		nd := &node[T]{value: v, prev: at.prev, next: at}
		at.prev.next = nd
		at.prev = nd

		l.n++
	}
	return nil
}

// EraseAt unlinks and returns the element at index i. Valid indices range
// over [0, Len()-1].
func (l *List[T]) EraseAt(i int) (T, error) {
	var zero T

	if l.n == 0 {
		return zero, ErrEmptyContainer
	}
	if i < 0 || i >= l.n {
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, l.n)
	}

	nd := l.nodeAt(i)
	v := nd.value
	l.unlink(nd)

	return v, nil
}

func (l *List[T]) EmplaceFront(args ...any) error {
	if l.factory == nil {
		return ErrNoFactory
	}
	l.PushFront(l.factory(args...))
	return nil
}

func (l *List[T]) EmplaceBack(args ...any) error {
	if l.factory == nil {
		return ErrNoFactory
	}
	l.PushBack(l.factory(args...))
	return nil
}

func (l *List[T]) EmplaceAt(i int, args ...any) error {
	if l.factory == nil {
		return ErrNoFactory
	}
	return l.InsertAt(l.factory(args...), i)
}

func (l *List[T]) Front() (T, error) {
	if l.n == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return l.head.value, nil
}

func (l *List[T]) Back() (T, error) {
	if l.n == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return l.tail.value, nil
}

// SetFront overwrites the first value in place. The chain is untouched.
func (l *List[T]) SetFront(v T) error {
	if l.n == 0 {
		return ErrEmptyContainer
	}
	l.head.value = v
	return nil
}

func (l *List[T]) SetBack(v T) error {
	if l.n == 0 {
		return ErrEmptyContainer
	}
	l.tail.value = v
	return nil
}

// Clear unlinks and voids every node so stale references cannot revive
// part of the chain.
func (l *List[T]) Clear() {
	nd := l.head
	for nd != nil {
		next := nd.next
		l.void(nd)
		nd = next
	}

	l.head = nil
	l.tail = nil
	l.n = 0
}

func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.n)
	for nd := l.head; nd != nil; nd = nd.next {
		out = append(out, nd.value)
	}
	return out
}

// Assign replaces the contents with values, in order.
func (l *List[T]) Assign(values []T) {
	l.Clear()
	for _, v := range values {
		l.PushBack(v)
	}
}

// AssignRange replaces the contents with values[start:end]. Bounds are
// validated before the list is touched.
func (l *List[T]) AssignRange(values []T, start, end int) error {
	if start < 0 || start > end || end > len(values) {
		return fmt.Errorf("%w: range [%d, %d) over %d values", ErrIndexOutOfRange, start, end, len(values))
	}

	l.Assign(values[start:end])
	return nil
}

// AssignRepeat replaces the contents with count copies of v.
func (l *List[T]) AssignRepeat(count int, v T) error {
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrIllegalArguments, count)
	}

	l.Clear()
	for i := 0; i < count; i++ {
		l.PushBack(v)
	}
	return nil
}

// ForEach visits values head to tail. Returning false from fn stops the
// traversal early.
func (l *List[T]) ForEach(fn func(v T, i int) bool) error {
	if fn == nil {
		return fmt.Errorf("%w: nil callback", ErrIllegalArguments)
	}

	i := 0
	for nd := l.head; nd != nil; nd = nd.next {
		if !fn(nd.value, i) {
			return nil
		}
		i++
	}
	return nil
}

// Reverse flips the traversal order in place. No nodes are allocated.
func (l *List[T]) Reverse() {
	if l.n <= 1 {
		return
	}

	for nd := l.head; nd != nil; {
		next := nd.next
		nd.next, nd.prev = nd.prev, nd.next
		nd = next
	}
	l.head, l.tail = l.tail, l.head
}

// Remove unlinks every element equal to v and returns the number removed.
// A nil eq compares with reflect.DeepEqual.
func (l *List[T]) Remove(v T, eq EqualFunc[T]) int {
	if eq == nil {
		eq = deepEqual[T]
	}

	removed := 0
	nd := l.head
	for nd != nil {
		next := nd.next
		if eq(nd.value, v) {
			l.unlink(nd)
			removed++
		}
		nd = next
	}
	return removed
}

func (l *List[T]) nodeAt(i int) *node[T] {
	nd := l.head
	for ; i > 0; i-- {
		nd = nd.next
	}
	return nd
}

func (l *List[T]) unlink(nd *node[T]) {
	if nd.prev == nil {
		l.head = nd.next
	} else {
		nd.prev.next = nd.next
	}

	if nd.next == nil {
		l.tail = nd.prev
	} else {
		nd.next.prev = nd.prev
	}

	l.n--
	l.void(nd)
}

func (l *List[T]) void(nd *node[T]) {
	var zero T
	nd.prev = nil
	nd.next = nil
	nd.value = zero
}

// SwapLists exchanges the contents of a and b in O(1). Factories stay with
// their list.
func SwapLists[T any](a, b *List[T]) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil list", ErrIllegalArguments)
	}

	a.head, b.head = b.head, a.head
	a.tail, b.tail = b.tail, a.tail
	a.n, b.n = b.n, a.n

	return nil
}

// Merge relinks the nodes of source into target in O(n+m) without
// allocating. Both lists must already be sorted ascending under cmp; the
// result is the fully merged sorted sequence in target, and source ends
// empty. Merging a list with itself is not supported, since the relinking
// assumes two independent chains.
func Merge[T any](target, source *List[T], cmp Comparator[T]) error {
	if target == nil || source == nil {
		return fmt.Errorf("%w: nil list", ErrIllegalArguments)
	}
	if cmp == nil {
		return fmt.Errorf("%w: nil comparator", ErrIllegalArguments)
	}
	if target == source {
		return ErrSelfMerge
	}

	var head, tail *node[T]

	link := func(nd *node[T]) {
		nd.prev = tail
		nd.next = nil
		if tail == nil {
			head = nd
		} else {
			tail.next = nd
		}
		tail = nd
	}

	a, b := target.head, source.head
	for a != nil && b != nil {
		if cmp(a.value, b.value) <= 0 {
			next := a.next
			link(a)
			a = next
		} else {
			next := b.next
			link(b)
			b = next
		}
	}
	for a != nil {
		next := a.next
		link(a)
		a = next
	}
	for b != nil {
		next := b.next
		link(b)
		b = next
	}

	target.head = head
	target.tail = tail
	target.n += source.n

	source.head = nil
	source.tail = nil
	source.n = 0

	return nil
}
