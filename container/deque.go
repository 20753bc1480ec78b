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

// Deque is a double-ended view over a doubly-linked list, with symmetric
// push/pop at both ends and O(n) positional reads.
type Deque[T any] struct {
	list *List[T]
}

func NewDeque[T any](values ...T) *Deque[T] {
	return &Deque[T]{list: NewList(values...)}
}

func NewDequeWithFactory[T any](factory Factory[T], values ...T) *Deque[T] {
	return &Deque[T]{list: NewListWithFactory(factory, values...)}
}

func (d *Deque[T]) PushFront(v T) {
	d.list.PushFront(v)
}

func (d *Deque[T]) PushBack(v T) {
	d.list.PushBack(v)
}

func (d *Deque[T]) PopFront() (T, error) {
	return d.list.PopFront()
}

func (d *Deque[T]) PopBack() (T, error) {
	return d.list.PopBack()
}

func (d *Deque[T]) Front() (T, bool) {
	v, err := d.list.Front()
	return v, err == nil
}

func (d *Deque[T]) Back() (T, bool) {
	v, err := d.list.Back()
	return v, err == nil
}

// At reads the element at index i in O(n). Out-of-range indices report
// absence rather than failing: positional reads on a linked structure are
// a convenience, not a primary contract.
func (d *Deque[T]) At(i int) (T, bool) {
	if i < 0 || i >= d.list.Len() {
		var zero T
		return zero, false
	}
	return d.list.nodeAt(i).value, true
}

func (d *Deque[T]) EmplaceFront(args ...any) error {
	return d.list.EmplaceFront(args...)
}

func (d *Deque[T]) EmplaceBack(args ...any) error {
	return d.list.EmplaceBack(args...)
}

func (d *Deque[T]) Len() int {
	return d.list.Len()
}

func (d *Deque[T]) IsEmpty() bool {
	return d.list.IsEmpty()
}

func (d *Deque[T]) Clear() {
	d.list.Clear()
}

// ToSlice snapshots the deque front to back.
func (d *Deque[T]) ToSlice() []T {
	return d.list.ToSlice()
}

// Clone deep-copies every element into a new deque. A nil fn selects the
// default deep copy.
func (d *Deque[T]) Clone(fn CloneFunc[T]) (*Deque[T], error) {
	cp, err := cloneList(d.list, fn)
	if err != nil {
		return nil, err
	}
	return &Deque[T]{list: cp}, nil
}

// DequesEqual compares a and b element-wise. A nil eq compares with
// reflect.DeepEqual.
func DequesEqual[T any](a, b *Deque[T], eq EqualFunc[T]) (bool, error) {
	if a == nil || b == nil {
		return false, fmt.Errorf("%w: nil deque", ErrIllegalArguments)
	}
	return listsEqual(a.list, b.list, eq), nil
}

// SwapDeques exchanges the contents of a and b in O(1). Both deques must
// share the same factory configuration.
func SwapDeques[T any](a, b *Deque[T]) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil deque", ErrIllegalArguments)
	}
	if !sameFactory(a.list.factory, b.list.factory) {
		return ErrFactoryMismatch
	}
	return SwapLists(a.list, b.list)
}
