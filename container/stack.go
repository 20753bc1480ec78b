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

// Stack is a LIFO view over a doubly-linked list: the most recently
// pushed element is always the next popped.
type Stack[T any] struct {
	list *List[T]
}

func NewStack[T any](values ...T) *Stack[T] {
	return &Stack[T]{list: NewList(values...)}
}

func NewStackWithFactory[T any](factory Factory[T], values ...T) *Stack[T] {
	return &Stack[T]{list: NewListWithFactory(factory, values...)}
}

func (s *Stack[T]) Push(v T) {
	s.list.PushBack(v)
}

func (s *Stack[T]) Pop() (T, error) {
	return s.list.PopBack()
}

// Peek returns the element on top of the stack.
func (s *Stack[T]) Peek() (T, error) {
	return s.list.Back()
}

// Top is the non-failing variant of Peek.
func (s *Stack[T]) Top() (T, bool) {
	v, err := s.list.Back()
	return v, err == nil
}

func (s *Stack[T]) Emplace(args ...any) error {
	return s.list.EmplaceBack(args...)
}

func (s *Stack[T]) Len() int {
	return s.list.Len()
}

func (s *Stack[T]) IsEmpty() bool {
	return s.list.IsEmpty()
}

func (s *Stack[T]) Clear() {
	s.list.Clear()
}

// ToSlice snapshots the stack bottom to top.
func (s *Stack[T]) ToSlice() []T {
	return s.list.ToSlice()
}

// Clone deep-copies every element into a new stack. A nil fn selects the
// default deep copy.
func (s *Stack[T]) Clone(fn CloneFunc[T]) (*Stack[T], error) {
	cp, err := cloneList(s.list, fn)
	if err != nil {
		return nil, err
	}
	return &Stack[T]{list: cp}, nil
}

// StacksEqual compares a and b element-wise. A nil eq compares with
// reflect.DeepEqual.
func StacksEqual[T any](a, b *Stack[T], eq EqualFunc[T]) (bool, error) {
	if a == nil || b == nil {
		return false, fmt.Errorf("%w: nil stack", ErrIllegalArguments)
	}
	return listsEqual(a.list, b.list, eq), nil
}

// SwapStacks exchanges the contents of a and b in O(1). Both stacks must
// share the same factory configuration.
func SwapStacks[T any](a, b *Stack[T]) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil stack", ErrIllegalArguments)
	}
	if !sameFactory(a.list.factory, b.list.factory) {
		return ErrFactoryMismatch
	}
	return SwapLists(a.list, b.list)
}
