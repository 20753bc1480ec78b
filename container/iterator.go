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

// ListIterator drains a list in a fixed direction. It captures the
// traversal order at creation time; mutating the list while an iterator is
// open is not supported.
type ListIterator[T any] struct {
	cur     *node[T]
	reverse bool
}

// Iterator traverses head to tail.
func (l *List[T]) Iterator() *ListIterator[T] {
	return &ListIterator[T]{cur: l.head}
}

// ReverseIterator traverses tail to head.
func (l *List[T]) ReverseIterator() *ListIterator[T] {
	return &ListIterator[T]{cur: l.tail, reverse: true}
}

// Read returns the next value, or ErrNoMoreEntries once the iterator is
// exhausted.
func (it *ListIterator[T]) Read() (T, error) {
	if it.cur == nil {
		var zero T
		return zero, ErrNoMoreEntries
	}

	v := it.cur.value
	if it.reverse {
		it.cur = it.cur.prev
	} else {
		it.cur = it.cur.next
	}
	return v, nil
}
