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
	"reflect"

	"golang.org/x/exp/constraints"
)

// Comparator reports the relative priority of a and b: positive means a
// outranks b, negative means b outranks a, zero means equal rank. Sorted
// sequences under a Comparator are ascending, lowest rank first.
type Comparator[T any] func(a, b T) int

// EqualFunc reports whether a and b hold the same value.
type EqualFunc[T any] func(a, b T) bool

// Factory builds a value of T from constructor arguments. Containers
// configured with a factory support in-place construction via Emplace.
type Factory[T any] func(args ...any) T

// Ordered is the stock comparator for ordered element types. Used as a
// heap comparator it yields a max-heap.
func Ordered[T constraints.Ordered](a, b T) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	}
	return 0
}

func deepEqual[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

// Two factories match when both are unset or both resolve to the same
// function.
func sameFactory[T any](a, b Factory[T]) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if a == nil {
		return true
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// Element-wise comparison, short-circuiting on the first difference.
// Lists with mismatched factory configuration never compare equal.
func listsEqual[T any](a, b *List[T], eq EqualFunc[T]) bool {
	if !sameFactory(a.factory, b.factory) {
		return false
	}
	if a.n != b.n {
		return false
	}

	if eq == nil {
		eq = deepEqual[T]
	}

	nb := b.head
	for na := a.head; na != nil; na = na.next {
		if !eq(na.value, nb.value) {
			return false
		}
		nb = nb.next
	}
	return true
}
