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

	"github.com/mitchellh/copystructure"
)

// CloneFunc produces a deep copy of v. Passing nil to a Clone method
// selects the default deep copy.
type CloneFunc[T any] func(v T) (T, error)

func deepCopy[T any](v T) (T, error) {
	var zero T

	c, err := copystructure.Copy(v)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrUnsupportedClone, err)
	}

	if c == nil {
		return zero, nil
	}

	cv, ok := c.(T)
	if !ok {
		return zero, ErrUnsupportedClone
	}
	return cv, nil
}

func cloneList[T any](l *List[T], fn CloneFunc[T]) (*List[T], error) {
	if fn == nil {
		fn = deepCopy[T]
	}

	cp := &List[T]{factory: l.factory}
	for nd := l.head; nd != nil; nd = nd.next {
		v, err := fn(nd.value)
		if err != nil {
			return nil, err
		}
		cp.PushBack(v)
	}
	return cp, nil
}
