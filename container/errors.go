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

import "errors"

var ErrEmptyContainer = errors.New("container is empty")
var ErrIndexOutOfRange = errors.New("index out of range")
var ErrIllegalArguments = errors.New("illegal arguments")
var ErrNoFactory = errors.New("no factory configured")
var ErrFactoryMismatch = errors.New("factory configuration mismatch")
var ErrSelfMerge = errors.New("cannot merge a list with itself")
var ErrUnsupportedClone = errors.New("value cannot be deep copied")
var ErrNoMoreEntries = errors.New("no more entries")
