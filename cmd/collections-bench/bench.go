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

package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/codenotary/collections/container"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type workload struct {
	name string
	run  func(values []int) error
}

func workloads() []workload {
	return []workload{
		{"list push/pop both ends", func(values []int) error {
			l := container.NewList[int]()
			for _, v := range values {
				if v%2 == 0 {
					l.PushBack(v)
				} else {
					l.PushFront(v)
				}
			}
			for !l.IsEmpty() {
				if _, err := l.PopFront(); err != nil {
					return err
				}
			}
			return nil
		}},
		{"list merge sorted halves", func(values []int) error {
			a := container.NewList[int]()
			b := container.NewList[int]()
			for i, v := range values {
				if i%2 == 0 {
					a.PushBack(v)
				} else {
					b.PushBack(v)
				}
			}
			// merge assumes sorted inputs
			sortList(a)
			sortList(b)
			return container.Merge(a, b, container.Ordered[int])
		}},
		{"stack push/pop", func(values []int) error {
			s := container.NewStack[int]()
			for _, v := range values {
				s.Push(v)
			}
			for !s.IsEmpty() {
				if _, err := s.Pop(); err != nil {
					return err
				}
			}
			return nil
		}},
		{"queue push/pop", func(values []int) error {
			q := container.NewQueue[int]()
			for _, v := range values {
				q.Push(v)
			}
			for !q.IsEmpty() {
				if _, err := q.Pop(); err != nil {
					return err
				}
			}
			return nil
		}},
		{"deque alternating ends", func(values []int) error {
			d := container.NewDeque[int]()
			for i, v := range values {
				if i%2 == 0 {
					d.PushBack(v)
				} else {
					d.PushFront(v)
				}
			}
			for !d.IsEmpty() {
				if _, err := d.PopBack(); err != nil {
					return err
				}
			}
			return nil
		}},
		{"heap push/pop", func(values []int) error {
			h := container.NewOrderedHeap[int]()
			for _, v := range values {
				h.Push(v)
			}
			for !h.IsEmpty() {
				if _, err := h.Pop(); err != nil {
					return err
				}
			}
			return nil
		}},
		{"heap heapify+replace", func(values []int) error {
			h := container.NewOrderedHeap(values...)
			for _, v := range values {
				if _, err := h.Replace(v); err != nil {
					return err
				}
			}
			return nil
		}},
		{"priority queue push/pop", func(values []int) error {
			pq := container.NewOrderedPriorityQueue[int]()
			for _, v := range values {
				pq.Push(v)
			}
			for !pq.IsEmpty() {
				if _, err := pq.Pop(); err != nil {
					return err
				}
			}
			return nil
		}},
	}
}

func sortList(l *container.List[int]) {
	values := l.ToSlice()
	h := container.NewOrderedHeap(values...)
	for i := len(values) - 1; i >= 0; i-- {
		values[i], _ = h.Pop()
	}
	l.Assign(values)
}

func runBench(cmd *cobra.Command, args []string) error {
	ops := viper.GetInt("ops")
	if ops <= 0 {
		return fmt.Errorf("ops must be positive, got %d", ops)
	}

	rnd := rand.New(rand.NewSource(viper.GetInt64("seed")))
	values := make([]int, ops)
	for i := range values {
		values[i] = rnd.Int()
	}

	color.New(color.FgGreen, color.Bold).Printf("collections-bench: %d ops per workload\n\n", ops)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Workload", "Elapsed", "ns/op"})

	for _, w := range workloads() {
		start := time.Now()
		if err := w.run(values); err != nil {
			return fmt.Errorf("workload %q: %w", w.name, err)
		}
		elapsed := time.Since(start)

		table.Append([]string{
			w.name,
			elapsed.Round(time.Microsecond).String(),
			fmt.Sprintf("%.1f", float64(elapsed.Nanoseconds())/float64(ops)),
		})
	}

	table.Render()
	return nil
}
