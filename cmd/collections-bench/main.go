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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	cmd := &cobra.Command{
		Use:   "collections-bench",
		Short: "Micro-benchmarks for the collections containers",
		Long: `Micro-benchmarks for the collections containers.

Runs timed workloads over the list, stack, queue, deque, heap and priority
queue types and prints a per-operation summary.

The environment variable names for settings are derived by prefixing flag
names with "COLLECTIONS_", e.g COLLECTIONS_OPS=1000000 ./collections-bench.
Note: flags take precedence over environment variables.
`,
		DisableAutoGenTag: true,
		RunE:              runBench,
	}

	cmd.Flags().IntP("ops", "n", 100_000, "number of operations per workload")
	cmd.Flags().Int64("seed", 42, "seed for the value stream")

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		os.Exit(1)
	}
	viper.SetEnvPrefix("COLLECTIONS")
	viper.AutomaticEnv()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
