/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package command

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"vitess.io/charset"
)

var list = &cobra.Command{
	Use:   "list",
	Short: "List the registered charsets and their canonical names.",
	Args:  cobra.NoArgs,
	RunE:  commandList,
}

func commandList(cmd *cobra.Command, args []string) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("#", "Name")
	for i, cs := range charset.All() {
		if err := table.Append([]string{strconv.Itoa(i + 1), cs.Name()}); err != nil {
			return err
		}
	}
	return table.Render()
}

func init() {
	Root.AddCommand(list)
}
