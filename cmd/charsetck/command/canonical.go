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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"vitess.io/charset"
)

var strict bool

var canonical = &cobra.Command{
	Use:   "canonical <name> [<name> ...]",
	Short: "Print the canonical form of each given charset name.",
	Long: "Parses each name and prints its canonical rendering, one per line.\n" +
		"Names not present in the registry are printed back verbatim unless --strict is set.",
	Args: cobra.MinimumNArgs(1),
	RunE: commandCanonical,
}

func registerCanonicalFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&strict, "strict", strict, "Fail on names not present in the registry table.")
}

func commandCanonical(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		cs, err := charset.Parse(arg)
		if err != nil {
			return err
		}
		if strict && !cs.IsRegistered() {
			return fmt.Errorf("unregistered charset %q", arg)
		}
		fmt.Fprintln(cmd.OutOrStdout(), cs.Name())
	}
	return nil
}

func init() {
	registerCanonicalFlags(canonical.Flags())
	Root.AddCommand(canonical)
}
