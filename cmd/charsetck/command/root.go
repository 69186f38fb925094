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
	"github.com/spf13/cobra"
)

// Root is the charsetck root command.
var Root = &cobra.Command{
	Use:   "charsetck",
	Short: "charsetck inspects and normalizes character set names.",
	Long: "`charsetck` works with character set names as they appear in Media Types and HTTP header values,\n" +
		"normalizing free-form spellings to the canonical names of the IANA Character Sets registry.",
	SilenceUsage: true,
}
