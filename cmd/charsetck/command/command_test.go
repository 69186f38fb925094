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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	Root.SetOut(&out)
	Root.SetErr(&errOut)
	Root.SetArgs(args)
	err := Root.Execute()
	return out.String(), err
}

func TestCanonical(t *testing.T) {
	out, err := execute(t, "canonical", "us-ascii", "Shift-JIS", "ABCD")
	require.NoError(t, err)
	assert.Equal(t, "US-ASCII\nShift-JIS\nABCD\n", out)
}

func TestCanonicalStrict(t *testing.T) {
	defer func() { strict = false }()

	_, err := execute(t, "canonical", "--strict", "us-ascii", "ABCD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unregistered charset "ABCD"`)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "US-ASCII")
	assert.Contains(t, out, "ISO-2022-JP-2")
	assert.Contains(t, out, "KOI8-R")
}
