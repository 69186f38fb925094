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

package charset

// MarshalText implements encoding.TextMarshaler, rendering the canonical
// name. It never fails.
func (c Charset) MarshalText() ([]byte, error) {
	return []byte(c.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with Parse semantics:
// unmatched names become unregistered charsets rather than errors.
func (c *Charset) UnmarshalText(text []byte) error {
	cs, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = cs
	return nil
}
