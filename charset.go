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

// Package charset provides a value type for character set names as they
// appear in Media Types and HTTP header values, following the IANA
// Character Sets registry:
// http://www.iana.org/assignments/character-sets/character-sets.xhtml
//
// Charset names can be parsed from string, formatted to their canonical
// string form, and compared. Names not present in the registry table are
// represented as unregistered charsets, preserving the caller's spelling.
package charset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is returned when a supplied value does not denote a usable
// charset. No operation returns it today; Parse accepts every input and
// falls back to an unregistered charset. It is part of the contract so
// stricter validation can be introduced without a signature change.
var ErrInvalid = errors.New("invalid charset")

type charsetID uint8

const (
	idUnregistered charsetID = iota
	idUSASCII
	idISO8859_1
	idISO8859_2
	idISO8859_3
	idISO8859_4
	idISO8859_5
	idISO8859_6
	idISO8859_7
	idISO8859_8
	idISO8859_9
	idISO8859_10
	idShiftJIS
	idEUCJP
	idISO2022KR
	idEUCKR
	idISO2022JP
	idISO2022JP2
	idISO8859_6E
	idISO8859_6I
	idISO8859_8E
	idISO8859_8I
	idGB2312
	idBig5
	idKOI8R
)

// Charset identifies a character set by name. Registered charsets are
// identified by which registry entry they are, not by their name string;
// unregistered charsets carry an arbitrary name verbatim.
//
// The zero value behaves as Unregistered("").
//
// Charset values are comparable with ==, but == on unregistered values is
// case-sensitive; use Equal for the name-folding semantics.
type Charset struct {
	id   charsetID
	name string
}

// The registered charsets. These are the full public vocabulary: callers
// construct and match against these values directly.
var (
	USASCII    = Charset{id: idUSASCII}
	ISO8859_1  = Charset{id: idISO8859_1}
	ISO8859_2  = Charset{id: idISO8859_2}
	ISO8859_3  = Charset{id: idISO8859_3}
	ISO8859_4  = Charset{id: idISO8859_4}
	ISO8859_5  = Charset{id: idISO8859_5}
	ISO8859_6  = Charset{id: idISO8859_6}
	ISO8859_7  = Charset{id: idISO8859_7}
	ISO8859_8  = Charset{id: idISO8859_8}
	ISO8859_9  = Charset{id: idISO8859_9}
	ISO8859_10 = Charset{id: idISO8859_10}
	ShiftJIS   = Charset{id: idShiftJIS}
	EUCJP      = Charset{id: idEUCJP}
	ISO2022KR  = Charset{id: idISO2022KR}
	EUCKR      = Charset{id: idEUCKR}
	ISO2022JP  = Charset{id: idISO2022JP}
	ISO2022JP2 = Charset{id: idISO2022JP2}
	ISO8859_6E = Charset{id: idISO8859_6E}
	ISO8859_6I = Charset{id: idISO8859_6I}
	ISO8859_8E = Charset{id: idISO8859_8E}
	ISO8859_8I = Charset{id: idISO8859_8I}
	GB2312     = Charset{id: idGB2312}
	Big5       = Charset{id: idBig5}
	KOI8R      = Charset{id: idKOI8R}
)

// mapping associates every registered charset with its canonical name,
// in registry declaration order. Exactly one entry per charset; canonical
// names must be pairwise distinct after ASCII case folding.
var mapping = []struct {
	charset Charset
	name    string
}{
	{USASCII, "US-ASCII"},
	{ISO8859_1, "ISO-8859-1"},
	{ISO8859_2, "ISO-8859-2"},
	{ISO8859_3, "ISO-8859-3"},
	{ISO8859_4, "ISO-8859-4"},
	{ISO8859_5, "ISO-8859-5"},
	{ISO8859_6, "ISO-8859-6"},
	{ISO8859_7, "ISO-8859-7"},
	{ISO8859_8, "ISO-8859-8"},
	{ISO8859_9, "ISO-8859-9"},
	{ISO8859_10, "ISO-8859-10"},
	{ShiftJIS, "Shift-JIS"},
	{EUCJP, "EUC-JP"},
	{ISO2022KR, "ISO-2022-KR"},
	{EUCKR, "EUC-KR"},
	{ISO2022JP, "ISO-2022-JP"},
	{ISO2022JP2, "ISO-2022-JP-2"},
	{ISO8859_6E, "ISO-8859-6-E"},
	{ISO8859_6I, "ISO-8859-6-I"},
	{ISO8859_8E, "ISO-8859-8-E"},
	{ISO8859_8I, "ISO-8859-8-I"},
	{GB2312, "GB2312"},
	{Big5, "Big5"},
	{KOI8R, "KOI8-R"},
}

var (
	charsetsByName = make(map[string]Charset, len(mapping))
	namesByID      = make(map[charsetID]string, len(mapping))
)

func init() {
	for _, entry := range mapping {
		if old, found := charsetsByName[foldASCII(entry.name)]; found {
			panic(fmt.Sprintf("duplicated charset name: %q (existing charset is %q)", entry.name, old.Name()))
		}
		if old, found := namesByID[entry.charset.id]; found {
			panic(fmt.Sprintf("duplicated charset entry: %q (existing name is %q)", entry.name, old))
		}
		charsetsByName[foldASCII(entry.name)] = entry.charset
		namesByID[entry.charset.id] = entry.name
	}
}

// Parse returns the Charset named by s. The lookup is ASCII
// case-insensitive; a registered match is returned as the canonical value,
// independent of the input's casing. Any other input yields an unregistered
// Charset preserving s verbatim.
//
// Parse currently accepts every input. The error return is reserved for
// future rejection of malformed names (see ErrInvalid).
func Parse(s string) (Charset, error) {
	if cs, found := charsetsByName[foldASCII(s)]; found {
		return cs, nil
	}
	return Charset{name: s}, nil
}

// Unregistered returns a Charset for an arbitrary name outside the
// registry table. The name is carried verbatim, with no normalization.
func Unregistered(name string) Charset {
	return Charset{name: name}
}

// All returns the registered charsets in registry declaration order.
func All() []Charset {
	all := make([]Charset, 0, len(mapping))
	for _, entry := range mapping {
		all = append(all, entry.charset)
	}
	return all
}

// IsRegistered reports whether c is one of the registered charsets.
func (c Charset) IsRegistered() bool {
	return c.id != idUnregistered
}

// Name returns the canonical name of a registered charset, in the registry's
// authoritative casing, or the verbatim carried name of an unregistered one.
func (c Charset) Name() string {
	if c.id == idUnregistered {
		return c.name
	}
	return namesByID[c.id]
}

// String implements fmt.Stringer. The result is suitable for direct
// embedding in a charset= parameter or header value.
func (c Charset) String() string {
	return c.Name()
}

// Equal reports whether two charsets denote the same character set.
// Registered charsets are equal only if they are the same registry entry;
// unregistered charsets are equal if their names match ASCII
// case-insensitively. A registered charset never equals an unregistered
// one, even when the unregistered name spells a canonical name: equality
// does not re-parse. Callers wanting that must Parse both sides first.
func (c Charset) Equal(other Charset) bool {
	if c.id != other.id {
		return false
	}
	if c.id != idUnregistered {
		return true
	}
	return equalFoldASCII(c.name, other.name)
}

// Compare returns -1, 0 or +1 ordering c against other. Registered
// charsets order by registry declaration; unregistered charsets sort after
// all registered ones, ordered by their folded names with the verbatim name
// as a tie-break. The order is total and stable but carries no semantic
// meaning beyond that; it exists so Charset can key sorted collections.
func (c Charset) Compare(other Charset) int {
	switch {
	case c.id != idUnregistered && other.id != idUnregistered:
		switch {
		case c.id < other.id:
			return -1
		case c.id > other.id:
			return 1
		}
		return 0
	case c.id != idUnregistered:
		return -1
	case other.id != idUnregistered:
		return 1
	}
	if r := strings.Compare(foldASCII(c.name), foldASCII(other.name)); r != 0 {
		return r
	}
	return strings.Compare(c.name, other.name)
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		c += 'a' - 'A'
	}
	return c
}

// foldASCII lowercases ASCII letters only. Non-ASCII bytes pass through
// untouched, so folding never conflates names that differ outside A-Z.
func foldASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			b := []byte(s)
			for ; i < len(b); i++ {
				b[i] = lowerASCII(b[i])
			}
			return string(b)
		}
	}
	return s
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}
