// Package dimen implements dimension specs.
//
// A dimension spec is the argument format of matrices, cases, tables and
// directory trees: a comma-separated list of positive integers, written
// without spaces, e.g. `3,4` or `2,3,8`.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/warp/core"
)

// Spec is a validated dimension spec. Every component is ≥ 1.
type Spec []int

// Unbounded may be passed as a maximum to switch off the upper bound check.
const Unbounded = 0

// Parse splits input at commas and validates the components.
// name denotes the shape and is echoed in error messages, arities lists the
// allowed number of components, max is an upper bound for every component
// (or Unbounded).
//
// Checks are performed in order: arity (core.EARITY), digit-only components
// (core.ENOTPOSINT), components ≥ 1 and ≤ max (core.ERANGE). The first
// violation is reported, there are no partial results.
//
func Parse(name, input string, max int, arities ...int) (Spec, error) {
	parts := strings.Split(input, ",")
	if len(arities) > 0 && !contains(arities, len(parts)) {
		return nil, core.Error(core.EARITY,
			"`%s` number of dimensions must be %s. Wrong input: `%s`.",
			name, arityText(arities), input)
	}
	spec := make(Spec, len(parts))
	for i, p := range parts {
		n, ok := Atoi(p)
		if !ok {
			return nil, core.Error(core.ENOTPOSINT,
				"`%s` dimensions must be positive integer numbers. Wrong input: `%s`.",
				name, input)
		}
		spec[i] = n
	}
	for _, n := range spec {
		if n < 1 {
			return nil, core.Error(core.ERANGE,
				"`%s` dimensions must be more than 0. Wrong input: `%s`.", name, input)
		}
		if max != Unbounded && n > max {
			return nil, core.Error(core.ERANGE,
				"`%s` dimensions must be ≤ %d. Wrong input: `%s`.", name, max, input)
		}
	}
	return spec, nil
}

// ParseLevels parses a list of tree levels, e.g. `1,2,3,2`.
// The first level must be 1, every level must be a positive integer, and a
// level may exceed its predecessor by at most 1.
func ParseLevels(input string) ([]int, error) {
	parts := strings.Split(input, ",")
	if parts[0] != "1" {
		return nil, core.Error(core.ERANGE,
			"First level must be `1`. Wrong input: `%s`.", input)
	}
	levels := make([]int, len(parts))
	for i, p := range parts {
		n, ok := Atoi(p)
		if !ok {
			return nil, core.Error(core.ENOTPOSINT,
				"All levels must be positive integer numbers. Wrong input: `%s`.", input)
		}
		if n < 1 {
			return nil, core.Error(core.ERANGE,
				"All levels must be positive integer numbers. Wrong input: `%s`.", input)
		}
		levels[i] = n
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] > levels[i-1]+1 {
			return nil, core.Error(core.ERANGE,
				"Level `%s` must be ≤ `%d`. Wrong input: `%s`.", parts[i], levels[i-1]+1, input)
		}
	}
	return levels, nil
}

// Atoi converts a digit-only string to an int. Signs, blanks, non-ASCII digits
// and values overflowing an int are rejected.
func Atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Get returns the i-th component, or dflt if the spec has fewer components.
func (spec Spec) Get(i int, dflt int) int {
	if i < len(spec) {
		return spec[i]
	}
	return dflt
}

// String joins the components with commas, the inverse of Parse.
func (spec Spec) String() string {
	parts := make([]string, len(spec))
	for i, n := range spec {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func contains(a []int, n int) bool {
	for _, x := range a {
		if x == n {
			return true
		}
	}
	return false
}

func arityText(arities []int) string {
	switch len(arities) {
	case 1:
		return strconv.Itoa(arities[0])
	case 2:
		return fmt.Sprintf("%d or %d", arities[0], arities[1])
	}
	parts := make([]string, len(arities))
	for i, a := range arities {
		parts[i] = strconv.Itoa(a)
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}
