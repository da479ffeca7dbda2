// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipe

import (
	"maps"
	"slices"
	"strings"
)

// Matrix describes the settings and options a package is built for. Every
// key maps to the values it ranges over.
type Matrix struct {
	Require map[string][]string
	Options map[string][]string
}

// Combination is one point of a Matrix.
type Combination struct {
	Require map[string]string
	Options map[string]string
}

// String joins the values of c in sorted key order: require values with
// "-", options values with "-", and the two groups with "|".
func (c Combination) String() string {
	join := func(kv map[string]string) string {
		keys := slices.Sorted(maps.Keys(kv))
		vals := make([]string, len(keys))
		for i, k := range keys {
			vals[i] = kv[k]
		}
		return strings.Join(vals, "-")
	}
	req, opt := join(c.Require), join(c.Options)
	switch {
	case req == "":
		return opt
	case opt == "":
		return req
	}
	return req + "|" + opt
}

// cartesian returns the cartesian product of kvs. Keys are sorted and the
// product is built layer by layer, so the first key varies slowest.
func cartesian(kvs map[string][]string) []map[string]string {
	if len(kvs) == 0 {
		return nil
	}
	keys := slices.Sorted(maps.Keys(kvs))

	result := make([]map[string]string, 0, len(kvs[keys[0]]))
	for _, v := range kvs[keys[0]] {
		result = append(result, map[string]string{keys[0]: v})
	}
	for _, k := range keys[1:] {
		values := kvs[k]
		next := make([]map[string]string, 0, len(result)*len(values))
		for _, prev := range result {
			for _, v := range values {
				point := maps.Clone(prev)
				point[k] = v
				next = append(next, point)
			}
		}
		result = next
	}
	return result
}

// Expand returns every combination of the matrix. Require combinations vary
// slowest; options combinations are crossed with each of them.
func (m *Matrix) Expand() []Combination {
	reqs := cartesian(m.Require)
	opts := cartesian(m.Options)

	if len(reqs) == 0 {
		out := make([]Combination, 0, len(opts))
		for _, o := range opts {
			out = append(out, Combination{Options: o})
		}
		return out
	}
	if len(opts) == 0 {
		out := make([]Combination, 0, len(reqs))
		for _, r := range reqs {
			out = append(out, Combination{Require: r})
		}
		return out
	}
	out := make([]Combination, 0, len(reqs)*len(opts))
	for _, r := range reqs {
		for _, o := range opts {
			out = append(out, Combination{Require: maps.Clone(r), Options: maps.Clone(o)})
		}
	}
	return out
}

// Combinations returns all cartesian product combinations of the matrix in
// their string form. See Combination.String.
func (m *Matrix) Combinations() []string {
	combos := m.Expand()
	if len(combos) == 0 {
		return nil
	}
	out := make([]string, len(combos))
	for i, c := range combos {
		out[i] = c.String()
	}
	return out
}

// CombinationCount returns the total number of cartesian product combinations.
func (m *Matrix) CombinationCount() int {
	countPart := func(kvs map[string][]string) int {
		if len(kvs) == 0 {
			return 0
		}
		count := 1
		for _, v := range kvs {
			count *= len(v)
		}
		return count
	}

	requireCount := countPart(m.Require)
	optionsCount := countPart(m.Options)

	if requireCount == 0 {
		return optionsCount
	}
	if optionsCount == 0 {
		return requireCount
	}
	return requireCount * optionsCount
}
