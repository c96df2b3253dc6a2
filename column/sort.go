// Copyright 2025 Ekjot Singh
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package column

import (
	"sort"

	"github.com/rapidminer/belt-sub000/rowindex"
)

// sortIndices is the shared primitive behind every concrete column's
// Sort(): a stable index sort over the logical positions [0,n), with
// missing positions always placed last regardless of direction (spec.md
// §4.6, §8's nulls/NaN-last property).
func sortIndices(n int, isMissing func(pos int) bool, less func(a, b int) bool, ascending bool) rowindex.Vector {
	idx := make(rowindex.Vector, n)
	for i := range idx {
		idx[i] = int32(i)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		pa, pb := int(idx[a]), int(idx[b])
		ma, mb := isMissing(pa), isMissing(pb)
		if ma != mb {
			return mb // non-missing sorts before missing
		}
		if ma && mb {
			return false
		}
		if ascending {
			return less(pa, pb)
		}
		return less(pb, pa)
	})
	return idx
}
