// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"sync"

	"github.com/goki/ki/ints"
)

// ParallelFor calls fun over contiguous [st, ed) ranges covering [0, n),
// using up to nthr goroutines, and waits for all of them to finish.
// With nthr <= 1 it just calls fun(0, n) in the current goroutine.
// fun must only touch elements within its own range.
func ParallelFor(n, nthr int, fun func(st, ed int)) {
	nthr = ints.MinInt(nthr, n)
	if nthr <= 1 {
		fun(0, n)
		return
	}
	per := (n + nthr - 1) / nthr
	var wg sync.WaitGroup
	for th := 0; th < nthr; th++ {
		st := th * per
		ed := ints.MinInt(st+per, n)
		if st >= ed {
			break
		}
		wg.Add(1)
		go func(st, ed int) {
			defer wg.Done()
			fun(st, ed)
		}(st, ed)
	}
	wg.Wait()
}
