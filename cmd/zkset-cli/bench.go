package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/giuliop/zkset"
	"github.com/giuliop/zkset/curve"
	"github.com/giuliop/zkset/setup"
	"github.com/giuliop/zkset/testutils"
)

var (
	benchSizes      []int
	benchIterations int
)

// phaseTimes accumulates per-phase durations over iterations.
type phaseTimes struct {
	setup, query, verify []time.Duration
}

func runBench(cmd *cobra.Command, args []string) error {
	cv, err := selectBackend()
	if err != nil {
		return err
	}

	fmt.Printf("%s backend, %d iterations per size\n\n", cv.Name(), benchIterations)
	fmt.Printf("%8s %14s %14s %14s\n", "size", "setup", "commit+query", "verify")

	for _, size := range benchSizes {
		log.Debug().Int("size", size).Msg("benchmarking")
		var times phaseTimes
		for i := 0; i < benchIterations; i++ {
			if err := benchIteration(cv, size, int64(i), &times); err != nil {
				return fmt.Errorf("size %d: %v", size, err)
			}
		}
		fmt.Printf("%8d %14s %14s %14s\n", size,
			mean(times.setup), mean(times.query), mean(times.verify))
	}
	return nil
}

func benchIteration(cv curve.Curve, size int, seed int64, times *phaseTimes) error {
	pool := testutils.SeededPool(seed, 2*size+8)

	start := time.Now()
	pk, err := setup.Run(cv, uint64(size+2), pool)
	if err != nil {
		return err
	}
	times.setup = append(times.setup, time.Since(start))

	set := zkset.NewSet()
	for i := 0; i < size; i++ {
		w, err := pool.Pop()
		if err != nil {
			return err
		}
		set.Add(cv.ScalarFromUint128(w))
	}
	k := cv.ScalarFromUint64(0xBADC0FFEE)

	start = time.Now()
	c, phi, phiHat, err := zkset.Commit(pk, set, pool)
	if err != nil {
		return err
	}
	o, err := zkset.Query(pk, set, phi, phiHat, k, pool)
	if err != nil {
		return err
	}
	times.query = append(times.query, time.Since(start))

	start = time.Now()
	ok := zkset.Verify(pk, c, o)
	times.verify = append(times.verify, time.Since(start))
	if !ok {
		return fmt.Errorf("honest opening rejected")
	}
	return nil
}

func mean(ds []time.Duration) time.Duration {
	if len(ds) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range ds {
		total += d
	}
	return (total / time.Duration(len(ds))).Round(10 * time.Microsecond)
}
