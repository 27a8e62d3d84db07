package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giuliop/zkset"
	"github.com/giuliop/zkset/curve"
	"github.com/giuliop/zkset/setup"
	"github.com/giuliop/zkset/testutils"
)

var demoDegree uint64

func selectBackend() (curve.Curve, error) {
	switch backendName {
	case "fast":
		return curve.Fast(), nil
	case "spec":
		return curve.Spec(), nil
	case "fast-bench":
		return curve.FastBench(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backendName)
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	cv, err := selectBackend()
	if err != nil {
		return err
	}
	if demoDegree < 3 {
		return fmt.Errorf("degree must be at least 3 to hold the demo set")
	}
	log.Info().Str("backend", cv.Name()).Uint64("degree", demoDegree).
		Msg("running trusted setup")

	pool := testutils.RandomPool(int(demoDegree) + 16)

	pk, err := setup.Run(cv, demoDegree, pool)
	if err != nil {
		return fmt.Errorf("setup: %v", err)
	}

	members := []uint64{7, 11, 13}
	set := zkset.NewSet()
	for _, m := range members {
		set.Add(cv.ScalarFromUint64(m))
	}
	log.Info().Uints64("members", members).Msg("committing to set")

	c, phi, phiHat, err := zkset.Commit(pk, set, pool)
	if err != nil {
		return fmt.Errorf("commit: %v", err)
	}

	queries := []uint64{11, 4}
	for _, q := range queries {
		k := cv.ScalarFromUint64(q)
		o, err := zkset.Query(pk, set, phi, phiHat, k, pool)
		if err != nil {
			return fmt.Errorf("query %d: %v", q, err)
		}

		branch := "non-membership"
		if o.PhiHatK != nil {
			branch = "membership"
		}
		ok := zkset.Verify(pk, c, o)
		log.Info().Uint64("query", q).Str("branch", branch).Bool("verified", ok).
			Msg("opening checked")
		fmt.Printf("element %d: %s proof verified: %v\n", q, branch, ok)
	}

	return nil
}
