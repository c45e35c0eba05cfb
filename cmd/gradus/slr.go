package main

import (
	"math/rand"

	"github.com/caldera-edu/gradus"
	"github.com/caldera-edu/gradus/render"
)

func runSLR1(level int, rng *rand.Rand, retries int) error {
	g, res, err := gradus.GenerateSLR1(level, rng, retries)
	if err != nil {
		printGenerationFailure(err)
		return err
	}
	output(render.Grammar(g))
	output(render.Grammar(res.AugmentedGrammar))
	output(render.SLR1Tables(res.AugmentedGrammar, res.Automaton, res.Tables))
	output(render.Verdict("SLR(1)", res.OK))
	return nil
}
