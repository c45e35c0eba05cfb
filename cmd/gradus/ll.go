package main

import (
	"math/rand"

	"github.com/caldera-edu/gradus"
	"github.com/caldera-edu/gradus/grammar"
	"github.com/caldera-edu/gradus/render"
)

func runLL1(level int, rng *rand.Rand, retries int) error {
	g, res, err := gradus.GenerateLL1(level, rng, retries)
	if err != nil {
		printGenerationFailure(err)
		return err
	}
	an := grammar.NewAnalysis(g)
	output(render.Grammar(g))
	output(render.FirstFollow(g, an))
	output(render.LL1Table(g, res.Table))
	output(render.Verdict("LL(1)", res.OK))
	return nil
}
