package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Neben5/GenerativePlayground/internal/core"
	_ "github.com/Neben5/GenerativePlayground/internal/rules/briansbrain"
	_ "github.com/Neben5/GenerativePlayground/internal/rules/life"
	_ "github.com/Neben5/GenerativePlayground/internal/rules/rule110"
	_ "github.com/Neben5/GenerativePlayground/internal/rules/sand"
)

type benchJob struct {
	rule string
	seed int64
}

type benchResult struct {
	rule       string
	seed       int64
	steps      int
	settledAt  int
	churnTotal int
	elapsed    time.Duration
}

func (r benchResult) gensPerSec() float64 {
	secs := r.elapsed.Seconds()
	if secs <= 0 || r.steps == 0 {
		return 0
	}
	return float64(r.steps) / secs
}

func (r benchResult) churnPerGen() float64 {
	if r.steps == 0 {
		return 0
	}
	return float64(r.churnTotal) / float64(r.steps)
}

func main() {
	steps := flag.Int("steps", 200, "generations to run per rule and seed")
	seeds := flag.Int("seeds", 3, "seeds per rule")
	width := flag.Int("width", 256, "grid width")
	height := flag.Int("height", 256, "grid height")
	density := flag.Float64("density", 0.25, "live fraction of the initial fill")
	workers := flag.Int("workers", runtime.NumCPU(), "number of parallel runs")
	flag.Parse()

	names := make([]string, 0, len(core.Rules()))
	for name := range core.Rules() {
		names = append(names, name)
	}
	sort.Strings(names)

	var jobs []benchJob
	for _, name := range names {
		for i := 0; i < *seeds; i++ {
			jobs = append(jobs, benchJob{rule: name, seed: int64(1337 + 71*i)})
		}
	}

	fmt.Printf("Benchmarking %d rules x %d seeds (%d workers, %d steps, %dx%d)\n",
		len(names), *seeds, *workers, *steps, *width, *height)

	var (
		eg  errgroup.Group
		mu  sync.Mutex
		all []benchResult
	)
	eg.SetLimit(*workers)

	start := time.Now()
	for _, job := range jobs {
		eg.Go(func() error {
			res, err := runBench(job, *width, *height, *steps, *density)
			if err != nil {
				return err
			}
			mu.Lock()
			all = append(all, res)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatalf("%+v", err)
	}
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool {
		if all[i].rule != all[j].rule {
			return all[i].rule < all[j].rule
		}
		return all[i].seed < all[j].seed
	})

	fmt.Println()
	for _, res := range all {
		note := ""
		if res.settledAt > 0 {
			note = fmt.Sprintf("  settled@%d", res.settledAt)
		}
		fmt.Printf("%-12s seed=%-5d gens=%-5d %9.0f gens/s  churn/gen %9.1f%s\n",
			res.rule, res.seed, res.steps, res.gensPerSec(), res.churnPerGen(), note)
	}
	fmt.Printf("\nElapsed %s\n", elapsed.Round(time.Millisecond))
}

// runBench steps one rule from a seeded fill, counting changed cells per
// generation. A run stops early once a generation changes nothing, since a
// settled grid never changes again.
func runBench(job benchJob, width, height, steps int, density float64) (benchResult, error) {
	factory, ok := core.Rules()[job.rule]
	if !ok {
		return benchResult{}, errors.Errorf("[runBench] unknown rule %q", job.rule)
	}
	rule := factory()

	cells := make([]core.State, width*height)
	core.FillStates(core.NewRNG(job.seed).Source(), cells, rule.States()[1:2], density)

	driver, err := core.New([]int{width, height}, cells, rule.Neighborhood(), rule)
	if err != nil {
		return benchResult{}, errors.Wrapf(err, "[runBench] failed to build driver: %+v", job.rule)
	}

	res := benchResult{rule: job.rule, seed: job.seed}
	start := time.Now()
	for step := 0; step < steps; step++ {
		driver.Step()
		churn := driver.DirtyCount()
		driver.ClearDirty()
		res.steps++
		res.churnTotal += churn
		if churn == 0 {
			res.settledAt = step + 1
			break
		}
	}
	res.elapsed = time.Since(start)
	return res, nil
}
