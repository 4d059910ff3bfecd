// Command life-bench runs the simulation headless through the state stack
// for a range of worker counts and checks every run against the
// single-band result.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"lifefade/internal/core"
	"lifefade/internal/game"
	"lifefade/internal/input"
	"lifefade/internal/life"
	"lifefade/internal/state"
)

var errMismatch = errors.New("grid differs from the single-band run")

type scenario struct {
	size    core.Size
	gens    int
	workers int
	opts    life.Options
}

type result struct {
	workers int
	elapsed time.Duration
	stats   life.Stats
	cells   []life.Cell
}

func (r result) perGen(gens int) time.Duration {
	if gens <= 0 {
		return 0
	}
	return r.elapsed / time.Duration(gens)
}

func main() {
	width := flag.Int("width", 426, "grid width in cells")
	height := flag.Int("height", 240, "grid height in cells")
	gens := flag.Int("gens", 500, "generations per run")
	workerList := flag.String("workers", defaultWorkerList(), "comma separated worker counts")
	seed := flag.Int64("seed", 1337, "seed shared by every run")
	fade := flag.Int("fade", life.DefaultFadeGrades, "fade grades")
	initPct := flag.Int("init", life.DefaultInitPercent, "initial alive percentage")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	counts, err := parseWorkers(*workerList)
	if err != nil {
		logger.Error("bad -workers", "err", err)
		os.Exit(2)
	}

	base := scenario{
		size: core.Size{W: *width, H: *height},
		gens: *gens,
		opts: life.Options{FadeGrades: *fade, InitPercent: *initPct, Seed: *seed},
	}
	fmt.Printf("Running %dx%d for %d generations (worker counts %v)\n", base.size.W, base.size.H, base.gens, counts)

	results, err := sweep(base, counts, logger)
	if err != nil {
		logger.Error("sweep failed", "err", err)
		os.Exit(1)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].elapsed < results[j].elapsed })
	fmt.Printf("\nResults (fastest first):\n")
	for i, res := range results {
		fmt.Printf("%2d) workers=%-3d total=%-10s per-gen=%-10s live=%d\n",
			i+1, res.workers, res.elapsed.Round(time.Microsecond), res.perGen(base.gens).Round(time.Microsecond), res.stats.Live)
	}
}

// sweep runs base once per worker count. The single-band run is always
// performed first and serves as the reference grid.
func sweep(base scenario, counts []int, logger *slog.Logger) ([]result, error) {
	counts = slices.DeleteFunc(slices.Clone(counts), func(n int) bool { return n == 1 })
	counts = append([]int{1}, counts...)

	var (
		results []result
		ref     []life.Cell
	)
	for _, n := range counts {
		sc := base
		sc.workers = n
		res, err := run(sc, logger)
		if err != nil {
			return nil, fmt.Errorf("workers=%d: %w", n, err)
		}
		if ref == nil {
			ref = res.cells
		} else if !slices.Equal(ref, res.cells) {
			return nil, fmt.Errorf("workers=%d: %w", n, errMismatch)
		}
		logger.Info("run complete", "workers", n, "elapsed", res.elapsed, "generation", res.stats.Generation)
		results = append(results, res)
	}
	return results, nil
}

// run drives the simulating state through a headless stack so the timing
// includes the same dispatch path the window uses.
func run(sc scenario, logger *slog.Logger) (result, error) {
	opts := sc.opts
	opts.Workers = sc.workers
	opts.UpdateEvery = 1

	ctx := state.Context{
		Context: core.Context{GridSize: sc.size, CellSide: 1},
		Input:   input.Pressed{},
	}
	stack := state.NewStack(ctx, logger)
	sim, err := game.Start(stack, opts)
	if err != nil {
		return result{}, err
	}

	clock := core.NewFrameClock()
	start := time.Now()
	for range sc.gens {
		if err := stack.Update(clock.Tick(1.0 / 60)); err != nil {
			return result{}, err
		}
	}
	engine := sim.Engine()
	return result{
		workers: sc.workers,
		elapsed: time.Since(start),
		stats:   engine.Stats(),
		cells:   slices.Clone(engine.Cells()),
	}, nil
}

func parseWorkers(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		if n < 1 {
			return nil, fmt.Errorf("worker count %d must be at least 1", n)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, errors.New("no worker counts given")
	}
	return out, nil
}

func defaultWorkerList() string {
	var parts []string
	for n := 1; n <= runtime.NumCPU(); n *= 2 {
		parts = append(parts, strconv.Itoa(n))
	}
	return strings.Join(parts, ",")
}
