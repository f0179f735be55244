package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/pkg/errors"

	"github.com/Neben5/GenerativePlayground/internal/core"
	_ "github.com/Neben5/GenerativePlayground/internal/rules/briansbrain"
	_ "github.com/Neben5/GenerativePlayground/internal/rules/life"
	_ "github.com/Neben5/GenerativePlayground/internal/rules/rule110"
	_ "github.com/Neben5/GenerativePlayground/internal/rules/sand"
	"github.com/Neben5/GenerativePlayground/internal/store"
)

func main() {
	dir := flag.String("dir", "presets", "preset directory")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}

	st := store.New(*dir)

	var err error
	switch args[0] {
	case "save":
		err = runSave(st, args[1:])
	case "list":
		err = runList(st)
	case "show":
		err = runShow(st, args[1:])
	case "load":
		err = runLoad(st, args[1:])
	case "run":
		err = runSteps(st, args[1:])
	case "delete":
		err = runDelete(st, args[1:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%+v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: preset [-dir DIR] <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  save [-rule R] [-width W] [-height H] [-seed S] [-density D] <name>")
	fmt.Fprintln(os.Stderr, "  list")
	fmt.Fprintln(os.Stderr, "  show <name>")
	fmt.Fprintln(os.Stderr, "  load <name>")
	fmt.Fprintln(os.Stderr, "  run [-steps N] [-out NAME] <name>")
	fmt.Fprintln(os.Stderr, "  delete <name>")
}

// runSave seeds a fresh grid from the given flags and stores its snapshot.
func runSave(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("save", flag.ExitOnError)
	rule := fs.String("rule", "life", "rule to seed with")
	width := fs.Int("width", 160, "grid width")
	height := fs.Int("height", 120, "grid height")
	seed := fs.Int64("seed", 42, "seed for the initial fill")
	density := fs.Float64("density", 0.25, "live fraction of the initial fill")
	if err := fs.Parse(args); err != nil {
		return err
	}
	name := fs.Arg(0)
	if name == "" {
		return errors.Errorf("[runSave] missing preset name")
	}
	if *width < 1 || *height < 1 {
		return errors.Errorf("[runSave] grid must be at least 1x1")
	}

	factory, ok := core.Rules()[*rule]
	if !ok {
		return errors.Errorf("[runSave] unknown rule %q", *rule)
	}
	r := factory()

	cells := make([]core.State, *width**height)
	core.FillStates(core.NewRNG(*seed).Source(), cells, r.States()[1:2], *density)

	driver, err := core.New([]int{*width, *height}, cells, r.Neighborhood(), r)
	if err != nil {
		return err
	}
	if err := st.Save(name, driver.Snapshot()); err != nil {
		return err
	}
	fmt.Printf("saved %s (%s, %dx%d, seed %d)\n", name, *rule, *width, *height, *seed)
	return nil
}

func runList(st *store.Store) error {
	names, err := st.List()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	fmt.Printf("%d preset(s) in %s\n", len(names), st.Dir())
	return nil
}

// runShow prints a snapshot summary without restoring it, so presets for
// unregistered rules can still be inspected.
func runShow(st *store.Store, args []string) error {
	if len(args) < 1 {
		return errors.Errorf("[runShow] missing preset name")
	}
	snap, err := st.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("rule:         %s\n", snap.RuleIdentifier)
	fmt.Printf("neighborhood: %s\n", snap.NeighborhoodType)
	fmt.Printf("dimensions:   %v\n", snap.Dimensions)
	fmt.Printf("cells:        %d\n", len(snap.CellStates))

	counts := map[int]int{}
	for _, s := range snap.CellStates {
		counts[s]++
	}
	states := make([]int, 0, len(counts))
	for s := range counts {
		states = append(states, s)
	}
	sort.Ints(states)
	for _, s := range states {
		fmt.Printf("  state %3d: %d\n", s, counts[s])
	}
	return nil
}

// runLoad restores the preset into a live driver, verifying that its rule is
// registered and its pairing is intact.
func runLoad(st *store.Store, args []string) error {
	if len(args) < 1 {
		return errors.Errorf("[runLoad] missing preset name")
	}
	snap, err := st.Load(args[0])
	if err != nil {
		return err
	}
	driver, err := core.Restore(snap)
	if err != nil {
		return err
	}
	fmt.Printf("ok: %s on a %v grid, %d cells\n",
		driver.Rule().Name(), snap.Dimensions, driver.Grid().Len())
	return nil
}

// runSteps restores a preset, advances it, and reports per-generation
// activity. With -out the stepped state is stored as a new preset.
func runSteps(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	steps := fs.Int("steps", 100, "generations to advance")
	out := fs.String("out", "", "store the stepped state under this name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	name := fs.Arg(0)
	if name == "" {
		return errors.Errorf("[runSteps] missing preset name")
	}

	snap, err := st.Load(name)
	if err != nil {
		return err
	}
	driver, err := core.Restore(snap)
	if err != nil {
		return err
	}

	churnTotal := 0
	settledAt := 0
	ran := 0
	for step := 0; step < *steps; step++ {
		driver.Step()
		churn := driver.DirtyCount()
		driver.ClearDirty()
		ran++
		churnTotal += churn
		if churn == 0 {
			settledAt = step + 1
			break
		}
	}

	fmt.Printf("%s: ran %d generation(s), %d cell change(s)\n", name, ran, churnTotal)
	if settledAt > 0 {
		fmt.Printf("settled after %d generation(s)\n", settledAt)
	}
	if *out != "" {
		if err := st.Save(*out, driver.Snapshot()); err != nil {
			return err
		}
		fmt.Printf("saved %s\n", *out)
	}
	return nil
}

func runDelete(st *store.Store, args []string) error {
	if len(args) < 1 {
		return errors.Errorf("[runDelete] missing preset name")
	}
	if err := st.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}
