// Command housegen generates a house and prints its floor plans and roof
// rectangles, optionally writing PNG, OBJ and JSON outputs.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/housegen/config"
	"github.com/lixenwraith/housegen/export"
	"github.com/lixenwraith/housegen/house"
	"github.com/lixenwraith/housegen/render"
)

type options struct {
	configPath string
	seed       int64
	random     bool
	floors     int
	grid       string
	pngPath    string
	scale      int
	objPath    string
	jsonPath   string
	meshes     bool
	dumpConfig bool
	quiet      bool
	stats      bool
	debug      bool
}

func parseFlags(args []string, stderr io.Writer) (options, map[string]bool, error) {
	var o options
	fs := flag.NewFlagSet("housegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "TOML config file")
	fs.Int64Var(&o.seed, "seed", 0, "fixed seed (disables random seeding)")
	fs.BoolVar(&o.random, "random", false, "draw a fresh seed")
	fs.IntVar(&o.floors, "floors", 0, "floor count")
	fs.StringVar(&o.grid, "grid", "", "grid size WxH")
	fs.StringVar(&o.pngPath, "png", "", "write plan image")
	fs.IntVar(&o.scale, "scale", 16, "pixels per cell for -png")
	fs.StringVar(&o.objPath, "obj", "", "write roof meshes as OBJ")
	fs.StringVar(&o.jsonPath, "json", "", "write result as JSON")
	fs.BoolVar(&o.meshes, "meshes", false, "include geometry in -json")
	fs.BoolVar(&o.dumpConfig, "dump-config", false, "print resolved config as TOML and exit")
	fs.BoolVar(&o.quiet, "q", false, "skip plan and report output")
	fs.BoolVar(&o.stats, "stats", false, "print generation metrics")
	fs.BoolVar(&o.debug, "debug", false, "write debug log to logs/")
	if err := fs.Parse(args); err != nil {
		return o, nil, err
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return o, set, nil
}

// applyFlags overrides cfg with explicitly set flags
func applyFlags(cfg *config.Config, o options, set map[string]bool) error {
	h := &cfg.House
	if set["seed"] {
		h.Seed, h.RandomSeed = o.seed, false
	}
	if set["random"] {
		h.RandomSeed = o.random
	}
	if set["floors"] {
		h.Floors = o.floors
	}
	if set["grid"] {
		w, ht, err := config.ParseGrid(o.grid)
		if err != nil {
			return err
		}
		h.Width, h.Height = w, ht
	}
	return nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, set, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if f := setupLogging(o.debug); f != nil {
		defer f.Close()
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cfg, o, set); err != nil {
		return err
	}

	if o.dumpConfig {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	gen, err := house.NewGenerator(cfg.House)
	if err != nil {
		return err
	}
	if err := cfg.Apply(gen); err != nil {
		return err
	}
	res, err := gen.Generate()
	if err != nil {
		return err
	}

	if !o.quiet {
		printResult(stdout, res)
	}
	if o.stats {
		fmt.Fprintln(stdout, "\nMetrics:")
		for _, line := range gen.Metrics().Lines() {
			fmt.Fprintln(stdout, line)
		}
	}
	return writeOutputs(o, res)
}

func printResult(w io.Writer, res *house.Result) {
	fmt.Fprintf(w, "Seed: %d\n", res.Seed)
	for i, f := range res.Floors {
		fmt.Fprintf(w, "\nFloor %d:\n", i)
		for _, row := range f.Rows() {
			fmt.Fprintln(w, row)
		}
	}
	fmt.Fprintf(w, "\nRoof rectangles: %d\n", len(res.Rects))
	for _, line := range res.Report() {
		fmt.Fprintln(w, line)
	}
}

func writeOutputs(o options, res *house.Result) error {
	var errs []error
	write := func(path string, fn func(io.Writer) error) {
		if path == "" {
			return
		}
		f, err := os.Create(path)
		if err != nil {
			errs = append(errs, err)
			return
		}
		if err := fn(f); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	write(o.pngPath, func(w io.Writer) error {
		return render.WritePNG(w, render.Plan(res.Floors, res.Rects, o.scale))
	})
	write(o.objPath, func(w io.Writer) error {
		return export.WriteOBJ(w, res.Pieces)
	})
	write(o.jsonPath, func(w io.Writer) error {
		return export.WriteJSON(w, res, o.meshes)
	})
	return errors.Join(errs...)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "housegen: %v\n", err)
		os.Exit(1)
	}
}
