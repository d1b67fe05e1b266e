// Command knightour searches for a knight's tour and prints the solved
// board, optionally writing an HTML/SVG visualization.
//
// Usage:
//
//	knightour [flags] WIDTH HEIGHT
//
// Examples:
//
//	knightour 5 5                     open tour, plain ordering
//	knightour -warnsdorff 8 8         Warnsdorff's rule
//	knightour -centrifugal 8 8        prefer edge squares
//	knightour -start 3,4 8 8          start from (3,4)
//	knightour -closed -warnsdorff 8 8 closed (circular) tour
//	knightour -symmetry p 6 6         point-symmetric tour
//	knightour -limit 1000000 8 8      cap the move examinations
//	knightour -html tour.html 8 8     write the visualization
//	knightour -html t.html -animate 8 8
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/order"
	"github.com/katalvlaran/knightour/render"
	"github.com/katalvlaran/knightour/solver"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so the wiring stays testable.
func run(args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("knightour", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var (
		warnsdorff  = fs.Bool("warnsdorff", false, "use Warnsdorff's rule (fewest onward moves first)")
		centrifugal = fs.Bool("centrifugal", false, "prefer moves toward the board edge")
		start       = fs.String("start", "0,0", "start cell as x,y (0-indexed)")
		closed      = fs.Bool("closed", false, "require a closed (circular) tour")
		symmetry    = fs.String("symmetry", "", "symmetric tour: h, v or p (180° rotation); implies closed")
		limit       = fs.Uint64("limit", 0, "stop after N move examinations (0 = unlimited)")
		obstacles   = fs.String("obstacles", "", "blocked cells as x,y;x,y;...")
		htmlFile    = fs.String("html", "", "write an HTML/SVG visualization to FILE")
		animate     = fs.Bool("animate", false, "include animation controls in the visualization")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(errOut, "usage: knightour [flags] WIDTH HEIGHT")
		fs.PrintDefaults()
		return 2
	}

	opts, err := buildOptions(fs, *warnsdorff, *centrifugal, *start, *closed, *symmetry, *limit, *obstacles)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 2
	}

	printConfig(out, opts)

	res, err := solver.Solve(opts)
	switch {
	case err == nil:
		fmt.Fprintf(out, "\nSolution found in %s:\n", res.Stats.Duration)
		fmt.Fprint(out, render.Text(res, opts))
	case errors.Is(err, solver.ErrNoTour):
		fmt.Fprintf(out, "\nNo tour exists (proven in %s).\n", res.Stats.Duration)
	case errors.Is(err, solver.ErrTrialLimit):
		fmt.Fprintf(out, "\nTrial limit of %d reached after %s; result inconclusive.\n",
			opts.TrialLimit, res.Stats.Duration)
	default:
		fmt.Fprintln(errOut, "error:", err)
		return 2
	}

	fmt.Fprintln(out, "\nStatistics:")
	fmt.Fprintf(out, "  Move examinations: %d\n", res.Stats.Trials)
	fmt.Fprintf(out, "  Placements:        %d\n", res.Stats.Moves)
	fmt.Fprintf(out, "  Backtracks:        %d\n", res.Stats.Backtracks)

	if err == nil && *htmlFile != "" {
		ropts := render.DefaultOptions(opts)
		ropts.Animate = *animate
		doc, rerr := render.HTML(res, ropts)
		if rerr != nil {
			fmt.Fprintln(errOut, "error:", rerr)
			return 1
		}
		if werr := os.WriteFile(*htmlFile, []byte(doc), 0o644); werr != nil {
			fmt.Fprintln(errOut, "error:", werr)
			return 1
		}
		fmt.Fprintf(out, "\nVisualization saved to: %s\n", *htmlFile)
	}

	if err != nil {
		return 1
	}

	return 0
}

// buildOptions assembles the solver configuration from the parsed flags
// and positional arguments. Flag-format errors surface here; semantic
// validation stays with the solver.
func buildOptions(fs *flag.FlagSet, warnsdorff, centrifugal bool, start string,
	closed bool, symmetry string, limit uint64, obstacles string) (solver.Options, error) {

	var opts solver.Options

	width, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return opts, fmt.Errorf("invalid width %q", fs.Arg(0))
	}
	height, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		return opts, fmt.Errorf("invalid height %q", fs.Arg(1))
	}
	opts = solver.DefaultOptions(width, height)
	opts.Closed = closed
	opts.TrialLimit = limit

	if warnsdorff && centrifugal {
		return opts, fmt.Errorf("-warnsdorff and -centrifugal are mutually exclusive")
	}
	switch {
	case warnsdorff:
		opts.Heuristic = order.Warnsdorff
	case centrifugal:
		opts.Heuristic = order.Centrifugal
	}

	if opts.StartX, opts.StartY, err = parseCell(start); err != nil {
		return opts, fmt.Errorf("invalid start %q: use x,y", start)
	}

	switch symmetry {
	case "":
		// Regular search.
	case "h":
		opts.Symmetry = solver.SymHorizontal
	case "v":
		opts.Symmetry = solver.SymVertical
	case "p":
		opts.Symmetry = solver.SymPoint
	default:
		return opts, fmt.Errorf("invalid symmetry %q: use h, v or p", symmetry)
	}

	if obstacles != "" {
		for _, part := range strings.Split(obstacles, ";") {
			x, y, perr := parseCell(part)
			if perr != nil {
				return opts, fmt.Errorf("invalid obstacle %q: use x,y", part)
			}
			opts.Obstacles = append(opts.Obstacles, board.Coord{X: x, Y: y})
		}
	}

	return opts, nil
}

// parseCell parses "x,y" into a coordinate pair.
func parseCell(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want two comma-separated numbers")
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}

	return x, y, nil
}

// printConfig echoes the run configuration the way the solver will see it.
func printConfig(out io.Writer, opts solver.Options) {
	fmt.Fprintf(out, "Board size  : %dx%d\n", opts.Width, opts.Height)
	fmt.Fprintf(out, "Start pos   : (%d,%d)\n", opts.StartX, opts.StartY)

	tourType := "Open"
	switch {
	case opts.Symmetry != solver.SymNone:
		tourType = "Symmetric (" + opts.Symmetry.String() + ")"
	case opts.Closed:
		tourType = "Closed (circular)"
	}
	fmt.Fprintf(out, "Tour type   : %s\n", tourType)
	fmt.Fprintf(out, "Move order  : %s\n", opts.Heuristic)
	if len(opts.Obstacles) > 0 {
		fmt.Fprintf(out, "Obstacles   : %d\n", len(opts.Obstacles))
	}
	if opts.TrialLimit > 0 {
		fmt.Fprintf(out, "Trial limit : %d\n", opts.TrialLimit)
	}
}
