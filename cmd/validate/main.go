// Command validate runs the astronomical calculators against the embedded
// reference table and exits nonzero when any event falls outside tolerance.
// Tolerance defaults come from the service configuration (YAML file and
// VALIDATION_* env overrides); flags take precedence over both.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/anglerworks/fishcast/internal/domain/validation"
	"github.com/anglerworks/fishcast/internal/infra/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation aborted: %v\n", err)
		os.Exit(2)
	}

	sunTol := flag.Float64("sun-tolerance", cfg.Validation.SunToleranceMinutes, "allowed sunrise/sunset deviation in minutes")
	moonTol := flag.Float64("moon-tolerance", cfg.Validation.MoonToleranceFraction, "allowed moon phase deviation as a cycle fraction")
	verbose := flag.Bool("v", false, "print passing events as well as failures")
	flag.Parse()

	tolerances := validation.Tolerances{SunMinutes: *sunTol, MoonFraction: *moonTol}
	summary, err := validation.Run(validation.DefaultReferenceSet(), tolerances)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation aborted: %v\n", err)
		os.Exit(2)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tREFERENCE\tEVENT\tEXPECTED\tACTUAL\tDELTA\tNOTE")
	for _, r := range summary.Results {
		if r.Status == validation.StatusPass && !*verbose {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%.1f\t%.2f\t%s\n",
			r.Status, r.Row, r.Event, r.Expected, r.Actual, r.Delta, r.Note)
	}
	w.Flush()

	fmt.Printf("\n%d passed, %d failed, %d skipped (sun tolerance %.1f min, moon tolerance %.2f)\n",
		summary.Passed, summary.Failed, summary.Skipped, *sunTol, *moonTol)

	if !summary.Ok() {
		os.Exit(1)
	}
}
