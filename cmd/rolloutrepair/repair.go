package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/wesm/rolloutrepair/internal/config"
	"github.com/wesm/rolloutrepair/internal/repair"
)

// failureOutcomes is the reporting order for files that were
// scanned but not repaired.
var failureOutcomes = []repair.Outcome{
	repair.OutcomeNoIdentity,
	repair.OutcomeNoTimestamp,
	repair.OutcomeNoCandidate,
	repair.OutcomeNoMatchingRecords,
	repair.OutcomeWriteFailed,
}

// Repairer executes the repair workflow and reports to Out.
type Repairer struct {
	Out io.Writer
}

// Repair runs the batch over the configured sessions root and
// writes the summary.
func (r *Repairer) Repair(cfg config.Config) error {
	stats, err := repair.Run(cfg.SessionsRoot, cfg.DryRun)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.Out,
		"Scanned %d jsonl files; repaired %d\n",
		stats.Scanned, stats.Repaired,
	)
	writeBreakdown(r.Out, stats)

	if cfg.DryRun {
		fmt.Fprintln(r.Out, "Dry run: no files were written.")
	}
	return nil
}

func writeBreakdown(w io.Writer, stats repair.Stats) {
	for _, o := range failureOutcomes {
		if n := stats.ByOutcome[o]; n > 0 {
			fmt.Fprintf(w, "  %-26s %d\n", o, n)
		}
	}
}

func runRepair(args []string) {
	fs := flag.NewFlagSet("repair", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			"Usage: rolloutrepair [repair] [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	config.RegisterRepairFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	cfg, err := config.Load(fs)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	repairer := &Repairer{Out: os.Stdout}
	if err := repairer.Repair(cfg); err != nil {
		log.Fatalf("repair: %v", err)
	}
}
