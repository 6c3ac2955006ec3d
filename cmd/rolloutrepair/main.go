package main

import (
	"fmt"
	"os"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = ""
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "repair":
			runRepair(os.Args[2:])
			return
		case "version", "--version", "-v":
			fmt.Printf("rolloutrepair %s (commit %s, built %s)\n",
				version, commit, buildDate)
			return
		case "help", "--help", "-h":
			printUsage()
			return
		}
	}

	runRepair(os.Args[1:])
}

func printUsage() {
	fmt.Printf(`rolloutrepair %s - repair Codex rollout session files

Recovers records from sibling rollout-*.mixed.bak backups, keeps
only those belonging to each session's working directory, relabels
them with the session's identity, and merges them back into the
rollout-*.jsonl file with duplicates removed.

Usage:
  rolloutrepair [flags]          Repair sessions (default command)
  rolloutrepair repair [flags]   Repair sessions (explicit)
  rolloutrepair version          Show version information
  rolloutrepair help             Show this help

Repair flags:
  -root string     Sessions root directory (default ~/.codex/sessions)
  -dry-run         Report what would be repaired without writing

Environment variables:
  CODEX_SESSIONS_DIR   Codex sessions directory

Target files are rewritten in place; run with -dry-run first if in
doubt.
`, version)
}
