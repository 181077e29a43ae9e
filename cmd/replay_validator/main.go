package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lukev/innovation_server/internal/export"
	"github.com/lukev/innovation_server/internal/game"
	"github.com/lukev/innovation_server/internal/replay"
)

func main() {
	expect := flag.String("checksum", "", "expected final-state checksum")
	svgDir := flag.String("svg", "", "write a board SVG per replay step into this directory")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: replay_validator [-checksum SUM] [-svg DIR] <record.json>")
		os.Exit(1)
	}
	recordFile := flag.Arg(0)

	fmt.Printf("Loading game record: %s\n", recordFile)
	raw, err := os.ReadFile(recordFile)
	if err != nil {
		fmt.Printf("Failed to read record: %v\n", err)
		os.Exit(1)
	}
	var record game.GameRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		fmt.Printf("Failed to parse record: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d log entries (seed %d)\n", len(record.Log), record.Seed)

	// Replay the game with invariant checks after every entry.
	fmt.Println("\nReplaying game...")
	report, err := replay.ValidateRecord(&record, *expect)
	if err != nil {
		fmt.Printf("Replay failed to start: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Executed %d/%d entries\n", report.EntriesRun, len(record.Log))
	fmt.Printf("Final checksum: %s\n", report.FinalChecksum)

	if !report.OK() {
		fmt.Printf("\nFound %d validation issues:\n", len(report.Issues))
		for _, issue := range report.Issues {
			fmt.Printf("  %s\n", issue)
		}
		os.Exit(1)
	}
	fmt.Println("All validations passed")

	if *svgDir != "" {
		if err := writeSnapshots(&record, *svgDir); err != nil {
			fmt.Printf("SVG export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d board snapshots to %s\n", len(record.Log)+1, *svgDir)
	}
}

func writeSnapshots(record *game.GameRecord, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	sim, err := replay.NewGameSimulator(record)
	if err != nil {
		return err
	}

	for step := 0; ; step++ {
		opts := export.DefaultSVGOptions()
		opts.Title = fmt.Sprintf("%s - step %d", record.GameID, step)
		out, err := export.ExportSVG(sim.GetState(), opts)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, fmt.Sprintf("step_%03d.svg", step))
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return err
		}

		if sim.Remaining() == 0 {
			return nil
		}
		if err := sim.StepForward(); err != nil {
			return err
		}
	}
}
