// Command topokit is a single-shot CLI front-end for the worker pipeline:
// it reads a WorkerComputePayload-shaped JSON dataset file, runs it through
// worker.ComputeSync once, and prints the resulting WorkerResult as
// indented JSON on stdout. Progress and partial events are logged to
// stderr as they arrive, so a human running it interactively sees the
// pipeline move through its stages without that output polluting the
// piped-able result on stdout.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/topokit/worker"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "topokit:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("topokit", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "log progress/partial events to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: topokit [-v] <dataset.json>")
	}

	payload, err := loadPayload(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	requestID := worker.NewRequestID()
	var emit worker.Emit
	if *verbose {
		emit = func(ev worker.Event) { logEvent(ev) }
	}

	result, err := worker.ComputeSync(context.Background(), requestID, payload, emit)
	if err != nil {
		return fmt.Errorf("computing: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func loadPayload(path string) (*worker.Payload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var payload worker.Payload
	if err := json.NewDecoder(f).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	return &payload, nil
}

func logEvent(ev worker.Event) {
	switch ev.Type {
	case worker.EventProgress:
		fmt.Fprintf(os.Stderr, "[%s] stage=%s\n", ev.RequestID, ev.Stage)
	case worker.EventPartial:
		fmt.Fprintf(os.Stderr, "[%s] partial=%s\n", ev.RequestID, ev.Partial.Kind)
	case worker.EventResult:
		fmt.Fprintf(os.Stderr, "[%s] done\n", ev.RequestID)
	case worker.EventError:
		fmt.Fprintf(os.Stderr, "[%s] error: %s\n", ev.RequestID, ev.Error.Message)
	}
}
