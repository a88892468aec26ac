package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/plus3/blockfall/config"
)

func main() {
	cfg := config.Load()
	cfg.BindSoakFlags(flag.CommandLine)
	verbose := flag.Bool("v", false, "Log engine lifecycle events.")
	flag.Parse()
	cfg.Validate()

	log.Println("Starting blockfall soak run...")

	engineLog := log.New(os.Stderr, "engine: ", log.LstdFlags)
	if !*verbose {
		engineLog.SetOutput(io.Discard)
	}

	log.Printf("Simulating %s in %s steps (seed %d)...\n", cfg.Soak.Duration, cfg.Soak.Step, cfg.Soak.Seed)
	report := NewSoak(cfg.Soak, engineLog).Run()
	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if report.Violation != "" {
		os.Exit(1)
	}
}
