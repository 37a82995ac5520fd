// Package main provides the micro-torch CLI.
//
// Usage:
//
//	microtorch version
//	microtorch chain
//	microtorch train [-gate not|and|or] [-steps N] [-lr LR] [-momentum M] [-seed S] [-verbose]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("micro-torch %s\n", version)
		return
	case "chain":
		err = runChain(os.Stdout)
	case "train":
		err = runTrain(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		slog.Error("command failed", "command", os.Args[1], "err", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("micro-torch - tensors with reverse-mode autograd")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  chain      Print gradients of t1*t1 + t1 at t1 = 2")
	fmt.Println("  train      Fit a single neuron to a logic gate")
}

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	cfg := defaultTrainConfig()
	fs.StringVar(&cfg.Gate, "gate", cfg.Gate, "logic gate to fit: not, and, or")
	fs.IntVar(&cfg.Steps, "steps", cfg.Steps, "number of gradient steps")
	fs.Float64Var(&cfg.LR, "lr", cfg.LR, "learning rate (0 selects the gate default)")
	fs.Float64Var(&cfg.Momentum, "momentum", cfg.Momentum, "SGD momentum")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "weight initialization seed (-1 for constant 0.5)")
	verbose := fs.Bool("verbose", false, "log the loss at every step")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	result, err := train(cfg, logger)
	if err != nil {
		return err
	}

	for i, p := range result.Predictions {
		fmt.Printf("%v -> %.4f (target %v)\n", result.Inputs[i], p, result.Targets[i])
	}
	if !result.Correct() {
		logger.Warn("model did not separate the gate", "gate", cfg.Gate, "steps", cfg.Steps)
	}
	return nil
}
