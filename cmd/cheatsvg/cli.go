package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cheatsvg "github.com/alnah/go-cheatsvg"
)

// run executes one batch compilation and returns the process exit code.
func run(flags *cliFlags, env *Environment) int {
	if flags.version {
		fmt.Fprintf(env.Stdout, "cheatsvg %s\n", Version)
		return ExitSuccess
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	comp := cheatsvg.New(buildOptions(flags, env)...)
	defer func() {
		if err := comp.Close(); err != nil && flags.verbose {
			fmt.Fprintf(env.Stderr, "closing browser: %v\n", err)
		}
	}()

	summary, err := comp.Run(ctx, flags.input, flags.output, flags.png)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	if summary.LedgerErr != nil {
		fmt.Fprintf(env.Stderr, "warning: %v\n", summary.LedgerErr)
	}

	if !flags.quiet {
		printSummary(env, summary)
	}

	if summary.Failed > 0 {
		return ExitGeneral
	}
	return ExitSuccess
}

// buildOptions maps CLI flags onto compiler options.
func buildOptions(flags *cliFlags, env *Environment) []cheatsvg.Option {
	opts := []cheatsvg.Option{
		cheatsvg.WithConsoleWidth(flags.width),
		cheatsvg.WithScale(flags.scale),
		cheatsvg.WithTimeout(flags.timeout),
	}
	if flags.force {
		opts = append(opts, cheatsvg.WithForce())
	}
	if !flags.quiet {
		opts = append(opts, cheatsvg.WithLogf(func(format string, args ...any) {
			fmt.Fprintf(env.Stdout, format+"\n", args...)
		}))
	}
	return opts
}

// printSummary prints the run summary block.
func printSummary(env *Environment, s cheatsvg.Summary) {
	fmt.Fprintln(env.Stdout)
	fmt.Fprintln(env.Stdout, "Summary:")
	fmt.Fprintf(env.Stdout, "  Processed: %d\n", s.Processed)
	fmt.Fprintf(env.Stdout, "  Skipped:   %d\n", s.Skipped)
	fmt.Fprintf(env.Stdout, "  Failed:    %d\n", s.Failed)
	fmt.Fprintf(env.Stdout, "  Total:     %d\n", s.Total)
}
