package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/fatih/color"
	"github.com/themizzi/swagtest/internal/config"
)

// DefaultSuitePackage is the package holding the browser specs
const DefaultSuitePackage = "./e2e"

// RunOptions select what `swagtest run` executes
type RunOptions struct {
	Package string
	Filter  string // passed to go test -run
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
}

// SuiteCommand builds the go test invocation for opts
func SuiteCommand(opts RunOptions) []string {
	pkg := opts.Package
	if pkg == "" {
		pkg = DefaultSuitePackage
	}

	args := []string{"go", "test", pkg, "-count=1"}
	if opts.Verbose {
		args = append(args, "-v")
	}
	if opts.Filter != "" {
		args = append(args, "-run", opts.Filter)
	}
	return args
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// FormatCommand renders env and args as a copy-pasteable shell line
func FormatCommand(env, args []string) string {
	var b commandBuilder
	b.add(env...)
	b.add(args...)
	return b.String()
}

// RunSuite runs the browser specs with cfg exported to their environment
func RunSuite(ctx context.Context, cfg *config.RunConfig, opts RunOptions) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	args := SuiteCommand(opts)
	env := cfg.Environ()
	color.New(color.FgCyan, color.Bold).Fprintf(opts.Stdout, "$ %s\n", FormatCommand(env, args))

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	if err := cmd.Run(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(opts.Stderr, "FAIL suite against "+cfg.Target())
		return fmt.Errorf("e2e suite failed: %w", err)
	}
	color.New(color.FgGreen, color.Bold).Fprintln(opts.Stdout, "PASS suite against "+cfg.Target())
	return nil
}
