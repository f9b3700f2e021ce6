package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finsight/finsight"
	"github.com/google/subcommands"
)

type sampleCmd struct {
	output string
}

func (*sampleCmd) Name() string     { return "sample" }
func (*sampleCmd) Synopsis() string { return "write the sample dataset" }
func (*sampleCmd) Usage() string {
	return `pfd sample [-o <file>]

  Writes the built-in sample dataset as a ZIP archive. Useful to try the
  reports and as a template for your own data.
`
}

func (c *sampleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "sample.zip", "Output file for the sample archive.")
}

func (c *sampleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	raw, err := finsight.SampleZip()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building sample dataset: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.output, raw, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Sample dataset written to %s\n", c.output)
	return subcommands.ExitSuccess
}
