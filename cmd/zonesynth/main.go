package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theory-cloud/zonetheory/pkg/logger"
	"github.com/theory-cloud/zonetheory/pkg/lookup"
	"github.com/theory-cloud/zonetheory/pkg/route53api"
)

var version = "dev"

// deps are the collaborators commands reach outside the process with.
type deps struct {
	newClient lookup.ClientFactory
}

func newRootCmd(d deps) *cobra.Command {
	if d.newClient == nil {
		d.newClient = route53api.NewClient
	}
	cmd := &cobra.Command{
		Use:     "zonesynth",
		Short:   "Synthesize Route 53 CloudFormation templates from zone files",
		Version: version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("context", lookup.DefaultCacheFile, "Context cache file holding lookup results")

	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		_, err := logger.InitFromEnv()
		return err
	}

	cmd.AddCommand(newCmdSynth(d))
	cmd.AddCommand(newCmdLookup(d))
	cmd.AddCommand(newCmdVersion())
	return cmd
}

func main() {
	root := newRootCmd(deps{})
	root.SetContext(context.Background())
	if err := root.Execute(); err != nil {
		logger.Logger().Error("zonesynth failed", map[string]any{"error": err})
		_ = logger.Logger().Flush(context.Background())
		fmt.Fprintf(os.Stderr, "zonesynth: %v\n", err)
		os.Exit(1)
	}
	_ = logger.Logger().Flush(context.Background())
}
