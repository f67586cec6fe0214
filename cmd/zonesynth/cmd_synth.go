package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/pkg/logger"
	"github.com/theory-cloud/zonetheory/pkg/lookup"
	"github.com/theory-cloud/zonetheory/pkg/zonefile"
)

func newCmdSynth(d deps) *cobra.Command {
	var (
		file      string
		format    string
		noLookups bool
	)
	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Render the template described by a zone file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unsupported output format %q (json|yaml)", format)
			}
			spec, err := zonefile.ReadFile(file)
			if err != nil {
				return err
			}
			cachePath, _ := cmd.Flags().GetString("context")
			cache, err := lookup.LoadCache(cachePath)
			if err != nil {
				return err
			}

			build := func(context map[string]any) (*cfn.App, error) {
				app := cfn.NewApp(&cfn.AppProps{Context: context})
				if _, err := zonefile.Build(app, spec); err != nil {
					return nil, err
				}
				return app, nil
			}

			var app *cfn.App
			if noLookups {
				app, err = build(cache.Context())
				if err == nil {
					if missing := app.MissingContext(); len(missing) > 0 {
						err = cfn.Errorf(cfn.CodeLookupFailed, "context lookup %s is not cached; run without --no-lookups", missing[0].Key)
					}
				}
			} else {
				resolver := lookup.NewResolver(
					lookup.WithProvider(lookup.NewHostedZoneProvider(d.newClient)),
					lookup.WithLogger(logger.Logger()),
				)
				before := len(cache.Keys())
				app, err = resolver.Synthesize(cmd.Context(), cache, build)
				if err == nil && len(cache.Keys()) != before {
					err = cache.Save()
				}
			}
			if err != nil {
				return err
			}

			tmpl, err := app.Stacks()[0].Synth()
			if err != nil {
				return err
			}
			var out []byte
			if format == "yaml" {
				out, err = tmpl.YAML()
			} else {
				out, err = tmpl.JSON()
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "zones.yaml", "Zone file to synthesize")
	cmd.Flags().StringVarP(&format, "output", "o", "json", "Output format (json|yaml)")
	cmd.Flags().BoolVar(&noLookups, "no-lookups", envBool("ZONETHEORY_NO_LOOKUPS"), "Fail instead of calling AWS when a lookup is not cached")
	return cmd
}

// envBool reports whether name holds a true value; unset or unparsable values are false.
func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}
