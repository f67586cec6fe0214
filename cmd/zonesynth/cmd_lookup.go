package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/pkg/lookup"
	"github.com/theory-cloud/zonetheory/route53"
)

func newCmdLookup(d deps) *cobra.Command {
	var (
		domain  string
		private bool
		vpcID   string
		account string
		region  string
	)
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Resolve a hosted zone and store it in the context cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			props := map[string]any{
				"domainName": domain,
				"account":    account,
				"region":     region,
			}
			if private {
				props["privateZone"] = true
			}
			if vpcID != "" {
				props["vpcId"] = vpcID
			}

			value, err := lookup.NewHostedZoneProvider(d.newClient).Lookup(cmd.Context(), props)
			if err != nil {
				return err
			}

			cachePath, _ := cmd.Flags().GetString("context")
			cache, err := lookup.LoadCache(cachePath)
			if err != nil {
				return err
			}
			key := cfn.ContextKey(route53.HostedZoneContextProvider, props)
			cache.Set(key, value)
			if err := cache.Save(); err != nil {
				return err
			}

			out, err := json.MarshalIndent(map[string]any{key: value}, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	cmd.Flags().StringVar(&domain, "domain", "", "Zone domain, e.g. example.com")
	cmd.Flags().BoolVar(&private, "private", false, "Look up a private hosted zone")
	cmd.Flags().StringVar(&vpcID, "vpc-id", "", "VPC associated with the private zone")
	cmd.Flags().StringVar(&account, "account", "", "Account of the stack that performs the lookup")
	cmd.Flags().StringVar(&region, "region", "", "Region of the stack that performs the lookup")
	_ = cmd.MarkFlagRequired("domain")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("region")
	return cmd
}
