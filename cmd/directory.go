package cmd

import (
	"fmt"

	"location-directory/core/config"
	"location-directory/core/directory"

	"github.com/spf13/cobra"
)

var (
	idsRegion string
	idsCity   string
)

// directoryCmd groups commands that inspect the directory layout.
var directoryCmd = &cobra.Command{
	Use:   "directory",
	Short: "Inspect the directory hierarchy",
}

// idsCmd prints the node ids derived from an address.
var idsCmd = &cobra.Command{
	Use:   "ids",
	Short: "Print the region and city node ids for an address",
	Example: `  directory ids --region "Illinois" --city "Springfield"
  # region: dir-illinois
  # city:   dir-illinois-springfield`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		printIDs(cmd, directory.NewScheme(cfg.Directory.Prefix), idsRegion, idsCity)
		return nil
	},
}

func printIDs(cmd *cobra.Command, scheme directory.Scheme, region, city string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "region: %s\n", scheme.RegionID(region))
	fmt.Fprintf(out, "city:   %s\n", scheme.CityID(city, region))
}

func init() {
	idsCmd.Flags().StringVar(&idsRegion, "region", "", "Address region")
	idsCmd.Flags().StringVar(&idsCity, "city", "", "Address city")
	_ = idsCmd.MarkFlagRequired("region")

	directoryCmd.AddCommand(idsCmd)
	RootCmd.AddCommand(directoryCmd)
}
