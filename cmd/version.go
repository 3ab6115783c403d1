package cmd

import (
	"fmt"

	"github.com/SiliconWit/mechanics-of-materials/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of beamcalc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("beamcalc v%s\n", version.Version)
		fmt.Println("Determinate Beam Analysis Toolkit")
		fmt.Printf("build: %s, commit: %s\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
