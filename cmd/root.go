package cmd

import (
	"fmt"
	"os"

	"github.com/SiliconWit/mechanics-of-materials/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "beamcalc",
	Short: "Determinate Beam Analysis Toolkit",
	Long: `beamcalc - Determinate Beam Analysis Toolkit

A CLI tool for the static analysis of determinate beams as they occur in
mechatronic assemblies: conveyor frames, crane jibs, pantograph links,
robotic arms, solar trackers, gantry rails, and drone booms.

This tool helps mechatronics engineers perform:
  - Support reaction solving (two supports, cantilever, pin and spring)
  - Shear force and bending moment evaluation with critical points
  - Bending stress and safety factor checks via the flexure formula
  - Combined bending and torsion checks for circular members
  - Moving load travel studies and XLSX batch runs

Positions are in mm, forces in N, moments in N·mm, stresses in MPa.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   beamcalc v%-46s║\n", version.Version)
		fmt.Println("  ║   Determinate Beam Analysis Toolkit                       ║")
		fmt.Printf("  ║   %-56s║\n", version.Author+" ©  "+version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the static analysis of determinate beams in")
		fmt.Println("  mechatronic assemblies.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Reactions, shear and moment diagrams, critical points")
		fmt.Println("    • Bending stress and safety factors (flexure formula)")
		fmt.Println("    • Combined bending and torsion for circular members")
		fmt.Println("    • Built-in scenario library with published-figure checks")
		fmt.Println("    • Chart JSON, PDF reports, XLSX batch, diagram export")
		fmt.Println()
		fmt.Println("  Use 'beamcalc --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
