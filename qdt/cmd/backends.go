package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/sarchlab/qdt/hardware"
	"github.com/sarchlab/qdt/units"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List the known hardware backends.",
	Run: func(cmd *cobra.Command, args []string) {
		for _, b := range hardware.List() {
			dt, prefix, err := units.DetachPrefix(b.DTInSec)
			if err != nil {
				log.Fatalf("Error: %v", err)
			}

			fmt.Printf("%-16s %4d qubits  dt = %.6g %ss\n",
				b.Name, b.NumQubits, dt, prefix)
		}
	},
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}
