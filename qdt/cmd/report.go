package cmd

import (
	"fmt"
	"log"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/sarchlab/qdt/datarecording"
	"github.com/sarchlab/qdt/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Serve a recorded conversion database over HTTP.",
	Run: func(cmd *cobra.Command, args []string) {
		dbPath, _ := cmd.Flags().GetString("db")
		if dbPath == "" {
			panic("Must specify a SQLite file")
		}

		reader := datarecording.NewReader(dbPath)

		server := report.NewServer()

		port, _ := cmd.Flags().GetInt("port")
		if port != 0 {
			server.WithPortNumber(port)
		}

		server.RegisterReader(reader)
		server.StartServer()

		open, _ := cmd.Flags().GetBool("open")
		if open {
			url := fmt.Sprintf("http://localhost:%d", server.Port())

			err := browser.OpenURL(url)
			if err != nil {
				log.Printf("Cannot open browser: %v", err)
			}
		}

		select {}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().String("db", "", "SQLite file to read from")
	reportCmd.Flags().Int("port", 0, "Port to serve the report on")
	reportCmd.Flags().Bool("open", false, "Open the report in a browser")
}
