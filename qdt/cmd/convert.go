package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/qdt/circuit"
	"github.com/sarchlab/qdt/datarecording"
	"github.com/sarchlab/qdt/dtconv"
	"github.com/sarchlab/qdt/hardware"
	"github.com/sarchlab/qdt/naming"
	"github.com/sarchlab/qdt/tracing"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Rewrite the durations of a circuit file into sample steps.",
	Long: "`convert --input [file]` rewrites the scheduled duration of a " +
		"circuit into hardware sample steps. The sample time comes from " +
		"--dt, from --backend, or from the environment.",
	Run: func(cmd *cobra.Command, args []string) {
		inputPath, _ := cmd.Flags().GetString("input")
		if inputPath == "" {
			panic("Must specify an input circuit file")
		}

		qc, err := circuit.LoadJSON(inputPath)
		if err != nil {
			fatalf("Error loading circuit: %v", err)
		}

		converter := dtconv.MakeBuilder().
			WithDTInSec(resolveDT(cmd)).
			Build(naming.BuildName(qc.Name, "Converter"))

		finishRecording := startRecording(cmd, converter)

		outputPath, _ := cmd.Flags().GetString("output")
		if outputPath == "" {
			outputPath = inputPath
			err = converter.ConvertInPlace(qc)
		} else {
			qc, err = converter.ConvertToNew(qc)
		}

		if err != nil {
			fatalf("Error converting circuit: %v", err)
		}

		err = qc.SaveJSON(outputPath)
		if err != nil {
			fatalf("Error saving circuit: %v", err)
		}

		finishRecording()

		if qc.Scheduled() {
			fmt.Printf("Circuit '%s' scheduled at %v [%s], written to %s\n",
				qc.Name, qc.Schedule.Duration, qc.Schedule.Unit, outputPath)
		} else {
			fmt.Printf("Circuit '%s' has no schedule, written to %s\n",
				qc.Name, outputPath)
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().String("input", "", "Circuit JSON file to convert")
	convertCmd.Flags().String("output", "",
		"Where to write the converted circuit (default: rewrite in place)")
	convertCmd.Flags().Float64("dt", 0, "Sample time in seconds")
	convertCmd.Flags().String("backend", "",
		"Registered backend to take the sample time from")
	convertCmd.Flags().Bool("record", false,
		"Record the conversion into a SQLite database")
	convertCmd.Flags().String("db", "",
		"Database file prefix to record into (default: generated name)")
}

// fatalf logs the error and exits through atexit, so that registered
// recorders flush before the process dies.
func fatalf(format string, v ...any) {
	log.Printf(format, v...)
	atexit.Exit(1)
}

// resolveDT picks the sample time from --dt, then --backend, then the
// environment.
func resolveDT(cmd *cobra.Command) float64 {
	dt, _ := cmd.Flags().GetFloat64("dt")
	if dt < 0 {
		fatalf("Error: dt must be a positive number of seconds")
	}

	if dt > 0 {
		return dt
	}

	backendName, _ := cmd.Flags().GetString("backend")
	if backendName != "" {
		b, ok := hardware.Lookup(backendName)
		if !ok {
			fatalf("Error: unknown backend %q", backendName)
		}

		return b.DTInSec
	}

	b, err := hardware.FromEnv()
	if err != nil {
		fatalf("Error: %v", err)
	}

	return b.DTInSec
}

// startRecording attaches an audit trail to the converter when --record is
// set. The returned function finalizes the recording. It is also registered
// as an exit handler, so a fatal exit still finalizes; calling it twice is
// harmless.
func startRecording(
	cmd *cobra.Command,
	converter *dtconv.Converter,
) func() {
	record, _ := cmd.Flags().GetBool("record")
	if !record {
		return func() {}
	}

	dbPath, _ := cmd.Flags().GetString("db")

	writer := datarecording.New(dbPath)

	execRecorder := datarecording.NewExecRecorder(writer)
	execRecorder.Start()

	tracing.Collect(converter, tracing.NewDBCollector(writer))

	finish := func() {
		execRecorder.End()

		err := writer.Close()
		if err != nil {
			log.Printf("Cannot close recording database: %v", err)
		}
	}

	atexit.Register(finish)

	return finish
}
