package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	spl "github.com/khang200923/simple-propositional-logic"
	"github.com/khang200923/simple-propositional-logic/formatter"
	"github.com/khang200923/simple-propositional-logic/internal/logic"
	tt "github.com/khang200923/simple-propositional-logic/internal/types"
)

var (
	checkJSONOutput bool
	outPath         string
)

var checkCmd = &cobra.Command{
	Use:   "check [proof files...]",
	Short: "Verify proof files",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide proof file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := spl.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize check engine", zap.Error(err))
		}

		runCheckProcess(ctx, logger, engine, args, checkJSONOutput, outPath)
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSONOutput, "json", false, "Output reports in JSON format")
	checkCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

func runCheckProcess(ctx context.Context, logger *zap.Logger, engine spl.CheckEngine, paths []string, isJSON bool, jsonOutput string) {
	results, err := spl.ProcessFiles(ctx, logger, engine, paths, spl.ProcessFile)
	if err != nil {
		logger.Error("Error processing proof files", zap.Error(err))
		os.Exit(1)
	}

	printReports(logger, results, isJSON, jsonOutput)

	for _, result := range results {
		if result.Report.Status != logic.Derived {
			os.Exit(1)
		}
	}
}

// jsonReport is the flat, serializable view of a check result.
type jsonReport struct {
	File   string   `json:"file,omitempty"`
	Name   string   `json:"name"`
	Goal   string   `json:"goal"`
	Status string   `json:"status"`
	Reason string   `json:"reason,omitempty"`
	Step   *int     `json:"step,omitempty"`
	Detail string   `json:"detail,omitempty"`
	Trace  []string `json:"trace"`
}

func buildJSONReports(results []tt.CheckResult) []jsonReport {
	reports := make([]jsonReport, 0, len(results))
	for _, result := range results {
		report := jsonReport{
			File:   result.Filename,
			Name:   result.Name,
			Status: result.Report.Status.String(),
			Trace:  make([]string, 0, len(result.Report.Trace)),
		}
		if result.Proof.Goal != nil {
			report.Goal = result.Proof.Goal.String()
		}
		if result.Report.Status == logic.Failed {
			report.Reason = result.Report.Reason.String()
			report.Detail = result.Report.Detail
			step := result.Report.Step
			report.Step = &step
		}
		for _, term := range result.Report.Trace {
			report.Trace = append(report.Trace, term.String())
		}
		reports = append(reports, report)
	}
	return reports
}

func printReports(logger *zap.Logger, results []tt.CheckResult, isJSON bool, jsonOutput string) {
	sort.Slice(results, func(i, j int) bool {
		return results[i].Filename < results[j].Filename
	})

	if !isJSON {
		// text output
		fmt.Println(formatter.GenerateFormattedReports(results))
		return
	}

	// JSON output
	d, err := json.Marshal(buildJSONReports(results))
	if err != nil {
		logger.Error("Error marshalling reports to JSON", zap.Error(err))
		return
	}
	if jsonOutput == "" {
		fmt.Println(string(d))
		return
	}

	f, err := os.Create(jsonOutput)
	if err != nil {
		logger.Error("Error creating JSON output file", zap.Error(err))
		return
	}
	defer f.Close()
	if _, err := f.Write(d); err != nil {
		logger.Error("Error writing JSON output file", zap.Error(err))
	}
}
