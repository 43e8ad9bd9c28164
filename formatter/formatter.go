// Package formatter renders verification reports for humans.
// Derived proofs are printed line by line with the step that produced
// each formula, ending in the Q.E.D. marker; failed proofs show the
// derived prefix followed by the failing step and reason.
package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"

	"github.com/khang200923/simple-propositional-logic/internal/logic"
	tt "github.com/khang200923/simple-propositional-logic/internal/types"
)

var (
	derivedStyle = color.New(color.FgGreen, color.Bold)
	failedStyle  = color.New(color.FgRed, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	formulaStyle = color.New(color.FgWhite)
	stepStyle    = color.New(color.FgYellow)
	reasonStyle  = color.New(color.FgRed, color.Bold)
)

// reportFormatter is the interface that wraps the ReportTemplate method.
// Implementations format one verification outcome.
type reportFormatter interface {
	ReportTemplate() string
}

// DerivedFormatter formats a successfully verified proof.
type DerivedFormatter struct{}

func (*DerivedFormatter) ReportTemplate() string {
	return `{{header .Status .Name .Goal}}
{{- range .TraceLines}}
{{traceLine .}}
{{- end}}
{{qed}}

`
}

// FailedFormatter formats an invalid proof.
type FailedFormatter struct{}

func (*FailedFormatter) ReportTemplate() string {
	return `{{header .Status .Name .Goal}}
{{- range .TraceLines}}
{{traceLine .}}
{{- end}}
{{failure .Step .FailedStep .Reason .Detail}}
`
}

// getReportFormatter returns the formatter matching the report's status.
func getReportFormatter(report logic.VerificationReport) reportFormatter {
	if report.Status == logic.Derived {
		return &DerivedFormatter{}
	}
	return &FailedFormatter{}
}

// traceLine couples a derived formula with the provenance of the step
// that produced it.
type traceLine struct {
	Index      int
	Formula    string
	Provenance string
}

type reportData struct {
	Name       string
	Goal       string
	Status     string
	Reason     string
	Detail     string
	Step       int
	FailedStep string
	TraceLines []traceLine
}

// GenerateFormattedReports formats a slice of check results into a
// human-readable string.
func GenerateFormattedReports(results []tt.CheckResult) string {
	var builder strings.Builder
	for _, result := range results {
		builder.WriteString(buildReport(result, getReportFormatter(result.Report)))
	}
	return builder.String()
}

func buildReport(result tt.CheckResult, formatter reportFormatter) string {
	report := result.Report

	lines := make([]traceLine, 0, len(report.Trace))
	for i, term := range report.Trace {
		line := traceLine{Index: i, Formula: term.String()}
		if i < len(result.Proof.Steps) {
			line.Provenance = result.Proof.Steps[i].String()
		}
		lines = append(lines, line)
	}

	failedStep := ""
	if report.Status == logic.Failed && report.Step >= 0 && report.Step < len(result.Proof.Steps) {
		failedStep = result.Proof.Steps[report.Step].String()
	}

	goal := ""
	if result.Proof.Goal != nil {
		goal = result.Proof.Goal.String()
	}

	data := reportData{
		Name:       result.Name,
		Goal:       goal,
		Status:     report.Status.String(),
		Reason:     report.Reason.String(),
		Detail:     report.Detail,
		Step:       report.Step,
		FailedStep: failedStep,
		TraceLines: lines,
	}

	funcMap := template.FuncMap{
		"header":    header,
		"traceLine": renderTraceLine,
		"failure":   failure,
		"qed":       qed,
	}

	tmpl := template.Must(template.New("report").Funcs(funcMap).Parse(formatter.ReportTemplate()))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting report: %v", err)
	}
	return buf.String()
}

// utils functions used in the text templates

func header(status, name, goal string) string {
	var endString string
	if status == "Derived" {
		endString = derivedStyle.Sprint("derived: ")
	} else {
		endString = failedStyle.Sprint("failed: ")
	}
	endString += fileStyle.Sprintf("%s\n", name)
	endString += lineStyle.Sprintf("Goal is %s\n", goal)
	endString += lineStyle.Sprint("Proof is:")
	return endString
}

func renderTraceLine(line traceLine) string {
	endString := lineStyle.Sprintf("%d: ", line.Index)
	endString += formulaStyle.Sprint(line.Formula)
	if line.Provenance != "" {
		endString += stepStyle.Sprintf(" (%s)", line.Provenance)
	}
	return endString
}

func failure(step int, failedStep, reason, detail string) string {
	endString := reasonStyle.Sprintf("error: %s\n", reason)
	if failedStep != "" {
		endString += stepStyle.Sprintf("at step %d: %s\n", step, failedStep)
	} else if step >= 0 {
		endString += stepStyle.Sprintf("at step %d\n", step)
	}
	if detail != "" {
		endString += formulaStyle.Sprintf("%s\n", detail)
	}
	return endString
}

func qed() string {
	return derivedStyle.Sprint("Q.E.D.")
}
