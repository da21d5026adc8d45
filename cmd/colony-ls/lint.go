package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"colony-hq/colony-ls/pkg/blueprint"
	"colony-hq/colony-ls/pkg/blueprint/diag"
)

var lintFlags struct {
	file   string
	dir    string
	root   string
	strict bool
	format string
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate blueprint files",
	Long: `Validate Colony blueprint files for semantic errors.

The lint command parses blueprint files and runs the full validation
sequence against the workspace's application and service definitions:
  - dependency existence and self-reference checks
  - variable reference resolution (inputs and colony-generated variables)
  - catalog existence for applications and services
  - name and artifact uniqueness
  - supplied input existence
  - unused blueprint input warnings

Examples:
  # Lint a single blueprint
  colony-ls lint --file blueprints/demo.yaml --root .

  # Lint a directory of blueprints
  colony-ls lint --dir blueprints/ --root .

  # Strict mode (warnings as errors)
  colony-ls lint --file blueprints/demo.yaml --root . --strict

  # JSON output for CI/CD
  colony-ls lint --file blueprints/demo.yaml --root . --format json`,
	RunE: lintBlueprints,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFlags.file, "file", "f", "", "blueprint file to validate")
	lintCmd.Flags().StringVarP(&lintFlags.dir, "dir", "d", "", "directory of blueprint files")
	lintCmd.Flags().StringVarP(&lintFlags.root, "root", "r", ".", "workspace root containing the applications and services folders")
	lintCmd.Flags().BoolVar(&lintFlags.strict, "strict", false, "treat warnings as errors")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format: text, json")
}

func lintBlueprints(cmd *cobra.Command, args []string) error {
	if lintFlags.file == "" && lintFlags.dir == "" {
		return fmt.Errorf("either --file or --dir must be specified")
	}

	var files []string

	if lintFlags.file != "" {
		files = append(files, lintFlags.file)
	}

	if lintFlags.dir != "" {
		for _, pattern := range []string{"*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(lintFlags.dir, pattern))
			if err != nil {
				return fmt.Errorf("failed to list blueprint files: %w", err)
			}
			files = append(files, matches...)
		}
	}

	if len(files) == 0 {
		return fmt.Errorf("no blueprint files found")
	}

	results := make([]LintResult, 0, len(files))
	for _, file := range files {
		results = append(results, lintBlueprintFile(file, lintFlags.root))
	}

	if lintFlags.format == "json" {
		return outputJSON(results)
	}
	return outputText(results, lintFlags.strict)
}

// LintResult is the validation outcome for a single blueprint file.
type LintResult struct {
	File     string      `json:"file"`
	Valid    bool        `json:"valid"`
	Errors   []LintIssue `json:"errors,omitempty"`
	Warnings []LintIssue `json:"warnings,omitempty"`
}

// LintIssue is a single positioned finding.
type LintIssue struct {
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	EndLine  int    `json:"end_line"`
	EndCol   int    `json:"end_column"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

func lintBlueprintFile(path, root string) LintResult {
	result := LintResult{File: path, Valid: true}

	_, diags, err := blueprint.ParseAndValidate(path, root)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, LintIssue{Message: err.Error(), Severity: "error"})
		return result
	}

	for _, d := range diags {
		issue := LintIssue{
			Line:     d.Range.Start.Line,
			Column:   d.Range.Start.Column,
			EndLine:  d.Range.End.Line,
			EndCol:   d.Range.End.Column,
			Message:  d.Message,
			Severity: d.Severity.String(),
		}
		if d.Severity == diag.SeverityWarning {
			result.Warnings = append(result.Warnings, issue)
		} else {
			result.Errors = append(result.Errors, issue)
			result.Valid = false
		}
	}
	return result
}

func outputText(results []LintResult, strict bool) error {
	totalErrors := 0
	totalWarnings := 0

	for _, result := range results {
		fmt.Printf("Validating %s...\n", result.File)

		if len(result.Errors) == 0 && len(result.Warnings) == 0 {
			fmt.Println("✓ Blueprint valid")
		}

		for _, issue := range result.Errors {
			fmt.Printf("✗ Error: %s (line %d, col %d)\n", issue.Message, issue.Line, issue.Column)
			totalErrors++
		}
		for _, issue := range result.Warnings {
			fmt.Printf("⚠  Warning: %s (line %d, col %d)\n", issue.Message, issue.Line, issue.Column)
			totalWarnings++
		}

		fmt.Println()
	}

	fmt.Println("Summary:")
	fmt.Printf("  %d error(s), %d warning(s)\n", totalErrors, totalWarnings)

	if strict && totalWarnings > 0 {
		fmt.Println("  Strict mode enabled: treating warnings as errors")
		return fmt.Errorf("validation failed")
	}
	if totalErrors > 0 {
		return fmt.Errorf("validation failed")
	}
	return nil
}

func outputJSON(results []LintResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
