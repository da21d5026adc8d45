// Colony LS is the language-server core for Colony blueprints.
//
// It validates blueprint documents against the application and service
// definitions in a workspace and reports positioned diagnostics.
//
// Usage:
//
//	# Validate a single blueprint against a workspace
//	colony-ls lint --file blueprints/demo.yaml --root .
//
//	# Validate every blueprint in a directory
//	colony-ls lint --dir blueprints/ --root .
//
//	# JSON output for CI
//	colony-ls lint --file blueprints/demo.yaml --root . --format json
//
//	# Show version information
//	colony-ls version
package main

func main() {
	Execute()
}
