//go:build ignore

package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Regenerates buildinfo.go with the short git SHA of HEAD. Invoked via
// go:generate from the buildinfo package.
func main() {
	if len(os.Args) < 2 {
		log.Fatalf("Provide output directory as only command line argument")
	}
	outputDir, outputDirErr := filepath.Abs(os.Args[1])
	if outputDirErr != nil {
		log.Fatalf("Failed to get absolute output path. Error: %s", outputDirErr)
	}
	gitSHA, gitSHAErr := exec.Command("git", "rev-parse", "--short", "HEAD").CombinedOutput()
	if gitSHAErr != nil {
		log.Fatalf("Failed to read git SHA: %s", gitSHAErr)
	}

	outputFile := filepath.Join(outputDir, "buildinfo.go")
	contents := fmt.Sprintf(`//go:generate go run ./script/buildinfo-extractor.go .
//
// Generated: %s
//
package buildinfo

var VERSION_INFO = "%s"

func BuildInfo() string {
	return VERSION_INFO
}
`,
		time.Now().Format(time.RFC3339),
		strings.TrimSpace(string(gitSHA)))
	writeErr := os.WriteFile(outputFile, []byte(contents), 0644)
	if writeErr != nil {
		log.Fatalf("Failed to write %s. Error: %s", outputFile, writeErr)
	}
	log.Printf("Created output file: %s", outputFile)
}
