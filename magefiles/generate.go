//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Generate builds the CLI and runs a matching pass over data/.
// DEPT, MAX_OPPS, and TOP_N select the department label and limits
// (defaults: Department, 10, 12).
func Generate() error {
	mg.Deps(Init, Build)
	dept := envOr("DEPT", "Department")
	maxOpps := envOr("MAX_OPPS", "10")
	topN := envOr("TOP_N", "12")
	fmt.Printf("[generate] %s, %s opportunities, top %s\n", dept, maxOpps, topN)
	return sh.RunV(binPath, "generate", dept, maxOpps, topN)
}

// Show prints the generated teams as a table.
func Show() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "show")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
