// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/stevenkilzer/calc/pkg/output"
)

// FindResult finds a project result by name in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindResult(results []output.Result, name string) *output.Result {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}
