// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"os"

	"github.com/rs/zerolog"
)

// init silences logging for tests unless KNNEVAL_TEST_LOG is set.
func init() {
	if os.Getenv("KNNEVAL_TEST_LOG") == "" {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}
}
