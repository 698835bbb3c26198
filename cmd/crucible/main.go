// Command crucible computes the cheapest constrained route across a digit
// grid read from a file or standard input.
//
//	crucible solve input.txt              # both regimes, one line each
//	crucible solve --format json --path   # JSON with the unrolled route
//	crucible render --regime forced input.txt
//
// Settings come from flags, CRUCIBLE_* environment variables, a .env file
// and an optional YAML file given with --config.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("crucible failed")
		os.Exit(1)
	}
}
