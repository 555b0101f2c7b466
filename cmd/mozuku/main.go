// Command mozuku proofreads Japanese prose embedded in plain text,
// Markdown, HTML, and source-code comments: ら抜き・い抜き言葉, doubled
// particles, redundant honorifics, and the other patterns pkg/rules knows
// to flag.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "check":
		err = runCheck(os.Args[2:])
	case "hover":
		err = runHover(os.Args[2:])
	case "tokens":
		err = runTokens(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "mozuku: unknown subcommand %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: mozuku <command> [arguments]

commands:
  check   proofread one or more files, printing diagnostics
  hover   show morphological detail for the token at a line:column
  tokens  dump the semantic-token stream for a file`)
}
