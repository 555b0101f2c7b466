package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/clearclown/mozuku-go/pkg/coord"
	"github.com/clearclown/mozuku-go/pkg/render"
	"github.com/clearclown/mozuku-go/pkg/token"
)

func runHover(args []string) error {
	fs := flag.NewFlagSet("hover", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 3 {
		return fmt.Errorf("usage: mozuku hover <file> <line> <col>")
	}
	path := rest[0]
	line, err := strconv.Atoi(rest[1])
	if err != nil {
		return fmt.Errorf("hover: invalid line %q: %w", rest[1], err)
	}
	column, err := strconv.Atoi(rest[2])
	if err != nil {
		return fmt.Errorf("hover: invalid column %q: %w", rest[2], err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("hover: reading %s: %w", path, err)
	}

	tk, err := token.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load the IPADIC dictionary")
	}

	tokens := tk.Tokenize(string(content))
	lines := coord.SplitLines(string(content))

	info, ok := render.Hover(tokens, lines, line, column)
	if !ok {
		return fmt.Errorf("hover: no token at %d:%d", line, column)
	}

	fmt.Print(info)
	return nil
}
