package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/clearclown/mozuku-go/pkg/coord"
	"github.com/clearclown/mozuku-go/pkg/render"
	"github.com/clearclown/mozuku-go/pkg/token"
)

func runTokens(args []string) error {
	fs := flag.NewFlagSet("tokens", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	paths := fs.Args()
	if len(paths) != 1 {
		return fmt.Errorf("tokens: expected exactly one file")
	}

	content, err := os.ReadFile(paths[0])
	if err != nil {
		return fmt.Errorf("tokens: reading %s: %w", paths[0], err)
	}

	tk, err := token.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load the IPADIC dictionary")
	}

	toks := tk.Tokenize(string(content))
	lines := coord.SplitLines(string(content))

	for _, st := range render.SemanticTokens(toks, lines) {
		fmt.Printf("deltaLine=%d deltaStartChar=%d length=%d tokenType=%d\n",
			st.DeltaLine, st.DeltaStartChar, st.Length, st.TokenType)
	}
	return nil
}
