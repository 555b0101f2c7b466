package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/clearclown/mozuku-go/internal/cache"
	"github.com/clearclown/mozuku-go/internal/config"
	"github.com/clearclown/mozuku-go/internal/fanout"
	"github.com/clearclown/mozuku-go/internal/llm"
	"github.com/clearclown/mozuku-go/pkg/diagnostic"
	"github.com/clearclown/mozuku-go/pkg/extract"
	"github.com/clearclown/mozuku-go/pkg/project"
	"github.com/clearclown/mozuku-go/pkg/rules"
	"github.com/clearclown/mozuku-go/pkg/token"
)

// fileResult is one checked file's outcome, gathered back on the main
// goroutine once every worker job has run.
type fileResult struct {
	path        string
	diagnostics []diagnostic.Diagnostic
	err         error
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	configPath := fs.String("config", "", "path to mozuku.toml (defaults to the usual search order)")
	cachePath := fs.String("cache", "", "path to a SQLite diagnostic cache (disabled when empty)")
	suggest := fs.Bool("suggest", false, "request an LLM rewrite suggestion for each diagnostic")
	workers := fs.Int("workers", runtime.NumCPU(), "number of files to check concurrently")
	if err := fs.Parse(args); err != nil {
		return err
	}
	paths := fs.Args()
	if len(paths) == 0 {
		return fmt.Errorf("check: no files given")
	}

	var cfg config.Config
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return fmt.Errorf("check: loading config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.LoadFromDefault()
	}

	tk, err := token.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load the IPADIC dictionary")
	}
	engine := rules.NewEngine(tk)
	ruleSet := cfg.RuleSet()
	extractor := extract.NewExtractor()

	var diagCache *cache.Cache
	if *cachePath != "" {
		diagCache, err = cache.Open(*cachePath)
		if err != nil {
			return fmt.Errorf("check: opening cache: %w", err)
		}
		defer diagCache.Close()
	}

	var suggester llm.Suggester = llm.NoneSuggester{}
	if *suggest {
		suggester = llm.NewSuggester(cfg)
	}

	ctx := context.Background()
	pool := fanout.NewWorkerPool(*workers, 0)
	pool.Start(ctx)

	results := make([]fileResult, len(paths))
	var wg sync.WaitGroup
	wg.Add(len(paths))
	for i, path := range paths {
		i, path := i, path
		err := pool.Submit(func(ctx context.Context) error {
			defer wg.Done()
			ds, err := checkFile(ctx, path, extractor, engine, ruleSet, diagCache, suggester)
			results[i] = fileResult{path: path, diagnostics: ds, err: err}
			return err
		})
		if err != nil {
			wg.Done()
			results[i] = fileResult{path: path, err: err}
		}
	}
	wg.Wait()
	pool.Close()

	return reportResults(results)
}

func checkFile(
	ctx context.Context,
	path string,
	extractor *extract.Extractor,
	engine *rules.Engine,
	ruleSet rules.RuleSet,
	diagCache *cache.Cache,
	suggester llm.Suggester,
) ([]diagnostic.Diagnostic, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	fileType := extract.FromExtension(strings.TrimPrefix(filepath.Ext(path), "."))

	var cacheKey string
	if diagCache != nil {
		cacheKey = cache.Key(content, fmt.Sprint(int(fileType)), disabledCodes(ruleSet))
		if cached, ok, err := diagCache.Get(cacheKey); err == nil && ok {
			log.Debug().Str("path", path).Msg("cache hit")
			return cached, nil
		}
	}

	spans, err := extractor.Extract(string(content), fileType)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", path, err)
	}

	var all []diagnostic.Diagnostic
	for _, span := range spans {
		spanDiags := engine.Check(span.Text, ruleSet)
		all = append(all, project.All(project.Span{StartLine: span.StartLine, StartCol: span.StartCol}, spanDiags)...)
	}

	if _, disabled := suggester.(llm.NoneSuggester); !disabled {
		for i := range all {
			suggestion, err := suggester.Suggest(ctx, llm.Request{
				Text:  all[i].Message,
				Issue: all[i].Code,
			})
			if err == nil {
				all[i].Message = fmt.Sprintf("%s (提案: %s)", all[i].Message, suggestion.Text)
			}
		}
	}

	if diagCache != nil {
		if err := diagCache.Put(cacheKey, fmt.Sprint(int(fileType)), all); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("failed to populate cache")
		}
	}

	return all, nil
}

func disabledCodes(rs rules.RuleSet) []string {
	var disabled []string
	for _, r := range rules.AllRules() {
		if !rs.Enabled(r.Code()) {
			disabled = append(disabled, r.Code())
		}
	}
	return disabled
}

func reportResults(results []fileResult) error {
	var failed bool
	for _, r := range results {
		if r.err != nil {
			log.Error().Err(r.err).Str("path", r.path).Msg("check failed")
			failed = true
			continue
		}
		for _, d := range r.diagnostics {
			fmt.Printf("%s:%d:%d: %s %s: %s\n",
				r.path, d.Range.Start.Line+1, d.Range.Start.Column+1, d.Severity, d.Code, d.Message)
		}
	}
	if failed {
		return fmt.Errorf("check: one or more files failed")
	}
	return nil
}
