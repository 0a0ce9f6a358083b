package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ndthang042/guide-flow/internal/config"
	"github.com/ndthang042/guide-flow/internal/llm"
	"github.com/ndthang042/guide-flow/internal/logger"
	"github.com/ndthang042/guide-flow/internal/processor"
	"github.com/ndthang042/guide-flow/internal/prompt"
	"github.com/ndthang042/guide-flow/internal/provider"
	"github.com/ndthang042/guide-flow/internal/render"
	"github.com/ndthang042/guide-flow/internal/transcript"
	"github.com/ndthang042/guide-flow/internal/watcher"
)

func main() {
	var (
		configPath      = flag.String("config", "", "path to the YAML config file (default config.yaml if present)")
		outputPath      = flag.String("o", "", "output file path (.txt or .docx); defaults to stdout")
		wordsPerSegment = flag.Int("words-per-segment", 0, "words per transcript segment (overrides config)")
		watchMode       = flag.Bool("watch", false, "watch the input directory for new transcripts")
	)
	flag.Parse()

	ctx := context.Background()

	// .env is optional; real environment variables take precedence anyway.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *wordsPerSegment > 0 {
		cfg.Segment.WordsPerSegment = *wordsPerSegment
	}

	log := logger.New(cfg.Logging.Level)

	prov, err := provider.New(ctx, cfg.LLM.Provider)
	if err != nil {
		log.Error(ctx, "Failed to initialize LLM provider: %v", err)
		os.Exit(1)
	}

	invoker := llm.New(prov, log,
		llm.WithModel(cfg.LLM.Model),
		llm.WithMaxTokens(cfg.LLM.MaxTokens),
		llm.WithTemperature(*cfg.LLM.Temperature),
		llm.WithMaxRetries(*cfg.LLM.MaxRetries),
		llm.WithBaseDelay(cfg.LLM.BaseDelaySeconds),
	)

	prompts := prompt.NewStore(cfg.Prompts.Dir)

	proc, err := processor.New(invoker, prompts, log)
	if err != nil {
		log.Error(ctx, "Failed to initialize processor: %v", err)
		os.Exit(1)
	}

	if *watchMode {
		runWatch(ctx, cfg, proc, log)
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <transcript.txt>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := runOnce(ctx, flag.Arg(0), *outputPath, cfg, proc, log); err != nil {
		log.Error(ctx, "%v", err)
		os.Exit(1)
	}
}

// runOnce processes a single transcript file and writes the study guide.
func runOnce(ctx context.Context, inputPath, outputPath string, cfg *config.Config, proc processor.Processor, log logger.Logger) error {
	raw, err := transcript.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	cleaned := transcript.Normalize(raw)
	segments := transcript.Segment(cleaned, cfg.Segment.WordsPerSegment)
	log.Info(ctx, "Transcript split into %d segments (%d words per segment)",
		len(segments), cfg.Segment.WordsPerSegment)

	results := proc.ProcessAll(ctx, segments)

	if outputPath == "" {
		fmt.Print(render.PlainText(results))
		return nil
	}

	title := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	if err := writeGuide(outputPath, title, results); err != nil {
		// A finished guide is never discarded over a write failure.
		log.Warn(ctx, "Failed to write %s: %v; printing to stdout instead", outputPath, err)
		fmt.Print(render.PlainText(results))
		return nil
	}

	log.Info(ctx, "Study guide written to %s", outputPath)
	return nil
}

func writeGuide(outputPath, title string, results []processor.SegmentResult) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if strings.EqualFold(filepath.Ext(outputPath), ".docx") {
		return render.Docx(title, results, outputPath)
	}
	return os.WriteFile(outputPath, []byte(render.PlainText(results)), 0644)
}

// runWatch monitors the configured input directory and generates a study
// guide for every transcript dropped into it.
func runWatch(ctx context.Context, cfg *config.Config, proc processor.Processor, log logger.Logger) {
	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Error(ctx, "Failed to create directory %s: %v", dir, err)
			os.Exit(1)
		}
	}

	handler := func(ctx context.Context, path string) error {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		out := filepath.Join(cfg.Paths.Output, base+"_guide.txt")
		return runOnce(ctx, path, out, cfg, proc, log)
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log, 1)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching %s for new transcripts (output: %s)", cfg.Paths.Input, cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
}
