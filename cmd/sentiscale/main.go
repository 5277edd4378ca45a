package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/google/gops/agent"
	"github.com/sentiscale/sentiscale/scaling"
	"github.com/sentiscale/sentiscale/service"
)

func main() {
	startGops()
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "score":
		scoreCmd(os.Args[2:])
	case "fit":
		fitCmd(os.Args[2:])
	case "terms":
		termsCmd(os.Args[2:])
	case "predict":
		predictCmd(os.Args[2:])
	case "run":
		runCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: sentiscale <command> [options]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  score    Score a corpus against a sentiment dictionary")
	fmt.Fprintln(os.Stderr, "  fit      Fit the seed-word scaling model on a corpus")
	fmt.Fprintln(os.Stderr, "  terms    Show the strongest model terms")
	fmt.Fprintln(os.Stderr, "  predict  Score a corpus with a fitted model")
	fmt.Fprintln(os.Stderr, "  run      Run the full pipeline from a YAML config")
}

func scoreCmd(args []string) {
	flags := flag.NewFlagSet("score", flag.ExitOnError)
	corpusURL := flags.String("corpus", "", "corpus url/path: .jsonl, .csv or .xlsx (required)")
	dictURL := flags.String("dictionary", "", "YAML sentiment dictionary url/path (required)")
	name := flags.String("name", "", "corpus name for the score store (default: corpus basename)")
	dsn := flags.String("dsn", "", "SQLite score store DSN (optional)")
	dateLayout := flags.String("date-layout", "", "date parse layout (default 2006-01-02)")
	debugSleep := flags.Int("debug-sleep", 0, "debug: sleep N seconds before execution (for gops)")
	flags.Parse(args)

	if *corpusURL == "" || *dictURL == "" {
		flags.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	maybeDebugSleep("score", *debugSleep)

	cfg := &service.Config{
		Name:       *name,
		Corpus:     service.CorpusConfig{URL: *corpusURL, DateLayout: *dateLayout},
		Dictionary: service.DictionaryConfig{URL: *dictURL},
		Store:      service.StoreConfig{DSN: *dsn},
	}
	disabled := false
	cfg.Scaling.Enabled = &disabled

	result, err := service.New(cfg).Run(ctx)
	if err != nil {
		log.Fatalf("score: %v", err)
	}
	for _, score := range result.Dictionary {
		fmt.Printf("id=%s date=%s raw=%.6f score=%.6f\n",
			score.ID, score.Date.Format("2006-01-02"), score.Raw, score.Std)
	}
}

func fitCmd(args []string) {
	flags := flag.NewFlagSet("fit", flag.ExitOnError)
	corpusURL := flags.String("corpus", "", "corpus url/path (required)")
	modelURL := flags.String("model", "", "output url/path for the fitted model (required)")
	query := flags.String("query", "", "topic query glob (default econom*)")
	window := flags.Int("window", 0, "context window in tokens (default 10)")
	minTermFreq := flags.Int("min-term-freq", 0, "minimum term frequency (default 5)")
	topTerms := flags.Int("top-terms", 0, "candidate terms kept by keyness (default 500)")
	dim := flags.Int("dim", 0, "latent space dimensions (default 300)")
	dateLayout := flags.String("date-layout", "", "date parse layout (default 2006-01-02)")
	debugSleep := flags.Int("debug-sleep", 0, "debug: sleep N seconds before execution (for gops)")
	flags.Parse(args)

	if *corpusURL == "" || *modelURL == "" {
		flags.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	maybeDebugSleep("fit", *debugSleep)

	cfg := &service.Config{
		Corpus: service.CorpusConfig{URL: *corpusURL, DateLayout: *dateLayout},
		Scaling: service.ScalingConfig{
			Query:       *query,
			Window:      *window,
			MinTermFreq: *minTermFreq,
			TopTerms:    *topTerms,
			Dim:         *dim,
			ModelURL:    *modelURL,
		},
	}
	svc := service.New(cfg)
	c, err := svc.Load(ctx)
	if err != nil {
		log.Fatalf("fit: %v", err)
	}
	model, err := svc.FitModel(ctx, c)
	if err != nil {
		log.Fatalf("fit: %v", err)
	}
	log.Printf("fit: terms=%d dim=%d model=%s", model.Len(), model.Dim, *modelURL)
}

func termsCmd(args []string) {
	flags := flag.NewFlagSet("terms", flag.ExitOnError)
	modelURL := flags.String("model", "", "fitted model url/path (required)")
	limit := flags.Int("n", 20, "terms to show per polarity")
	debugSleep := flags.Int("debug-sleep", 0, "debug: sleep N seconds before execution (for gops)")
	flags.Parse(args)

	if *modelURL == "" {
		flags.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	maybeDebugSleep("terms", *debugSleep)

	model, err := scaling.Load(ctx, *modelURL)
	if err != nil {
		log.Fatalf("terms: %v", err)
	}
	fmt.Printf("model query=%s dim=%d terms=%d\n", model.Query, model.Dim, model.Len())
	fmt.Println("positive:")
	for _, coef := range model.Head(*limit) {
		fmt.Printf("  %-24s %+.6f\n", coef.Term, coef.Beta)
	}
	fmt.Println("negative:")
	for _, coef := range model.Tail(*limit) {
		fmt.Printf("  %-24s %+.6f\n", coef.Term, coef.Beta)
	}
}

func predictCmd(args []string) {
	flags := flag.NewFlagSet("predict", flag.ExitOnError)
	corpusURL := flags.String("corpus", "", "corpus url/path (required)")
	modelURL := flags.String("model", "", "fitted model url/path (required)")
	dateLayout := flags.String("date-layout", "", "date parse layout (default 2006-01-02)")
	debugSleep := flags.Int("debug-sleep", 0, "debug: sleep N seconds before execution (for gops)")
	flags.Parse(args)

	if *corpusURL == "" || *modelURL == "" {
		flags.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	maybeDebugSleep("predict", *debugSleep)

	model, err := scaling.Load(ctx, *modelURL)
	if err != nil {
		log.Fatalf("predict: %v", err)
	}
	cfg := &service.Config{Corpus: service.CorpusConfig{URL: *corpusURL, DateLayout: *dateLayout}}
	svc := service.New(cfg)
	c, err := svc.Load(ctx)
	if err != nil {
		log.Fatalf("predict: %v", err)
	}
	for _, score := range svc.Predict(c, model) {
		fmt.Printf("id=%s date=%s raw=%.6f score=%.6f\n",
			score.ID, score.Date.Format("2006-01-02"), score.Raw, score.Std)
	}
}

func runCmd(args []string) {
	flags := flag.NewFlagSet("run", flag.ExitOnError)
	configPath := flags.String("config", "", "pipeline YAML config (required)")
	debugSleep := flags.Int("debug-sleep", 0, "debug: sleep N seconds before execution (for gops)")
	flags.Parse(args)

	if *configPath == "" {
		flags.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	maybeDebugSleep("run", *debugSleep)

	cfg, err := service.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("run: load config: %v", err)
	}
	result, err := service.New(cfg).Run(ctx)
	if err != nil {
		log.Fatalf("run: %v", err)
	}
	log.Printf("run: corpus=%s dictionary_scores=%d model_scores=%d", cfg.Name, len(result.Dictionary), len(result.Model))
	if result.PlotURL != "" {
		log.Printf("run: plot=%s", result.PlotURL)
	}
}

func maybeDebugSleep(cmd string, seconds int) {
	if seconds <= 0 {
		seconds = debugSleepFromEnv()
	}
	if seconds <= 0 {
		return
	}
	log.Printf("debug: cmd=%s pid=%d sleep=%ds", cmd, os.Getpid(), seconds)
	time.Sleep(time.Duration(seconds) * time.Second)
}

func startGops() {
	if err := agent.Listen(agent.Options{ShutdownCleanup: true}); err != nil {
		log.Printf("gops: %v", err)
	}
}

func debugSleepFromEnv() int {
	val := strings.TrimSpace(os.Getenv("SENTISCALE_DEBUG_SLEEP"))
	if val == "" {
		return 0
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
