package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"seqalign/align"
	"seqalign/logger"
	"seqalign/metrics"
	"seqalign/tokenize"
)

type Config struct {
	Mode       string `json:"mode"`        // "chars" (default) or "words"
	NgramOrder int    `json:"ngram_order"` // 0 disables the n-gram dump
	Eps        string `json:"eps"`
	LogLevel   string `json:"log_level"` // trace, debug, info, warn, error
}

// Setup logger to log to a file in the same directory as the executable.
// Caller must defer l.Close()
func setupLogger(logLevel string) *logger.Logger {
	execPath, err := os.Executable()
	if err != nil {
		log.Fatalf("error getting executable path: %v", err)
	}
	logPath := filepath.Join(filepath.Dir(execPath), "seqalign.log")

	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	return logger.New(f, logger.ParseLevel(logLevel))
}

func loadConfig() Config {
	config := Config{
		Mode:       "chars",
		NgramOrder: 3,
		Eps:        align.Eps,
		LogLevel:   "info",
	}
	if raw := os.Getenv("SEQALIGN_CONFIG"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &config); err != nil {
			log.Fatalf("invalid config: %v", err)
		}
	}
	return config
}

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <reference> <hypothesis>\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}

	config := loadConfig()
	l := setupLogger(config.LogLevel)
	defer l.Close()

	var ref, hyp []string
	sep := ""
	if config.Mode == "words" {
		ref = tokenize.Words(tokenize.Normalize(os.Args[1]))
		hyp = tokenize.Words(tokenize.Normalize(os.Args[2]))
		sep = " "
	} else {
		ref = tokenize.Chars(os.Args[1])
		hyp = tokenize.Chars(os.Args[2])
	}

	pairs, score, err := align.Align(ref, hyp, align.Config{
		Similarity: align.MatchMismatch(2, -1),
		DelScore:   -1,
		InsScore:   -1,
		Eps:        config.Eps,
		FullHyp:    true,
	})
	if err != nil {
		logger.Fatal("align failed: %v", err)
	}

	fmt.Printf("score: %v\n", score)
	fmt.Println("ref: " + joinSide(pairs, sep, func(p align.Pair) string { return p.Ref }))
	fmt.Println("hyp: " + joinSide(pairs, sep, func(p align.Pair) string { return p.Hyp }))

	padded, err := align.Padded(ref, hyp, config.Eps)
	if err != nil {
		logger.Fatal("padded align failed: %v", err)
	}
	fmt.Println("padded")
	fmt.Println("ref: " + joinSide(padded, sep, func(p align.Pair) string { return p.Ref }))
	fmt.Println("hyp: " + joinSide(padded, sep, func(p align.Pair) string { return p.Hyp }))

	s := metrics.Summarize(padded, config.Eps)
	fmt.Printf("cor=%d sub=%d ins=%d del=%d error rate=%.3f\n",
		s.Correct, s.Substitutions, s.Insertions, s.Deletions, s.ErrorRate())

	if config.NgramOrder > 0 {
		ngrams, err := align.Ngrams(ref, hyp, config.NgramOrder)
		if err != nil {
			logger.Fatal("ngrams failed: %v", err)
		}
		fmt.Printf("mismatched %d-grams:\n", config.NgramOrder)
		for hypNgram, refNgram := range ngrams {
			if len(refNgram) == config.NgramOrder && joinTokens(hypNgram, sep) != joinTokens(refNgram, sep) {
				fmt.Printf("  %q vs %q\n", joinTokens(hypNgram, sep), joinTokens(refNgram, sep))
			}
		}
	}
}

func joinSide(pairs []align.Pair, sep string, side func(align.Pair) string) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, side(p))
	}
	return strings.Join(parts, sep)
}

func joinTokens(tokens []string, sep string) string {
	return strings.Join(tokens, sep)
}
