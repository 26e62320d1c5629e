// Package main measures how long the hiresignal CLI takes to report on GitHub
// users with and without the bundle cache. Each user is reported several times:
// the cache-less runs are averaged, the first cached run is treated as cold and
// the remaining cached runs are averaged as warm. Results are written as CSV.
//
// Prerequisites:
// - hiresignal binary installed and available in PATH
// - HIRESIGNAL_GITHUB_TOKEN set, since unauthenticated runs hit the rate limit quickly
//
// Usage: go run benchmark/main.go [username...]
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// BenchmarkResult holds the timings of one command for one user.
type BenchmarkResult struct {
	Username    string
	Command     string
	NoCacheTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Timeout     time.Duration
	NoCacheRuns int
	CacheRuns   int
	Users       []string
	CacheFile   string
}

// benchCommand is one CLI invocation to time and the text that proves it succeeded.
type benchCommand struct {
	name    string
	args    []string
	success string
}

var commands = []benchCommand{
	{name: "fetch", args: []string{"fetch"}, success: "👤"},
	{name: "report", args: []string{"report"}, success: "Hiring report for"},
	{name: "report-json", args: []string{"report", "--output", "json"}, success: `"status": "success"`},
}

func main() {
	users := os.Args[1:]
	if len(users) == 0 {
		users = []string{"octocat", "torvalds", "gvanrossum", "antirez"}
	}

	config := BenchmarkConfig{
		Timeout:     2 * time.Minute,
		NoCacheRuns: 2,
		CacheRuns:   4,
		Users:       users,
		CacheFile:   fmt.Sprintf("%s/hiresignal_benchmark_cache_%d.db", os.TempDir(), time.Now().Unix()),
	}
	defer func() { _ = os.Remove(config.CacheFile) }()

	if err := checkPrerequisites(); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the hiresignal binary exists and a token is set
func checkPrerequisites() error {
	if _, err := exec.LookPath("hiresignal"); err != nil {
		return fmt.Errorf("hiresignal binary not found in PATH")
	}
	if os.Getenv("HIRESIGNAL_GITHUB_TOKEN") == "" {
		fmt.Println("Warning: HIRESIGNAL_GITHUB_TOKEN is not set, runs may be rate limited")
	}
	return nil
}

// runBenchmarks executes every command for every configured user
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d users, %v timeout, no-cache: %d runs, cache: %d runs\n",
		len(config.Users), config.Timeout, config.NoCacheRuns, config.CacheRuns)

	for _, user := range config.Users {
		fmt.Printf("Benchmarking %s\n", user)
		for _, c := range commands {
			results = append(results, runBenchmarkSuite(config, user, c))
		}
	}
	return results
}

// runBenchmarkSuite runs both no-cache and cache benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, user string, c benchCommand) BenchmarkResult {
	fmt.Printf("Running %s for %s\n", c.name, user)

	// Helper to run a benchmark phase
	runPhase := func(cacheArgs []string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, user, c, cacheArgs, numRuns)
		if len(times) == 0 {
			return cold, "TIMEOUT"
		}
		var sum float64
		for _, t := range times {
			sum += t
		}
		return cold, fmt.Sprintf("%.3fs", sum/float64(len(times)))
	}

	// Phase 1: No-cache runs
	_, noCacheAvg := runPhase([]string{"--cache-backend", "none"}, config.NoCacheRuns, "No-cache")

	// Phase 2: Cache runs against a fresh SQLite file
	_ = os.Remove(config.CacheFile)
	coldTime, warmAvg := runPhase([]string{"--cache-backend", "sqlite", "--cache-db-connect", config.CacheFile}, config.CacheRuns, "Cache")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-cache average: %s, Cold time: %s, Warm average: %s\n", noCacheAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Username:    user,
		Command:     c.name,
		NoCacheTime: noCacheAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes one command numRuns times and returns the cold time
// and the warm times. The no-cache phase reports every run as warm.
func runBenchmark(config BenchmarkConfig, user string, c benchCommand, cacheArgs []string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := append(append([]string{}, c.args...), user)
	args = append(args, cacheArgs...)

	var times []float64
	for run := 1; run <= numRuns; run++ {
		ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
		start := time.Now()
		output, err := exec.CommandContext(ctx, "hiresignal", args...).CombinedOutput()
		elapsed := time.Since(start).Seconds()
		cancel()

		if err == nil && strings.Contains(string(output), c.success) {
			times = append(times, elapsed)
		}
	}

	if len(times) == 0 {
		return 0, nil
	}
	return times[0], times[1:]
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s/hiresignal_benchmark_%s.csv", os.TempDir(), timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"user", "cmd", "no_cache_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Username, result.Command, result.NoCacheTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results grouped by command
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, c := range commands {
		fmt.Printf("%s:\n", c.name)
		for _, result := range results {
			if result.Command == c.name {
				fmt.Printf("  %-12s: No-cache: %s, Cold: %s, Warm: %s\n", result.Username, result.NoCacheTime, result.ColdTime, result.WarmTime)
			}
		}
	}
}
