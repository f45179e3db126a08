package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"log-report/internal/aggregators"
	"log-report/internal/app"
	"log-report/internal/shared/configs"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalEntries = 40000 // Total number of log entries to generate, across all files and days
	corruptEvery = 97    // A malformed line is written after every corruptEvery-th entry
)

var (
	days  = []string{"2025-12-28", "2025-12-29"}
	paths = []string{"/", "/about", "/careers", "/contact"}
	// pathCycle weights the paths 4:3:2:1 so the report has a strict count order
	pathCycle = []int{0, 0, 0, 0, 1, 1, 1, 2, 2, 3}
)

// ### End - fixed configs

type logEntry struct {
	Timestamp     string  `json:"@timestamp"`
	Status        int     `json:"status"`
	URL           string  `json:"url"`
	RequestMethod string  `json:"request_method"`
	ResponseTime  float64 `json:"response_time"`
	HTTPUserAgent string  `json:"http_user_agent"`
}

type expectedRow struct {
	path  string
	count int64
	total float64
}

// main runs the e2e scenario: 001_endpoint_average
//
// This scenario generates NDJSON access logs spread over several files and two
// days, then runs the average report filtered by the first day in-process.
//
// What it tests:
//   - Reading several files in the given order
//   - Silent skipping of malformed lines
//   - Date filtering by the @timestamp field
//   - Per-endpoint counts, averages and count-descending order
//
// Expected results:
//   - Four rows, ordered /, /about, /careers, /contact
//   - Counts and averages match the values computed while generating the files
func main() {
	// these configs can be changed to run the scenario
	fileCount := 4                     // Number of log files the entries are spread over
	dataDir := ".tmp/e2e-endpoint-avg" // Data directory path relative to project root
	filterDay := days[0]               // Day passed as the date filter
	wantCleanDataDir := true           // If true, clean up data directory before running scenario

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	dataPath := filepath.Join(projectRoot, dataDir)

	if wantCleanDataDir {
		fmt.Printf("Cleaning data directory: %s\n", dataPath)
		if err := os.RemoveAll(dataPath); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to clean data directory: %v\n", err)
		}
	}
	if err := os.MkdirAll(dataPath, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to create data directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Starting e2e scenario: 001_endpoint_average")
	fmt.Printf("DATA_PATH: %s\n", dataPath)
	fmt.Printf("FILE_COUNT: %d\n", fileCount)
	fmt.Printf("FILTER_DAY: %s\n", filterDay)
	fmt.Printf("TOTAL_ENTRIES: %d\n", totalEntries)
	fmt.Println()

	files, expected, err := generateFiles(dataPath, fileCount, filterDay)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to generate log files: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d files\n", len(files))

	cfg := &configs.Config{
		Files:              files,
		Report:             "average",
		Date:               filterDay,
		OnInvalidTimestamp: "fail",
		LogLevel:           "info",
		Progress:           true,
		Metrics:            true,
	}

	var stdout bytes.Buffer
	application, err := app.New(cfg, aggregators.NewDefaultReportRegistry(), &stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to initialize app: %v\n", err)
		os.Exit(1)
	}
	if err := application.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Run failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Print(stdout.String())
	fmt.Println()

	if err := verify(stdout.String(), expected); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod, run from inside the project")
		}
		dir = parent
	}
}

func generateEntry(i int) logEntry {
	pathIndex := pathCycle[i%len(pathCycle)]
	day := days[(i/len(pathCycle))%len(days)]

	seconds := i % 60
	minutes := (i / 60) % 60
	hours := (i / 3600) % 24

	return logEntry{
		Timestamp:     fmt.Sprintf("%sT%02d:%02d:%02d+00:00", day, hours, minutes, seconds),
		Status:        200,
		URL:           paths[pathIndex],
		RequestMethod: "GET",
		ResponseTime:  float64(10*(pathIndex+1)) + float64(i%7)*0.25,
		HTTPUserAgent: "curl/7.88.1",
	}
}

// generateFiles writes the entries round-robin into fileCount files and returns
// the file paths together with the rows expected for filterDay.
func generateFiles(dir string, fileCount int, filterDay string) ([]string, map[string]*expectedRow, error) {
	files := make([]string, 0, fileCount)
	writers := make([]*bufio.Writer, 0, fileCount)
	handles := make([]*os.File, 0, fileCount)
	defer func() {
		for _, h := range handles {
			_ = h.Close()
		}
	}()

	for i := 0; i < fileCount; i++ {
		path := filepath.Join(dir, fmt.Sprintf("access-%02d.log", i+1))
		f, err := os.Create(path)
		if err != nil {
			return nil, nil, err
		}
		files = append(files, path)
		handles = append(handles, f)
		writers = append(writers, bufio.NewWriter(f))
	}

	expected := make(map[string]*expectedRow)
	for i := 0; i < totalEntries; i++ {
		e := generateEntry(i)
		line, err := json.Marshal(e)
		if err != nil {
			return nil, nil, err
		}

		w := writers[i%fileCount]
		if _, err := w.Write(append(line, '\n')); err != nil {
			return nil, nil, err
		}
		if i%corruptEvery == corruptEvery-1 {
			if _, err := w.WriteString("{\"url\": truncated\n"); err != nil {
				return nil, nil, err
			}
		}

		if strings.HasPrefix(e.Timestamp, filterDay) {
			row, ok := expected[e.URL]
			if !ok {
				row = &expectedRow{path: e.URL}
				expected[e.URL] = row
			}
			row.count++
			row.total += e.ResponseTime
		}
	}

	for _, w := range writers {
		if err := w.Flush(); err != nil {
			return nil, nil, err
		}
	}
	return files, expected, nil
}

// verify compares the rendered table rows with the expected rows.
func verify(out string, expected map[string]*expectedRow) error {
	want := make([]*expectedRow, 0, len(expected))
	for _, row := range expected {
		want = append(want, row)
	}
	sort.Slice(want, func(i, j int) bool { return want[i].count > want[j].count })

	got := make([][]string, 0, len(want))
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "|") {
			continue
		}
		cells := strings.Split(strings.Trim(line, "|"), "|")
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		if len(cells) != 3 || cells[0] == "Endpoint" {
			continue
		}
		got = append(got, cells)
	}

	if len(got) != len(want) {
		return fmt.Errorf("expected %d rows, got %d", len(want), len(got))
	}
	for i, row := range want {
		count := strconv.FormatInt(row.count, 10)
		avg := fmt.Sprintf("%.2f ms", row.total/float64(row.count))
		if got[i][0] != row.path || got[i][1] != count || got[i][2] != avg {
			return fmt.Errorf("row %d: expected [%s %s %s], got %v", i+1, row.path, count, avg, got[i])
		}
		fmt.Printf("Row %d OK: %s %s %s\n", i+1, row.path, count, avg)
	}
	return nil
}
