package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	linesPerCustomerDay = 400 // every 4th line fails, so uptime is 75
	garbageEvery        = 50  // one malformed line after every N valid lines
)

var (
	customers = []string{"cus-axon", "cus-borealis", "cus-cobalt"}
	days      = []string{"2025-12-27", "2025-12-28", "2025-12-29"}
	paths     = []string{"/", "/about", "/careers", "/contact"}
)

// ### End - fixed configs

type dailyStats struct {
	Date               string  `json:"date"`
	SuccessfulRequests int64   `json:"successful_requests"`
	FailedRequests     int64   `json:"failed_requests"`
	Uptime             float64 `json:"uptime"`
	AverageLatency     float64 `json:"average_latency"`
	MedianLatency      float64 `json:"median_latency"`
	P99Latency         float64 `json:"p99_latency"`
}

type ingestSummary struct {
	RunID         string `json:"runId"`
	StoredCount   int    `json:"storedCount"`
	RejectedCount int    `json:"rejectedCount"`
}

type errorResponse struct {
	ErrorCode string `json:"errorCode"`
}

// main runs the e2e scenario: 001_daily_stats
//
// This scenario sends plain-text access-log lines for three customers over
// three days to POST /logs, then reads GET /customers/{id}/stats back and
// compares it with values computed from the generated data.
//
// What it tests:
//   - Log ingestion via POST /logs, including rejection of malformed lines
//   - Concurrent ingestion requests writing to the same store
//   - Per-day grouping, uptime and latency statistics
//   - The from date bound and the not-found error codes
//
// Expected results:
//   - Every customer has three days with 300 successful and 100 failed requests
//   - uptime is 75 and average_latency matches the generated durations
//   - Querying from the last day returns only that day
//   - cus-unknown returns 404 QRY_1001, a range past the data returns 404 QRY_1002
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the customer-stats API server
	linesPerRequest := 150             // Number of lines per POST /logs body
	parallel := 4                      // Number of concurrent ingestion requests

	fmt.Println("Starting e2e scenario: 001_daily_stats")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("LINES_PER_REQUEST: %d\n", linesPerRequest)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Println()

	lines, wantGarbage := generateLines()
	bodies := chunk(lines, linesPerRequest)
	fmt.Printf("Generated %d lines (%d malformed) in %d requests\n", len(lines), wantGarbage, len(bodies))

	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errors []error
	var stored, rejected int64

	for i, body := range bodies {
		wg.Add(1)
		workerChan <- struct{}{}

		go func(index int, body string) {
			defer wg.Done()
			defer func() { <-workerChan }()

			summary, err := postLogs(baseURL, body)
			if err != nil {
				mu.Lock()
				errors = append(errors, fmt.Errorf("request %d: %w", index, err))
				mu.Unlock()
				return
			}
			atomic.AddInt64(&stored, int64(summary.StoredCount))
			atomic.AddInt64(&rejected, int64(summary.RejectedCount))
		}(i, body)
	}
	wg.Wait()

	if len(errors) > 0 {
		for _, err := range errors {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		os.Exit(1)
	}

	wantStored := int64(len(customers) * len(days) * linesPerCustomerDay)
	expect(stored == wantStored, "stored %d lines, want %d", stored, wantStored)
	expect(rejected == int64(wantGarbage), "rejected %d lines, want %d", rejected, wantGarbage)

	wantAverage := expectedAverageLatency()
	for _, customer := range customers {
		stats, status, err := getStats(baseURL, customer, days[0])
		expect(err == nil && status == http.StatusOK, "stats %s: status %d err %v", customer, status, err)
		expect(len(stats) == len(days), "stats %s: %d days, want %d", customer, len(stats), len(days))
		for i, s := range stats {
			expect(s.Date == days[i], "stats %s: day %d is %s, want %s", customer, i, s.Date, days[i])
			expect(s.SuccessfulRequests == 300 && s.FailedRequests == 100,
				"stats %s %s: %d/%d successful/failed", customer, s.Date, s.SuccessfulRequests, s.FailedRequests)
			expect(math.Abs(s.Uptime-75) < 1e-9, "stats %s %s: uptime %f", customer, s.Date, s.Uptime)
			expect(math.Abs(s.AverageLatency-wantAverage) < 1e-9,
				"stats %s %s: average_latency %f, want %f", customer, s.Date, s.AverageLatency, wantAverage)
		}

		fromLast, _, err := getStats(baseURL, customer, days[len(days)-1])
		expect(err == nil && len(fromLast) == 1, "stats %s from last day: %d days", customer, len(fromLast))
	}

	expectErrorCode(baseURL, "cus-unknown", days[0], http.StatusNotFound, "QRY_1001")
	expectErrorCode(baseURL, customers[0], "2026-01-01", http.StatusNotFound, "QRY_1002")
	expectErrorCode(baseURL, customers[0], "28-12-2025", http.StatusBadRequest, "QRY_1000")

	fmt.Println("=== Statistics ===")
	fmt.Printf("Requests sent: %d\n", len(bodies))
	fmt.Printf("Stored lines: %d\n", stored)
	fmt.Printf("Rejected lines: %d\n", rejected)
	fmt.Println("Scenario completed successfully")
}

// generateLines interleaves customers and days so that every request body
// mixes several day groups.
func generateLines() ([]string, int) {
	lines := make([]string, 0, len(customers)*len(days)*linesPerCustomerDay)
	garbage := 0
	for i := 0; i < linesPerCustomerDay; i++ {
		for _, day := range days {
			for _, customer := range customers {
				lines = append(lines, formatLine(day, customer, i))
			}
		}
		if (i+1)%garbageEvery == 0 {
			lines = append(lines, fmt.Sprintf("garbage line %d", i))
			garbage++
		}
	}
	return lines, garbage
}

func formatLine(day, customer string, i int) string {
	status := 200
	if i%4 == 3 {
		status = 500
	}
	ts := fmt.Sprintf("%s %02d:%02d:%02d", day, (i/60)%24, i%60, (i*7)%60)
	return fmt.Sprintf("%s %s %s %d %.3f", ts, customer, paths[i%len(paths)], status, duration(i))
}

func duration(i int) float64 {
	return float64(i%100+1) / 1000
}

func expectedAverageLatency() float64 {
	var sum float64
	for i := 0; i < linesPerCustomerDay; i++ {
		sum += duration(i)
	}
	return sum / linesPerCustomerDay
}

func chunk(lines []string, size int) []string {
	var bodies []string
	for start := 0; start < len(lines); start += size {
		end := min(start+size, len(lines))
		bodies = append(bodies, strings.Join(lines[start:end], "\n"))
	}
	return bodies
}

func postLogs(baseURL, body string) (*ingestSummary, error) {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/logs", bytes.NewReader([]byte(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var summary ingestSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("failed to decode summary: %w", err)
	}
	return &summary, nil
}

func getStats(baseURL, customer, from string) ([]dailyStats, int, error) {
	resp, err := httpClient().Get(fmt.Sprintf("%s/customers/%s/stats?from=%s", baseURL, customer, from))
	if err != nil {
		return nil, 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, nil
	}

	var stats []dailyStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to decode stats: %w", err)
	}
	return stats, resp.StatusCode, nil
}

func expectErrorCode(baseURL, customer, from string, wantStatus int, wantCode string) {
	resp, err := httpClient().Get(fmt.Sprintf("%s/customers/%s/stats?from=%s", baseURL, customer, from))
	expect(err == nil, "stats %s from %s: %v", customer, from, err)
	defer resp.Body.Close()

	var body errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)
	expect(resp.StatusCode == wantStatus && body.ErrorCode == wantCode,
		"stats %s from %s: got %d %s, want %d %s", customer, from, resp.StatusCode, body.ErrorCode, wantStatus, wantCode)
}

func httpClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

func expect(ok bool, format string, args ...any) {
	if !ok {
		fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
		os.Exit(1)
	}
}
