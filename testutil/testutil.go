// Package testutil provides common testing utilities for weburl.
// It includes helpers for capturing output, locating test resources and
// loading URL conformance data.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// CaptureOutput captures stdout during function execution.
// It redirects os.Stdout to a pipe, executes the function, and returns the captured output.
// The original stdout is always restored, even if the function returns an error.
//
// Example:
//
//	output := testutil.CaptureOutput(t, func() error {
//	    return cmd.Execute()
//	})
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	// Buffered so the reader never blocks if the test bails out.
	outCh := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outCh <- buf.String()
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout
	output := <-outCh

	if fnErr != nil {
		t.Logf("Command error: %v", fnErr)
	}
	return output
}

// FindTestData finds a test data path relative to the current working
// directory, searching up to five parent directories. The path may name a
// directory or a file.
//
// Example:
//
//	corpus := testutil.FindTestData(t, "weburl", "testdata", "urltestdata.json")
func FindTestData(t *testing.T, subdirs ...string) string {
	t.Helper()

	if len(subdirs) == 0 {
		t.Fatal("FindTestData requires at least one path element")
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	target := filepath.Join(subdirs...)
	dir := cwd
	for range 6 {
		candidate := filepath.Join(dir, target)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		dir = filepath.Dir(dir)
	}

	t.Fatalf("Test data not found: %s (searched from %s)", target, cwd)
	return ""
}

// URLTestCase is one entry of a urltestdata.json corpus, the format used by
// the web-platform-tests URL suite. Base is nil for absolute inputs.
// Expected component fields are only meaningful when Failure is false.
type URLTestCase struct {
	Input    string  `json:"input"`
	Base     *string `json:"base"`
	Failure  bool    `json:"failure"`
	Href     string  `json:"href"`
	Origin   *string `json:"origin"`
	Protocol string  `json:"protocol"`
	Username string  `json:"username"`
	Password string  `json:"password"`
	Host     string  `json:"host"`
	Hostname string  `json:"hostname"`
	Port     string  `json:"port"`
	Pathname string  `json:"pathname"`
	Search   string  `json:"search"`
	Hash     string  `json:"hash"`
}

// Name returns a subtest name for the case.
func (c URLTestCase) Name() string {
	if c.Base == nil {
		return c.Input
	}
	return c.Input + " against " + *c.Base
}

// LoadURLTestCases reads a urltestdata.json file. The top-level array may
// mix comment strings with test objects; comments are skipped.
func LoadURLTestCases(t *testing.T, path string) []URLTestCase {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	cases, err := DecodeURLTestCases(data)
	if err != nil {
		t.Fatalf("Failed to decode %s: %v", path, err)
	}
	return cases
}

// DecodeURLTestCases decodes urltestdata.json content.
func DecodeURLTestCases(data []byte) ([]URLTestCase, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	cases := make([]URLTestCase, 0, len(raw))
	for _, entry := range raw {
		entry = bytes.TrimSpace(entry)
		if len(entry) > 0 && entry[0] == '"' {
			continue
		}
		var c URLTestCase
		if err := json.Unmarshal(entry, &c); err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}
