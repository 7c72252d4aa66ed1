// Package testutil provides common testing utilities for weburl.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Locating test fixtures (FindTestData)
//   - Loading URL conformance corpora in urltestdata.json format
//     (LoadURLTestCases)
//
// All functions that take a *testing.T call t.Helper().
//
// Example usage:
//
//	func TestCorpus(t *testing.T) {
//	    path := testutil.FindTestData(t, "testdata", "urltestdata.json")
//	    for _, tc := range testutil.LoadURLTestCases(t, path) {
//	        t.Run(tc.Name(), func(t *testing.T) {
//	            // parse tc.Input against tc.Base and compare
//	        })
//	    }
//	}
package testutil
