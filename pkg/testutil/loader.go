// Package testutil loads the shared JSON test cases under testdata/.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// TestData represents the structure of a shared test data file.
type TestData struct {
	Version     string     `json:"version"`
	TestSuite   string     `json:"test_suite"`
	Description string     `json:"description"`
	TestCases   []TestCase `json:"test_cases"`
}

// TestCase represents a single test case.
type TestCase struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Input       any    `json:"input"`
	Expected    any    `json:"expected"`
	// ExpectedSign is -1, 0 or 1 for three-way comparison cases
	ExpectedSign *int   `json:"expected_sign,omitempty"`
	Skip         string `json:"skip,omitempty"`
}

// InputString returns the input as a string, if it is one.
func (tc *TestCase) InputString() (string, bool) {
	s, ok := tc.Input.(string)
	return s, ok
}

// InputMap returns the input as a map, if it is one.
func (tc *TestCase) InputMap() (map[string]any, bool) {
	m, ok := tc.Input.(map[string]any)
	return m, ok
}

// InputNullableString returns input[key] as a string pointer. A JSON null or
// a missing key yields nil.
func (tc *TestCase) InputNullableString(key string) (*string, bool) {
	m, ok := tc.InputMap()
	if !ok {
		return nil, false
	}
	v, present := m[key]
	if !present || v == nil {
		return nil, true
	}
	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	return &s, true
}

// ExpectedString returns the expected value as a string, if it is one.
func (tc *TestCase) ExpectedString() (string, bool) {
	s, ok := tc.Expected.(string)
	return s, ok
}

// ExpectedBool returns the expected value as a bool, if it is one.
func (tc *TestCase) ExpectedBool() (bool, bool) {
	b, ok := tc.Expected.(bool)
	return b, ok
}

// ExpectedStringSlice returns the expected value as a string slice, if it is one.
func (tc *TestCase) ExpectedStringSlice() ([]string, bool) {
	arr, ok := tc.Expected.([]any)
	if !ok {
		return nil, false
	}
	result := make([]string, len(arr))
	for i, v := range arr {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		result[i] = s
	}
	return result, true
}

// ExpectedMap returns the expected value as a map, if it is one.
func (tc *TestCase) ExpectedMap() (map[string]any, bool) {
	m, ok := tc.Expected.(map[string]any)
	return m, ok
}

// DecodeExpected re-encodes the expected value into v, which lets a test
// compare against a typed struct.
func (tc *TestCase) DecodeExpected(v any) error {
	data, err := json.Marshal(tc.Expected)
	if err != nil {
		return fmt.Errorf("encoding expected value: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding expected value: %w", err)
	}
	return nil
}

// Loader loads test data from shared JSON files.
type Loader struct {
	testdataDir string
}

// NewLoader creates a new test data loader rooted at testdataDir.
func NewLoader(testdataDir string) *Loader {
	return &Loader{testdataDir: testdataDir}
}

// findTestdataDir searches for the testdata directory by walking up from the current directory.
func findTestdataDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}

	for {
		testdataPath := filepath.Join(dir, "testdata")
		if info, err := os.Stat(testdataPath); err == nil && info.IsDir() {
			return testdataPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("testdata directory not found")
}

// NewLoaderFromRepo creates a loader that automatically finds the testdata directory.
func NewLoaderFromRepo() (*Loader, error) {
	testdataDir, err := findTestdataDir()
	if err != nil {
		return nil, err
	}
	return NewLoader(testdataDir), nil
}

// Load loads test data from testdata/<category>/<testSuite>.json.
func (l *Loader) Load(category, testSuite string) (*TestData, error) {
	filePath := filepath.Join(l.testdataDir, category, testSuite+".json")

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading test data file %s: %w", filePath, err)
	}

	var testData TestData
	if err := json.Unmarshal(data, &testData); err != nil {
		return nil, fmt.Errorf("parsing test data file %s: %w", filePath, err)
	}

	return &testData, nil
}

// GetTestCases returns all non-skipped test cases of a suite.
func (l *Loader) GetTestCases(category, testSuite string) ([]TestCase, error) {
	data, err := l.Load(category, testSuite)
	if err != nil {
		return nil, err
	}

	var cases []TestCase
	for _, tc := range data.TestCases {
		if tc.Skip == "" {
			cases = append(cases, tc)
		}
	}

	return cases, nil
}

// MustTestCases is GetTestCases for use in tests; it fails t on error.
func MustTestCases(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, category, testSuite string) []TestCase {
	t.Helper()
	loader, err := NewLoaderFromRepo()
	if err != nil {
		t.Fatalf("Failed to create test data loader: %v", err)
	}
	cases, err := loader.GetTestCases(category, testSuite)
	if err != nil {
		t.Fatalf("Failed to load test cases: %v", err)
	}
	return cases
}
