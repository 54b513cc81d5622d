// Package configtest models a single resolved-configuration test case:
// the inputs an external runner needs to produce a properties dump, the
// masking field sets, and the expected canonical tree. Acquiring the
// dump (containers, subprocesses) is the runner's business; this
// package only checks its text against expectations.
package configtest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nextflow-checks/propdiff/ir"

	"github.com/goccy/go-yaml"
)

// Case is one configuration test. Field names follow the test-case
// file format of the original harness.
type Case struct {
	Config     []string `json:"config"`
	ParamsFile string   `json:"params_file"`
	CPUs       int      `json:"cpus"`
	MemoryGB   float64  `json:"memory_gb"`

	EmptyFiles  []string            `json:"empty_files"`
	MappedFiles map[string]string   `json:"mapped_files"`
	NFParams    map[string]string   `json:"nf_params"`
	Envvars     map[string]string   `json:"envvars"`
	Mocks       map[string]*ir.Node `json:"mocks"`

	DatedFields   []string `json:"dated_fields"`
	VersionFields []string `json:"version_fields,omitempty"`

	// Asserts are expression checks evaluated against the parsed
	// actual tree, e.g. `manifest.version == "VER.SI.ON"`.
	Asserts []string `json:"asserts,omitempty"`

	ExpectedResult *ir.Node `json:"expected_result"`
}

// Load reads a test case from a JSON or YAML file, chosen by extension.
func Load(path string) (*Case, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		d, err = yaml.YAMLToJSON(d)
		if err != nil {
			return nil, fmt.Errorf("error converting %s: %w", path, err)
		}
	}
	c := &Case{}
	if err := json.Unmarshal(d, c); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return c, nil
}

// Write serializes the case as indented JSON.
func (c *Case) Write(path string) error {
	d, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(d, '\n'), 0644)
}

// WithResult returns a copy of the case with the expected result
// replaced, for writing an updated expectations file after a run.
func (c *Case) WithResult(actual *ir.Node) *Case {
	cp := *c
	cp.ExpectedResult = actual.Clone()
	return &cp
}

// UpdatePath derives the output path for an updated case file:
// pipeline.json becomes pipeline-out.json.
func UpdatePath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-out" + ext
}
