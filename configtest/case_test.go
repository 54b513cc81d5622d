package configtest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nextflow-checks/propdiff/ir"
)

const caseJSON = `{
  "config": ["test.config"],
  "params_file": "params.yaml",
  "cpus": 4,
  "memory_gb": 8.5,
  "nf_params": {"output_dir": "/tmp/out"},
  "envvars": {"SLURM_JOB_ID": "1234"},
  "mocks": {"check_limits": {"cpus": 4}},
  "dated_fields": ["params.log_output_dir"],
  "expected_result": {"params": {"cpus": "4"}}
}
`

func writeCase(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	c, err := Load(writeCase(t, "case.json", caseJSON))
	if err != nil {
		t.Fatal(err)
	}
	if c.CPUs != 4 || c.MemoryGB != 8.5 {
		t.Errorf("cpus = %d, memory_gb = %v", c.CPUs, c.MemoryGB)
	}
	if c.NFParams["output_dir"] != "/tmp/out" {
		t.Errorf("nf_params = %v", c.NFParams)
	}
	if len(c.DatedFields) != 1 || c.DatedFields[0] != "params.log_output_dir" {
		t.Errorf("dated_fields = %v", c.DatedFields)
	}
	mock := c.Mocks["check_limits"]
	if mock == nil || ir.Get(mock, "cpus") == nil {
		t.Errorf("mocks = %v", c.Mocks)
	}
	want := expect(t, `{"params":{"cpus":"4"}}`)
	if !ir.Equal(c.ExpectedResult, want) {
		t.Errorf("expected_result mismatch")
	}
}

func TestLoadYAML(t *testing.T) {
	doc := `config:
  - test.config
cpus: 2
expected_result:
  params:
    cpus: "2"
`
	c, err := Load(writeCase(t, "case.yaml", doc))
	if err != nil {
		t.Fatal(err)
	}
	if c.CPUs != 2 {
		t.Errorf("cpus = %d", c.CPUs)
	}
	if got := ir.Get(ir.Get(c.ExpectedResult, "params"), "cpus"); got == nil || got.String != "2" {
		t.Errorf("expected_result = %v", c.ExpectedResult)
	}
}

func TestWithResultWrite(t *testing.T) {
	path := writeCase(t, "pipeline.json", caseJSON)
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	actual := expect(t, `{"params":{"cpus":"8"}}`)
	updated := c.WithResult(actual)
	if !ir.Equal(c.ExpectedResult, expect(t, `{"params":{"cpus":"4"}}`)) {
		t.Error("WithResult mutated the original case")
	}

	out := UpdatePath(path)
	if filepath.Base(out) != "pipeline-out.json" {
		t.Fatalf("UpdatePath = %q", out)
	}
	if err := updated.Write(out); err != nil {
		t.Fatal(err)
	}
	c2, err := Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(c2.ExpectedResult, actual) {
		t.Error("round-tripped case lost the new expected result")
	}
	if c2.CPUs != c.CPUs {
		t.Errorf("cpus = %d, want %d", c2.CPUs, c.CPUs)
	}
}
