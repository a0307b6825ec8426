package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const counterContract = `component: Counter
props:
  count:
    type: number
    required: true
  variant:
    type: oneOf
    values: [primary, secondary]
`

const todoHTML = `<!DOCTYPE html>
<html><body>
<ul data-test="todo-list">
  <li data-test="todo-item">one</li>
  <li data-test="todo-item">two</li>
</ul>
<!-- <li data-test="todo-item">commented out</li> -->
</body></html>
`

type cli struct {
	t   *testing.T
	dir string
	cfg string
}

func newCLI(t *testing.T, config string) *cli {
	t.Helper()
	dir := t.TempDir()
	c := &cli{t: t, dir: dir, cfg: filepath.Join(dir, "vtestkit.yaml")}
	c.write("vtestkit.yaml", "output:\n  color: never\n"+config)
	return c
}

func (c *cli) write(name, content string) string {
	c.t.Helper()
	path := filepath.Join(c.dir, name)
	require.NoError(c.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func (c *cli) run(args ...string) (int, string, string) {
	c.t.Helper()
	var stdout, stderr bytes.Buffer
	a := &app{stdout: &stdout, stderr: &stderr}
	code := a.run(append([]string{"--config", c.cfg}, args...))
	return code, stdout.String(), stderr.String()
}

func TestVersion(t *testing.T) {
	c := newCLI(t, "")

	code, out, _ := c.run("version", "--short")
	assert.Equal(t, 0, code)
	assert.Equal(t, "dev\n", out)

	code, out, _ = c.run("version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Version:    dev")
	assert.Contains(t, out, "Go version:")
}

func TestLocate(t *testing.T) {
	c := newCLI(t, "")
	page := c.write("page.html", todoHTML)

	code, out, stderr := c.run("locate", page, "todo-item")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, `2 matches for data-test="todo-item"
[0] <li data-test="todo-item">one</li>
[1] <li data-test="todo-item">two</li>
`, out)

	code, out, _ = c.run("locate", page, "missing", "--expect", "0")
	assert.Equal(t, 0, code)
	assert.Equal(t, "0 matches for data-test=\"missing\"\n", out)
}

func TestLocate_ExpectMismatch(t *testing.T) {
	c := newCLI(t, "")
	page := c.write("page.html", todoHTML)

	code, _, stderr := c.run("locate", page, "todo-item", "--expect", "3")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "E021")
	assert.Contains(t, stderr, "Expected 3 node(s)")
}

func TestLocate_MissingFile(t *testing.T) {
	c := newCLI(t, "")

	code, _, stderr := c.run("locate", filepath.Join(c.dir, "nope.html"), "x")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "E030")
	assert.Contains(t, stderr, "Input file could not be read")
	assert.NotContains(t, stderr, "E004")
}

func TestLocate_MetricsResult(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantResult  string
		wantMatches string
	}{
		{"expect mismatch is a failure", []string{"todo-item", "--expect", "3"}, `ci_locate_total{result="fail"} 1`, "ci_locate_matches_sum 2"},
		{"expect met is a pass", []string{"todo-item", "--expect", "2"}, `ci_locate_total{result="pass"} 1`, "ci_locate_matches_sum 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCLI(t, "metrics:\n  namespace: ci\n")
			page := c.write("page.html", todoHTML)
			prom := filepath.Join(c.dir, "locate.prom")

			c.run(append([]string{"locate", page}, append(tt.args, "--metrics-out", prom)...)...)

			data, err := os.ReadFile(prom)
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.wantResult)
			assert.Contains(t, string(data), "ci_locate_matches_count 1")
			assert.Contains(t, string(data), tt.wantMatches)
		})
	}
}

func TestLocate_MetricsUnreadableFile(t *testing.T) {
	c := newCLI(t, "metrics:\n  namespace: ci\n")
	prom := filepath.Join(c.dir, "locate.prom")

	code, _, _ := c.run("locate", filepath.Join(c.dir, "nope.html"), "x", "--metrics-out", prom)
	assert.Equal(t, 1, code)

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `ci_locate_total{result="error"} 1`)
}

func TestLocate_Metrics(t *testing.T) {
	c := newCLI(t, "metrics:\n  namespace: ci\n")
	page := c.write("page.html", todoHTML)
	prom := filepath.Join(c.dir, "locate.prom")

	code, _, _ := c.run("locate", page, "todo-list", "--metrics-out", prom)
	require.Equal(t, 0, code)

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `ci_locate_total{result="pass"} 1`)
}

func TestCheck_Pass(t *testing.T) {
	c := newCLI(t, "")
	contract := c.write("counter.yaml", counterContract)
	props := c.write("props.yaml", "count: 3\nvariant: primary\nextra: ignored\n")

	code, out, stderr := c.run("check", "--contract", contract, "--props", props)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "PASS Counter\n", out)
}

func TestCheck_Violations(t *testing.T) {
	c := newCLI(t, "")
	contract := c.write("counter.yaml", counterContract)
	props := c.write("props.yaml", "variant: tertiary\n")

	code, out, stderr := c.run("check", "--contract", contract, "--props", props)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "FAIL Counter (2 violations)")
	assert.Contains(t, out, "  - count: The prop `count` is marked as required in `Counter`")
	assert.Contains(t, stderr, "E020")
}

func TestCheck_NoPropsFile(t *testing.T) {
	c := newCLI(t, "")
	contract := c.write("counter.yaml", counterContract)

	code, out, _ := c.run("check", "--contract", contract, "--component", "MyCounter")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "FAIL MyCounter (1 violation)")
}

func TestCheck_FailFast(t *testing.T) {
	contractSrc := "component: Pair\nprops:\n  a: {type: string, required: true}\n  b: {type: string, required: true}\n"

	t.Run("from config", func(t *testing.T) {
		c := newCLI(t, "check:\n  fail_fast: true\n")
		contract := c.write("pair.yaml", contractSrc)

		_, out, _ := c.run("check", "--contract", contract)
		assert.Contains(t, out, "FAIL Pair (1 violation)")
	})

	t.Run("flag overrides config", func(t *testing.T) {
		c := newCLI(t, "check:\n  fail_fast: true\n")
		contract := c.write("pair.yaml", contractSrc)

		_, out, _ := c.run("check", "--contract", contract, "--fail-fast=false")
		assert.Contains(t, out, "FAIL Pair (2 violations)")
	})
}

func TestCheck_Metrics(t *testing.T) {
	c := newCLI(t, "")
	contract := c.write("counter.yaml", counterContract)
	prom := filepath.Join(c.dir, "check.prom")

	code, _, _ := c.run("check", "--contract", contract, "--metrics-out", prom)
	assert.Equal(t, 1, code)

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `vtestkit_checks_total{component="Counter",result="fail"} 1`)
	assert.Contains(t, string(data), `vtestkit_violations_total{component="Counter"} 1`)
}

func TestCheck_BadContract(t *testing.T) {
	c := newCLI(t, "")
	contract := c.write("bad.yaml", "props:\n  count:\n    type: integer\n")

	code, out, stderr := c.run("check", "--contract", contract)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "E005")
	assert.Contains(t, stderr, contract+":3")
	assert.Contains(t, stderr, `unknown type "integer"`)
}

func TestCheck_BadProps(t *testing.T) {
	c := newCLI(t, "")
	contract := c.write("counter.yaml", counterContract)
	props := c.write("props.yaml", "- a\n- b\n")

	code, _, stderr := c.run("check", "--contract", contract, "--props", props)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "E006")
}

func TestCheck_UnreadableInputs(t *testing.T) {
	c := newCLI(t, "")
	contract := c.write("counter.yaml", counterContract)
	missing := filepath.Join(c.dir, "nope.yaml")

	tests := []struct {
		name string
		args []string
	}{
		{"contract", []string{"check", "--contract", missing}},
		{"props", []string{"check", "--contract", contract, "--props", missing}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := c.run(tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, "E030")
		})
	}
}

func TestCheck_ContractRequired(t *testing.T) {
	c := newCLI(t, "")

	code, _, stderr := c.run("check")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `required flag(s) "contract" not set`)
}

func TestInvalidColorFlag(t *testing.T) {
	c := newCLI(t, "")

	code, _, stderr := c.run("--color", "rainbow", "version")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "E010")
}

func TestMissingConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	a := &app{stdout: &stdout, stderr: &stderr}

	code := a.run([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "version"})
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "E010")
}
