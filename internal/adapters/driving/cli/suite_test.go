package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingSuite = `# Basics

### Literals

    | 5@
    = Result: 5

### Addition

    |  1
    | 2+@
    |  3
    = Result: 4
`

const failingSuite = `### Wrong

    | 5@
    = Result: 6

### Errors

    | x@
    ? unknown term
`

const yamlSuite = `tests:
  - name: echo
    program: "~,@"
    input: "Z"
    output: "ZResult: 0"
`

func suitePrograms() map[string]string {
	return map[string]string{
		"pass.md":    passingSuite,
		"fail.md":    failingSuite,
		"suite.yaml": yamlSuite,
		"empty.md":   "# Nothing here\n",
	}
}

func TestTestCmd_Use(t *testing.T) {
	assert.Equal(t, "test [file...]", testCmd.Use)
}

func TestTestCmd_RequiresArgs(t *testing.T) {
	_, _, err := execute(t, "", "test")

	assert.Error(t, err)
}

func TestTestCmd_AllPass(t *testing.T) {
	setupTestServices(t, suitePrograms())

	out, _, err := execute(t, "", "test", "pass.md", "suite.yaml")

	require.NoError(t, err)
	assert.Contains(t, out, "pass.md\n")
	assert.Contains(t, out, "  PASS Literals #1\n")
	assert.Contains(t, out, "  PASS Addition #2\n")
	assert.Contains(t, out, "  PASS echo\n")
	assert.Contains(t, out, "3 passed, 0 failed")
}

func TestTestCmd_Failures(t *testing.T) {
	setupTestServices(t, suitePrograms())

	out, _, err := execute(t, "", "test", "fail.md")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 cases failed")
	assert.Contains(t, out, "  FAIL Wrong #1 (line 3)\n")
	assert.Contains(t, out, "      Result: 6\n")
	assert.Contains(t, out, "      Result: 5\n")
	assert.Contains(t, out, "  PASS Errors #2\n")
}

func TestTestCmd_Quiet(t *testing.T) {
	setupTestServices(t, suitePrograms())

	out, _, err := execute(t, "", "test", "--quiet", "pass.md")

	require.NoError(t, err)
	assert.NotContains(t, out, "PASS")
	assert.Contains(t, out, "2 passed, 0 failed")
}

func TestTestCmd_EmptyDocument(t *testing.T) {
	setupTestServices(t, suitePrograms())

	out, _, err := execute(t, "", "test", "empty.md")

	require.NoError(t, err)
	assert.Contains(t, out, "no test cases found")
}

func TestTestCmd_MissingDocument(t *testing.T) {
	setupTestServices(t, suitePrograms())

	_, _, err := execute(t, "", "test", "nope.md")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "running nope.md")
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n  b\n", indent("a\nb", "  "))
}
