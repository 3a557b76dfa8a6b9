package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCommandStructure(t *testing.T) {
	assert.NotNil(t, analyzeCmd)
	assert.Contains(t, analyzeCmd.Use, "analyze")
	assert.NotEmpty(t, analyzeCmd.Short)
	assert.NotEmpty(t, analyzeCmd.Long)
	assert.NotNil(t, analyzeCmd.RunE)
}

func TestAnalyzeCommandFlags(t *testing.T) {
	summaryFlag := analyzeCmd.Flags().Lookup("summary")
	assert.NotNil(t, summaryFlag)
	assert.Equal(t, "false", summaryFlag.DefValue)
}

func TestAnalyzeIsAddedToRoot(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "analyze" {
			found = true
			break
		}
	}
	assert.True(t, found, "analyze command should be added to root command")
}

func TestRunAnalyze(t *testing.T) {
	content := "Epic|Availity|123|197\n" +
		"Availity|Optum|123|197\n" +
		"Optum|Epic|123|197\n" +
		"Epic|Availity|891|45\n" +
		"Availity|Epic|891|45\n"
	path := filepath.Join(t.TempDir(), "records.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	var buf bytes.Buffer
	setOutputWriter(&buf)
	defer resetOutputWriter()

	err := runAnalyze(analyzeCmd, []string{path})
	require.NoError(t, err)

	assert.Equal(t, "123,197,3\n", buf.String())
}

func TestRunAnalyze_NoCycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt")
	require.NoError(t, os.WriteFile(path, []byte("A|B|1|1\n"), 0644))

	var buf bytes.Buffer
	setOutputWriter(&buf)
	defer resetOutputWriter()

	err := runAnalyze(analyzeCmd, []string{path})
	require.NoError(t, err)

	assert.Equal(t, "0,0,0\n", buf.String())
}

func TestRunAnalyze_Summary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt")
	require.NoError(t, os.WriteFile(path, []byte("A|A|1|2\n"), 0644))

	analyzeSummary = true
	defer func() { analyzeSummary = false }()

	var buf bytes.Buffer
	setOutputWriter(&buf)
	defer resetOutputWriter()

	err := runAnalyze(analyzeCmd, []string{path})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "1,2,1")
	assert.Contains(t, out, "Cycle length")
	assert.Contains(t, out, "Groups analyzed")
}

func TestRunAnalyze_MissingFile(t *testing.T) {
	var buf bytes.Buffer
	setOutputWriter(&buf)
	defer resetOutputWriter()

	err := runAnalyze(analyzeCmd, []string{filepath.Join(t.TempDir(), "absent.txt")})
	assert.Error(t, err)
}
