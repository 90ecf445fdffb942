package numgroup_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/sirkon/numgroup"
)

func TestAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), numgroup.Analyzer, "grouping")
}

func TestAnalyzerCustomConfig(t *testing.T) {
	path := filepath.Join(analysistest.TestData(), "customwidths.yaml")
	require.NoError(t, numgroup.Analyzer.Flags.Set("config", path))
	defer func() {
		require.NoError(t, numgroup.Analyzer.Flags.Set("config", ""))
	}()

	analysistest.Run(t, analysistest.TestData(), numgroup.Analyzer, "customwidths")
}
