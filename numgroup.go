package numgroup

import (
	"fmt"
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/numgroup/internal/discover"
	"github.com/sirkon/numgroup/internal/grouping"
)

const doc = `numgroup reports numeric literals whose digits lack underscore group separators`

// Analyzer is the main entry point for the linter.
var Analyzer = &analysis.Analyzer{
	Name:     "numgroup",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var configPath string

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "", "path to a numgroup YAML config file")
}

func run(pass *analysis.Pass) (any, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("set up numgroup: %w", err)
	}

	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.BasicLit)(nil),
	}

	pector.Preorder(nodeFilter, func(node ast.Node) {
		lit := node.(*ast.BasicLit) // No need to assert check since we only get basic literals.

		text, ok := discover.LiteralText(lit)
		if !ok {
			return
		}

		finding := grouping.ValidateWith(cfg.Widths, grouping.Literal{
			Text: text,
			Pos:  pass.Fset.Position(lit.Pos()),
		})
		if finding == nil {
			return
		}

		pass.Reportf(lit.Pos(), "%s: %s", finding.Rule.Code(), finding.Message)
	})

	return nil, nil
}
