package tutor

import (
	"strings"

	"github.com/pingcap/tidb/pkg/parser"
	"github.com/pingcap/tidb/pkg/parser/ast"
	_ "github.com/pingcap/tidb/pkg/parser/test_driver"
)

// Report summarizes a pre-flight parse of an editor submission. It is
// advisory: the parser speaks MySQL while the session store speaks SQLite,
// so execution always proceeds and the engine has the final word.
type Report struct {
	Statements int
	Mutates    bool
	Diagnostic string
}

// Inspect parses the submission and reports how many statements it holds
// and whether any of them would mutate the store. Text the parser cannot
// handle yields a zero-statement report carrying the diagnostic.
func Inspect(query string) Report {
	query = strings.TrimSpace(query)
	if query == "" {
		return Report{}
	}

	p := parser.New()
	stmts, _, err := p.ParseSQL(query)
	if err != nil {
		return Report{Diagnostic: err.Error()}
	}

	report := Report{Statements: len(stmts)}
	for _, stmt := range stmts {
		switch stmt.(type) {
		case *ast.SelectStmt, *ast.SetOprStmt, *ast.ShowStmt, *ast.ExplainStmt:
		default:
			report.Mutates = true
		}
	}
	return report
}
