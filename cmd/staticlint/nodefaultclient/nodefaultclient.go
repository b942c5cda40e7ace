// Package nodefaultclient запрещает исходящие запросы через http.DefaultClient:
// у него нет таймаута, и загрузка картинки может повиснуть навсегда.
package nodefaultclient

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// запрещённые функции пакета net/http, все они ходят через DefaultClient
var forbidden = map[string]bool{
	"net/http.Get":      true,
	"net/http.Head":     true,
	"net/http.Post":     true,
	"net/http.PostForm": true,
}

var Analyzer = &analysis.Analyzer{
	Name:     "nodefaultclient",
	Doc:      "запрещает http.Get/Head/Post/PostForm и http.DefaultClient вне тестов",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.SelectorExpr)(nil)}, func(n ast.Node) {
		sel := n.(*ast.SelectorExpr)
		if isTestFile(pass, sel) {
			return
		}

		switch obj := pass.TypesInfo.Uses[sel.Sel].(type) {
		case *types.Func:
			if forbidden[obj.FullName()] {
				pass.Reportf(sel.Pos(), "%s использует http.DefaultClient без таймаута", obj.FullName())
			}
		case *types.Var:
			if obj.Pkg() != nil && obj.Pkg().Path() == "net/http" && obj.Name() == "DefaultClient" {
				pass.Reportf(sel.Pos(), "http.DefaultClient не имеет таймаута")
			}
		}
	})
	return nil, nil
}

func isTestFile(pass *analysis.Pass, n ast.Node) bool {
	return strings.HasSuffix(pass.Fset.File(n.Pos()).Name(), "_test.go")
}
