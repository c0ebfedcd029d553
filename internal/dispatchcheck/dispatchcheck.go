// Package dispatchcheck verifies the visitor dispatch protocol of Go packages.
//
// In a checked package the interface named Visitor declares one method per
// component. Every type with an Accept(Visitor) method is a component, and its
// Accept must call exactly one Visitor method, the one whose parameter is the
// component's own type, passing its own receiver. Every Visitor method must be the target of some
// component's Accept.
//
// Type errors are reported as problems too: a visitor that misses a method
// fails to type check wherever it is used as a Visitor.
package dispatchcheck

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// VisitorName is the name of the interface the check looks for.
const VisitorName = "Visitor"

// ErrNoVisitor none of the loaded packages declares a Visitor interface
var ErrNoVisitor = errors.New("no Visitor interface found")

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedSyntax |
	packages.NeedTypesInfo

// Problem is one violation of the dispatch protocol.
type Problem struct {
	// Pos is the file:line:column of the offending declaration, if known.
	Pos     string
	Message string
}

func (p Problem) String() string {
	if p.Pos == "" {
		return p.Message
	}
	return p.Pos + ": " + p.Message
}

// Check loads the packages matching patterns, relative to dir, and returns
// every problem found. Patterns default to ".".
func Check(dir string, patterns ...string) ([]Problem, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	cfg := &packages.Config{Mode: loadMode, Dir: dir}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load %v: %w", patterns, err)
	}

	var problems []Problem
	found := false
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			for _, e := range pkg.Errors {
				problems = append(problems, Problem{Pos: e.Pos, Message: e.Msg})
			}
			continue
		}
		c, ok := newChecker(pkg)
		if !ok {
			continue
		}
		found = true
		problems = append(problems, c.check()...)
	}
	if !found && len(problems) == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNoVisitor, patterns)
	}
	return problems, nil
}

type checker struct {
	pkg         *packages.Package
	visitorType types.Type
	visitor     *types.Interface
	covered     map[string]bool
	problems    []Problem
}

func newChecker(pkg *packages.Package) (*checker, bool) {
	if pkg.Types == nil {
		return nil, false
	}
	obj, ok := pkg.Types.Scope().Lookup(VisitorName).(*types.TypeName)
	if !ok {
		return nil, false
	}
	iface, ok := obj.Type().Underlying().(*types.Interface)
	if !ok {
		return nil, false
	}
	return &checker{
		pkg:         pkg,
		visitorType: obj.Type(),
		visitor:     iface,
		covered:     make(map[string]bool),
	}, true
}

func (c *checker) check() []Problem {
	scope := c.pkg.Types.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		if _, ok := tn.Type().Underlying().(*types.Interface); ok {
			continue
		}
		accept := c.acceptOf(tn.Type())
		if accept == nil {
			continue
		}
		c.checkAccept(tn, accept)
	}
	for i := 0; i < c.visitor.NumMethods(); i++ {
		method := c.visitor.Method(i)
		if !c.covered[method.Name()] {
			c.report(method.Pos(), "%s.%s is not called by the Accept of any component", VisitorName, method.Name())
		}
	}
	return c.problems
}

// acceptOf returns the Accept(Visitor) method of t or *t.
func (c *checker) acceptOf(t types.Type) *types.Func {
	mset := types.NewMethodSet(types.NewPointer(t))
	sel := mset.Lookup(c.pkg.Types, "Accept")
	if sel == nil {
		return nil
	}
	fn, ok := sel.Obj().(*types.Func)
	if !ok {
		return nil
	}
	sig := fn.Type().(*types.Signature)
	if sig.Params().Len() != 1 || !types.Identical(sig.Params().At(0).Type(), c.visitorType) {
		return nil
	}
	return fn
}

func (c *checker) checkAccept(component *types.TypeName, accept *types.Func) {
	decl := c.funcDecl(accept)
	if decl == nil || decl.Body == nil {
		c.report(accept.Pos(), "Accept of %s has no body", component.Name())
		return
	}
	calls := c.visitorCalls(decl.Body)
	if len(calls) != 1 {
		c.report(decl.Pos(), "Accept of %s calls %d %s methods, want exactly 1", component.Name(), len(calls), VisitorName)
		return
	}
	method := calls[0].method
	param := method.Type().(*types.Signature).Params()
	if param.Len() != 1 || !isComponentType(param.At(0).Type(), component.Type()) {
		c.report(decl.Pos(), "Accept of %s calls %s, which does not take a %s", component.Name(), method.Name(), component.Name())
		return
	}
	c.covered[method.Name()] = true
	if !c.passesReceiver(decl, calls[0].expr) {
		c.report(calls[0].expr.Pos(), "Accept of %s does not pass its receiver to %s", component.Name(), method.Name())
	}
}

// passesReceiver reports whether the single argument of call is the receiver
// of decl, either as is or with its address taken.
func (c *checker) passesReceiver(decl *ast.FuncDecl, call *ast.CallExpr) bool {
	if decl.Recv == nil || len(decl.Recv.List) == 0 || len(decl.Recv.List[0].Names) == 0 {
		return false
	}
	recv := c.pkg.TypesInfo.Defs[decl.Recv.List[0].Names[0]]
	if recv == nil || len(call.Args) != 1 {
		return false
	}
	arg := ast.Unparen(call.Args[0])
	if unary, ok := arg.(*ast.UnaryExpr); ok && unary.Op == token.AND {
		arg = ast.Unparen(unary.X)
	}
	ident, ok := arg.(*ast.Ident)
	return ok && c.pkg.TypesInfo.Uses[ident] == recv
}

func isComponentType(param types.Type, component types.Type) bool {
	return types.Identical(param, component) || types.Identical(param, types.NewPointer(component))
}

type visitorCall struct {
	method *types.Func
	expr   *ast.CallExpr
}

// visitorCalls returns the Visitor method calls in body, in source order.
func (c *checker) visitorCalls(body *ast.BlockStmt) []visitorCall {
	var calls []visitorCall
	ast.Inspect(body, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		selection, ok := c.pkg.TypesInfo.Selections[sel]
		if !ok || selection.Kind() != types.MethodVal {
			return true
		}
		if !types.Identical(selection.Recv(), c.visitorType) {
			return true
		}
		if fn, ok := selection.Obj().(*types.Func); ok {
			calls = append(calls, visitorCall{method: fn, expr: call})
		}
		return true
	})
	return calls
}

func (c *checker) funcDecl(fn *types.Func) *ast.FuncDecl {
	for _, file := range c.pkg.Syntax {
		for _, decl := range file.Decls {
			funcDecl, ok := decl.(*ast.FuncDecl)
			if !ok {
				continue
			}
			if c.pkg.TypesInfo.Defs[funcDecl.Name] == fn {
				return funcDecl
			}
		}
	}
	return nil
}

func (c *checker) report(pos token.Pos, format string, args ...any) {
	problem := Problem{Message: fmt.Sprintf(format, args...)}
	if pos.IsValid() {
		problem.Pos = c.pkg.Fset.Position(pos).String()
	}
	c.problems = append(c.problems, problem)
}
