package gohost

import (
	"go/ast"
	"go/types"
	"log/slog"
	"sync"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/funvibe/typeasserts/internal/checker"
	"github.com/funvibe/typeasserts/internal/config"
)

const doc = `check static type assertions

The asserttype analyzer verifies calls to typeasserts.AssertType:

	typeasserts.AssertType[float64](x)

reports "assert_type failed. expected: 'float64', actual 'int'" when the type
the Go type checker inferred for x is not identical to the declared type
argument, and "You must provide a type parameter to 'assert_type'" when the
type argument is missing.`

// Analyzer loads its configuration from the -config flag or the nearest
// typeasserts.yaml on first use.
var Analyzer = &analysis.Analyzer{
	Name:             config.AnalyzerName,
	Doc:              doc,
	Requires:         []*analysis.Analyzer{inspect.Analyzer},
	Run:              runDefault,
	RunDespiteErrors: true,
}

var configPath string

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "", "path to typeasserts.yaml (default: search from the working directory)")
}

var defaultHost struct {
	once sync.Once
	host *Host
	err  error
}

func runDefault(pass *analysis.Pass) (any, error) {
	defaultHost.once.Do(func() {
		cfg, err := config.Resolve(configPath, ".")
		if err != nil {
			defaultHost.err = err
			return
		}
		defaultHost.host, defaultHost.err = NewHost(cfg, slog.Default())
	})
	if defaultHost.err != nil {
		return nil, defaultHost.err
	}
	return defaultHost.host.Run(pass)
}

// NewAnalyzer returns an analyzer bound to h.
func NewAnalyzer(h *Host) *analysis.Analyzer {
	return &analysis.Analyzer{
		Name:             config.AnalyzerName,
		Doc:              doc,
		Requires:         []*analysis.Analyzer{inspect.Analyzer},
		Run:              h.Run,
		RunDespiteErrors: true,
	}
}

// Run hooks every call in the package whose callee a plugin claims. Calls are
// visited innermost first so that a hook's result type is what an enclosing
// hooked call sees as its argument type.
func (h *Host) Run(pass *analysis.Pass) (any, error) {
	if !h.Active() {
		return nil, nil
	}

	ins := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	c := &callSite{
		pass:    pass,
		plugins: h.plugins,
		results: make(map[ast.Expr]checker.Type),
	}
	ins.Nodes([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node, push bool) bool {
		if !push {
			c.check(n.(*ast.CallExpr))
		}
		return true
	})
	return nil, nil
}

// callSite builds hook contexts for one pass.
type callSite struct {
	pass    *analysis.Pass
	plugins checker.Chain

	// results holds hook result types of calls already visited.
	results map[ast.Expr]checker.Type
}

func (c *callSite) check(call *ast.CallExpr) {
	fn := typeutil.StaticCallee(c.pass.TypesInfo, call)
	if fn == nil {
		return
	}
	fn = fn.Origin()

	hook := c.plugins.FunctionHook(fn.FullName())
	if hook == nil {
		return
	}
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return
	}

	ctx := &checker.FunctionContext{
		DefaultReturnType: NewInstance(fn.FullName(), c.typeArgs(sig, call)...),
		Context:           call,
		API:               reporter{pass: c.pass},
	}
	ctx.Args, ctx.ArgTypes = c.groupArgs(sig, call)

	if result := hook(ctx); result != nil {
		c.results[call] = result
	}
}

// typeArgs returns one type per type parameter of sig. It prefers the
// instantiation the checker recorded and falls back to the explicit index
// expression when inference failed.
func (c *callSite) typeArgs(sig *types.Signature, call *ast.CallExpr) []checker.Type {
	n := sig.TypeParams().Len()
	args := make([]checker.Type, n)
	for i := range args {
		args[i] = checker.UninhabitedType{}
	}

	fun, indices := unpackIndex(ast.Unparen(call.Fun))
	if id := calleeIdent(fun); id != nil {
		if inst, ok := c.pass.TypesInfo.Instances[id]; ok && inst.TypeArgs != nil {
			for i := 0; i < inst.TypeArgs.Len() && i < n; i++ {
				args[i] = NewClass(inst.TypeArgs.At(i))
			}
			return args
		}
	}

	for i, e := range indices {
		if i >= n {
			break
		}
		if tv, ok := c.pass.TypesInfo.Types[e]; ok && tv.IsType() {
			args[i] = Wrap(tv)
		}
	}
	return args
}

// groupArgs groups the call's arguments per formal parameter. Variadic
// arguments fold into the last parameter.
func (c *callSite) groupArgs(sig *types.Signature, call *ast.CallExpr) ([][]ast.Expr, [][]checker.Type) {
	n := sig.Params().Len()
	exprs := make([][]ast.Expr, n)
	argTypes := make([][]checker.Type, n)
	for i, arg := range call.Args {
		j := i
		if sig.Variadic() && j >= n-1 {
			j = n - 1
		}
		if j >= n || j < 0 {
			break
		}
		exprs[j] = append(exprs[j], arg)
		argTypes[j] = append(argTypes[j], c.argType(arg))
	}
	return exprs, argTypes
}

func (c *callSite) argType(arg ast.Expr) checker.Type {
	if t, ok := c.results[ast.Unparen(arg)]; ok {
		return t
	}
	return Wrap(c.pass.TypesInfo.Types[arg])
}

// unpackIndex splits f[A, B] into f and [A, B].
func unpackIndex(fun ast.Expr) (ast.Expr, []ast.Expr) {
	switch f := fun.(type) {
	case *ast.IndexExpr:
		return f.X, []ast.Expr{f.Index}
	case *ast.IndexListExpr:
		return f.X, f.Indices
	}
	return fun, nil
}

func calleeIdent(fun ast.Expr) *ast.Ident {
	switch f := ast.Unparen(fun).(type) {
	case *ast.Ident:
		return f
	case *ast.SelectorExpr:
		return f.Sel
	}
	return nil
}

// reporter turns hook failures into analysis diagnostics.
type reporter struct {
	pass *analysis.Pass
}

func (r reporter) Fail(msg string, ctx checker.Context) {
	r.pass.Report(analysis.Diagnostic{
		Pos:      ctx.Pos(),
		End:      ctx.End(),
		Category: config.DiagnosticCategory,
		Message:  msg,
	})
}
