package charon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charon-lang/charon/ast"
	"github.com/charon-lang/charon/diag"
	"github.com/charon-lang/charon/element"
	"github.com/charon-lang/charon/source"
)

func TestCompileString(t *testing.T) {
	var c, err = NewBundle().
		AddString("main.cn", "fn main() { }").
		Compile()
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	result, err := c.Tree("main.cn")
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", result.Diags)
	}
	var root, ok = ast.AsRoot(result.Tree.Element())
	if !ok {
		t.Fatal("not a root")
	}
	var fn, _ = ast.AsFunction(root.TLCs()[0])
	if name, _ := fn.Name(); name != "main" {
		t.Errorf("got %q", name)
	}
}

func TestTreeIsMemoised(t *testing.T) {
	var c, err = NewBundle().
		AddString("a.cn", "fn f() { }").
		Compile()
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	first, err := c.Tree("a.cn")
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Tree("a.cn")
	if err != nil {
		t.Fatal(err)
	}
	if first.Tree != second.Tree {
		t.Error("expected the memoised tree")
	}

	c.Invalidate("a.cn")
	third, err := c.Tree("a.cn")
	if err != nil {
		t.Fatal(err)
	}
	if third.Tree == first.Tree {
		t.Error("expected a reparse after invalidation")
	}
	// Hash-consing still shares the identical underlying elements.
	if third.Tree.Element() != first.Tree.Element() {
		t.Error("reparsing identical input must yield the identical root element")
	}
}

func TestSourceReplacement(t *testing.T) {
	var c, err = NewBundle().
		AddString("a.cn", "fn f() { }").
		Compile()
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	var before, _ = c.Tree("a.cn")
	c.AddSource(source.FromString("a.cn", "fn g() { }"))
	var after, _ = c.Tree("a.cn")

	var fnBefore, _ = ast.AsFunction(mustTLC(t, before.Tree.Element()))
	var fnAfter, _ = ast.AsFunction(mustTLC(t, after.Tree.Element()))
	nameBefore, _ := fnBefore.Name()
	nameAfter, _ := fnAfter.Name()
	if nameBefore != "f" || nameAfter != "g" {
		t.Errorf("got %q then %q", nameBefore, nameAfter)
	}
}

func mustTLC(t *testing.T, root *element.Element) *element.Element {
	t.Helper()
	var r, ok = ast.AsRoot(root)
	if !ok || len(r.TLCs()) == 0 {
		t.Fatal("no TLCs")
	}
	return r.TLCs()[0]
}

func TestCompileFiles(t *testing.T) {
	var dir = t.TempDir()
	var path = filepath.Join(dir, "main.cn")
	if err := os.WriteFile(path, []byte("fn main() { }"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("not charon"), 0o644); err != nil {
		t.Fatal(err)
	}

	var c, err = NewBundle().AddDir(dir).Compile()
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if _, err := c.Tree(path); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Tree(filepath.Join(dir, "ignored.txt")); err == nil {
		t.Error("non-source files must not be registered")
	}
}

func TestDiagnosticsSurvive(t *testing.T) {
	var c, err = NewBundle().
		AddString("bad.cn", "fn () { }").
		Compile()
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	result, err := c.Tree("bad.cn")
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Diags) != 1 || result.Diags[0].Kind() != diag.KindExpected {
		t.Errorf("got %v", result.Diags)
	}
}

func TestUnknownSource(t *testing.T) {
	var c = NewCompilation()
	defer c.Close()
	if _, err := c.Tree("missing.cn"); err == nil {
		t.Error("expected an error for an unknown source")
	}
}
