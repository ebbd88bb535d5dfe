package parse

import (
	"strings"
	"testing"

	"github.com/andreyvit/diff"

	"github.com/charon-lang/charon/diag"
	"github.com/charon-lang/charon/element"
	"github.com/charon-lang/charon/lex"
	"github.com/charon-lang/charon/pool"
	"github.com/charon-lang/charon/source"
	"github.com/charon-lang/charon/token"
)

type parseTest struct {
	name      string
	input     string
	tree      string
	diagKinds []diag.Kind
}

var parseTests = []parseTest{
	{"empty", "", `
(root)
`, nil},

	{"empty function", "fn main() { }", `
(root)
  (tlc.function)
    fn
    identifier ` + "`main`" + `
    (type.function)
      (
      )
    (stmt.block)
      {
      }
`, nil},

	{"function missing name", "fn () { }", `
(root)
  (tlc.function)
    fn
    (error)
    (type.function)
      (
      )
    (stmt.block)
      {
      }
`, []diag.Kind{diag.KindExpected}},

	{"module with function", "module m { fn f() { return 0; } }", `
(root)
  (tlc.module)
    module
    identifier ` + "`m`" + `
    {
    (tlc.function)
      fn
      identifier ` + "`f`" + `
      (type.function)
        (
        )
      (stmt.block)
        {
        (stmt.return)
          return
          (expr.literal_numeric)
            number ` + "`0`" + `
          ;
        }
    }
`, nil},

	{"unfinished module", "module m {", `
(root)
  (tlc.module)
    module
    identifier ` + "`m`" + `
    {
    (error)
`, []diag.Kind{diag.KindUnfinishedModule}},

	{"extern", `extern fn puts(s: *char): int;`, `
(root)
  (tlc.extern)
    extern
    fn
    identifier ` + "`puts`" + `
    (type.function)
      (
      (function.parameter)
        identifier ` + "`s`" + `
        :
        (type.pointer)
          *
          (type.reference)
            identifier ` + "`char`" + `
      )
      :
      (type.reference)
        identifier ` + "`int`" + `
    ;
`, nil},

	{"parameters and varargs", "fn f(a: int, b: u8, ...) { }", `
(root)
  (tlc.function)
    fn
    identifier ` + "`f`" + `
    (type.function)
      (
      (function.parameter)
        identifier ` + "`a`" + `
        :
        (type.reference)
          identifier ` + "`int`" + `
      ,
      (function.parameter)
        identifier ` + "`b`" + `
        :
        (type.reference)
          identifier ` + "`u8`" + `
      ,
      ...
      )
    (stmt.block)
      {
      }
`, nil},

	{"binary precedence", "fn f() { x = 1 + 2 * 3; }", `
(root)
  (tlc.function)
    fn
    identifier ` + "`f`" + `
    (type.function)
      (
      )
    (stmt.block)
      {
      (stmt.expression)
        (expr.binary)
          (expr.variable)
            identifier ` + "`x`" + `
          =
          (expr.binary)
            (expr.literal_numeric)
              number ` + "`1`" + `
            +
            (expr.binary)
              (expr.literal_numeric)
                number ` + "`2`" + `
              *
              (expr.literal_numeric)
                number ` + "`3`" + `
        ;
      }
`, nil},

	{"unary and call", "fn f() { g(-1, !x); }", `
(root)
  (tlc.function)
    fn
    identifier ` + "`f`" + `
    (type.function)
      (
      )
    (stmt.block)
      {
      (stmt.expression)
        (expr.call)
          identifier ` + "`g`" + `
          (
          (expr.unary)
            -
            (expr.literal_numeric)
              number ` + "`1`" + `
          ,
          (expr.unary)
            !
            (expr.variable)
              identifier ` + "`x`" + `
          )
        ;
      }
`, nil},

	{"postfix chain", "fn f() { let y = p.0[i] as *u8; }", `
(root)
  (tlc.function)
    fn
    identifier ` + "`f`" + `
    (type.function)
      (
      )
    (stmt.block)
      {
      (stmt.declaration)
        let
        identifier ` + "`y`" + `
        =
        (expr.cast)
          (expr.index)
            (expr.selector)
              (expr.variable)
                identifier ` + "`p`" + `
              .
              number ` + "`0`" + `
            [
            (expr.variable)
              identifier ` + "`i`" + `
            ]
          as
          (type.pointer)
            *
            (type.reference)
              identifier ` + "`u8`" + `
        ;
      }
`, nil},

	{"if else while", "fn f() { if (x) { } else while (true) ; }", `
(root)
  (tlc.function)
    fn
    identifier ` + "`f`" + `
    (type.function)
      (
      )
    (stmt.block)
      {
      (stmt.if)
        if
        (
        (expr.variable)
          identifier ` + "`x`" + `
        )
        (stmt.block)
          {
          }
        else
        (stmt.while)
          while
          (
          (expr.literal_bool)
            true
          )
          (stmt.noop)
            ;
      }
`, nil},

	{"switch", "fn f() { switch (x) { case 1: ; default: ; } }", `
(root)
  (tlc.function)
    fn
    identifier ` + "`f`" + `
    (type.function)
      (
      )
    (stmt.block)
      {
      (stmt.switch)
        switch
        (
        (expr.variable)
          identifier ` + "`x`" + `
        )
        {
        (switch.case)
          case
          (expr.literal_numeric)
            number ` + "`1`" + `
          :
          (stmt.noop)
            ;
        (switch.case)
          default
          :
          (stmt.noop)
            ;
        }
      }
`, nil},

	{"attributed function", "@export fn f() { }", `
(root)
  (attribute)
    @
    identifier ` + "`export`" + `
  (tlc.function)
    fn
    identifier ` + "`f`" + `
    (type.function)
      (
      )
    (stmt.block)
      {
      }
`, nil},

	{"attributed extern", `@link("c", 2) extern fn g();`, `
(root)
  (attribute)
    @
    identifier ` + "`link`" + `
    (
    string ` + "`\"c\"`" + `
    ,
    number ` + "`2`" + `
    )
  (tlc.extern)
    extern
    fn
    identifier ` + "`g`" + `
    (type.function)
      (
      )
    ;
`, nil},

	{"struct type with attribute", "fn f() { let s: @packed struct { a: int; }; }", `
(root)
  (tlc.function)
    fn
    identifier ` + "`f`" + `
    (type.function)
      (
      )
    (stmt.block)
      {
      (stmt.declaration)
        let
        identifier ` + "`s`" + `
        :
        (attribute)
          @
          identifier ` + "`packed`" + `
        (type.struct)
          struct
          {
          (struct.member)
            identifier ` + "`a`" + `
            :
            (type.reference)
              identifier ` + "`int`" + `
            ;
          }
        ;
      }
`, nil},

	{"tuple and grouping", "fn f() { let t = (1, 2); let g = (x); }", `
(root)
  (tlc.function)
    fn
    identifier ` + "`f`" + `
    (type.function)
      (
      )
    (stmt.block)
      {
      (stmt.declaration)
        let
        identifier ` + "`t`" + `
        =
        (expr.tuple)
          (
          (expr.literal_numeric)
            number ` + "`1`" + `
          ,
          (expr.literal_numeric)
            number ` + "`2`" + `
          )
        ;
      (stmt.declaration)
        let
        identifier ` + "`g`" + `
        =
        (expr.tuple)
          (
          (expr.variable)
            identifier ` + "`x`" + `
          )
        ;
      }
`, nil},
}

func parseString(t *testing.T, input string) (*element.Rooted, []diag.Diagnostic) {
	t.Helper()
	var diags []diag.Diagnostic
	var report = func(d diag.Diagnostic) { diags = append(diags, d) }
	var src = source.FromString("test.cn", input)
	var tree = Root(lex.New(src, report), element.NewCache(), pool.New(), report)
	return tree, diags
}

func TestParse(t *testing.T) {
	for _, test := range parseTests {
		var tree, diags = parseString(t, test.input)

		var actual = element.Dump(tree.Element())
		var expected = strings.TrimPrefix(test.tree, "\n")
		if actual != expected {
			t.Errorf("%s: tree mismatch:\n%v", test.name, diff.LineDiff(expected, actual))
		}

		if len(diags) != len(test.diagKinds) {
			t.Errorf("%s: got %d diagnostics, want %d: %v", test.name, len(diags), len(test.diagKinds), diags)
			continue
		}
		for i, d := range diags {
			if d.Kind() != test.diagKinds[i] {
				t.Errorf("%s: diagnostic %d: got kind %v, want %v", test.name, i, d.Kind(), test.diagKinds[i])
			}
		}
	}
}

func TestExpectedDiagnosticPayload(t *testing.T) {
	var _, diags = parseString(t, "fn () { }")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	var expected, ok = diags[0].(diag.Expected)
	if !ok {
		t.Fatalf("got %T, want diag.Expected", diags[0])
	}
	if len(expected.Expected) != 1 || expected.Expected[0] != token.Identifier {
		t.Errorf("expected kinds: got %v", expected.Expected)
	}
	if expected.Got != token.ParenthesesLeft {
		t.Errorf("got kind: %v, want (", expected.Got)
	}
	if expected.Error() != "expected identifier got (" {
		t.Errorf("message: %q", expected.Error())
	}
}

// Parsing is total: every input yields a root tree, and diagnostics pair
// with error nodes.
func TestParseTotality(t *testing.T) {
	var inputs = []string{
		"",
		"fn",
		"fn (",
		"}{",
		"module",
		"module m { fn",
		"let x = 1;",
		"fn f() { if (x } }",
		"fn f() { 1 2; }",
		"fn f() { switch (x) { default: ; default: ; } }",
		"\x00\x01\x02",
		"fn f() { ((((((1; }",
	}
	for _, input := range inputs {
		var tree, diags = parseString(t, input)
		var root = tree.Element()
		if !root.IsNode() || root.NodeKind() != element.KindRoot {
			t.Errorf("%q: root is not a root node", input)
		}

		var errorNodes = 0
		element.Walk(root, func(e *element.Element) {
			if e.IsNode() && e.NodeKind() == element.KindError {
				errorNodes++
			}
		})
		var unexpected = 0
		for _, d := range diags {
			if d.Kind() == diag.KindUnexpectedSymbol {
				unexpected++
			}
		}
		if (len(diags)-unexpected > 0) != (errorNodes > 0) {
			t.Errorf("%q: %d parse diagnostics but %d error nodes", input, len(diags)-unexpected, errorNodes)
		}
	}
}

func TestLiteralDiagnostics(t *testing.T) {
	var tests = []struct {
		name  string
		input string
		kind  diag.Kind
	}{
		{"numeric overflow", "fn f() { let x = 99999999999999999999; }", diag.KindTooLargeNumericConstant},
		{"hex overflow", "fn f() { let x = 0xffffffffffffffff1; }", diag.KindTooLargeNumericConstant},
		{"empty char", "fn f() { let c = ''; }", diag.KindEmptyCharLiteral},
		{"char too large", "fn f() { let c = 'ab'; }", diag.KindTooLargeCharLiteral},
		{"escape too large", `fn f() { let c = '\u{110000}'; }`, diag.KindTooLargeEscapeSequence},
		{"string escape too large", `fn f() { let s = "\u{ffffff}"; }`, diag.KindTooLargeEscapeSequence},
	}
	for _, test := range tests {
		var tree, diags = parseString(t, test.input)
		if len(diags) != 1 {
			t.Errorf("%s: got %d diagnostics, want 1: %v", test.name, len(diags), diags)
			continue
		}
		if diags[0].Kind() != test.kind {
			t.Errorf("%s: got kind %v, want %v", test.name, diags[0].Kind(), test.kind)
		}
		var errorNodes = 0
		element.Walk(tree.Element(), func(e *element.Element) {
			if e.IsNode() && e.NodeKind() == element.KindError {
				errorNodes++
			}
		})
		if errorNodes != 1 {
			t.Errorf("%s: got %d error nodes, want 1", test.name, errorNodes)
		}
	}
}

func TestValidLiterals(t *testing.T) {
	var inputs = []string{
		"fn f() { let a = 0xff; }",
		"fn f() { let b = 0b1010; }",
		"fn f() { let c = 0o777; }",
		"fn f() { let d = 18446744073709551615; }",
		`fn f() { let e = "hello \n \"world\""; }`,
		`fn f() { let g = '\n'; }`,
		`fn f() { let h = '\u{1F600}'; }`,
		`fn f() { let i = '\xff'; }`,
	}
	for _, input := range inputs {
		var _, diags = parseString(t, input)
		if len(diags) != 0 {
			t.Errorf("%q: unexpected diagnostics: %v", input, diags)
		}
	}
}

func TestDuplicateDefault(t *testing.T) {
	var input = "fn f() { switch (x) { default: ; case 1: ; default: ; } }"
	var tree, diags = parseString(t, input)
	if len(diags) != 1 || diags[0].Kind() != diag.KindDuplicateDefault {
		t.Fatalf("got %v, want one DuplicateDefault", diags)
	}
	// The duplicate case is preserved as an error node.
	var errorNodes = 0
	element.Walk(tree.Element(), func(e *element.Element) {
		if e.IsNode() && e.NodeKind() == element.KindError {
			errorNodes++
		}
	})
	if errorNodes != 1 {
		t.Errorf("got %d error nodes, want 1", errorNodes)
	}
}

func TestSubParsers(t *testing.T) {
	var newTz = func(input string) (*lex.Tokenizer, *[]diag.Diagnostic) {
		var diags []diag.Diagnostic
		return lex.New(source.FromString("test.cn", input), func(d diag.Diagnostic) { diags = append(diags, d) }), &diags
	}

	var tz, _ = newTz("fn f() { }")
	var tlc = TLC(tz, element.NewCache(), pool.New(), func(diag.Diagnostic) {})
	if kind := tlc.Element().Child(0).NodeKind(); kind != element.KindTLCFunction {
		t.Errorf("TLC: got %v", kind)
	}

	tz, _ = newTz("return 1;")
	var stmt = Stmt(tz, element.NewCache(), pool.New(), func(diag.Diagnostic) {})
	if kind := stmt.Element().Child(0).NodeKind(); kind != element.KindStmtReturn {
		t.Errorf("Stmt: got %v", kind)
	}

	tz, _ = newTz("1 + 2")
	var expr = Expr(tz, element.NewCache(), pool.New(), func(diag.Diagnostic) {})
	if kind := expr.Element().Child(0).NodeKind(); kind != element.KindExprBinary {
		t.Errorf("Expr: got %v", kind)
	}
}
