package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmahotiedu/rift/lang/ast"
	"github.com/jmahotiedu/rift/lang/interp"
	"github.com/jmahotiedu/rift/lang/parser"
	"github.com/jmahotiedu/rift/lang/resolver"
	"github.com/jmahotiedu/rift/lang/scanner"
)

// run scans, parses, resolves and executes src against a fresh Interpreter,
// returning everything written to stdout and the first error encountered at
// any stage.
func run(t *testing.T, src string) (string, error) {
	t.Helper()

	tokens, scanErrs := scanner.ScanTokens(src)
	require.Empty(t, scanErrs, "scan errors")

	stmts, parseErrs := parser.Parse(tokens, ast.NewIDGen())
	require.Empty(t, parseErrs, "parse errors")

	depths, resolveErrs := resolver.Resolve(stmts)
	require.Empty(t, resolveErrs, "resolve errors")

	var out bytes.Buffer
	th := &interp.Thread{Stdout: &out}
	in := interp.New()
	err := in.Run(th, depths, stmts)
	return out.String(), err
}

func TestPrintArithmeticExpression(t *testing.T) {
	out, err := run(t, `print(1+2);`)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestLetAndAssignment(t *testing.T) {
	out, err := run(t, `
let x = 1;
x = x + 41;
print(x);
`)
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)
}

func TestClosuresCaptureFramesNotValues(t *testing.T) {
	out, err := run(t, `
fn makeCounter() {
  let count = 0;
  fn increment() {
    count = count + 1;
    print(count);
  }
  return increment;
}

let counter = makeCounter();
counter();
counter();
counter();
`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestClassInitializerAlwaysYieldsThis(t *testing.T) {
	out, err := run(t, `
class Box {
  init(value) {
    this.value = value;
    return;
  }
}

let b = Box(10);
print(b.value);
`)
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)
}

func TestMethodBindingCapturesInstance(t *testing.T) {
	out, err := run(t, `
class Greeter {
  init(name) {
    this.name = name;
  }
  greet() {
    print(this.name);
  }
}

let g = Greeter("Ada");
let bound = g.greet;
bound();
`)
	require.NoError(t, err)
	assert.Equal(t, "Ada\n", out)
}

func TestSuperCallsSuperclassMethod(t *testing.T) {
	out, err := run(t, `
class Animal {
  speak() {
    print("...");
  }
}

class Dog < Animal {
  speak() {
    super.speak();
    print("Woof");
  }
}

Dog().speak();
`)
	require.NoError(t, err)
	assert.Equal(t, "...\nWoof\n", out)
}

func TestForLoopDesugaring(t *testing.T) {
	out, err := run(t, `
for (let i = 0; i < 3; i = i + 1) {
  print(i);
}
`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestTruthiness(t *testing.T) {
	out, err := run(t, `
if (nil) { print("a"); } else { print("b"); }
if (0) { print("c"); } else { print("d"); }
if ("") { print("e"); } else { print("f"); }
`)
	require.NoError(t, err)
	assert.Equal(t, "b\nc\ne\n", out)
}

func TestFloatStringification(t *testing.T) {
	out, err := run(t, `
print(3);
print(3.5);
`)
	require.NoError(t, err)
	assert.Equal(t, "3\n3.5\n", out)
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, `print(1/0);`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Runtime error")
	assert.Contains(t, err.Error(), "division by zero")
}

func TestModuloByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, `print(1%0);`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "modulo by zero")
}

func TestFlooredModuloMatchesSignOfDivisor(t *testing.T) {
	out, err := run(t, `print(-1 % 3);`)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestTypeMismatchOnAdditionIsRuntimeError(t *testing.T) {
	_, err := run(t, `print(1 + "a");`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operands must be two numbers or two strings")
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print(missing);`)
	require.Error(t, err)
	var rerr *interp.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Msg, "undefined variable 'missing'")
}

func TestCallArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `
fn add(a, b) { return a + b; }
add(1);
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2 arguments but got 1")
}

func TestOnlyInstancesHaveProperties(t *testing.T) {
	_, err := run(t, `
let x = 1;
print(x.field);
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only instances have properties")
}

func TestBuiltinsLenStrNumType(t *testing.T) {
	out, err := run(t, `
print(len("hello"));
print(str(42));
print(num("3.5") + 1);
print(type(1));
print(type("a"));
print(type(nil));
print(type(true));
`)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, []string{"5", "42", "4.5", "number", "string", "nil", "bool"}, lines)
}

func TestLogicalOperatorsReturnOperandNotBool(t *testing.T) {
	out, err := run(t, `
print(false and 2);
print(1 or 2);
print(nil or "fallback");
`)
	require.NoError(t, err)
	assert.Equal(t, "false\n1\nfallback\n", out)
}

func TestInputReadsSuccessiveLinesWithoutLoss(t *testing.T) {
	tokens, scanErrs := scanner.ScanTokens(`
print(input(""));
print(input(""));
`)
	require.Empty(t, scanErrs)
	stmts, parseErrs := parser.Parse(tokens, ast.NewIDGen())
	require.Empty(t, parseErrs)
	depths, resolveErrs := resolver.Resolve(stmts)
	require.Empty(t, resolveErrs)

	var out bytes.Buffer
	th := &interp.Thread{Stdout: &out, Stdin: strings.NewReader("a\nb\n")}
	in := interp.New()
	require.NoError(t, in.Run(th, depths, stmts))
	assert.Equal(t, "a\nb\n", out.String())
}
