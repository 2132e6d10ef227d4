package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.SetOutput(buf)
	executor.Define("run", Func(func(path string) {
	}).Desc("run a file").Alias("r"))
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func(n *int) {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.PrintUsage()

	out := buf.String()
	for _, expected := range []string{
		"run <string> (r)\trun a file",
		"foo\tFOO",
		"  bar\tBAR",
		"    qux [int]\tQUX",
		"-h (help, -help, --help)\tprint this usage",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("got %v", out)
		}
	}
	if strings.Count(out, "run a file") != 1 {
		t.Fatalf("got %v", out)
	}
}
