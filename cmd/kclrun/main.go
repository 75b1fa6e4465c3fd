// Command kclrun runs one kcl program fixture and optionally dumps the
// resulting memory as a table, mirroring the teacher's
// samples/*/main.go: build an engine, build a driver-equivalent, run
// it, report.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tebeka/atexit"
	"gopkg.in/yaml.v3"

	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/kclconfig"
	"github.com/cadrun/kclexec/kclexec"
	"github.com/cadrun/kclexec/kclvalue"
)

// fixture is the yaml shape a sample program is checked in as: the
// parsed AST isn't hand-authored here (parsing is out of scope), so a
// fixture instead names a pre-built ast.Program constructor. This
// keeps kclrun runnable against the samples already in this module's
// test suites without needing a lexer/parser.
type fixture struct {
	Name string `yaml:"name"`
}

var (
	fixturePath = flag.String("fixture", "", "path to a yaml fixture naming the program to run")
	dumpMemory  = flag.Bool("dump-memory", false, "print the final program memory as a table")
)

func main() {
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "kclrun: -fixture is required")
		atexit.Exit(1)
		return
	}

	raw, err := os.ReadFile(*fixturePath)
	if err != nil {
		slog.Error("failed to read fixture", "path", *fixturePath, "err", err)
		atexit.Exit(1)
		return
	}

	var fx fixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		slog.Error("failed to parse fixture", "err", err)
		atexit.Exit(1)
		return
	}

	program, ok := samplePrograms[fx.Name]
	if !ok {
		slog.Error("unknown sample program", "name", fx.Name)
		atexit.Exit(1)
		return
	}

	client := kclconfig.NewEngineConfig().Build()

	result, err := kclexec.Execute(program, client)
	if err != nil {
		slog.Error("run failed", "err", err)
		atexit.Exit(1)
		return
	}

	if len(result.Shown) > 0 {
		fmt.Println("show:")
		for _, v := range result.Shown {
			fmt.Printf("  %s\n", describeExpr(v))
		}
	}

	if *dumpMemory {
		printMemory(result.Memory.Root())
	}

	atexit.Exit(0)
}

func describeExpr(v ast.Value) string {
	return fmt.Sprintf("%T@%s", v, v.Range())
}

func printMemory(root map[string]kclvalue.MemoryItem) {
	t := table.NewWriter()
	t.SetTitle("Program Memory")
	t.AppendHeader(table.Row{"Name", "Kind", "Value"})

	for name, item := range root {
		t.AppendRow(table.Row{name, item.Kind.String(), renderValue(item)})
	}

	fmt.Println(t.Render())
}

func renderValue(item kclvalue.MemoryItem) string {
	switch item.Kind {
	case kclvalue.KindUserVal:
		b, err := json.Marshal(item.UserVal)
		if err != nil {
			return fmt.Sprintf("<unmarshalable: %v>", err)
		}
		return string(b)
	case kclvalue.KindFunction:
		if item.Function.IsUser() {
			return "<user function>"
		}
		return "<native function>"
	default:
		b, err := json.Marshal(item)
		if err != nil {
			return fmt.Sprintf("<unmarshalable: %v>", err)
		}
		return string(b)
	}
}
