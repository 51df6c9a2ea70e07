// Command parens is the parens interpreter CLI entry point.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/parenlang/parens/pkg/ast"
	"github.com/parenlang/parens/pkg/diagnostics"
	"github.com/parenlang/parens/pkg/evaluator"
	"github.com/parenlang/parens/pkg/formatter"
	"github.com/parenlang/parens/pkg/lexer"
	"github.com/parenlang/parens/pkg/parser"
	"github.com/parenlang/parens/pkg/runtime"
)

func main() {
	app := &cli.App{
		Name:  "parens",
		Usage: "interpreter for the parens expression language",
		Commands: []*cli.Command{
			runCommand(),
			checkCommand(),
			tokensCommand(),
			fmtCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func prettyFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "pretty",
		Usage: "format diagnostics as readable text instead of JSON",
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "tokenize, parse, and evaluate a program file",
		ArgsUsage: "<file>",
		Flags:     []cli.Flag{prettyFlag()},
		Action: func(c *cli.Context) error {
			source, err := readSource(c.Args().First())
			if err != nil {
				return err
			}
			pretty := c.Bool("pretty")

			rt := runtime.New()
			program, err := rt.Parse(source)
			if err != nil {
				return exitError(err, pretty)
			}

			fmt.Println(lexer.Join(program.Tokens))
			fmt.Print(ast.RenderAll(program.Exprs))

			values, err := rt.Eval(program)
			if err != nil {
				return exitError(err, pretty)
			}
			fmt.Print(ast.RenderAll(values))
			return nil
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "parse a program file without evaluating it",
		ArgsUsage: "<file>",
		Flags:     []cli.Flag{prettyFlag()},
		Action: func(c *cli.Context) error {
			source, err := readSource(c.Args().First())
			if err != nil {
				return err
			}
			pretty := c.Bool("pretty")

			if err := runtime.New().Check(source); err != nil {
				return exitError(err, pretty)
			}
			if pretty {
				fmt.Println("No errors found.")
			} else {
				fmt.Println("[]")
			}
			return nil
		},
	}
}

func tokensCommand() *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "print the flat space-joined token sequence of a program file",
		ArgsUsage: "<file>",
		Action: func(c *cli.Context) error {
			source, err := readSource(c.Args().First())
			if err != nil {
				return err
			}
			fmt.Println(lexer.Join(lexer.Tokenize(source)))
			return nil
		},
	}
}

func fmtCommand() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "reprint a program file as canonical source",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "write",
				Usage: "write the result back to the file instead of stdout",
			},
			prettyFlag(),
		},
		Action: func(c *cli.Context) error {
			file := c.Args().First()
			source, err := readSource(file)
			if err != nil {
				return err
			}
			pretty := c.Bool("pretty")

			program, err := runtime.New().Parse(source)
			if err != nil {
				return exitError(err, pretty)
			}
			formatted := formatter.FormatSequence(program.Exprs)

			if c.Bool("write") && file != "-" {
				if err := os.WriteFile(file, []byte(formatted), 0644); err != nil {
					return cli.Exit(fmt.Sprintf("error writing file: %s", err), 1)
				}
				return nil
			}
			fmt.Print(formatted)
			return nil
		},
	}
}

// readSource reads the program file named by the single positional
// argument; "-" reads from stdin.
func readSource(file string) (string, error) {
	if file == "" {
		return "", cli.Exit("missing program file argument", 1)
	}
	if file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", cli.Exit(fmt.Sprintf("error reading stdin: %s", err), 1)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		diag := diagnostics.MakeDiag(diagnostics.EIO, fmt.Sprintf("cannot read file: %s", file), "", "")
		return "", cli.Exit(diagnostics.FormatDiagnostic(diag, true), 1)
	}
	return string(data), nil
}

// exitError maps the two error kinds onto the graded exit codes: parse
// errors exit 2, evaluation errors exit 3, anything else 1.
func exitError(err error, pretty bool) error {
	switch e := err.(type) {
	case *parser.ParseError:
		return cli.Exit(diagnostics.FormatDiagnostic(e.Diag, pretty), 2)
	case *evaluator.EvalError:
		return cli.Exit(diagnostics.FormatDiagnostic(e.Diag, pretty), 3)
	}
	return cli.Exit(err.Error(), 1)
}
