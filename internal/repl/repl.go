package repl

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/chzyer/readline"

	"github.com/Adnangad/RDBMS/internal/engine"
	"github.com/Adnangad/RDBMS/internal/executor"
)

// Start runs the interactive shell against the given engine.
func Start(eng *engine.Engine) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "rdbms> ",
		HistoryFile:     "/tmp/rdbms_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start shell: %v\n", err)
		return
	}
	defer rl.Close()

	fmt.Println("Welcome to Mini-RDBMS")
	fmt.Println("Type 'exit' or '\\q' to quit.")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" || line == "\\q" {
			break
		}

		result, err := eng.Execute(line)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		PrintResult(os.Stdout, result)
	}
}

// PrintResult renders a statement result in tabular form.
func PrintResult(w io.Writer, res *executor.Result) {
	if res.Error != "" {
		fmt.Fprintf(w, "Error: %s\n", res.Error)
		return
	}

	if res.Message != "" {
		fmt.Fprintln(w, res.Message)
	}

	if len(res.Rows) > 0 || len(res.Columns) > 0 {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

		for i, col := range res.Columns {
			fmt.Fprintf(tw, "%s", col)
			if i < len(res.Columns)-1 {
				fmt.Fprintf(tw, "\t")
			}
		}
		fmt.Fprintln(tw)

		for i := range res.Columns {
			fmt.Fprintf(tw, "---")
			if i < len(res.Columns)-1 {
				fmt.Fprintf(tw, "\t")
			}
		}
		fmt.Fprintln(tw)

		for _, row := range res.Rows {
			for i, col := range res.Columns {
				val, ok := row[col]
				if !ok {
					fmt.Fprintf(tw, "NULL")
				} else {
					fmt.Fprintf(tw, "%v", val)
				}
				if i < len(res.Columns)-1 {
					fmt.Fprintf(tw, "\t")
				}
			}
			fmt.Fprintln(tw)
		}
		tw.Flush()
	}
}
