package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	loadFailed() bool
	List(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Retry(ctx context.Context) error
}

// runREPL reads commands line by line from r and dispatches them to a.
//
// Commands
//
//	help             show available commands
//	list | l         list patients
//	show <id>        show one patient expanded
//	add              create a patient through the form
//	edit <id>        edit a patient through the form
//	delete <id>      delete a patient after confirmation
//	retry            reload after a failed initial load
//	exit | quit      leave the program
//
// After a failed load only retry, help and exit are offered. Errors from
// handlers are printed and the loop continues. The loop ends on EOF, on
// exit/quit, or when ctx is done, including while waiting for input.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *LineReader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "pk (%s)> ", statusFn())

		line, err := r.ReadLine(ctx)
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if a.loadFailed() {
			switch cmd {
			case "help", "retry", "exit", "quit":
			default:
				fmt.Fprintln(w, "Patients could not be loaded. Available commands: retry, help, exit")
				continue
			}
		}

		switch cmd {
		case "help":
			if a.loadFailed() {
				fmt.Fprintln(w, "Available commands: retry, help, exit")
			} else {
				fmt.Fprintln(w, "Available commands: (l)ist, show <id>, add, edit <id>, delete <id>, exit")
			}

		case "l", "list":
			err = a.List(ctx)

		case "show", "edit", "delete":
			if len(args) == 0 {
				fmt.Fprintf(w, "Usage: %s <id>\n", cmd)
				continue
			}
			switch cmd {
			case "show":
				err = a.Show(ctx, args[0])
			case "edit":
				err = a.Edit(ctx, args[0])
			case "delete":
				err = a.Delete(ctx, args[0])
			}

		case "add":
			err = a.Add(ctx)

		case "retry":
			err = a.Retry(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			fmt.Fprintln(w, "Error:", err)
		}
	}
}
