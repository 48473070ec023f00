package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Join(ctx context.Context) error
	Inbox(ctx context.Context) error
	Read(ctx context.Context, arg string) error
	Send(ctx context.Context) error
	Delete(ctx context.Context, arg string) error
	Whoami(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the PostMe CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Signed out:
//	  - help           — show available commands
//	  - join           — pick a username and enter the PostMe world
//	  - exit | quit    — leave the program
//
//	Signed in:
//	  - help           — show available commands
//	  - inbox | check  — list your letters, newest first
//	  - read <n>       — open letter n from the last inbox listing
//	  - send           — write and send a letter
//	  - delete <n>     — delete letter n from the last inbox listing
//	  - whoami         — show who is signed in
//	  - logout         — sign out on this device
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("postme %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: inbox (check), read <n>, send, delete <n>, whoami, logout, exit")
			} else {
				printlnFn("Available commands: join, exit")
			}

		case "join":
			_ = a.Join(ctx)

		case "inbox", "check":
			_ = a.Inbox(ctx)

		case "read":
			if len(args) == 0 {
				printlnFn("Usage: read <n>")
				continue
			}
			_ = a.Read(ctx, args[0])

		case "send":
			_ = a.Send(ctx)

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <n>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "whoami":
			_ = a.Whoami(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye! 💌")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
