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
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Products(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Categories(ctx context.Context) error
	Category(ctx context.Context, name string) error
	Profile(ctx context.Context) error
	UpdatePassword(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Shopfront CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Always available:
//	  - help                 — show available commands
//	  - products             — list all products
//	  - search <query>       — search products (short queries list all)
//	  - categories           — list categories
//	  - category <name>      — list products of one category
//	  - exit | quit          — leave the program
//
//	Not logged in:
//	  - register             — create an account
//	  - login                — authenticate
//
//	Logged in:
//	  - profile              — show the account profile
//	  - passwd               — change the account password
//	  - delete-account       — delete the account (asks for confirmation)
//	  - logout               — log out
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("shop %s> ", statusFn()))
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
			printlnFn("Available commands: products, search <query>, categories, category <name>")
			if a.isLoggedIn() {
				printlnFn("Account: profile, passwd, delete-account, logout, exit")
			} else {
				printlnFn("Account: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "p", "products":
			_ = a.Products(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "categories":
			_ = a.Categories(ctx)

		case "category":
			if len(args) == 0 {
				printlnFn("Usage: category <name>")
				continue
			}
			_ = a.Category(ctx, strings.Join(args, " "))

		case "profile":
			_ = a.Profile(ctx)

		case "passwd":
			_ = a.UpdatePassword(ctx)

		case "delete-account":
			_ = a.DeleteAccount(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
