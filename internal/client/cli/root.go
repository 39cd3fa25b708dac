package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.userName)
}

// Root runs the interactive command loop. It reads a line from stdin, parses
// the first token as the command, and dispatches to methods on a. Unknown
// commands are reported back to the user. The loop exits on EOF or when the
// user types "exit" or "quit". Errors from command handlers are logged and
// the loop continues.
func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to the board CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("boards %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		var err error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, create, show, delete, status, logout, ping, exit")
			} else {
				printlnFn("Available commands: register, login, ping, exit")
			}

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "create":
			err = a.create(ctx)
		case "l", "list":
			err = a.list(ctx)
		case "show":
			err = a.show(ctx, args)
		case "delete":
			err = a.delete(ctx, args)
		case "status":
			err = a.status(ctx, args)
		case "ping":
			err = a.ping(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			log.Println(err.Error())
		}
	}

}
