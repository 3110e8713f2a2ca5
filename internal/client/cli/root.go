package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// Root runs the interactive command loop. It reads a line, takes the first
// token as the command and dispatches; the loop exits on EOF or on
// "exit"/"quit". Command handlers print their own errors, keeping the loop
// focused on I/O.
func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to LinkKeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("lk %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: (f)avorites, addfav, (t)abs, addtab, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "addfav":
			a.addFavorite(ctx)
		case "f", "favorites":
			a.listFavorites(ctx)
		case "addtab":
			a.addTab(ctx)
		case "t", "tabs":
			a.listTabs(ctx)
		case "logout":
			a.Logout(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
