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
	mode := "guest"
	if a.isAuthenticated() {
		mode = "user"
	}
	if a.calendarID != "" {
		return fmt.Sprintf("(%s %s)", mode, a.calendarID)
	}
	return fmt.Sprintf("(%s)", mode)
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to daybox CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("daybox %s> ", a.getStatus())
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

		switch cmd {
		case "help":
			fmt.Println("Available commands: login, logout, register, use <calendar>, new, edit <day>, show <day>, exit")

		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "register":
			a.register(ctx)

		case "use":
			if len(args) == 0 {
				fmt.Println("Usage: use <calendarId>")
				continue
			}
			a.use(args[0])
		case "new":
			a.newCalendar(ctx)

		case "edit":
			if len(args) == 0 {
				fmt.Println("Usage: edit <day>")
				continue
			}
			a.edit(ctx, args[0])
		case "show":
			if len(args) == 0 {
				fmt.Println("Usage: show <day>")
				continue
			}
			a.show(ctx, args[0])

		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

func (a *App) use(calendarID string) {
	a.calendarID = calendarID
	fmt.Println("Using calendar", calendarID)
}
