package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) prompt() string {
	if a.session.Authenticated() {
		return fmt.Sprintf("poken (%s)> ", a.session.CurrentUserID)
	}
	return "poken> "
}

// repl is a simple read–eval–print loop. It exits on EOF or "exit"/"quit".
// Command handlers report their own errors; the loop itself never fails.
func (a *App) repl(ctx context.Context) {
	fmt.Fprintln(a.out, "Poken 面接練習クライアント (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprint(a.out, a.prompt())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.session.Authenticated() {
				fmt.Fprintln(a.out, "Available commands: profile, edit, avatar <file>, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: login, signup, profile, edit, exit")
			}
		case "login":
			a.login(ctx)
		case "signup":
			a.signup(ctx)
		case "profile":
			a.showProfile()
		case "edit":
			a.editProfile(ctx)
		case "avatar":
			if len(parts) < 2 {
				fmt.Fprintln(a.out, "usage: avatar <file>")
				continue
			}
			a.updateAvatar(ctx, parts[1])
		case "logout":
			a.auth.Logout(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintf(a.out, "unknown command: %s\n", cmd)
		}
	}
}
