package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if a.label == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.label)
}

func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to Velvet Research (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "velvet %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "whoami":
			a.whoami()
		case "stage":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: stage <path> [path...]")
				continue
			}
			a.stage(args)
		case "samples":
			a.samples(ctx)
		case "list":
			a.list()
		case "remove":
			a.remove(args)
		case "continue":
			a.continueAnalysis(ctx)
		case "code":
			a.referralCode(ctx)
		case "invite":
			a.invite(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.ctrl.Session().Authenticated() {
		fmt.Fprintln(a.out, "Available commands: stage, samples, list, remove, continue, code, invite, whoami, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, stage, samples, list, remove, continue, exit")
	}
}

func (a *App) whoami() {
	sess := a.ctrl.Session()
	if !sess.Authenticated() {
		fmt.Fprintln(a.out, "Not signed in")
		return
	}
	fmt.Fprintln(a.out, sess.User.Email)
}
