package cli

import "fmt"

// The App is the workflow UI surface: browser chrome mapped onto a
// terminal. Alerts become printed notices, the continue control becomes a
// status line, and redirects become a printed destination the user can
// follow.

func (a *App) Notify(message string) {
	fmt.Fprintf(a.out, "! %s\n", message)
}

func (a *App) SetControl(label string, enabled bool) {
	if enabled {
		fmt.Fprintf(a.out, "[%s]\n", label)
		return
	}
	fmt.Fprintf(a.out, "[%s] (working)\n", label)
}

func (a *App) SetInviteEnabled(enabled bool) {
	if !enabled {
		fmt.Fprintln(a.out, "Sending invitation...")
	}
}

func (a *App) Navigate(location string) {
	fmt.Fprintf(a.out, "-> %s\n", location)
}

func (a *App) ShowAuth() {
	fmt.Fprintln(a.out, "Please sign in to continue (commands: login, register)")
}

func (a *App) ShowLoggedIn(label string) {
	a.label = label
	fmt.Fprintf(a.out, "Signed in as %s\n", label)
}

func (a *App) ShowLoggedOut() {
	a.label = ""
}

func (a *App) ShowReferralCode(code string) {
	fmt.Fprintf(a.out, "Your referral code: %s\n", code)
}
