package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.userID == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.userID)
}

// checkPostOffice reports backend reachability at startup. Purely
// informational: per-operation selection happens on every call anyway.
func (a *App) checkPostOffice(ctx context.Context) {
	if !a.config.BackendConfigured() || a.remote == nil {
		fmt.Println("No post office configured — your letters stay on this device.")
		return
	}
	if err := a.remote.Ping(ctx); err != nil {
		fmt.Println("The post office is not answering right now; letters will be kept safe locally.")
		a.logger.Warn(ctx, "backend ping failed", "error", err.Error())
		return
	}
	fmt.Println("Connected to the post office!")
}

// greetReturningUser restores the previous session and, when one exists,
// shows the profile and the unread count.
func (a *App) greetReturningUser(ctx context.Context) {
	a.restoreSession(ctx)
	if !a.isLoggedIn() {
		return
	}

	avatar := ""
	if profile, err := a.profileService.Get(ctx, a.userID); err == nil && profile != nil {
		avatar = profile.Avatar + " "
	}
	fmt.Printf("Welcome back, %s%s!\n", avatar, a.userID)

	a.lastInbox = a.letterService.List(ctx, a.userID)
	unread := 0
	for _, letter := range a.lastInbox {
		if !letter.IsRead {
			unread++
		}
	}
	if unread > 0 {
		fmt.Printf("You have %d unread letter(s). Type 'inbox' to see them.\n", unread)
	}
}

func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to PostMe — letters for your friends (type 'help' for commands)")

	a.checkPostOffice(ctx)
	a.greetReturningUser(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
