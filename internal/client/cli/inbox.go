package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/postmeapp/postme/internal/client/models"
)

var errNotSignedIn = errors.New("not signed in")

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		fmt.Println("Please 'join' first.")
		return errNotSignedIn
	}
	return nil
}

func (a *App) Inbox(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	a.lastInbox = a.letterService.List(ctx, a.userID)

	if len(a.lastInbox) == 0 {
		fmt.Println("Your mailbox is empty. Why not 'send' someone a letter?")
		return nil
	}

	unread := 0
	for i, letter := range a.lastInbox {
		marker := " "
		if !letter.IsRead {
			marker = "*"
			unread++
		}
		sender := letter.From
		if letter.IsMagic {
			sender = "✨ " + sender
		}
		fmt.Printf("%s %2d. from %s (%s)\n", marker, i+1, sender, colorName(letter.Color))
	}

	fmt.Printf("%d letter(s), %d unread. Type 'read <n>' to open one.\n", len(a.lastInbox), unread)
	return nil
}

// letterAt resolves a 1-based index from the last inbox listing.
func (a *App) letterAt(arg string) (*models.Letter, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.lastInbox) {
		fmt.Println("No such letter. Run 'inbox' and pick a number from the list.")
		return nil, fmt.Errorf("bad letter index %q", arg)
	}
	return &a.lastInbox[n-1], nil
}

func (a *App) Read(ctx context.Context, arg string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	letter, err := a.letterAt(arg)
	if err != nil {
		return err
	}

	fmt.Printf("From: %s\n", letter.From)
	fmt.Printf("Color: %s\n", colorName(letter.Color))
	fmt.Println()
	fmt.Println(letter.Content)
	fmt.Println()

	if !letter.IsRead {
		a.letterService.MarkRead(ctx, letter.ID)
		letter.IsRead = true
	}
	return nil
}

func (a *App) Delete(ctx context.Context, arg string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	letter, err := a.letterAt(arg)
	if err != nil {
		return err
	}

	a.letterService.Delete(ctx, letter.ID)
	fmt.Println("Letter deleted.")

	// refresh the listing so the numbers stay honest
	a.lastInbox = a.letterService.List(ctx, a.userID)
	return nil
}
