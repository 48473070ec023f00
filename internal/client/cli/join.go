package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Join(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Pick a username", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	profile, err := a.profileService.EnsureUser(ctx, username)
	if err != nil {
		fmt.Println("Something went wrong joining the PostMe world!")
		a.logger.Error(ctx, "join failed", "error", err.Error())
		return err
	}

	a.userID = profile.UserID
	fmt.Printf("Welcome to PostMe, %s %s!\n", profile.Avatar, profile.UserID)
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not signed in. Type 'join' to pick a username.")
		return nil
	}
	fmt.Println("Signed in as", a.userID)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.profileService.Logout(ctx); err != nil {
		fmt.Println(err.Error())
		return err
	}
	a.userID = ""
	a.lastInbox = nil
	fmt.Println("Signed out. Your letters are safe!")
	return nil
}
