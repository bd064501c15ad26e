package cli

import (
	"context"
	"fmt"

	"github.com/shopfront/shopfront/internal/common"
)

func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login to view your profile")
		return common.ErrUnauthenticated
	}

	user, err := a.profile.Get(ctx)
	if err != nil {
		reportFailure(err, "Failed to load profile")
		return err
	}

	email := user.Email
	if email == "" {
		email = "Not provided"
	}
	status := "Inactive"
	if user.Active {
		status = "Active"
	}
	fmt.Fprintf(a.out, "Username: %s\nEmail: %s\nStatus: %s\n", user.Username, email, status)
	return nil
}

func (a *App) UpdatePassword(ctx context.Context) error {
	password, err := GetPassword("Enter new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.profile.UpdatePassword(ctx, password); err != nil {
		reportFailure(err, "Failed to update profile")
		return err
	}

	printlnFn("Profile updated successfully")
	return nil
}

// DeleteAccount asks for confirmation, deletes the account server-side and
// logs the user out locally (the profile service clears the session on
// success).
func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader,
		"Are you sure you want to delete your account? This action cannot be undone. Type 'yes' to confirm", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		printlnFn("Aborted")
		return nil
	}

	if err := a.profile.Delete(ctx); err != nil {
		reportFailure(err, "Failed to delete account")
		return err
	}

	printlnFn("Account deleted successfully")
	return nil
}
