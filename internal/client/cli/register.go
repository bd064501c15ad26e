package cli

import (
	"context"

	"github.com/shopfront/shopfront/internal/common"
)

func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, username, password, email); err != nil {
		reportFailure(err, "Registration failed. Please try again.")
		return err
	}

	printlnFn("Registration successful! Please login.")
	return nil
}
