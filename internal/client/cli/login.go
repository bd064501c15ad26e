package cli

import (
	"context"

	"github.com/shopfront/shopfront/internal/common"
)

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, username, password); err != nil {
		reportFailure(err, "Login failed. Please try again.")
		return err
	}

	printlnFn("Login successful!")
	return nil
}
