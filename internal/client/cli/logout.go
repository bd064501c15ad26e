package cli

import "context"

// Logout always ends with a cleared local session; a failed server
// notification or storage cleanup is logged, not surfaced.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout cleanup failed", "error", err)
	}
	printlnFn("Logged out successfully")
	return nil
}
