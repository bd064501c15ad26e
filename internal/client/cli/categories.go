package cli

import (
	"context"
	"fmt"
)

func (a *App) Categories(ctx context.Context) error {
	categories, err := a.catalog.Categories(ctx)
	if err != nil {
		reportFailure(err, "Failed to load categories")
		return err
	}

	if len(categories) == 0 {
		fmt.Fprintln(a.out, "No categories found.")
		return nil
	}
	fmt.Fprintln(a.out, "Categories:")
	for _, c := range categories {
		fmt.Fprintf(a.out, "  - %s\n", c)
	}
	return nil
}
