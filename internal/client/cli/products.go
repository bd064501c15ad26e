package cli

import (
	"context"
	"fmt"

	"github.com/shopfront/shopfront/internal/client/models"
)

func (a *App) Products(ctx context.Context) error {
	products, err := a.catalog.List(ctx)
	if err != nil {
		reportFailure(err, "Failed to load products")
		return err
	}
	a.renderProducts(products)
	return nil
}

func (a *App) Search(ctx context.Context, query string) error {
	products, err := a.catalog.Search(ctx, query)
	if err != nil {
		reportFailure(err, "Search failed")
		return err
	}
	a.renderProducts(products)
	return nil
}

func (a *App) Category(ctx context.Context, name string) error {
	products, err := a.catalog.ByCategory(ctx, name)
	if err != nil {
		reportFailure(err, "Failed to load products for this category")
		return err
	}
	a.renderProducts(products)
	return nil
}

func (a *App) renderProducts(products []models.Product) {
	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products found.")
		return
	}
	for _, p := range products {
		fmt.Fprintf(a.out, "%s  $%.2f\n", p.Name, p.Price)
		if p.Description != "" {
			fmt.Fprintf(a.out, "    %s\n", p.Description)
		}
		fmt.Fprintf(a.out, "    Stock: %d | Category: %s", p.Stock, p.Category)
		if p.ReviewCount > 0 {
			fmt.Fprintf(a.out, " | Rating: %.1f (%d reviews)", p.Rating, p.ReviewCount)
		}
		fmt.Fprintln(a.out)
	}
}
