package services

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/shopfront/shopfront/internal/client/api"
	"github.com/shopfront/shopfront/internal/client/models"
	"github.com/shopfront/shopfront/internal/common"
)

// minSearchLength is the UX threshold under which a search degrades to the
// unfiltered listing, without a search request.
const minSearchLength = 2

// CatalogService serves product and category listings. Results are always
// fetched fresh; nothing is cached between calls.
//
// Listing calls are sequence-stamped: when several are in flight at once,
// a result that was superseded by a later-issued call is discarded with
// common.ErrStaleResult instead of being surfaced out of order.
type CatalogService interface {
	List(ctx context.Context) ([]models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
	ByCategory(ctx context.Context, category string) ([]models.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

type catalogService struct {
	client api.Client

	mu      sync.Mutex
	issued  uint64
	applied uint64
}

func NewCatalogService(client api.Client) CatalogService {
	return &catalogService{client: client}
}

// stamp reserves the next sequence number for a listing call.
func (c *catalogService) stamp() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issued++
	return c.issued
}

// apply records a delivered result. It fails when a result with a higher
// stamp has already been delivered.
func (c *catalogService) apply(stamp uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if stamp <= c.applied {
		return false
	}
	c.applied = stamp
	return true
}

func (c *catalogService) deliver(stamp uint64, products []models.Product, err error) ([]models.Product, error) {
	if err != nil {
		return nil, err
	}
	if !c.apply(stamp) {
		return nil, common.ErrStaleResult
	}
	return products, nil
}

func (c *catalogService) List(ctx context.Context) ([]models.Product, error) {
	stamp := c.stamp()
	products, err := c.client.ListProducts(ctx)
	return c.deliver(stamp, products, err)
}

// Search lists products matching query. Queries shorter than two characters
// are redefined as "list all": no search request is made.
func (c *catalogService) Search(ctx context.Context, query string) ([]models.Product, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSearchLength {
		return c.List(ctx)
	}

	stamp := c.stamp()
	products, err := c.client.SearchProducts(ctx, query)
	return c.deliver(stamp, products, err)
}

func (c *catalogService) ByCategory(ctx context.Context, category string) ([]models.Product, error) {
	stamp := c.stamp()
	products, err := c.client.ProductsByCategory(ctx, category)
	return c.deliver(stamp, products, err)
}

// Categories is not stamped: it feeds a separate view and does not compete
// with product listings.
func (c *catalogService) Categories(ctx context.Context) ([]string, error) {
	return c.client.ListCategories(ctx)
}
