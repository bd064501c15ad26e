// Package cli implements the interactive Shopfront storefront client: a
// REPL over the catalog, auth and profile services.
package cli
