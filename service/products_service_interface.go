package service

import "context"

// ProductsServiceInterface defines the contract for building the product
// list embedded in outgoing thank-you emails
type ProductsServiceInterface interface {
	// BuildProductsFragment returns ready-to-embed HTML. It never fails:
	// on any internal error it degrades to the "no products" fragment so
	// the thank-you email still goes out.
	BuildProductsFragment(ctx context.Context) string
}
