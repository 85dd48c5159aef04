// Package catalog models the read-only view the fulfillment core has of the
// restaurant catalog: restaurants and the menu items they sell.
//
// Catalog data is maintained elsewhere; the core only resolves records by
// identifier (through ports.CatalogGateway) to validate cart lines and to
// snapshot names and prices when an order is placed. A MenuItem belongs to
// exactly one Restaurant, expressed by its RestaurantID rather than a pointer.
package catalog
