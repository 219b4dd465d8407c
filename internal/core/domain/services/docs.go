// Package services provides domain services for the ordering system. It holds
// business logic that does not naturally belong to a single aggregate root.
//
// The package includes:
//   - PricingEngine: a pure calculator for order totals from line items and
//     the catalog's fee and tax rate
package services
