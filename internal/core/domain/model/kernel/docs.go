// Package kernel provides the shared domain primitives of the order wizard.
//
// The package includes:
//   - UUID: A value object identifying wizard sessions and received orders
//   - Region: The fixed set of state codes offered by both address steps,
//     also used to decide whether the delivery-cost notice is shown
//
// Both are immutable and safe for concurrent use.
package kernel
