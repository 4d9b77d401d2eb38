// Package services provides the pure and side-effecting domain services that
// sit around the wizard aggregate.
//
// The package includes:
//   - ShowNotice: decides whether the delivery-cost notice is displayed
//   - EncodeCSV: renders the form as the downloadable pedido.csv export
//   - SubmissionDispatcher: fire-and-forget delivery of the final form
package services
