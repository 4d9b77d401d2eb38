// Package order models orders accepted by the order intake endpoint, the
// collaborator that receives the wizard's submission payload.
//
// Key business rules:
//   - Orders must have a valid unique identifier and a receive time
//   - The submitted form is stored as sent, without re-validation
package order
