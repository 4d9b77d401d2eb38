// Package wizard implements the order-entry step machine: the Step type, the
// per-step Validate function, the ErrorMap it produces and the Wizard
// aggregate that gates forward navigation on validation.
//
// Key business rules:
//   - Contact requires name, email and phone; a non-empty email must look
//     like local@domain.tld
//   - Delivery and Pickup require street, colony, state and postal code
//   - Notes is free-form and never validated
//   - Submitting from Pickup dispatches the form and always lands on Summary
//     once the step is valid, even if the submission later fails
package wizard
