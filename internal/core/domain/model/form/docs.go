// Package form models the order form data shared by every wizard step:
// the twelve fields in their fixed key order and the State that holds
// one string per field.
package form
