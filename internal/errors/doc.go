// Package errors provides structured error handling for gear-api.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("catalogue snapshot not found")
//	err := errors.InvalidArgumentf("unsupported combat style: %q", style)
//
// Adding metadata:
//
//	err := errors.InvalidArgument("unknown slot").
//	    WithMeta("slot", slotName)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load catalogue snapshot")
//	}
//
// Changing error semantics:
//
//	if err := client.ListItems(ctx); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeUnavailable, "catalogue source unreachable")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle missing snapshot
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateEnum("style", string(input.Style), []string{"melee", "ranged", "magic"}, vb)
//	errors.ValidateNonNegative("budget", input.Budget, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
package errors
