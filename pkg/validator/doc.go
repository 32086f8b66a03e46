// Package validator provides rule based input validation.
//
// A Rule pairs a check with the error reported when the check fails. Apply
// evaluates every rule and collects the failures into ValidationErrors, so a
// caller sees all invalid fields at once:
//
//	err := validator.Apply(
//		validator.RequiredString("email", req.Email),
//		validator.Required("password", req.Password),
//		validator.MaxBytes("password", req.Password, 72),
//	)
//	if validator.IsValidationError(err) {
//		// answer 400
//	}
package validator
