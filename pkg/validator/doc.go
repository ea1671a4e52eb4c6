// Package validator turns the strkit string checks into declarative field
// validations.
//
// Each exported rule function returns a Rule: a deferred Check paired with a
// ValidationError that carries a field name, an English message and a
// translation key such as "validation.credit_card". Apply evaluates rules and
// collects failures into ValidationErrors, which implements error and matches
// ErrValidationFailed through errors.Is.
//
//	err := validator.Apply(
//		validator.RequiredString("name", name),
//		validator.ValidEmail("email", email),
//		validator.ValidCreditCardChecksum("card", card),
//		validator.ValidMaskRange("card", card, mask.UpTo(12)),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		for _, field := range verrs.Fields() {
//			// ...
//		}
//	}
//
// Pattern rules delegate to package pattern, numeric rules to numfmt and range
// rules to mask. Rules hold no state and are safe to build concurrently.
package validator
