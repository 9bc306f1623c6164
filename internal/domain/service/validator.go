package service

// Validator checks a form struct against its validate tags and reports
// failures as *errors.ValidationError.
type Validator interface {
	Validate(i any) error
}
