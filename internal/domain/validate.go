package domain

// Guard returns a UsageError carrying message when cond holds.
func Guard(cond bool, message string) error {
	if cond {
		return &UsageError{Message: message}
	}
	return nil
}

// FirstError returns the first non-nil error. Guards are evaluated eagerly
// but only the first violation is reported.
func FirstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
