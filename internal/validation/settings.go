package validation

// EmailChange validates a new account email.
func EmailChange(email string) error {
	return New().Required("email", email).Email("email", email).Err()
}

// PasswordChange validates a new password and its confirmation.
func PasswordChange(password, confirm string) error {
	v := New().Required("password", password).Required("confirm", confirm)
	if v.HasErrors() {
		return v.Err()
	}
	return v.MinLength("password", password, 6).
		Check(password == confirm, "confirm", "does not match the new password").
		Err()
}
