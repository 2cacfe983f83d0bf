package domain

// User represents a registered account. The plaintext password only ever
// exists in transit during registration and login; the entity carries the
// bcrypt hash and nothing else.
type User struct {
	Audit
	Username       string `json:"username"`
	HashedPassword string `json:"-"` // Never expose the password hash in JSON
}

// NewUser creates a User with the given username and already-hashed
// password. Returns an error if validation fails.
func NewUser(username, hashedPassword string) (*User, error) {
	user := &User{
		Audit:          NewAudit(),
		Username:       username,
		HashedPassword: hashedPassword,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks that the User has valid data.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}
