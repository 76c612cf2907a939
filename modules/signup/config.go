package signup

// Config tunes the signup form. Values come from the environment via
// pkg/config.
type Config struct {
	PasswordMinLength int  `env:"SIGNUP_PASSWORD_MIN_LENGTH" envDefault:"8"`
	RequireTerms      bool `env:"SIGNUP_REQUIRE_TERMS" envDefault:"true"`
	BcryptCost        int  `env:"SIGNUP_BCRYPT_COST" envDefault:"10"`
}

// withDefaults fills zero values so a literal Config{} behaves sensibly in
// tests and demos.
func (c Config) withDefaults() Config {
	if c.PasswordMinLength <= 0 {
		c.PasswordMinLength = 8
	}
	if c.BcryptCost <= 0 {
		c.BcryptCost = 10
	}
	return c
}
