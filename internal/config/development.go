package config

func (c Config) Development() bool {
	return c.Mode != "production"
}
