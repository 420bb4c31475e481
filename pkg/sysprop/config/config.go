package config

// Config is the read side of application configuration. *property.Accessor implements it.
type Config interface {
	Get(string) (string, bool)
	GetOrDefault(string, string) string
	GetInt(string, int) int
}
