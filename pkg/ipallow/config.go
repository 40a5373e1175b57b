package ipallow

type Config struct {
	Enabled   bool     `env:"IP_ALLOWLIST_ENABLED" envDefault:"false"` // Enabled toggles the allowlist gate; disabled means allow-all.
	Allowlist []string `env:"IP_ALLOWLIST" envSeparator:","`           // Allowlist holds exact IPs or wildcard patterns like "192.168.1.*".
}
