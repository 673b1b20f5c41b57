package hbasemap

// Dial creates a Connection and opens its transport.
func Dial(cfg *Config) (*Connection, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	withConnect := *cfg
	withConnect.AutoConnect = true
	return New(&withConnect)
}
