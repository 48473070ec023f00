package config

import "net/url"

// BackendConfigured reports whether the remote backend looks usable:
// both the URL and the access key are set, neither still carries its
// placeholder value, and the URL parses as an absolute http(s) address
// with a host. The check is purely syntactic and performs no network
// call; selection happens fresh on every operation, so editing the
// config takes effect on the next call without a restart.
func (c *Config) BackendConfigured() bool {
	if c.BackendURL == "" || c.BackendKey == "" {
		return false
	}
	if c.BackendURL == PlaceholderBackendURL || c.BackendKey == PlaceholderBackendKey {
		return false
	}
	u, err := url.Parse(c.BackendURL)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Hostname() != ""
}
