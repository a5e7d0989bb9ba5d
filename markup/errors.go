package markup

import "fmt"

// ConfigError describes a problem with schema or plugin configuration,
// discovered either at build time (an invalid schema) or during dispatch (a
// regexpLimit overrun under the "abort" policy).
type ConfigError struct {
	Issue string
	Err   error
}

func (e *ConfigError) Unwrap() error { return e.Err }

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Issue, e.Err)
}

// NewConfigError is the factory for ConfigError.
func NewConfigError(issue string, err error) *ConfigError {
	return &ConfigError{Issue: issue, Err: err}
}

// AbortError is the sole fatal condition a parse can raise: a plugin's
// regexpLimit was exceeded under regexpLimitAction "abort".
type AbortError struct {
	PluginName string
	*ConfigError
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("plugin %s: %v", e.PluginName, e.ConfigError)
}

func newAbortError(pluginName string, err error) *AbortError {
	return &AbortError{
		PluginName:  pluginName,
		ConfigError: NewConfigError("regexp-limit-exceeded", err),
	}
}

func errRegexpLimitExceeded(pluginName string, limit int) error {
	return fmt.Errorf("plugin %q exceeded regexpLimit of %d matches", pluginName, limit)
}
