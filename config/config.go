package config

import (
	"encoding/json"
	"errors"
	"os"
)

const DefaultPath = "skreeConfig.json"

type Config struct {
	CatalogPath        string  `json:"catalogPath"` // empty selects the built in catalog
	RegisterQueue      []uint8 `json:"registerQueue"`
	MaxInputBytes      int     `json:"maxInputBytes"`
	LanguageServerAddr string  `json:"languageServerAddr"`
	WebAddr            string  `json:"webAddr"`
	LogEndpoint        string  `json:"logEndpoint"`
}

// Error reports a configuration file that exists but cannot be used.
type Error struct {
	Path   string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	msg := "config " + e.Path + ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Default() *Config {
	return &Config{
		RegisterQueue:      []uint8{0, 1, 0},
		MaxInputBytes:      64 * 1024,
		LanguageServerAddr: ":2035",
		WebAddr:            ":2036",
	}
}

// Load reads the configuration at path over the defaults. A missing file at
// the default path is not an error; any other path must exist.
func Load(path string) (*Config, error) {
	conf := Default()
	if path == "" {
		path = DefaultPath
	}

	b, e := os.ReadFile(path)
	if e != nil {
		if errors.Is(e, os.ErrNotExist) && path == DefaultPath {
			return conf, nil
		}
		return nil, &Error{Path: path, Reason: "could not read", Err: e}
	}

	e = json.Unmarshal(b, conf)
	if e != nil {
		return nil, &Error{Path: path, Reason: "malformed", Err: e}
	}

	if e := conf.Validate(); e != nil {
		e.Path = path
		return nil, e
	}
	return conf, nil
}

func (c *Config) Validate() *Error {
	if len(c.RegisterQueue) == 0 {
		return &Error{Reason: "registerQueue must not be empty"}
	}
	if c.MaxInputBytes <= 0 {
		return &Error{Reason: "maxInputBytes must be positive"}
	}
	return nil
}
