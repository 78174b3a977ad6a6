package config

import (
	"fmt"
	"sort"
	"strconv"
)

// ValueType defines the expected type for a configuration value.
type ValueType int

const (
	TypeString ValueType = iota
	TypeInt
)

// String returns the string representation of ValueType.
func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	default:
		return "unknown"
	}
}

// KeySchema defines a known configuration key with its type and default.
type KeySchema struct {
	Path        string      // key name as stored (e.g., "api_key")
	Type        ValueType   // expected value type for validation
	Description string      // human-readable description for help text
	Default     interface{} // default value
	Secret      bool        // masked in `config show` output
}

// KnownKeys is the registry of all configuration keys.
var KnownKeys = map[string]KeySchema{
	"api_key": {
		Path:        "api_key",
		Type:        TypeString,
		Description: "API key used as the bearer token for every request",
		Default:     "",
		Secret:      true,
	},
	"client_id": {
		Path:        "client_id",
		Type:        TypeString,
		Description: "OAuth client id",
		Default:     "",
	},
	"client_secret": {
		Path:        "client_secret",
		Type:        TypeString,
		Description: "OAuth client secret",
		Default:     "",
		Secret:      true,
	},
	"access_token": {
		Path:        "access_token",
		Type:        TypeString,
		Description: "Cached OAuth access token",
		Default:     "",
		Secret:      true,
	},
	"token_expiry": {
		Path:        "token_expiry",
		Type:        TypeInt,
		Description: "Cached token expiry as epoch milliseconds",
		Default:     int64(0),
	},
	"base_url": {
		Path:        "base_url",
		Type:        TypeString,
		Description: "Base URL of the agricultural data API",
		Default:     "https://api.agrovault.io",
	},
	"timeout": {
		Path:        "timeout",
		Type:        TypeInt,
		Description: "HTTP timeout in seconds (0 = no timeout)",
		Default:     30,
	},
}

// SortedKeys returns the known key names in stable order.
func SortedKeys() []string {
	keys := make([]string, 0, len(KnownKeys))
	for key := range KnownKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ParseValue validates and converts a raw string value for the given key.
// Unknown keys are rejected.
func ParseValue(key, raw string) (interface{}, error) {
	schema, ok := KnownKeys[key]
	if !ok {
		return nil, fmt.Errorf("unknown config key: %s (see 'agroctl config keys')", key)
	}
	switch schema.Type {
	case TypeInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %q is not an integer", key, raw)
		}
		return n, nil
	default:
		return raw, nil
	}
}
