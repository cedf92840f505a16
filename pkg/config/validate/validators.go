package validate

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateOneOf validates that value is one of allowed.
func ValidateOneOf(value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid value %q", value)
}

// ValidateMongoURI validates a mongodb:// or mongodb+srv:// connection string.
func ValidateMongoURI(uri string) error {
	if uri == "" {
		return fmt.Errorf("must not be empty")
	}
	u, err := url.Parse(uri)
	if err != nil {
		return fmt.Errorf("cannot parse connection string")
	}
	switch u.Scheme {
	case "mongodb", "mongodb+srv":
	default:
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host must not be empty")
	}
	if u.Scheme == "mongodb+srv" && strings.Contains(u.Host, ":") {
		return fmt.Errorf("mongodb+srv URIs cannot specify a port")
	}
	return nil
}

// ValidateDatabaseName validates a MongoDB database name.
func ValidateDatabaseName(name string) error {
	if name == "" {
		return fmt.Errorf("must not be empty")
	}
	if len(name) >= 64 {
		return fmt.Errorf("must be shorter than 64 characters")
	}
	if i := strings.IndexAny(name, "/\\. \"$"); i >= 0 {
		return fmt.Errorf("must not contain %q", name[i])
	}
	return nil
}

// ValidateCollectionName validates a MongoDB collection name.
func ValidateCollectionName(name string) error {
	if name == "" {
		return fmt.Errorf("must not be empty")
	}
	if strings.HasPrefix(name, "system.") {
		return fmt.Errorf("the system. prefix is reserved")
	}
	if strings.Contains(name, "$") {
		return fmt.Errorf("must not contain '$'")
	}
	return nil
}
