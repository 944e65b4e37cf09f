package domain

import "github.com/spf13/cast"

// Instance is a loosely typed business object as decoded from an API response.
type Instance map[string]any

// Detail returns the nested object stored under key, or an empty instance
// when it is missing or not an object.
func (i Instance) Detail(key string) Instance {
	switch v := i[key].(type) {
	case map[string]any:
		return Instance(v)
	case Instance:
		return v
	default:
		return Instance{}
	}
}

// String renders the value stored under key. Missing and null values yield
// an empty string, as do values with no scalar text form.
func (i Instance) String(key string) string {
	return cast.ToString(i[key])
}

// Int returns the integer stored under key, or 0 when it is missing or not
// numeric.
func (i Instance) Int(key string) int {
	n, err := cast.ToIntE(i[key])
	if err != nil {
		return 0
	}
	return n
}

// FirstString returns the first non-empty string among keys.
func (i Instance) FirstString(keys ...string) string {
	for _, key := range keys {
		if v := i.String(key); v != "" {
			return v
		}
	}
	return ""
}
