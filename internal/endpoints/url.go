package endpoints

import "strings"

// Prefix is the root under which relative endpoint paths are served.
const Prefix = "/api/"

// URL builds the request path for e. A non-empty pk is appended as a detail
// segment with a trailing slash. pk is used verbatim.
func URL(e Endpoint, pk string) string {
	return URLWithParams(e, pk, nil)
}

// URLWithParams is URL with ":name" placeholders in the endpoint path
// replaced by the matching entries of params.
func URLWithParams(e Endpoint, pk string, params map[string]string) string {
	if _, ok := byName[string(e)]; !ok {
		return ""
	}

	url := Path(e)
	for name, value := range params {
		url = strings.ReplaceAll(url, ":"+name, value)
	}

	if !strings.HasPrefix(url, "/") {
		url = Prefix + url
	}

	if pk != "" {
		url += pk + "/"
	}

	return url
}
