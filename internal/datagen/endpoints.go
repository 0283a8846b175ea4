package datagen

import "strings"

const (
	// ProxyPath is served by the same origin as the form and forwards to DirectURL.
	ProxyPath = "/omnis-web-data-gen-latest"

	// DirectURL is the generator API itself.
	DirectURL = "https://qs4ng286xa.execute-api.us-east-1.amazonaws.com" + ProxyPath

	// RelayPrefix is the public CORS relay. It is unauthenticated and sees the
	// full request body, email included.
	RelayPrefix = "https://cors-anywhere.herokuapp.com/"

	relayMarker = "cors-anywhere"
)

// DefaultEndpoints are the candidates in the order they are attempted.
var DefaultEndpoints = []string{
	ProxyPath,
	DirectURL,
	RelayPrefix + DirectURL,
}

// IsRelay reports whether endpoint goes through the CORS relay.
func IsRelay(endpoint string) bool {
	return strings.Contains(endpoint, relayMarker)
}

// WithoutRelay filters relay candidates out of endpoints.
func WithoutRelay(endpoints []string) []string {
	out := make([]string, 0, len(endpoints))
	for _, e := range endpoints {
		if !IsRelay(e) {
			out = append(out, e)
		}
	}
	return out
}
