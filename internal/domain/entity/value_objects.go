package entity

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// RPCURL represents a typed URL for an RPC endpoint.
type RPCURL string

// NewRPCURL creates a new RPCURL instance.
func NewRPCURL(rawURL string) (RPCURL, error) {
	if strings.TrimSpace(rawURL) == "" {
		return "", fmt.Errorf("rpc url cannot be empty")
	}

	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid rpc url format '%s': %w", rawURL, err)
	}

	scheme := strings.ToLower(u.Scheme)
	switch scheme {
	case "http", "https", "ws", "wss":
	default:
		return "", fmt.Errorf("rpc url '%s' has unsupported scheme: '%s'", rawURL, scheme)
	}

	return RPCURL(rawURL), nil
}

// String returns the string representation of the RPCURL.
func (r RPCURL) String() string {
	return string(r)
}

// Color is either a single color or a light/dark theme pair.
type Color struct {
	Light string
	Dark  string
}

// SingleColor returns a Color used for both themes.
func SingleColor(c string) Color {
	return Color{Light: c}
}

// ThemeColors returns a Color with distinct light and dark theme values.
func ThemeColors(light, dark string) Color {
	return Color{Light: light, Dark: dark}
}

// IsPair reports whether the color carries a separate dark theme value.
func (c Color) IsPair() bool {
	return c.Dark != ""
}

// ForTheme returns the color to render for the given theme.
func (c Color) ForTheme(dark bool) string {
	if dark && c.IsPair() {
		return c.Dark
	}
	return c.Light
}

// MarshalJSON encodes a single color as a string and a pair as [light, dark].
func (c Color) MarshalJSON() ([]byte, error) {
	if c.IsPair() {
		return json.Marshal([2]string{c.Light, c.Dark})
	}
	return json.Marshal(c.Light)
}

// UnmarshalJSON accepts either a string or a two-element array.
func (c *Color) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*c = SingleColor(single)
		return nil
	}

	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("color must be a string or [light, dark] pair: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("color pair must have exactly 2 entries, got %d", len(pair))
	}
	*c = ThemeColors(pair[0], pair[1])
	return nil
}
