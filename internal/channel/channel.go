package channel

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyName          = errors.New("channel name cannot be empty")
	ErrEmptyAddress       = errors.New("channel address cannot be empty")
	ErrUnsupportedScheme  = errors.New("channel address has no supported stream scheme")
	ErrDuplicateAddress   = errors.New("channel address already present")
	ErrStaticNotRenamable = errors.New("static channel cannot be renamed")
)

// streamSchemes lists the address prefixes recognised as stream locators.
var streamSchemes = []string{
	"http://",
	"https://",
	"rtmp://",
	"rtsp://",
	"rtp://",
	"udp://",
	"mms://",
}

// HasStreamScheme reports whether s starts with a recognised stream scheme.
// The comparison is case-insensitive.
func HasStreamScheme(s string) bool {
	lower := strings.ToLower(s)
	for _, scheme := range streamSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}

// Channel is a playlist entry: a display name bound to a stream address.
//
// Network candidates keep a mutable name until the classifier normalizes it.
// Static channels come from configuration, are trusted without probing and
// are never renamed. The address never changes after construction and is the
// identity used for deduplication.
type Channel struct {
	name    string
	address string
	origin  string
	static  bool
}

// NewChannel creates a network candidate parsed from the given origin.
// Returns ErrEmptyName, ErrEmptyAddress or ErrUnsupportedScheme on invalid input.
func NewChannel(name, address, origin string) (Channel, error) {
	n, a, err := validate(name, address)
	if err != nil {
		return Channel{}, err
	}
	return Channel{name: n, address: a, origin: strings.TrimSpace(origin)}, nil
}

// NewStaticChannel creates a guaranteed channel that bypasses filtering and probing.
func NewStaticChannel(name, address string) (Channel, error) {
	n, a, err := validate(name, address)
	if err != nil {
		return Channel{}, err
	}
	return Channel{name: n, address: a, origin: "static", static: true}, nil
}

func validate(name, address string) (string, string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", "", ErrEmptyName
	}
	a := strings.TrimSpace(address)
	if a == "" {
		return "", "", ErrEmptyAddress
	}
	if !HasStreamScheme(a) {
		return "", "", ErrUnsupportedScheme
	}
	return n, a, nil
}

// Name returns the display name.
func (c Channel) Name() string { return c.name }

// Address returns the stream locator.
func (c Channel) Address() string { return c.address }

// Origin returns the identifier of the source that produced the channel.
func (c Channel) Origin() string { return c.origin }

// IsStatic reports whether the channel came from the static configuration.
func (c Channel) IsStatic() bool { return c.static }

// Rename replaces the display name, typically with its normalized form.
// Returns ErrEmptyName for a blank name and ErrStaticNotRenamable for static channels.
func (c *Channel) Rename(name string) error {
	if c.static {
		return ErrStaticNotRenamable
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyName
	}
	c.name = trimmed
	return nil
}
