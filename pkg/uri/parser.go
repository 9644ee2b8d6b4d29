package uri

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidPort is returned by Parse when the authority carries a port
// delimiter but what follows is not a decimal number within the 16-bit
// range.
var ErrInvalidPort = errors.New("invalid port")

// Parse splits s into its URI components, replacing any state left over
// from a previous call. Splitting is purely delimiter driven: components
// are taken verbatim, with no percent-decoding, character validation or
// dot-segment removal. The only failure mode is an unparsable port; after
// a non-nil error the component state is undefined until the next
// successful Parse.
func (u *URI) Parse(s string) error {
	*u = URI{}

	rest := s
	if i := strings.IndexAny(rest, ":/?#"); i >= 0 && rest[i] == ':' {
		u.hasScheme = true
		u.scheme = rest[:i]
		rest = rest[i+1:]
	}

	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		authority := rest
		if i := strings.IndexAny(rest, "/?#"); i >= 0 {
			authority = rest[:i]
			rest = rest[i:]
		} else {
			rest = ""
		}
		if err := u.parseAuthority(authority); err != nil {
			return err
		}
	}

	pathStr := rest
	var tail string
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		pathStr = rest[:i]
		tail = rest[i:]
	}

	u.parsePath(pathStr)
	u.parseQueryFragment(tail)

	return nil
}

// parseAuthority splits the authority substring (already stripped of its
// leading "//") into user information, host and port.
func (u *URI) parseAuthority(authority string) error {
	hostport := authority
	if i := strings.Index(authority, "@"); i >= 0 {
		u.userInfo = authority[:i]
		hostport = authority[i+1:]
	}

	i := strings.Index(hostport, ":")
	if i < 0 {
		u.host = hostport
		return nil
	}

	u.host = hostport[:i]

	port, err := strconv.ParseUint(hostport[i+1:], 10, 16)
	if err != nil {
		return errors.Wrapf(ErrInvalidPort, "port %q", hostport[i+1:])
	}

	u.hasPort = true
	u.port = uint16(port)

	return nil
}

// parsePath segments the path string on '/'. Consecutive and trailing
// slashes yield empty segments; a lone "/" yields a single empty segment
// rather than two.
func (u *URI) parsePath(p string) {
	switch p {
	case "":
	case "/":
		u.path = []string{""}
	default:
		u.path = strings.Split(p, "/")
	}
}

// parseQueryFragment consumes the trailing portion of the reference,
// starting at the first '?' or '#' (with the delimiter still attached).
func (u *URI) parseQueryFragment(tail string) {
	if tail == "" {
		return
	}

	query := tail
	if i := strings.Index(tail, "#"); i >= 0 {
		query = tail[:i]
		u.fragment = tail[i+1:]
	}

	if query != "" {
		u.query = query[1:]
	}
}
