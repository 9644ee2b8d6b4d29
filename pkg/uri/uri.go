package uri

// URI holds the components of a Uniform Resource Identifier or relative
// reference as split out by Parse, following the generic syntax of RFC 3986
// (https://tools.ietf.org/html/rfc3986).
//
// The zero value is usable directly and is equivalent to having parsed the
// empty string. A URI is not safe for concurrent use; instances are cheap,
// so use one per goroutine or parse sequentially.
type URI struct {
	hasScheme bool
	scheme    string
	userInfo  string
	host      string
	hasPort   bool
	port      uint16
	path      []string
	query     string
	fragment  string
}

// Scheme returns the scheme component, or an empty string if the reference
// has none.
func (u *URI) Scheme() string {
	return u.scheme
}

// UserInfo returns the user information sub-component of the authority, or
// an empty string if the reference has none.
func (u *URI) UserInfo() string {
	return u.userInfo
}

// Host returns the host sub-component of the authority, or an empty string
// if the reference has no authority.
func (u *URI) Host() string {
	return u.host
}

// HasPort indicates whether the authority carried a port number.
func (u *URI) HasPort() bool {
	return u.hasPort
}

// Port returns the port number. It is only meaningful when HasPort reports
// true.
func (u *URI) Port() uint16 {
	return u.port
}

// Path returns the path as an ordered list of segments. An empty first
// segment marks an absolute path. The returned slice is a copy and may be
// modified freely.
func (u *URI) Path() []string {
	if u.path == nil {
		return nil
	}
	return append([]string(nil), u.path...)
}

// Query returns the query component with its leading '?' stripped, or an
// empty string if the reference has none.
func (u *URI) Query() string {
	return u.query
}

// Fragment returns the fragment component with its leading '#' stripped, or
// an empty string if the reference has none.
func (u *URI) Fragment() string {
	return u.fragment
}

// IsRelativeReference indicates whether the reference lacks a scheme.
func (u *URI) IsRelativeReference() bool {
	return u.scheme == ""
}

// ContainsRelativePath indicates whether the path is relative, i.e. it does
// not start with the empty segment marking an absolute path. An empty path
// counts as relative.
func (u *URI) ContainsRelativePath() bool {
	return len(u.path) == 0 || u.path[0] != ""
}
