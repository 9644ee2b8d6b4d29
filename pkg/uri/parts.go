package uri

// Parts is a value snapshot of every parsed component, suitable for
// encoding or logging by callers. Building a Parts does not rejoin the
// components into a URI string.
type Parts struct {
	Scheme   string   `json:"scheme" msgpack:"scheme"`
	UserInfo string   `json:"user_info,omitempty" msgpack:"user_info"`
	Host     string   `json:"host" msgpack:"host"`
	HasPort  bool     `json:"has_port" msgpack:"has_port"`
	Port     uint16   `json:"port,omitempty" msgpack:"port"`
	Path     []string `json:"path" msgpack:"path"`
	Query    string   `json:"query,omitempty" msgpack:"query"`
	Fragment string   `json:"fragment,omitempty" msgpack:"fragment"`
}

// Parts returns a snapshot of the current component state. The snapshot
// shares no storage with the URI.
func (u *URI) Parts() Parts {
	return Parts{
		Scheme:   u.scheme,
		UserInfo: u.userInfo,
		Host:     u.host,
		HasPort:  u.hasPort,
		Port:     u.port,
		Path:     u.Path(),
		Query:    u.query,
		Fragment: u.fragment,
	}
}
