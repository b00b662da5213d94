// SPDX-License-Identifier: MPL-2.0

package settings

type (
	// Database describes one named database connection. Scalar members
	// default to empty strings; the framework interprets empty as "not
	// configured" (e.g., an empty HOST means localhost for most engines).
	Database struct {
		// Engine is the framework's backend identifier
		// (e.g., "django.db.backends.postgresql").
		Engine string `json:"engine" mapstructure:"engine"`

		// Name is the database name, or the file path for file-backed
		// engines.
		Name     string `json:"name" mapstructure:"name"`
		User     string `json:"user" mapstructure:"user"`
		Password string `json:"password" mapstructure:"password"`
		Host     string `json:"host" mapstructure:"host"`

		// Port is kept as a string to match the framework's convention
		// (empty selects the engine default).
		Port string `json:"port" mapstructure:"port"`

		// Options holds extra parameters passed through to the backend
		// driver verbatim.
		Options map[string]any `json:"options" mapstructure:"options"`

		// AtomicRequests wraps each request in a transaction on this
		// connection.
		AtomicRequests bool `json:"atomic_requests" mapstructure:"atomic_requests"`

		// ConnMaxAge is the maximum age of a reusable connection in
		// seconds; 0 closes connections at the end of each request.
		ConnMaxAge int `json:"conn_max_age" mapstructure:"conn_max_age"`

		// ConnHealthChecks enables a liveness check before reusing a
		// pooled connection.
		ConnHealthChecks bool `json:"conn_health_checks" mapstructure:"conn_health_checks"`
	}

	// Databases maps connection names ("default", "replica", ...) to their
	// definitions. Any number of named connections may coexist.
	Databases map[string]Database
)

// ToMap renders the connection with the exact keys the host framework reads.
func (d Database) ToMap() map[string]any {
	return map[string]any{
		"ENGINE":             d.Engine,
		"NAME":               d.Name,
		"USER":               d.User,
		"PASSWORD":           d.Password,
		"HOST":               d.Host,
		"PORT":               d.Port,
		"OPTIONS":            renderAnyMap(d.Options),
		"ATOMIC_REQUESTS":    d.AtomicRequests,
		"CONN_MAX_AGE":       d.ConnMaxAge,
		"CONN_HEALTH_CHECKS": d.ConnHealthChecks,
	}
}

// ToMap renders every connection keyed by its verbatim name. Connection
// names are caller-chosen and are not uppercased.
func (d Databases) ToMap() map[string]any {
	out := make(map[string]any, len(d))
	for name, db := range d {
		out[name] = db.ToMap()
	}
	return out
}

func (d Database) clone() Database {
	d.Options = cloneAnyMap(d.Options)
	return d
}

func (d Databases) clone() Databases {
	if d == nil {
		return nil
	}
	out := make(Databases, len(d))
	for name, db := range d {
		out[name] = db.clone()
	}
	return out
}
