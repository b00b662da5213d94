// SPDX-License-Identifier: MPL-2.0

package settings

type (
	// Contact is one admins/managers entry: a display name and an email
	// address. It renders as the two-tuple shape the host framework
	// expects.
	Contact struct {
		Name  string `json:"name" mapstructure:"name"`
		Email string `json:"email" mapstructure:"email"`
	}

	// Language is one entry of the languages table: a language code and its
	// human-readable name.
	Language struct {
		Code string `json:"code" mapstructure:"code"`
		Name string `json:"name" mapstructure:"name"`
	}

	// ProxyHeader names a request header/value pair that marks a request as
	// TLS-terminated by an upstream proxy (secure_proxy_ssl_header).
	ProxyHeader struct {
		Header string `json:"header" mapstructure:"header"`
		Value  string `json:"value" mapstructure:"value"`
	}

	// Template is one template engine block.
	Template struct {
		Backend string         `json:"backend" mapstructure:"backend"`
		Dirs    []string       `json:"dirs" mapstructure:"dirs"`
		AppDirs bool           `json:"app_dirs" mapstructure:"app_dirs"`
		Options map[string]any `json:"options" mapstructure:"options"`
	}

	// Storage is one file-storage backend block.
	Storage struct {
		Backend string         `json:"backend" mapstructure:"backend"`
		Options map[string]any `json:"options" mapstructure:"options"`
	}

	// PasswordValidator is one password validation hook.
	PasswordValidator struct {
		Name    string         `json:"name" mapstructure:"name"`
		Options map[string]any `json:"options" mapstructure:"options"`
	}

	// Extra holds caller-defined settings outside the fixed schema. Keys use
	// the same lowercase convention as fixed fields; each renders at the top
	// level of the mapping under its uppercase form. Keys that collide with
	// fixed fields are rejected at construction (SetExtra, New, Apply).
	Extra map[string]any
)

// pair renders the framework's two-tuple shape.
func (c Contact) pair() [2]string { return [2]string{c.Name, c.Email} }

// pair renders the framework's two-tuple shape.
func (l Language) pair() [2]string { return [2]string{l.Code, l.Name} }

// pair renders the framework's two-tuple shape.
func (h ProxyHeader) pair() [2]string { return [2]string{h.Header, h.Value} }

// toMap renders the block with the framework's template keys.
func (t Template) toMap() map[string]any {
	return map[string]any{
		"BACKEND":  t.Backend,
		"DIRS":     renderStrings(t.Dirs),
		"APP_DIRS": t.AppDirs,
		"OPTIONS":  renderAnyMap(t.Options),
	}
}

// toMap renders the block with the framework's storage keys. OPTIONS is
// omitted when empty.
func (s Storage) toMap() map[string]any {
	out := map[string]any{"BACKEND": s.Backend}
	if len(s.Options) > 0 {
		out["OPTIONS"] = cloneAnyMap(s.Options)
	}
	return out
}

// toMap renders the hook with the framework's validator keys. OPTIONS is
// omitted when empty.
func (p PasswordValidator) toMap() map[string]any {
	out := map[string]any{"NAME": p.Name}
	if len(p.Options) > 0 {
		out["OPTIONS"] = cloneAnyMap(p.Options)
	}
	return out
}

func (t Template) clone() Template {
	t.Dirs = cloneStrings(t.Dirs)
	t.Options = cloneAnyMap(t.Options)
	return t
}

func (s Storage) clone() Storage {
	s.Options = cloneAnyMap(s.Options)
	return s
}

func (p PasswordValidator) clone() PasswordValidator {
	p.Options = cloneAnyMap(p.Options)
	return p
}

func (x Extra) clone() Extra {
	if x == nil {
		return nil
	}
	out := make(Extra, len(x))
	for k, v := range x {
		out[k] = cloneAny(v)
	}
	return out
}
