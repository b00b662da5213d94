// SPDX-License-Identifier: MPL-2.0

package namespace

import "github.com/spf13/viper"

type (
	// Viper writes settings into a viper instance, the string-keyed
	// configuration registry most hosts read their settings from.
	Viper struct {
		v          *viper.Viper
		asDefaults bool
	}

	// ViperOption configures a Viper namespace.
	ViperOption func(*Viper)
)

// AsDefaults makes the namespace seed values with SetDefault instead of Set,
// so bindings from higher-precedence sources within the target instance
// (explicit sets, flags, environment bindings) keep winning.
func AsDefaults() ViperOption {
	return func(n *Viper) {
		n.asDefaults = true
	}
}

// NewViper wraps v as a registration target.
func NewViper(v *viper.Viper, opts ...ViperOption) *Viper {
	n := &Viper{v: v}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Global wraps the process-global viper instance. This is the conventional
// target when the host reads its configuration through package-level viper
// calls.
func Global(opts ...ViperOption) *Viper {
	return NewViper(viper.GetViper(), opts...)
}

// Set implements Namespace.
func (n *Viper) Set(key string, value any) error {
	if n == nil || n.v == nil {
		return ErrNilNamespace
	}
	if n.asDefaults {
		n.v.SetDefault(key, value)
		return nil
	}
	n.v.Set(key, value)
	return nil
}
