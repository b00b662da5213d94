// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"reflect"
	"slices"
	"testing"
)

func TestToMap_Repeatable(t *testing.T) {
	t.Parallel()

	s := Recommended()
	if !reflect.DeepEqual(s.ToMap(), s.ToMap()) {
		t.Error("two renders of the same instance differ")
	}
}

func TestToMap_SingleFieldDelta(t *testing.T) {
	t.Parallel()

	s := Default()
	before := s.ToMap()

	s.TimeZone = "Europe/Paris"
	after := s.ToMap()

	if len(before) != len(after) {
		t.Fatalf("render size changed from %d to %d", len(before), len(after))
	}
	for k, v := range after {
		if k == "TIME_ZONE" {
			if v != "Europe/Paris" {
				t.Errorf("TIME_ZONE = %v, want Europe/Paris", v)
			}
			continue
		}
		if !reflect.DeepEqual(before[k], v) {
			t.Errorf("key %s changed, want only TIME_ZONE to differ", k)
		}
	}
}

func TestToMap_DeepCopiesOutward(t *testing.T) {
	t.Parallel()

	s := Default()
	s.AllowedHosts = []string{"example.com"}

	m := s.ToMap()
	m["ALLOWED_HOSTS"].([]string)[0] = "evil.test"
	m["CACHES"].(map[string]any)["default"].(map[string]any)["BACKEND"] = "tampered"

	if got := s.AllowedHosts[0]; got != "example.com" {
		t.Errorf("AllowedHosts[0] = %q after mutating the render, want example.com", got)
	}
	if got := s.Caches["default"].Backend; got != "django.core.cache.backends.locmem.LocMemCache" {
		t.Errorf("Caches[default].Backend = %q after mutating the render, want the locmem backend", got)
	}
}

func TestToMap_DeepCopiesInward(t *testing.T) {
	t.Parallel()

	s := Default()
	s.AllowedHosts = []string{"example.com"}

	m := s.ToMap()
	s.AllowedHosts[0] = "changed.example.com"
	s.Caches["default"] = Cache{Backend: "swapped"}

	if got := m["ALLOWED_HOSTS"].([]string)[0]; got != "example.com" {
		t.Errorf("rendered ALLOWED_HOSTS[0] = %q after mutating the instance, want example.com", got)
	}
	block := m["CACHES"].(map[string]any)["default"].(map[string]any)
	if got := block["BACKEND"]; got != "django.core.cache.backends.locmem.LocMemCache" {
		t.Errorf("rendered CACHES backend = %v after mutating the instance, want the locmem backend", got)
	}
}

func TestToMap_NormalizesNilCollections(t *testing.T) {
	t.Parallel()

	m := Default().ToMap()

	routers, ok := m["DATABASE_ROUTERS"].([]string)
	if !ok {
		t.Fatalf("DATABASE_ROUTERS = %T, want []string", m["DATABASE_ROUTERS"])
	}
	if routers == nil || len(routers) != 0 {
		t.Errorf("DATABASE_ROUTERS = %v, want an empty non-nil list", routers)
	}

	admins, ok := m["ADMINS"].([][2]string)
	if !ok {
		t.Fatalf("ADMINS = %T, want [][2]string", m["ADMINS"])
	}
	if admins == nil || len(admins) != 0 {
		t.Errorf("ADMINS = %v, want an empty non-nil list", admins)
	}
}

func TestToMap_PairShapedValues(t *testing.T) {
	t.Parallel()

	s := Default()
	s.Admins = []Contact{{Name: "Ops", Email: "ops@example.com"}}
	s.SecureProxySSLHeader = &ProxyHeader{Header: "HTTP_X_FORWARDED_PROTO", Value: "https"}

	m := s.ToMap()

	wantAdmins := [][2]string{{"Ops", "ops@example.com"}}
	if got := m["ADMINS"].([][2]string); !reflect.DeepEqual(got, wantAdmins) {
		t.Errorf("ADMINS = %v, want %v", got, wantAdmins)
	}

	wantHeader := [2]string{"HTTP_X_FORWARDED_PROTO", "https"}
	if got := m["SECURE_PROXY_SSL_HEADER"].([2]string); got != wantHeader {
		t.Errorf("SECURE_PROXY_SSL_HEADER = %v, want %v", got, wantHeader)
	}
}

func TestDatabases_RenderAllConnectionKeys(t *testing.T) {
	t.Parallel()

	s := Default()
	s.Databases = Databases{
		"default": {
			Engine:           "django.db.backends.postgresql",
			Name:             "app",
			User:             "app",
			Password:         "hunter2",
			Host:             "db.internal",
			Port:             "5432",
			Options:          map[string]any{"sslmode": "require"},
			AtomicRequests:   true,
			ConnMaxAge:       60,
			ConnHealthChecks: true,
		},
		"users": {
			Engine: "django.db.backends.sqlite3",
			Name:   "users.sqlite3",
		},
	}

	dbs := s.ToMap()["DATABASES"].(map[string]any)
	if len(dbs) != 2 {
		t.Fatalf("DATABASES has %d connections, want 2", len(dbs))
	}

	wantDefault := map[string]any{
		"ENGINE":             "django.db.backends.postgresql",
		"NAME":               "app",
		"USER":               "app",
		"PASSWORD":           "hunter2",
		"HOST":               "db.internal",
		"PORT":               "5432",
		"OPTIONS":            map[string]any{"sslmode": "require"},
		"ATOMIC_REQUESTS":    true,
		"CONN_MAX_AGE":       60,
		"CONN_HEALTH_CHECKS": true,
	}
	if got := dbs["default"].(map[string]any); !reflect.DeepEqual(got, wantDefault) {
		t.Errorf("DATABASES[default] = %v, want %v", got, wantDefault)
	}

	users := dbs["users"].(map[string]any)
	if got := users["ENGINE"]; got != "django.db.backends.sqlite3" {
		t.Errorf("DATABASES[users][ENGINE] = %v, want the sqlite3 backend", got)
	}
	if len(users) != len(wantDefault) {
		t.Errorf("DATABASES[users] has %d keys, want %d (every connection key always renders)", len(users), len(wantDefault))
	}
}

func TestCaches_RenderOmitsUnsetOptionals(t *testing.T) {
	t.Parallel()

	s := Default()

	block := s.ToMap()["CACHES"].(map[string]any)["default"].(map[string]any)
	if len(block) != 1 {
		t.Errorf("default cache block = %v, want only BACKEND", block)
	}

	s.Caches["redis"] = Cache{
		Backend:  "django.core.cache.backends.redis.RedisCache",
		Location: "redis://cache.internal:6379",
		Version:  2,
		Timeout:  ptr(0),
	}
	redis := s.ToMap()["CACHES"].(map[string]any)["redis"].(map[string]any)

	want := map[string]any{
		"BACKEND":  "django.core.cache.backends.redis.RedisCache",
		"LOCATION": "redis://cache.internal:6379",
		"VERSION":  2,
		"TIMEOUT":  0, // explicit zero is "never expire", distinct from unset
	}
	if !reflect.DeepEqual(redis, want) {
		t.Errorf("redis cache block = %v, want %v", redis, want)
	}
}

func TestToMap_ExtraFlattensUppercase(t *testing.T) {
	t.Parallel()

	s := Default()
	if err := s.SetExtra("sentry_dsn", "https://sentry.example.com/1"); err != nil {
		t.Fatalf("SetExtra() error = %v", err)
	}

	m := s.ToMap()
	if got := m["SENTRY_DSN"]; got != "https://sentry.example.com/1" {
		t.Errorf("SENTRY_DSN = %v, want the stored value", got)
	}
	if _, ok := m["EXTRA"]; ok {
		t.Error("render contains an EXTRA block, want extra keys flattened to the top level")
	}
}

func TestToMap_DirectExtraCollisionSkipped(t *testing.T) {
	t.Parallel()

	s := Default()
	s.Extra["debug"] = "shadow" // planted past SetExtra on purpose

	if got := s.ToMap()["DEBUG"]; got != false {
		t.Errorf("DEBUG = %v, want the fixed field value to win over a colliding extra", got)
	}
}

func TestOmitZero(t *testing.T) {
	t.Parallel()

	s := Default()
	if err := s.SetExtra("deploy_ring", 0); err != nil {
		t.Fatalf("SetExtra() error = %v", err)
	}
	m := s.ToMap(OmitZero())

	absent := []string{"DEBUG", "SECRET_KEY", "SECURE_HSTS_SECONDS", "DATABASES", "ALLOWED_HOSTS", "DEPLOY_RING"}
	for _, key := range absent {
		if _, ok := m[key]; ok {
			t.Errorf("key %s present in OmitZero render, want it dropped", key)
		}
	}

	present := []string{"TIME_ZONE", "USE_TZ", "EMAIL_PORT", "CACHES", "LANGUAGES", "STATIC_URL"}
	for _, key := range present {
		if _, ok := m[key]; !ok {
			t.Errorf("key %s missing from OmitZero render, want it kept", key)
		}
	}
}

func TestValue_SeesFieldWritesImmediately(t *testing.T) {
	t.Parallel()

	s := Default()
	s.Debug = true
	if v, ok := s.Value("DEBUG"); !ok || v != true {
		t.Errorf("Value(DEBUG) = %v, %v after field write, want true, true", v, ok)
	}

	s.Debug = false
	if v, _ := s.Value("DEBUG"); v != false {
		t.Errorf("Value(DEBUG) = %v after second field write, want false", v)
	}
}

func TestValue_MissingKey(t *testing.T) {
	t.Parallel()

	s := Default()
	if _, ok := s.Value("NO_SUCH_SETTING"); ok {
		t.Error("Value(NO_SUCH_SETTING) reports the key present")
	}
	// The uppercase view has no lowercase aliases.
	if _, ok := s.Value("debug"); ok {
		t.Error("Value(debug) reports the key present, want uppercase-only lookups")
	}
}

func TestKeys_SortedAndComplete(t *testing.T) {
	t.Parallel()

	s := Default()
	if err := s.SetExtra("sentry_dsn", "x"); err != nil {
		t.Fatalf("SetExtra() error = %v", err)
	}

	keys := s.Keys()
	if !slices.IsSorted(keys) {
		t.Error("Keys() is not sorted")
	}
	if got, want := len(keys), len(s.ToMap()); got != want {
		t.Errorf("Keys() has %d entries, want %d", got, want)
	}
	if !slices.Contains(keys, "DEBUG") {
		t.Error("Keys() is missing DEBUG")
	}
	if !slices.Contains(keys, "SENTRY_DSN") {
		t.Error("Keys() is missing the extra key SENTRY_DSN")
	}
}

func TestIsFixedKey(t *testing.T) {
	t.Parallel()

	// The tag-derived key set and the rendered key set must agree exactly,
	// or extra-key collision checks drift away from what actually renders.
	for _, key := range Default().Keys() {
		if !isFixedKey(key) {
			t.Errorf("rendered key %s is not recognized as fixed", key)
		}
	}
	if got, want := len(fixedKeys()), len(Default().ToMap()); got != want {
		t.Errorf("fixed key set has %d entries, render has %d", got, want)
	}

	if isFixedKey("SENTRY_DSN") {
		t.Error("isFixedKey(SENTRY_DSN) = true, want extra keys outside the fixed set")
	}
	if isFixedKey("debug") {
		t.Error("isFixedKey(debug) = true, want uppercase-only membership")
	}
}

func TestIsZeroValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{name: "nil", v: nil, want: true},
		{name: "false", v: false, want: true},
		{name: "zero int", v: 0, want: true},
		{name: "empty string", v: "", want: true},
		{name: "empty slice", v: []string{}, want: true},
		{name: "empty map", v: map[string]any{}, want: true},
		{name: "true", v: true, want: false},
		{name: "number", v: 25, want: false},
		{name: "text", v: "UTC", want: false},
		{name: "populated slice", v: []string{"x"}, want: false},
		{name: "pair of empties", v: [2]string{"", ""}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isZeroValue(tt.v); got != tt.want {
				t.Errorf("isZeroValue(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}
