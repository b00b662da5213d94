// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"io/fs"
	"maps"
	"reflect"
	"slices"
	"strings"
	"sync"
)

type (
	// RenderOption adjusts how ToMap shapes its output.
	RenderOption func(*renderConfig)

	renderConfig struct {
		omitZero bool
	}
)

// OmitZero drops zero-valued top-level entries (false, 0, "", nil, empty
// collections) from the rendered mapping. Useful for compact dumps where
// only configured-to-something settings matter.
func OmitZero() RenderOption {
	return func(c *renderConfig) { c.omitZero = true }
}

// ToMap renders the instance as the framework's uppercase-keyed mapping.
// The result is rebuilt from the current field values on every call and is
// deep-copied throughout: mutating it, or anything nested in it, never
// touches the instance.
//
// Fixed fields render under the uppercase form of their canonical keys.
// Nested collections render to the framework's conventional block shapes
// (see Databases.ToMap and friends). Extra keys surface at the top level
// under their own uppercase names.
func (s *Settings) ToMap(opts ...RenderOption) map[string]any {
	var cfg renderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	out := map[string]any{
		// Core
		"DEBUG":                      s.Debug,
		"DEBUG_PROPAGATE_EXCEPTIONS": s.DebugPropagateExceptions,
		"ADMINS":                     contactPairs(s.Admins),
		"INTERNAL_IPS":               renderStrings(s.InternalIPs),
		"ALLOWED_HOSTS":              renderStrings(s.AllowedHosts),
		"TIME_ZONE":                  s.TimeZone,
		"USE_TZ":                     s.UseTZ,
		"LANGUAGE_CODE":              s.LanguageCode,
		"LANGUAGES":                  languagePairs(s.Languages),
		"LANGUAGES_BIDI":             renderStrings(s.LanguagesBidi),
		"USE_I18N":                   s.UseI18N,
		"LOCALE_PATHS":               renderStrings(s.LocalePaths),

		// Language cookie
		"LANGUAGE_COOKIE_NAME":     s.LanguageCookieName,
		"LANGUAGE_COOKIE_AGE":      intOrNil(s.LanguageCookieAge),
		"LANGUAGE_COOKIE_DOMAIN":   strOrNil(s.LanguageCookieDomain),
		"LANGUAGE_COOKIE_PATH":     s.LanguageCookiePath,
		"LANGUAGE_COOKIE_SECURE":   s.LanguageCookieSecure,
		"LANGUAGE_COOKIE_HTTPONLY": s.LanguageCookieHTTPOnly,
		"LANGUAGE_COOKIE_SAMESITE": strOrNil(s.LanguageCookieSameSite),

		// Management
		"MANAGERS":        contactPairs(s.Managers),
		"DEFAULT_CHARSET": s.DefaultCharset,
		"SERVER_EMAIL":    s.ServerEmail,

		// Database
		"DATABASES":        s.Databases.ToMap(),
		"DATABASE_ROUTERS": renderStrings(s.DatabaseRouters),

		// Email
		"EMAIL_BACKEND":        s.EmailBackend,
		"EMAIL_HOST":           s.EmailHost,
		"EMAIL_PORT":           s.EmailPort,
		"EMAIL_USE_LOCALTIME":  s.EmailUseLocaltime,
		"EMAIL_HOST_USER":      s.EmailHostUser,
		"EMAIL_HOST_PASSWORD":  s.EmailHostPassword,
		"EMAIL_USE_TLS":        s.EmailUseTLS,
		"EMAIL_USE_SSL":        s.EmailUseSSL,
		"EMAIL_SSL_CERTFILE":   strOrNil(s.EmailSSLCertfile),
		"EMAIL_SSL_KEYFILE":    strOrNil(s.EmailSSLKeyfile),
		"EMAIL_TIMEOUT":        intOrNil(s.EmailTimeout),
		"DEFAULT_FROM_EMAIL":   s.DefaultFromEmail,
		"EMAIL_SUBJECT_PREFIX": s.EmailSubjectPrefix,

		// Apps and templates
		"INSTALLED_APPS":              renderStrings(s.InstalledApps),
		"TEMPLATES":                   renderTemplates(s.Templates),
		"FORM_RENDERER":               s.FormRenderer,
		"FORMS_URLFIELD_ASSUME_HTTPS": s.FormsURLFieldAssumeHTTPS,

		// URL handling
		"APPEND_SLASH":           s.AppendSlash,
		"PREPEND_WWW":            s.PrependWWW,
		"FORCE_SCRIPT_NAME":      strOrNil(s.ForceScriptName),
		"DISALLOWED_USER_AGENTS": renderStrings(s.DisallowedUserAgents),
		"ABSOLUTE_URL_OVERRIDES": renderAnyMap(s.AbsoluteURLOverrides),
		"IGNORABLE_404_URLS":     renderStrings(s.Ignorable404URLs),

		// Secrets
		"SECRET_KEY":           s.SecretKey,
		"SECRET_KEY_FALLBACKS": renderStrings(s.SecretKeyFallbacks),

		// Storage
		"STORAGES":    s.Storages.ToMap(),
		"MEDIA_ROOT":  s.MediaRoot,
		"MEDIA_URL":   s.MediaURL,
		"STATIC_ROOT": strOrNil(s.StaticRoot),
		"STATIC_URL":  strOrNil(s.StaticURL),

		// File uploads
		"FILE_UPLOAD_HANDLERS":              renderStrings(s.FileUploadHandlers),
		"FILE_UPLOAD_MAX_MEMORY_SIZE":       s.FileUploadMaxMemorySize,
		"DATA_UPLOAD_MAX_MEMORY_SIZE":       s.DataUploadMaxMemorySize,
		"DATA_UPLOAD_MAX_NUMBER_FIELDS":     s.DataUploadMaxNumberFields,
		"DATA_UPLOAD_MAX_NUMBER_FILES":      s.DataUploadMaxNumberFiles,
		"FILE_UPLOAD_TEMP_DIR":              strOrNil(s.FileUploadTempDir),
		"FILE_UPLOAD_PERMISSIONS":           s.FileUploadPermissions,
		"FILE_UPLOAD_DIRECTORY_PERMISSIONS": modeOrNil(s.FileUploadDirectoryPermissions),

		// Formatting
		"FORMAT_MODULE_PATH":     strOrNil(s.FormatModulePath),
		"DATE_FORMAT":            s.DateFormat,
		"DATETIME_FORMAT":        s.DatetimeFormat,
		"TIME_FORMAT":            s.TimeFormat,
		"YEAR_MONTH_FORMAT":      s.YearMonthFormat,
		"MONTH_DAY_FORMAT":       s.MonthDayFormat,
		"SHORT_DATE_FORMAT":      s.ShortDateFormat,
		"SHORT_DATETIME_FORMAT":  s.ShortDatetimeFormat,
		"DATE_INPUT_FORMATS":     renderStrings(s.DateInputFormats),
		"TIME_INPUT_FORMATS":     renderStrings(s.TimeInputFormats),
		"DATETIME_INPUT_FORMATS": renderStrings(s.DatetimeInputFormats),
		"FIRST_DAY_OF_WEEK":      s.FirstDayOfWeek,
		"DECIMAL_SEPARATOR":      s.DecimalSeparator,
		"USE_THOUSAND_SEPARATOR": s.UseThousandSeparator,
		"NUMBER_GROUPING":        s.NumberGrouping,
		"THOUSAND_SEPARATOR":     s.ThousandSeparator,

		// Tablespaces
		"DEFAULT_TABLESPACE":       s.DefaultTablespace,
		"DEFAULT_INDEX_TABLESPACE": s.DefaultIndexTablespace,
		"DEFAULT_AUTO_FIELD":       s.DefaultAutoField,

		// Proxy and response headers
		"X_FRAME_OPTIONS":         s.XFrameOptions,
		"USE_X_FORWARDED_HOST":    s.UseXForwardedHost,
		"USE_X_FORWARDED_PORT":    s.UseXForwardedPort,
		"WSGI_APPLICATION":        strOrNil(s.WSGIApplication),
		"SECURE_PROXY_SSL_HEADER": headerOrNil(s.SecureProxySSLHeader),

		// Middleware
		"MIDDLEWARE": renderStrings(s.Middleware),

		// Sessions
		"SESSION_CACHE_ALIAS":             s.SessionCacheAlias,
		"SESSION_COOKIE_NAME":             s.SessionCookieName,
		"SESSION_COOKIE_AGE":              s.SessionCookieAge,
		"SESSION_COOKIE_DOMAIN":           strOrNil(s.SessionCookieDomain),
		"SESSION_COOKIE_SECURE":           s.SessionCookieSecure,
		"SESSION_COOKIE_PATH":             s.SessionCookiePath,
		"SESSION_COOKIE_HTTPONLY":         s.SessionCookieHTTPOnly,
		"SESSION_COOKIE_SAMESITE":         s.SessionCookieSameSite,
		"SESSION_SAVE_EVERY_REQUEST":      s.SessionSaveEveryRequest,
		"SESSION_EXPIRE_AT_BROWSER_CLOSE": s.SessionExpireAtBrowserClose,
		"SESSION_ENGINE":                  s.SessionEngine,
		"SESSION_FILE_PATH":               strOrNil(s.SessionFilePath),
		"SESSION_SERIALIZER":              s.SessionSerializer,

		// Cache
		"CACHES":                      s.Caches.ToMap(),
		"CACHE_MIDDLEWARE_KEY_PREFIX": s.CacheMiddlewareKeyPrefix,
		"CACHE_MIDDLEWARE_SECONDS":    s.CacheMiddlewareSeconds,
		"CACHE_MIDDLEWARE_ALIAS":      s.CacheMiddlewareAlias,

		// Authentication
		"AUTH_USER_MODEL":          s.AuthUserModel,
		"AUTHENTICATION_BACKENDS":  renderStrings(s.AuthenticationBackends),
		"LOGIN_URL":                s.LoginURL,
		"LOGIN_REDIRECT_URL":       s.LoginRedirectURL,
		"LOGOUT_REDIRECT_URL":      strOrNil(s.LogoutRedirectURL),
		"PASSWORD_RESET_TIMEOUT":   s.PasswordResetTimeout,
		"PASSWORD_HASHERS":         renderStrings(s.PasswordHashers),
		"AUTH_PASSWORD_VALIDATORS": renderValidators(s.AuthPasswordValidators),

		// Signing
		"SIGNING_BACKEND": s.SigningBackend,

		// CSRF
		"CSRF_FAILURE_VIEW":    s.CSRFFailureView,
		"CSRF_COOKIE_NAME":     s.CSRFCookieName,
		"CSRF_COOKIE_AGE":      s.CSRFCookieAge,
		"CSRF_COOKIE_DOMAIN":   strOrNil(s.CSRFCookieDomain),
		"CSRF_COOKIE_PATH":     s.CSRFCookiePath,
		"CSRF_COOKIE_SECURE":   s.CSRFCookieSecure,
		"CSRF_COOKIE_HTTPONLY": s.CSRFCookieHTTPOnly,
		"CSRF_COOKIE_SAMESITE": s.CSRFCookieSameSite,
		"CSRF_HEADER_NAME":     s.CSRFHeaderName,
		"CSRF_TRUSTED_ORIGINS": renderStrings(s.CSRFTrustedOrigins),
		"CSRF_USE_SESSIONS":    s.CSRFUseSessions,

		// Messages
		"MESSAGE_STORAGE": s.MessageStorage,

		// Logging
		"LOGGING_CONFIG":                    s.LoggingConfig,
		"LOGGING":                           renderAnyMap(s.Logging),
		"DEFAULT_EXCEPTION_REPORTER":        s.DefaultExceptionReporter,
		"DEFAULT_EXCEPTION_REPORTER_FILTER": s.DefaultExceptionReporterFilter,

		// Testing
		"TEST_RUNNER":              s.TestRunner,
		"TEST_NON_SERIALIZED_APPS": renderStrings(s.TestNonSerializedApps),

		// Fixtures
		"FIXTURE_DIRS": renderStrings(s.FixtureDirs),

		// Static files
		"STATICFILES_DIRS":    renderStrings(s.StaticfilesDirs),
		"STATICFILES_FINDERS": renderStrings(s.StaticfilesFinders),

		// Migrations
		"MIGRATION_MODULES": renderStringMap(s.MigrationModules),

		// System checks
		"SILENCED_SYSTEM_CHECKS": renderStrings(s.SilencedSystemChecks),

		// Security middleware
		"SECURE_CONTENT_TYPE_NOSNIFF":       s.SecureContentTypeNosniff,
		"SECURE_CROSS_ORIGIN_OPENER_POLICY": s.SecureCrossOriginOpenerPolicy,
		"SECURE_HSTS_INCLUDE_SUBDOMAINS":    s.SecureHSTSIncludeSubdomains,
		"SECURE_HSTS_PRELOAD":               s.SecureHSTSPreload,
		"SECURE_HSTS_SECONDS":               s.SecureHSTSSeconds,
		"SECURE_REDIRECT_EXEMPT":            renderStrings(s.SecureRedirectExempt),
		"SECURE_REFERRER_POLICY":            s.SecureReferrerPolicy,
		"SECURE_SSL_HOST":                   strOrNil(s.SecureSSLHost),
		"SECURE_SSL_REDIRECT":               s.SecureSSLRedirect,
	}

	// Extra keys flatten to the top level. Construction rejects collisions
	// with fixed keys; keys planted by direct map writes are skipped here
	// rather than allowed to shadow schema fields.
	for _, k := range slices.Sorted(maps.Keys(s.Extra)) {
		upper := strings.ToUpper(k)
		if isFixedKey(upper) {
			continue
		}
		out[upper] = cloneAny(s.Extra[k])
	}

	if cfg.omitZero {
		for k, v := range out {
			if isZeroValue(v) {
				delete(out, k)
			}
		}
	}

	return out
}

// Value reads a single setting through the uppercase view: Value("DEBUG"),
// Value("DATABASES"). The value is in rendered form and deep-copied; the
// second result reports whether the key exists. The view is recomputed on
// every call, so field writes are visible immediately. There is no
// uppercase write path.
func (s *Settings) Value(key string) (any, bool) {
	v, ok := s.ToMap()[key]
	return v, ok
}

// Keys returns the sorted uppercase keys of the current render, fixed
// schema and extras together.
func (s *Settings) Keys() []string {
	return slices.Sorted(maps.Keys(s.ToMap()))
}

// fixedKeys is the uppercase key set of the fixed schema, derived once from
// the struct's mapstructure tags. The render always emits exactly one key
// per tag, so the tag sweep and the rendered key set stay in lockstep.
var fixedKeys = sync.OnceValue(func() map[string]struct{} {
	rt := reflect.TypeOf(Settings{})
	keys := make(map[string]struct{}, rt.NumField())
	for i := range rt.NumField() {
		f := rt.Field(i)
		if f.Name == "Extra" {
			continue
		}
		keys[strings.ToUpper(f.Tag.Get("mapstructure"))] = struct{}{}
	}
	return keys
})

// isFixedKey reports whether the uppercase key names a fixed schema field.
func isFixedKey(upper string) bool {
	_, ok := fixedKeys()[upper]
	return ok
}

// isZeroValue mirrors truthiness as the framework sees it: nil, false,
// numeric zero, empty string, and empty collections all count as zero.
func isZeroValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() == 0
	default:
		return rv.IsZero()
	}
}

func contactPairs(cs []Contact) [][2]string {
	out := make([][2]string, len(cs))
	for i, c := range cs {
		out[i] = c.pair()
	}
	return out
}

func languagePairs(ls []Language) [][2]string {
	out := make([][2]string, len(ls))
	for i, l := range ls {
		out[i] = l.pair()
	}
	return out
}

func renderTemplates(ts []Template) []map[string]any {
	out := make([]map[string]any, len(ts))
	for i, t := range ts {
		out[i] = t.toMap()
	}
	return out
}

func renderValidators(vs []PasswordValidator) []map[string]any {
	out := make([]map[string]any, len(vs))
	for i, v := range vs {
		out[i] = v.toMap()
	}
	return out
}

func strOrNil(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func intOrNil(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func modeOrNil(p *fs.FileMode) any {
	if p == nil {
		return nil
	}
	return *p
}

func headerOrNil(h *ProxyHeader) any {
	if h == nil {
		return nil
	}
	return h.pair()
}
