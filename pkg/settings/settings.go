// SPDX-License-Identifier: MPL-2.0

package settings

import "io/fs"

// Settings is one concrete assignment of values to the fixed schema. Fields
// are read and written directly under their Go names; the same values are
// readable under their uppercase settings names through Value, ToMap, and
// Register. Each field's mapstructure tag is its canonical lowercase key,
// and the rendered key is always the uppercase form of that tag.
//
// Construct with Default, Recommended, or New; derive environment profiles
// with Clone; layer validated override maps with Apply. Instances are not
// safe for concurrent mutation and are meant to be built once during
// process startup.
type Settings struct {
	// Core

	Debug                    bool      `json:"debug" mapstructure:"debug"`
	DebugPropagateExceptions bool      `json:"debug_propagate_exceptions" mapstructure:"debug_propagate_exceptions"`
	Admins                   []Contact `json:"admins" mapstructure:"admins"`
	InternalIPs              []string  `json:"internal_ips" mapstructure:"internal_ips"`
	AllowedHosts             []string  `json:"allowed_hosts" mapstructure:"allowed_hosts"`
	TimeZone                 string    `json:"time_zone" mapstructure:"time_zone"`
	UseTZ                    bool      `json:"use_tz" mapstructure:"use_tz"`
	LanguageCode             string    `json:"language_code" mapstructure:"language_code"`

	// Languages is the table of selectable languages as (code, name) pairs.
	Languages []Language `json:"languages" mapstructure:"languages"`

	// LanguagesBidi lists the codes from Languages written right-to-left.
	LanguagesBidi []string `json:"languages_bidi" mapstructure:"languages_bidi"`

	UseI18N     bool     `json:"use_i18n" mapstructure:"use_i18n"`
	LocalePaths []string `json:"locale_paths" mapstructure:"locale_paths"`

	// Language cookie

	LanguageCookieName     string  `json:"language_cookie_name" mapstructure:"language_cookie_name"`
	LanguageCookieAge      *int    `json:"language_cookie_age" mapstructure:"language_cookie_age"` // seconds; nil expires with the session
	LanguageCookieDomain   *string `json:"language_cookie_domain" mapstructure:"language_cookie_domain"`
	LanguageCookiePath     string  `json:"language_cookie_path" mapstructure:"language_cookie_path"`
	LanguageCookieSecure   bool    `json:"language_cookie_secure" mapstructure:"language_cookie_secure"`
	LanguageCookieHTTPOnly bool    `json:"language_cookie_httponly" mapstructure:"language_cookie_httponly"`
	LanguageCookieSameSite *string `json:"language_cookie_samesite" mapstructure:"language_cookie_samesite"`

	// Management

	// Managers receives a copy of Admins at construction when not supplied
	// itself.
	Managers       []Contact `json:"managers" mapstructure:"managers"`
	DefaultCharset string    `json:"default_charset" mapstructure:"default_charset"`
	ServerEmail    string    `json:"server_email" mapstructure:"server_email"`

	// Database

	Databases       Databases `json:"databases" mapstructure:"databases"`
	DatabaseRouters []string  `json:"database_routers" mapstructure:"database_routers"`

	// Email

	EmailBackend       string  `json:"email_backend" mapstructure:"email_backend"`
	EmailHost          string  `json:"email_host" mapstructure:"email_host"`
	EmailPort          int     `json:"email_port" mapstructure:"email_port"`
	EmailUseLocaltime  bool    `json:"email_use_localtime" mapstructure:"email_use_localtime"`
	EmailHostUser      string  `json:"email_host_user" mapstructure:"email_host_user"`
	EmailHostPassword  string  `json:"email_host_password" mapstructure:"email_host_password"`
	EmailUseTLS        bool    `json:"email_use_tls" mapstructure:"email_use_tls"`
	EmailUseSSL        bool    `json:"email_use_ssl" mapstructure:"email_use_ssl"`
	EmailSSLCertfile   *string `json:"email_ssl_certfile" mapstructure:"email_ssl_certfile"`
	EmailSSLKeyfile    *string `json:"email_ssl_keyfile" mapstructure:"email_ssl_keyfile"`
	EmailTimeout       *int    `json:"email_timeout" mapstructure:"email_timeout"` // seconds; nil blocks indefinitely
	DefaultFromEmail   string  `json:"default_from_email" mapstructure:"default_from_email"`
	EmailSubjectPrefix string  `json:"email_subject_prefix" mapstructure:"email_subject_prefix"`

	// Apps and templates

	InstalledApps            []string   `json:"installed_apps" mapstructure:"installed_apps"`
	Templates                []Template `json:"templates" mapstructure:"templates"`
	FormRenderer             string     `json:"form_renderer" mapstructure:"form_renderer"`
	FormsURLFieldAssumeHTTPS bool       `json:"forms_urlfield_assume_https" mapstructure:"forms_urlfield_assume_https"`

	// URL handling

	AppendSlash          bool           `json:"append_slash" mapstructure:"append_slash"`
	PrependWWW           bool           `json:"prepend_www" mapstructure:"prepend_www"`
	ForceScriptName      *string        `json:"force_script_name" mapstructure:"force_script_name"`
	DisallowedUserAgents []string       `json:"disallowed_user_agents" mapstructure:"disallowed_user_agents"`
	AbsoluteURLOverrides map[string]any `json:"absolute_url_overrides" mapstructure:"absolute_url_overrides"`
	Ignorable404URLs     []string       `json:"ignorable_404_urls" mapstructure:"ignorable_404_urls"`

	// Secrets

	SecretKey          string   `json:"secret_key" mapstructure:"secret_key"`
	SecretKeyFallbacks []string `json:"secret_key_fallbacks" mapstructure:"secret_key_fallbacks"`

	// Storage

	Storages   Storages `json:"storages" mapstructure:"storages"`
	MediaRoot  string   `json:"media_root" mapstructure:"media_root"`
	MediaURL   string   `json:"media_url" mapstructure:"media_url"`
	StaticRoot *string  `json:"static_root" mapstructure:"static_root"`
	StaticURL  *string  `json:"static_url" mapstructure:"static_url"`

	// File uploads

	FileUploadHandlers             []string     `json:"file_upload_handlers" mapstructure:"file_upload_handlers"`
	FileUploadMaxMemorySize        int          `json:"file_upload_max_memory_size" mapstructure:"file_upload_max_memory_size"` // bytes
	DataUploadMaxMemorySize        int          `json:"data_upload_max_memory_size" mapstructure:"data_upload_max_memory_size"` // bytes
	DataUploadMaxNumberFields      int          `json:"data_upload_max_number_fields" mapstructure:"data_upload_max_number_fields"`
	DataUploadMaxNumberFiles       int          `json:"data_upload_max_number_files" mapstructure:"data_upload_max_number_files"`
	FileUploadTempDir              *string      `json:"file_upload_temp_dir" mapstructure:"file_upload_temp_dir"`
	FileUploadPermissions          fs.FileMode  `json:"file_upload_permissions" mapstructure:"file_upload_permissions"`
	FileUploadDirectoryPermissions *fs.FileMode `json:"file_upload_directory_permissions" mapstructure:"file_upload_directory_permissions"` // nil leaves the OS default

	// Formatting

	FormatModulePath     *string  `json:"format_module_path" mapstructure:"format_module_path"`
	DateFormat           string   `json:"date_format" mapstructure:"date_format"`
	DatetimeFormat       string   `json:"datetime_format" mapstructure:"datetime_format"`
	TimeFormat           string   `json:"time_format" mapstructure:"time_format"`
	YearMonthFormat      string   `json:"year_month_format" mapstructure:"year_month_format"`
	MonthDayFormat       string   `json:"month_day_format" mapstructure:"month_day_format"`
	ShortDateFormat      string   `json:"short_date_format" mapstructure:"short_date_format"`
	ShortDatetimeFormat  string   `json:"short_datetime_format" mapstructure:"short_datetime_format"`
	DateInputFormats     []string `json:"date_input_formats" mapstructure:"date_input_formats"`
	TimeInputFormats     []string `json:"time_input_formats" mapstructure:"time_input_formats"`
	DatetimeInputFormats []string `json:"datetime_input_formats" mapstructure:"datetime_input_formats"`
	FirstDayOfWeek       int      `json:"first_day_of_week" mapstructure:"first_day_of_week"` // 0 is Sunday
	DecimalSeparator     string   `json:"decimal_separator" mapstructure:"decimal_separator"`
	UseThousandSeparator bool     `json:"use_thousand_separator" mapstructure:"use_thousand_separator"`
	NumberGrouping       int      `json:"number_grouping" mapstructure:"number_grouping"`
	ThousandSeparator    string   `json:"thousand_separator" mapstructure:"thousand_separator"`

	// Tablespaces

	DefaultTablespace      string `json:"default_tablespace" mapstructure:"default_tablespace"`
	DefaultIndexTablespace string `json:"default_index_tablespace" mapstructure:"default_index_tablespace"`
	DefaultAutoField       string `json:"default_auto_field" mapstructure:"default_auto_field"`

	// Proxy and response headers

	XFrameOptions        string       `json:"x_frame_options" mapstructure:"x_frame_options"`
	UseXForwardedHost    bool         `json:"use_x_forwarded_host" mapstructure:"use_x_forwarded_host"`
	UseXForwardedPort    bool         `json:"use_x_forwarded_port" mapstructure:"use_x_forwarded_port"`
	WSGIApplication      *string      `json:"wsgi_application" mapstructure:"wsgi_application"`
	SecureProxySSLHeader *ProxyHeader `json:"secure_proxy_ssl_header" mapstructure:"secure_proxy_ssl_header"`

	// Middleware

	Middleware []string `json:"middleware" mapstructure:"middleware"`

	// Sessions

	SessionCacheAlias           string  `json:"session_cache_alias" mapstructure:"session_cache_alias"`
	SessionCookieName           string  `json:"session_cookie_name" mapstructure:"session_cookie_name"`
	SessionCookieAge            int     `json:"session_cookie_age" mapstructure:"session_cookie_age"` // seconds
	SessionCookieDomain         *string `json:"session_cookie_domain" mapstructure:"session_cookie_domain"`
	SessionCookieSecure         bool    `json:"session_cookie_secure" mapstructure:"session_cookie_secure"`
	SessionCookiePath           string  `json:"session_cookie_path" mapstructure:"session_cookie_path"`
	SessionCookieHTTPOnly       bool    `json:"session_cookie_httponly" mapstructure:"session_cookie_httponly"`
	SessionCookieSameSite       string  `json:"session_cookie_samesite" mapstructure:"session_cookie_samesite"`
	SessionSaveEveryRequest     bool    `json:"session_save_every_request" mapstructure:"session_save_every_request"`
	SessionExpireAtBrowserClose bool    `json:"session_expire_at_browser_close" mapstructure:"session_expire_at_browser_close"`
	SessionEngine               string  `json:"session_engine" mapstructure:"session_engine"`
	SessionFilePath             *string `json:"session_file_path" mapstructure:"session_file_path"`
	SessionSerializer           string  `json:"session_serializer" mapstructure:"session_serializer"`

	// Cache

	Caches                   Caches `json:"caches" mapstructure:"caches"`
	CacheMiddlewareKeyPrefix string `json:"cache_middleware_key_prefix" mapstructure:"cache_middleware_key_prefix"`
	CacheMiddlewareSeconds   int    `json:"cache_middleware_seconds" mapstructure:"cache_middleware_seconds"`
	CacheMiddlewareAlias     string `json:"cache_middleware_alias" mapstructure:"cache_middleware_alias"`

	// Authentication

	AuthUserModel          string              `json:"auth_user_model" mapstructure:"auth_user_model"`
	AuthenticationBackends []string            `json:"authentication_backends" mapstructure:"authentication_backends"`
	LoginURL               string              `json:"login_url" mapstructure:"login_url"`
	LoginRedirectURL       string              `json:"login_redirect_url" mapstructure:"login_redirect_url"`
	LogoutRedirectURL      *string             `json:"logout_redirect_url" mapstructure:"logout_redirect_url"`
	PasswordResetTimeout   int                 `json:"password_reset_timeout" mapstructure:"password_reset_timeout"` // seconds
	PasswordHashers        []string            `json:"password_hashers" mapstructure:"password_hashers"`
	AuthPasswordValidators []PasswordValidator `json:"auth_password_validators" mapstructure:"auth_password_validators"`

	// Signing

	SigningBackend string `json:"signing_backend" mapstructure:"signing_backend"`

	// CSRF

	CSRFFailureView    string   `json:"csrf_failure_view" mapstructure:"csrf_failure_view"`
	CSRFCookieName     string   `json:"csrf_cookie_name" mapstructure:"csrf_cookie_name"`
	CSRFCookieAge      int      `json:"csrf_cookie_age" mapstructure:"csrf_cookie_age"` // seconds
	CSRFCookieDomain   *string  `json:"csrf_cookie_domain" mapstructure:"csrf_cookie_domain"`
	CSRFCookiePath     string   `json:"csrf_cookie_path" mapstructure:"csrf_cookie_path"`
	CSRFCookieSecure   bool     `json:"csrf_cookie_secure" mapstructure:"csrf_cookie_secure"`
	CSRFCookieHTTPOnly bool     `json:"csrf_cookie_httponly" mapstructure:"csrf_cookie_httponly"`
	CSRFCookieSameSite string   `json:"csrf_cookie_samesite" mapstructure:"csrf_cookie_samesite"`
	CSRFHeaderName     string   `json:"csrf_header_name" mapstructure:"csrf_header_name"`
	CSRFTrustedOrigins []string `json:"csrf_trusted_origins" mapstructure:"csrf_trusted_origins"`
	CSRFUseSessions    bool     `json:"csrf_use_sessions" mapstructure:"csrf_use_sessions"`

	// Messages

	MessageStorage string `json:"message_storage" mapstructure:"message_storage"`

	// Logging (the host framework's logging settings, not this library's)

	LoggingConfig                  string         `json:"logging_config" mapstructure:"logging_config"`
	Logging                        map[string]any `json:"logging" mapstructure:"logging"`
	DefaultExceptionReporter       string         `json:"default_exception_reporter" mapstructure:"default_exception_reporter"`
	DefaultExceptionReporterFilter string         `json:"default_exception_reporter_filter" mapstructure:"default_exception_reporter_filter"`

	// Testing

	TestRunner            string   `json:"test_runner" mapstructure:"test_runner"`
	TestNonSerializedApps []string `json:"test_non_serialized_apps" mapstructure:"test_non_serialized_apps"`

	// Fixtures

	FixtureDirs []string `json:"fixture_dirs" mapstructure:"fixture_dirs"`

	// Static files

	StaticfilesDirs    []string `json:"staticfiles_dirs" mapstructure:"staticfiles_dirs"`
	StaticfilesFinders []string `json:"staticfiles_finders" mapstructure:"staticfiles_finders"`

	// Migrations

	MigrationModules map[string]string `json:"migration_modules" mapstructure:"migration_modules"`

	// System checks

	SilencedSystemChecks []string `json:"silenced_system_checks" mapstructure:"silenced_system_checks"`

	// Security middleware

	SecureContentTypeNosniff      bool     `json:"secure_content_type_nosniff" mapstructure:"secure_content_type_nosniff"`
	SecureCrossOriginOpenerPolicy string   `json:"secure_cross_origin_opener_policy" mapstructure:"secure_cross_origin_opener_policy"`
	SecureHSTSIncludeSubdomains   bool     `json:"secure_hsts_include_subdomains" mapstructure:"secure_hsts_include_subdomains"`
	SecureHSTSPreload             bool     `json:"secure_hsts_preload" mapstructure:"secure_hsts_preload"`
	SecureHSTSSeconds             int      `json:"secure_hsts_seconds" mapstructure:"secure_hsts_seconds"`
	SecureRedirectExempt          []string `json:"secure_redirect_exempt" mapstructure:"secure_redirect_exempt"`
	SecureReferrerPolicy          string   `json:"secure_referrer_policy" mapstructure:"secure_referrer_policy"`
	SecureSSLHost                 *string  `json:"secure_ssl_host" mapstructure:"secure_ssl_host"`
	SecureSSLRedirect             bool     `json:"secure_ssl_redirect" mapstructure:"secure_ssl_redirect"`

	// Extra holds caller-defined keys outside the fixed schema; see the
	// Extra type for the collision rules.
	Extra Extra `json:"extra" mapstructure:"extra"`
}

// Storages maps storage aliases ("default", "staticfiles") to their backend
// blocks.
type Storages map[string]Storage

// ToMap renders every storage block keyed by its verbatim alias.
func (s Storages) ToMap() map[string]any {
	out := make(map[string]any, len(s))
	for name, st := range s {
		out[name] = st.toMap()
	}
	return out
}

func (s Storages) clone() Storages {
	if s == nil {
		return nil
	}
	out := make(Storages, len(s))
	for name, st := range s {
		out[name] = st.clone()
	}
	return out
}
