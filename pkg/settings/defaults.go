// SPDX-License-Identifier: MPL-2.0

package settings

// Default returns a Settings instance with every field at its documented
// default. The profile is conservative: debug off, no installed apps, no
// middleware, empty allowed hosts. It never fails.
//
// Maps start allocated so direct writes like s.Databases["default"] = ...
// work without a make.
func Default() *Settings {
	return &Settings{
		// Core
		TimeZone:      "UTC",
		UseTZ:         true,
		LanguageCode:  "en-us",
		Languages:     defaultLanguages(),
		LanguagesBidi: []string{"he", "ar", "ar-dz", "ckb", "fa", "ug", "ur"},
		UseI18N:       true,

		// Language cookie
		LanguageCookieName: "django_language",
		LanguageCookiePath: "/",

		// Management
		DefaultCharset: "utf-8",
		ServerEmail:    "root@localhost",

		// Database
		Databases: Databases{},

		// Email
		EmailBackend:       "django.core.mail.backends.smtp.EmailBackend",
		EmailHost:          "localhost",
		EmailPort:          25,
		DefaultFromEmail:   "webmaster@localhost",
		EmailSubjectPrefix: "[Django] ",

		// Apps and templates
		Templates:    defaultTemplates(),
		FormRenderer: "django.forms.renderers.DjangoTemplates",

		// URL handling
		AppendSlash:          true,
		AbsoluteURLOverrides: map[string]any{},

		// Storage
		Storages:  defaultStorages(),
		StaticURL: ptr("static/"),

		// File uploads
		FileUploadHandlers: []string{
			"django.core.files.uploadhandler.MemoryFileUploadHandler",
			"django.core.files.uploadhandler.TemporaryFileUploadHandler",
		},
		FileUploadMaxMemorySize:   2621440, // 2.5 MB
		DataUploadMaxMemorySize:   2621440, // 2.5 MB
		DataUploadMaxNumberFields: 1000,
		DataUploadMaxNumberFiles:  100,
		FileUploadPermissions:     0o644,

		// Formatting
		DateFormat:           "N j, Y",
		DatetimeFormat:       "N j, Y, P",
		TimeFormat:           "P",
		YearMonthFormat:      "F Y",
		MonthDayFormat:       "F j",
		ShortDateFormat:      "m/d/Y",
		ShortDatetimeFormat:  "m/d/Y P",
		DateInputFormats:     defaultDateInputFormats(),
		TimeInputFormats:     []string{"%H:%M:%S", "%H:%M:%S.%f", "%H:%M"},
		DatetimeInputFormats: defaultDatetimeInputFormats(),
		DecimalSeparator:     ".",
		ThousandSeparator:    ",",

		// Tablespaces
		DefaultAutoField: "django.db.models.BigAutoField",

		// Proxy and response headers
		XFrameOptions: "DENY",

		// Sessions
		SessionCacheAlias:     "default",
		SessionCookieName:     "sessionid",
		SessionCookieAge:      60 * 60 * 24 * 7 * 2, // two weeks
		SessionCookiePath:     "/",
		SessionCookieHTTPOnly: true,
		SessionCookieSameSite: "Lax",
		SessionEngine:         "django.contrib.sessions.backends.db",
		SessionSerializer:     "django.contrib.sessions.serializers.JSONSerializer",

		// Cache
		Caches: Caches{
			"default": {Backend: "django.core.cache.backends.locmem.LocMemCache"},
		},
		CacheMiddlewareSeconds: 600,
		CacheMiddlewareAlias:   "default",

		// Authentication
		AuthUserModel:          "auth.User",
		AuthenticationBackends: []string{"django.contrib.auth.backends.ModelBackend"},
		LoginURL:               "/accounts/login/",
		LoginRedirectURL:       "/accounts/profile/",
		PasswordResetTimeout:   60 * 60 * 24 * 3, // three days
		PasswordHashers:        defaultPasswordHashers(),
		AuthPasswordValidators: defaultPasswordValidators(),

		// Signing
		SigningBackend: "django.core.signing.TimestampSigner",

		// CSRF
		CSRFFailureView:    "django.views.csrf.csrf_failure",
		CSRFCookieName:     "csrftoken",
		CSRFCookieAge:      60 * 60 * 24 * 7 * 52, // one year
		CSRFCookiePath:     "/",
		CSRFCookieSameSite: "Lax",
		CSRFHeaderName:     "HTTP_X_CSRFTOKEN",

		// Messages
		MessageStorage: "django.contrib.messages.storage.fallback.FallbackStorage",

		// Logging
		LoggingConfig:                  "logging.config.dictConfig",
		Logging:                        map[string]any{},
		DefaultExceptionReporter:       "django.views.debug.ExceptionReporter",
		DefaultExceptionReporterFilter: "django.views.debug.SafeExceptionReporterFilter",

		// Testing
		TestRunner: "django.test.runner.DiscoverRunner",

		// Static files
		StaticfilesFinders: []string{
			"django.contrib.staticfiles.finders.FileSystemFinder",
			"django.contrib.staticfiles.finders.AppDirectoriesFinder",
		},

		// Migrations
		MigrationModules: map[string]string{},

		// Security middleware
		SecureContentTypeNosniff:      true,
		SecureCrossOriginOpenerPolicy: "same-origin",
		SecureReferrerPolicy:          "same-origin",

		Extra: Extra{},
	}
}

// Recommended returns Default plus the framework's conventional development
// profile: debug on, the standard contrib apps, and the stock middleware
// chain. Use it as a base to clone and specialize per environment.
func Recommended() *Settings {
	s := Default()
	s.Debug = true
	s.InstalledApps = []string{
		"django.contrib.admin",
		"django.contrib.auth",
		"django.contrib.contenttypes",
		"django.contrib.sessions",
		"django.contrib.messages",
		"django.contrib.staticfiles",
	}
	s.Middleware = []string{
		"django.middleware.security.SecurityMiddleware",
		"django.contrib.sessions.middleware.SessionMiddleware",
		"django.middleware.common.CommonMiddleware",
		"django.middleware.csrf.CsrfViewMiddleware",
		"django.contrib.auth.middleware.AuthenticationMiddleware",
		"django.contrib.messages.middleware.MessageMiddleware",
		"django.middleware.clickjacking.XFrameOptionsMiddleware",
	}
	return s
}

func defaultTemplates() []Template {
	return []Template{
		{
			Backend: "django.template.backends.django.DjangoTemplates",
			AppDirs: true,
			Options: map[string]any{
				"context_processors": []string{
					"django.template.context_processors.request",
					"django.contrib.auth.context_processors.auth",
					"django.contrib.messages.context_processors.messages",
				},
			},
		},
	}
}

func defaultStorages() Storages {
	return Storages{
		"default":     {Backend: "django.core.files.storage.FileSystemStorage"},
		"staticfiles": {Backend: "django.contrib.staticfiles.storage.StaticFilesStorage"},
	}
}

func defaultPasswordHashers() []string {
	return []string{
		"django.contrib.auth.hashers.PBKDF2PasswordHasher",
		"django.contrib.auth.hashers.PBKDF2SHA1PasswordHasher",
		"django.contrib.auth.hashers.Argon2PasswordHasher",
		"django.contrib.auth.hashers.BCryptSHA256PasswordHasher",
		"django.contrib.auth.hashers.ScryptPasswordHasher",
	}
}

func defaultPasswordValidators() []PasswordValidator {
	return []PasswordValidator{
		{Name: "django.contrib.auth.password_validation.UserAttributeSimilarityValidator"},
		{Name: "django.contrib.auth.password_validation.MinimumLengthValidator"},
		{Name: "django.contrib.auth.password_validation.CommonPasswordValidator"},
		{Name: "django.contrib.auth.password_validation.NumericPasswordValidator"},
	}
}

func defaultDateInputFormats() []string {
	return []string{
		"%Y-%m-%d", "%m/%d/%Y", "%m/%d/%y", "%b %d %Y", "%b %d, %Y",
		"%d %b %Y", "%d %b, %Y", "%B %d %Y", "%B %d, %Y", "%d %B %Y", "%d %B, %Y",
	}
}

func defaultDatetimeInputFormats() []string {
	return []string{
		"%Y-%m-%d %H:%M:%S", "%Y-%m-%d %H:%M:%S.%f", "%Y-%m-%d %H:%M",
		"%m/%d/%Y %H:%M:%S", "%m/%d/%Y %H:%M:%S.%f", "%m/%d/%Y %H:%M",
		"%m/%d/%y %H:%M:%S", "%m/%d/%y %H:%M:%S.%f", "%m/%d/%y %H:%M",
	}
}

func defaultLanguages() []Language {
	return []Language{
		{"af", "Afrikaans"}, {"ar", "Arabic"}, {"ar-dz", "Algerian Arabic"},
		{"ast", "Asturian"}, {"az", "Azerbaijani"}, {"bg", "Bulgarian"},
		{"be", "Belarusian"}, {"bn", "Bengali"}, {"br", "Breton"},
		{"bs", "Bosnian"}, {"ca", "Catalan"}, {"ckb", "Central Kurdish (Sorani)"},
		{"cs", "Czech"}, {"cy", "Welsh"}, {"da", "Danish"}, {"de", "German"},
		{"dsb", "Lower Sorbian"}, {"el", "Greek"}, {"en", "English"},
		{"en-au", "Australian English"}, {"en-gb", "British English"},
		{"eo", "Esperanto"}, {"es", "Spanish"}, {"es-ar", "Argentinian Spanish"},
		{"es-co", "Colombian Spanish"}, {"es-mx", "Mexican Spanish"},
		{"es-ni", "Nicaraguan Spanish"}, {"es-ve", "Venezuelan Spanish"},
		{"et", "Estonian"}, {"eu", "Basque"}, {"fa", "Persian"},
		{"fi", "Finnish"}, {"fr", "French"}, {"fy", "Frisian"},
		{"ga", "Irish"}, {"gd", "Scottish Gaelic"}, {"gl", "Galician"},
		{"he", "Hebrew"}, {"hi", "Hindi"}, {"hr", "Croatian"},
		{"hsb", "Upper Sorbian"}, {"hu", "Hungarian"}, {"hy", "Armenian"},
		{"ia", "Interlingua"}, {"id", "Indonesian"}, {"ig", "Igbo"},
		{"io", "Ido"}, {"is", "Icelandic"}, {"it", "Italian"},
		{"ja", "Japanese"}, {"ka", "Georgian"}, {"kab", "Kabyle"},
		{"kk", "Kazakh"}, {"km", "Khmer"}, {"kn", "Kannada"},
		{"ko", "Korean"}, {"ky", "Kyrgyz"}, {"lb", "Luxembourgish"},
		{"lt", "Lithuanian"}, {"lv", "Latvian"}, {"mk", "Macedonian"},
		{"ml", "Malayalam"}, {"mn", "Mongolian"}, {"mr", "Marathi"},
		{"ms", "Malay"}, {"my", "Burmese"}, {"nb", "Norwegian Bokmål"},
		{"ne", "Nepali"}, {"nl", "Dutch"}, {"nn", "Norwegian Nynorsk"},
		{"os", "Ossetic"}, {"pa", "Punjabi"}, {"pl", "Polish"},
		{"pt", "Portuguese"}, {"pt-br", "Brazilian Portuguese"},
		{"ro", "Romanian"}, {"ru", "Russian"}, {"sk", "Slovak"},
		{"sl", "Slovenian"}, {"sq", "Albanian"}, {"sr", "Serbian"},
		{"sr-latn", "Serbian Latin"}, {"sv", "Swedish"}, {"sw", "Swahili"},
		{"ta", "Tamil"}, {"te", "Telugu"}, {"tg", "Tajik"}, {"th", "Thai"},
		{"tk", "Turkmen"}, {"tr", "Turkish"}, {"tt", "Tatar"},
		{"udm", "Udmurt"}, {"ug", "Uyghur"}, {"uk", "Ukrainian"},
		{"ur", "Urdu"}, {"uz", "Uzbek"}, {"vi", "Vietnamese"},
		{"zh-hans", "Simplified Chinese"}, {"zh-hant", "Traditional Chinese"},
	}
}
