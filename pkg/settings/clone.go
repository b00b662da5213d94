// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"maps"
	"slices"
)

// Clone returns a deep copy of the instance. The copy shares no mutable
// state with the receiver, so it can be specialized and registered
// independently. Cloning a base profile is the supported way to derive
// per-environment settings.
func (s *Settings) Clone() *Settings {
	out := *s

	out.LanguageCookieAge = clonePtr(s.LanguageCookieAge)
	out.LanguageCookieDomain = clonePtr(s.LanguageCookieDomain)
	out.LanguageCookieSameSite = clonePtr(s.LanguageCookieSameSite)
	out.EmailSSLCertfile = clonePtr(s.EmailSSLCertfile)
	out.EmailSSLKeyfile = clonePtr(s.EmailSSLKeyfile)
	out.EmailTimeout = clonePtr(s.EmailTimeout)
	out.ForceScriptName = clonePtr(s.ForceScriptName)
	out.StaticRoot = clonePtr(s.StaticRoot)
	out.StaticURL = clonePtr(s.StaticURL)
	out.FileUploadTempDir = clonePtr(s.FileUploadTempDir)
	out.FileUploadDirectoryPermissions = clonePtr(s.FileUploadDirectoryPermissions)
	out.FormatModulePath = clonePtr(s.FormatModulePath)
	out.WSGIApplication = clonePtr(s.WSGIApplication)
	out.SecureProxySSLHeader = clonePtr(s.SecureProxySSLHeader)
	out.SessionCookieDomain = clonePtr(s.SessionCookieDomain)
	out.SessionFilePath = clonePtr(s.SessionFilePath)
	out.LogoutRedirectURL = clonePtr(s.LogoutRedirectURL)
	out.CSRFCookieDomain = clonePtr(s.CSRFCookieDomain)
	out.SecureSSLHost = clonePtr(s.SecureSSLHost)

	out.Admins = slices.Clone(s.Admins)
	out.InternalIPs = slices.Clone(s.InternalIPs)
	out.AllowedHosts = slices.Clone(s.AllowedHosts)
	out.Languages = slices.Clone(s.Languages)
	out.LanguagesBidi = slices.Clone(s.LanguagesBidi)
	out.LocalePaths = slices.Clone(s.LocalePaths)
	out.Managers = slices.Clone(s.Managers)
	out.Databases = s.Databases.clone()
	out.DatabaseRouters = slices.Clone(s.DatabaseRouters)
	out.InstalledApps = slices.Clone(s.InstalledApps)
	out.Templates = cloneTemplates(s.Templates)
	out.DisallowedUserAgents = slices.Clone(s.DisallowedUserAgents)
	out.AbsoluteURLOverrides = cloneAnyMap(s.AbsoluteURLOverrides)
	out.Ignorable404URLs = slices.Clone(s.Ignorable404URLs)
	out.SecretKeyFallbacks = slices.Clone(s.SecretKeyFallbacks)
	out.Storages = s.Storages.clone()
	out.FileUploadHandlers = slices.Clone(s.FileUploadHandlers)
	out.DateInputFormats = slices.Clone(s.DateInputFormats)
	out.TimeInputFormats = slices.Clone(s.TimeInputFormats)
	out.DatetimeInputFormats = slices.Clone(s.DatetimeInputFormats)
	out.Middleware = slices.Clone(s.Middleware)
	out.Caches = s.Caches.clone()
	out.AuthenticationBackends = slices.Clone(s.AuthenticationBackends)
	out.PasswordHashers = slices.Clone(s.PasswordHashers)
	out.AuthPasswordValidators = cloneValidators(s.AuthPasswordValidators)
	out.CSRFTrustedOrigins = slices.Clone(s.CSRFTrustedOrigins)
	out.Logging = cloneAnyMap(s.Logging)
	out.TestNonSerializedApps = slices.Clone(s.TestNonSerializedApps)
	out.FixtureDirs = slices.Clone(s.FixtureDirs)
	out.StaticfilesDirs = slices.Clone(s.StaticfilesDirs)
	out.StaticfilesFinders = slices.Clone(s.StaticfilesFinders)
	out.MigrationModules = maps.Clone(s.MigrationModules)
	out.SilencedSystemChecks = slices.Clone(s.SilencedSystemChecks)
	out.SecureRedirectExempt = slices.Clone(s.SecureRedirectExempt)
	out.Extra = s.Extra.clone()

	return &out
}

func cloneTemplates(ts []Template) []Template {
	if ts == nil {
		return nil
	}
	out := make([]Template, len(ts))
	for i, t := range ts {
		out[i] = t.clone()
	}
	return out
}

func cloneValidators(vs []PasswordValidator) []PasswordValidator {
	if vs == nil {
		return nil
	}
	out := make([]PasswordValidator, len(vs))
	for i, v := range vs {
		out[i] = v.clone()
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneStrings(s []string) []string {
	return slices.Clone(s)
}

// renderStrings is cloneStrings for rendered output, where the framework
// expects a list even when none was configured: nil comes back empty, not
// nil.
func renderStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}

func cloneAnyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneAny(v)
	}
	return out
}

// renderAnyMap is cloneAnyMap for rendered output: nil comes back as an
// empty map.
func renderAnyMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return cloneAnyMap(m)
}

func renderStringMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return maps.Clone(m)
}

// cloneAny deep-copies the container shapes that occur inside option maps
// and extra values. Scalars and unrecognized types pass through as-is;
// callers storing exotic mutable types keep responsibility for them.
func cloneAny(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneAnyMap(t)
	case map[string]string:
		return maps.Clone(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneAny(e)
		}
		return out
	case []string:
		return slices.Clone(t)
	case []int:
		return slices.Clone(t)
	default:
		return v
	}
}
