package model

// Profile selects a minimum severity, a color theme, and a set of
// highlighted substrings applied to matching pattern rows.
type Profile struct {
	Name       string
	MinLevel   Severity
	Theme      string
	Highlights []string
}

// DefaultProfile is used when no config file or --profile flag names one.
func DefaultProfile() Profile {
	return Profile{Name: "default", MinLevel: Info, Theme: "matrix"}
}

// OpsProfile matches the built-in "ops" profile.
func OpsProfile() Profile {
	return Profile{
		Name:     "ops",
		MinLevel: Warn,
		Theme:    "matrix",
		Highlights: []string{
			"panic", "timeout", "error", "fail", "refused", "disconnect",
		},
	}
}

// NetworkProfile matches the built-in "network" profile.
func NetworkProfile() Profile {
	return Profile{
		Name:     "network",
		MinLevel: Warn,
		Theme:    "matrix",
		Highlights: []string{
			"down", "up", "flap", "reset", "timeout", "link", "vpn", "error",
		},
	}
}

// BuiltinProfiles returns the built-in profile table, in display order.
func BuiltinProfiles() []Profile {
	return []Profile{DefaultProfile(), OpsProfile(), NetworkProfile()}
}
