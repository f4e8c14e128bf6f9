// Platform table: every supported platform with its associated data.
// Adding a platform is a single entry here, not scattered conditionals.

package handle

import (
	"fmt"
	"strings"
)

// Platform identifies one supported social platform.
type Platform string

// Supported platforms.
const (
	Twitter   Platform = "twitter"
	Instagram Platform = "instagram"
	TikTok    Platform = "tiktok"
	YouTube   Platform = "youtube"
	GitHub    Platform = "github"
	Reddit    Platform = "reddit"
	Twitch    Platform = "twitch"
	Facebook  Platform = "facebook"
	Pinterest Platform = "pinterest"
	Medium    Platform = "medium"
)

//nolint:govet // fieldalignment: table layout kept readable
type platformInfo struct {
	profileURL      string  // %s is the handle
	registrationURL string
	displayPrefix   string  // "@" for at-style platforms, "" otherwise
	competitiveness float64 // heuristic score multiplier
	minLen          int
	maxLen          int
	noUnderscore    bool // platform forbids underscores in handles
	unreliableHTTP  bool // serves 200 for both existing and missing profiles
	reducedNotFound bool // sometimes reserves/bans handles; 404 is weaker evidence
}

// platforms is in fixed priority order: most-asked-about first.
var platforms = []Platform{
	Twitter, Instagram, TikTok, YouTube, GitHub,
	Reddit, Twitch, Facebook, Pinterest, Medium,
}

var platformTable = map[Platform]platformInfo{
	Twitter: {
		profileURL:      "https://twitter.com/%s",
		registrationURL: "https://twitter.com/i/flow/signup",
		displayPrefix:   "@",
		competitiveness: 1.2,
		minLen:          4, maxLen: 15,
		unreliableHTTP: true, // login-walled; 200 regardless of existence
	},
	Instagram: {
		profileURL:      "https://instagram.com/%s",
		registrationURL: "https://www.instagram.com/accounts/emailsignup/",
		displayPrefix:   "@",
		competitiveness: 1.2,
		minLen:          1, maxLen: 30,
		unreliableHTTP: true,
	},
	TikTok: {
		profileURL:      "https://tiktok.com/@%s",
		registrationURL: "https://www.tiktok.com/signup",
		displayPrefix:   "@",
		competitiveness: 1.2,
		minLen:          2, maxLen: 24,
	},
	YouTube: {
		profileURL:      "https://youtube.com/@%s",
		registrationURL: "https://www.youtube.com/account",
		displayPrefix:   "@",
		competitiveness: 1.0,
		minLen:          3, maxLen: 30,
	},
	GitHub: {
		profileURL:      "https://github.com/%s",
		registrationURL: "https://github.com/signup",
		competitiveness: 1.0,
		minLen:          1, maxLen: 30,
		noUnderscore: true, // GitHub allows hyphens, not underscores
	},
	Reddit: {
		profileURL:      "https://reddit.com/user/%s",
		registrationURL: "https://www.reddit.com/register/",
		competitiveness: 1.0,
		minLen:          3, maxLen: 20,
		reducedNotFound: true, // banned/reserved usernames also 404
	},
	Twitch: {
		profileURL:      "https://twitch.tv/%s",
		registrationURL: "https://www.twitch.tv/signup",
		competitiveness: 1.0,
		minLen:          4, maxLen: 25,
		reducedNotFound: true,
	},
	Facebook: {
		profileURL:      "https://facebook.com/%s",
		registrationURL: "https://www.facebook.com/r.php",
		competitiveness: 1.0,
		minLen:          5, maxLen: 30,
		noUnderscore:    true,
		unreliableHTTP:  true,
	},
	Pinterest: {
		profileURL:      "https://pinterest.com/%s",
		registrationURL: "https://www.pinterest.com/join/",
		competitiveness: 0.8,
		minLen:          3, maxLen: 30,
	},
	Medium: {
		profileURL:      "https://medium.com/@%s",
		registrationURL: "https://medium.com/m/signin",
		displayPrefix:   "@",
		competitiveness: 0.8,
		minLen:          1, maxLen: 30,
	},
}

// All returns every supported platform in priority order.
func All() []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms)
	return out
}

// Lookup returns the platform with the given name.
func Lookup(name string) (Platform, bool) {
	p := Platform(strings.ToLower(strings.TrimSpace(name)))
	_, ok := platformTable[p]
	return p, ok
}

// Supported reports whether p is a known platform.
func Supported(p Platform) bool {
	_, ok := platformTable[p]
	return ok
}

func (p Platform) String() string { return string(p) }

// Display formats a handle the way the platform conventionally shows it.
func (p Platform) Display(h string) string {
	return platformTable[p].displayPrefix + h
}

// ProfileURL returns the canonical profile URL for a handle.
// ok is false when the platform has no known URL template.
func (p Platform) ProfileURL(h string) (url string, ok bool) {
	info, found := platformTable[p]
	if !found || info.profileURL == "" {
		return "", false
	}
	return fmt.Sprintf(info.profileURL, h), true
}

// RegistrationURL returns the platform's signup endpoint.
func (p Platform) RegistrationURL() string {
	return platformTable[p].registrationURL
}

// Competitiveness returns the heuristic score multiplier for the platform.
// Competitive platforms scale scores up, relaxed ones scale down.
func (p Platform) Competitiveness() float64 {
	if info, ok := platformTable[p]; ok {
		return info.competitiveness
	}
	return 1.0
}

// UnreliableOverHTTP reports whether plain status-code probing cannot
// adjudicate existence on this platform.
func (p Platform) UnreliableOverHTTP() bool {
	return platformTable[p].unreliableHTTP
}

// ReducedNotFoundTrust reports whether a 404 from this platform is weaker
// evidence of availability (reserved or banned handles also 404).
func (p Platform) ReducedNotFoundTrust() bool {
	return platformTable[p].reducedNotFound
}

// ValidFor reports whether h meets the platform's own username rules.
// Handles that fail the global contract fail here too.
func (p Platform) ValidFor(h string) bool {
	if !Valid(h) {
		return false
	}
	info, ok := platformTable[p]
	if !ok {
		return false
	}
	if len(h) < info.minLen || len(h) > info.maxLen {
		return false
	}
	if info.noUnderscore && strings.Contains(h, "_") {
		return false
	}
	return true
}
