package model

// Preferences is the single process-wide record of user display and
// behavior settings. Mutated only through the prefs store setters.
type Preferences struct {
	Name          string `json:"name"`
	Avatar        string `json:"avatar"`
	Notifications bool   `json:"notifications"`
	AudioEnabled  bool   `json:"audioEnabled"`
	AccentColor   string `json:"accentColor"`
	AccentName    string `json:"accentName"`
	TrueDarkMode  bool   `json:"trueDarkMode"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Name:          "Alex Rivera",
		Avatar:        "https://picsum.photos/seed/user/100",
		Notifications: true,
		AccentColor:   "#A5F3E3",
		AccentName:    "Seafoam",
		TrueDarkMode:  true,
	}
}
