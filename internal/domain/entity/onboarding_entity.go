package entity

import "time"

// OnboardingOption is a selectable interest or goal.
type OnboardingOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

// OnboardingOptions groups everything the onboarding wizard offers.
type OnboardingOptions struct {
	Interests []OnboardingOption `json:"interests"`
	Goals     []OnboardingOption `json:"goals"`
}

// OnboardingSelection is what a user picked.
type OnboardingSelection struct {
	UserID      string    `json:"userId"`
	Interests   []string  `json:"interests"`
	Goal        string    `json:"goal,omitempty"`
	CompletedAt time.Time `json:"completedAt"`
}

// SettingsItem is a row of the settings screen.
type SettingsItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon,omitempty"`
}

// SettingsSection groups settings rows.
type SettingsSection struct {
	Title string         `json:"title"`
	Items []SettingsItem `json:"items"`
}
