package fixture

import "github.com/oksasatya/creator-commerce/internal/domain/entity"

// Settings returns the settings screen sections.
func Settings() []entity.SettingsSection {
	return []entity.SettingsSection{
		{Title: "Account", Items: []entity.SettingsItem{
			{ID: "edit-profile", Title: "Edit profile", Icon: "user"},
			{ID: "password", Title: "Change password", Icon: "lock"},
			{ID: "payouts", Title: "Payouts", Icon: "wallet"},
		}},
		{Title: "Preferences", Items: []entity.SettingsItem{
			{ID: "notifications", Title: "Notifications", Icon: "bell"},
			{ID: "privacy", Title: "Privacy", Icon: "shield"},
			{ID: "language", Title: "Language", Icon: "globe"},
		}},
		{Title: "Support", Items: []entity.SettingsItem{
			{ID: "help", Title: "Help center", Icon: "help-circle"},
			{ID: "terms", Title: "Terms of service", Icon: "file-text"},
		}},
	}
}

// OnboardingOptions returns the interests and goals offered during onboarding.
func OnboardingOptions() entity.OnboardingOptions {
	return entity.OnboardingOptions{
		Interests: []entity.OnboardingOption{
			{ID: "ceramics", Label: "Ceramics", Icon: "coffee"},
			{ID: "textiles", Label: "Textiles", Icon: "scissors"},
			{ID: "printmaking", Label: "Printmaking", Icon: "printer"},
			{ID: "woodwork", Label: "Woodwork", Icon: "tool"},
			{ID: "jewelry", Label: "Jewelry", Icon: "star"},
			{ID: "illustration", Label: "Illustration", Icon: "pen-tool"},
		},
		Goals: []entity.OnboardingOption{
			{ID: "discover", Label: "Discover creators"},
			{ID: "shop", Label: "Shop handmade"},
			{ID: "sell", Label: "Sell my work"},
		},
	}
}
