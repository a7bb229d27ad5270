package domain

// PressSettings is the press's identity block printed on every receipt.
// A single record exists per installation, edited through the settings
// screen and persisted across sessions.
type PressSettings struct {
	Name    string
	Tagline string
	Address string
	Contact string
}

// DefaultPressSettings returns the settings used when nothing has been
// persisted yet.
func DefaultPressSettings() PressSettings {
	return PressSettings{
		Name:    "ذیشان گرافکس",
		Tagline: "کوالٹی پرنٹنگ اور تخلیقی ڈیزائننگ مرکز",
		Address: "بالمقابل سول ہسپتال، پرنٹنگ مارکیٹ، لاہور",
		Contact: "+92 300 123 4567",
	}
}
