package email

// Theme holds the color palette injected into every render context as "theme".
type Theme struct {
	Background string
	Foreground string

	Card           string
	CardForeground string
	Border         string

	Primary           string
	PrimaryForeground string

	Secondary           string
	SecondaryForeground string

	MutedForeground string

	Destructive           string
	DestructiveForeground string
}

// DefaultTheme is the palette used by the shipped notification templates.
var DefaultTheme = Theme{
	Background: "#020617",
	Foreground: "#f8fafc",

	Card:           "#0f172a",
	CardForeground: "#f8fafc",
	Border:         "#1e293b",

	Primary:           "#16a34a",
	PrimaryForeground: "#ffffff",

	Secondary:           "#1e293b",
	SecondaryForeground: "#f8fafc",

	MutedForeground: "#94a3b8",

	Destructive:           "#ef4444",
	DestructiveForeground: "#ffffff",
}
