package domain

// AuthProvider identifies how an account authenticates.
type AuthProvider string

const (
	AuthProviderPassword AuthProvider = "password"
	AuthProviderGoogle   AuthProvider = "google"
)

// InvoiceTheme selects a rendering style for invoice views. All themes share the
// same data and computation; only presentation differs.
type InvoiceTheme string

const (
	ThemeClassic InvoiceTheme = "classic"
	ThemePrint   InvoiceTheme = "print"
	ThemeShare   InvoiceTheme = "share"
)

// ValidThemes lists the accepted invoice rendering themes.
var ValidThemes = map[InvoiceTheme]bool{
	ThemeClassic: true,
	ThemePrint:   true,
	ThemeShare:   true,
}
