package output

// Branding carries the presentation settings of generated reports.
type Branding struct {
	Name       string
	Primary    string
	Accent     string
	ContactURL string
}

// DefaultBranding returns the stock report branding.
func DefaultBranding() Branding {
	return Branding{
		Name:    "Coast FI Calculator",
		Primary: "#2F2A26",
		Accent:  "#E3B800",
	}
}
