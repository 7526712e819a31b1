package models

// ShopEntry is a StadtKatalog directory entry. Hours holds the provider's
// schedule specification and may be empty when no hours are on file.
type ShopEntry struct {
	Name        string `json:"name"`
	Label       string `json:"label,omitempty"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Hours       string `json:"hours"`
	HoursRemark string `json:"hoursRemark"`
}

// DisplayName prefers the short label over the full registered name.
func (e ShopEntry) DisplayName() string {
	if e.Label != "" {
		return e.Label
	}
	return e.Name
}
