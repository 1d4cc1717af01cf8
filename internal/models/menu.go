package models

// SubStep is one individual form page within a menu. Within a menu the
// steps are gated linearly: step k is disabled until the completion flag
// of step k-1 is true.
type SubStep struct {
	Title       string `json:"title"`
	Href        string `json:"href"`
	Disabled    bool   `json:"disabled"`
	Girding     string `json:"girding,omitempty"`
	Description string `json:"description,omitempty"`
}

// Menu is one top-level onboarding section. Complete is always derived
// from the record's completion flags, never stored independently; Link is
// the resolved resume href pointing at the first incomplete step.
type Menu struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon,omitempty"`
	Complete    int       `json:"complete"`
	Link        string    `json:"link"`
	Disabled    bool      `json:"disabled"`
	ShowInList  bool      `json:"showInList"`
	SubMenus    []SubStep `json:"subMenus"`
}
