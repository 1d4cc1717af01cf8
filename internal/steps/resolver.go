// Package steps resolves the active position within a menu's step
// sequence, driving breadcrumbs and Back/Next targets.
package steps

import "onboarding-engine/internal/models"

// Resolution is the positional lookup result for one menu and path.
// ActiveMenu is nil when menuID matches no menu; ActiveSubStep is nil
// when the current path is not one of the navigation items (normal
// mid-navigation state, not an error). Next/Previous are nil at the
// sequence boundaries. Callers null-check.
type Resolution struct {
	ActiveMenu      *models.Menu     `json:"activeMenu,omitempty"`
	ActiveSubStep   *models.SubStep  `json:"activeSubStep,omitempty"`
	NavigationItems []models.SubStep `json:"navigationItems"`
	IsLastStep      bool             `json:"isLastStep"`
	NextStep        *models.SubStep  `json:"nextStep,omitempty"`
	PreviousStep    *models.SubStep  `json:"previousStep,omitempty"`
}

// Resolve locates currentPath within the substeps of the menu with
// menuID. A non-nil override substitutes a detached substep list (the
// add-partner sub-wizard) without changing resolution semantics.
func Resolve(menus []models.Menu, menuID int, currentPath string, override []models.SubStep) Resolution {
	var active *models.Menu
	for i := range menus {
		if menus[i].ID == menuID {
			active = &menus[i]
			break
		}
	}

	items := override
	if items == nil && active != nil {
		items = active.SubMenus
	}
	if items == nil {
		items = []models.SubStep{}
	}

	res := Resolution{
		ActiveMenu:      active,
		NavigationItems: items,
	}

	idx := -1
	for i := range items {
		if items[i].Href == currentPath {
			idx = i
			break
		}
	}
	if idx < 0 {
		return res
	}

	res.ActiveSubStep = &items[idx]
	res.IsLastStep = idx == len(items)-1
	if !res.IsLastStep {
		res.NextStep = &items[idx+1]
	}
	if idx > 0 {
		res.PreviousStep = &items[idx-1]
	}
	return res
}
