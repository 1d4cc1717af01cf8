// Package gate holds the route-level guard decisions: who may see the
// protected tree, where an authenticated user entering a public route
// is sent, and how deep links into wizard steps are treated.
package gate

import (
	"onboarding-engine/internal/menu"
	"onboarding-engine/internal/models"
	"onboarding-engine/internal/routes"
)

// AuthStatus is the pass-through authentication state machine. The gate
// has no transition logic of its own; transitions are driven by login,
// logout, and session-restore events on the session store.
type AuthStatus string

const (
	AuthIdle      AuthStatus = "IDLE"
	AuthPending   AuthStatus = "PENDING"
	AuthSucceeded AuthStatus = "SUCCEEDED"
	AuthFailed    AuthStatus = "FAILED"
)

// Outcome tells the caller what to render for the current route.
type Outcome string

const (
	// Loading renders a placeholder while state is still unknown.
	Loading Outcome = "LOADING"
	// Allow renders the requested route.
	Allow Outcome = "ALLOW"
	// Redirect sends the user to Decision.Target instead.
	Redirect Outcome = "REDIRECT"
)

// Decision is one gate verdict.
type Decision struct {
	Outcome Outcome `json:"outcome"`
	Target  string  `json:"target,omitempty"`
}

// Private guards the protected subtree: pending shows a placeholder,
// succeeded renders, anything else bounces to the sign-up root.
func Private(status AuthStatus) Decision {
	switch status {
	case AuthPending:
		return Decision{Outcome: Loading}
	case AuthSucceeded:
		return Decision{Outcome: Allow}
	default:
		return Decision{Outcome: Redirect, Target: routes.SignUp}
	}
}

// Public guards the public pages (sign-up, sign-in, OTP). While auth is
// pending, or an authenticated user's company record has not resolved
// yet, it holds on a placeholder so the user is not flash-redirected to
// the wrong destination. Once the record is known: an application still
// in progress goes to the form overview, anything else to the
// dashboard. Unauthenticated users fall through to the public page.
func Public(status AuthStatus, record *models.CompanyRecord) Decision {
	if status == AuthPending {
		return Decision{Outcome: Loading}
	}
	if status == AuthSucceeded {
		if record == nil {
			return Decision{Outcome: Loading}
		}
		if record.SubmissionStatus == "" || record.SubmissionStatus == models.SubmissionOnProcess {
			return Decision{Outcome: Redirect, Target: routes.Form}
		}
		return Decision{Outcome: Redirect, Target: routes.Dashboard}
	}
	return Decision{Outcome: Allow}
}

// StepAccess is the page-level re-check for wizard steps. A disabled
// menu or substep never blocks navigation at the router itself; pages
// (and the HTTP facade) apply this check on entry and bounce a deep
// link into a locked step. An enabled menu with a locked substep
// bounces to the menu's resume link; a locked menu bounces to the form
// overview, since every path inside it is equally off limits. The
// redirect target must never land back on a blocked step. Paths that
// belong to no menu are allowed through untouched.
func StepAccess(menus []models.Menu, path string) Decision {
	owner, step := menu.FindByPath(menus, path)
	if owner == nil || step == nil {
		return Decision{Outcome: Allow}
	}
	if owner.Disabled {
		return Decision{Outcome: Redirect, Target: routes.Form}
	}
	if step.Disabled {
		target := owner.Link
		if target == "" || target == path || !resolvesToEnabledStep(owner, target) {
			target = routes.Form
		}
		return Decision{Outcome: Redirect, Target: target}
	}
	return Decision{Outcome: Allow}
}

// resolvesToEnabledStep reports whether target is an enabled substep of
// m. Targets outside m (the form overview, the dashboard) pass.
func resolvesToEnabledStep(m *models.Menu, target string) bool {
	for i := range m.SubMenus {
		if m.SubMenus[i].Href == target {
			return !m.SubMenus[i].Disabled
		}
	}
	return true
}
