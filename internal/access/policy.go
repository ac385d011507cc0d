// Package access is the single source of truth for role-based access
// decisions: which screens a role may open and which navigation entries it
// sees. Everything here is pure; the route guard and the sidebar both call
// into this package so they can never disagree.
package access

import "github.com/usina-ipiranga/caldo-console/models"

// Page identifies a screen of the console.
type Page string

const (
	PageLogin       Page = "login"
	PageDashboard   Page = "dashboard"
	PageWorkOrders  Page = "work-orders"
	PageAssistant   Page = "assistant"
	PageOccurrences Page = "occurrences"
	PageReports     Page = "reports"
	PageChemicals   Page = "chemicals"
	PageSupervisor  Page = "supervisor"
	PageUsers       Page = "users"
	PageHistory     Page = "history"
)

// Capabilities is the set of privileged actions a role may perform.
type Capabilities struct {
	// ManageUsers allows opening the user management screen and its
	// create/deactivate/reset-password actions.
	ManageUsers bool

	// SupervisorAnalytics allows opening the supervisor KPI screen.
	SupervisorAnalytics bool
}

// NavEntry is one sidebar item.
type NavEntry struct {
	Label      string
	Page       Page
	Icon       rune
	Supervisor bool // entry is hidden from operators
}

// navItems is the master navigation list in display order. NavigationFor
// filters it per role; nothing else may reorder or extend it.
var navItems = []NavEntry{
	{Label: "Dashboard", Page: PageDashboard, Icon: '⌂'},
	{Label: "Ordens de Serviço", Page: PageWorkOrders, Icon: '⚒'},
	{Label: "Assistente IA", Page: PageAssistant, Icon: '✦'},
	{Label: "Ocorrências", Page: PageOccurrences, Icon: '⚠'},
	{Label: "Relatórios", Page: PageReports, Icon: '▤'},
	{Label: "Dosagem Química", Page: PageChemicals, Icon: '⚗'},
	{Label: "Gestão", Page: PageSupervisor, Icon: '◉', Supervisor: true},
	{Label: "Usuários", Page: PageUsers, Icon: '☺', Supervisor: true},
	{Label: "Histórico", Page: PageHistory, Icon: '≡'},
}

// CapabilitiesFor returns the capability set of a role. Unknown roles get
// the empty set.
func CapabilitiesFor(role models.Role) Capabilities {
	switch role {
	case models.RoleSupervisor, models.RoleAdmin:
		return Capabilities{ManageUsers: true, SupervisorAnalytics: true}
	case models.RoleOperator:
		return Capabilities{}
	default:
		return Capabilities{}
	}
}

// NavigationFor returns the sidebar entries visible to a role, in display
// order. The result is a fresh slice; callers may not mutate shared state
// through it.
func NavigationFor(role models.Role) []NavEntry {
	caps := CapabilitiesFor(role)

	entries := make([]NavEntry, 0, len(navItems))
	for _, item := range navItems {
		if item.Supervisor && !caps.ManageUsers {
			continue
		}
		entries = append(entries, item)
	}
	return entries
}

// Allowed reports whether a role may open the given page. The login page is
// public; every other page requires authentication, which the route guard
// checks before consulting this function.
func Allowed(page Page, role models.Role) bool {
	switch page {
	case PageSupervisor:
		return CapabilitiesFor(role).SupervisorAnalytics
	case PageUsers:
		return CapabilitiesFor(role).ManageUsers
	default:
		return true
	}
}
