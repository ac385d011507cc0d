package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usina-ipiranga/caldo-console/models"
)

func pages(entries []NavEntry) []Page {
	out := make([]Page, len(entries))
	for i, e := range entries {
		out[i] = e.Page
	}
	return out
}

func TestNavigationFor_Operator(t *testing.T) {
	got := pages(NavigationFor(models.RoleOperator))

	want := []Page{
		PageDashboard, PageWorkOrders, PageAssistant, PageOccurrences,
		PageReports, PageChemicals, PageHistory,
	}
	assert.Equal(t, want, got)
}

func TestNavigationFor_SupervisorSeesEverything(t *testing.T) {
	for _, role := range []models.Role{models.RoleSupervisor, models.RoleAdmin} {
		t.Run(string(role), func(t *testing.T) {
			got := pages(NavigationFor(role))

			want := []Page{
				PageDashboard, PageWorkOrders, PageAssistant, PageOccurrences,
				PageReports, PageChemicals, PageSupervisor, PageUsers, PageHistory,
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestNavigationFor_PreservesMasterOrder(t *testing.T) {
	// The supervisor list with gated entries removed must equal the
	// operator list: filtering never reorders.
	sup := pages(NavigationFor(models.RoleSupervisor))
	filtered := make([]Page, 0, len(sup))
	for _, p := range sup {
		if p == PageSupervisor || p == PageUsers {
			continue
		}
		filtered = append(filtered, p)
	}

	assert.Equal(t, filtered, pages(NavigationFor(models.RoleOperator)))
}

func TestNavigationFor_UnknownRole(t *testing.T) {
	got := NavigationFor(models.Role("intern"))
	require.NotEmpty(t, got)
	for _, e := range got {
		assert.False(t, e.Supervisor, "unknown roles must not see gated entries")
	}
}

func TestCapabilitiesFor(t *testing.T) {
	assert.Equal(t, Capabilities{}, CapabilitiesFor(models.RoleOperator))
	assert.Equal(t, Capabilities{ManageUsers: true, SupervisorAnalytics: true}, CapabilitiesFor(models.RoleSupervisor))
	assert.Equal(t, Capabilities{ManageUsers: true, SupervisorAnalytics: true}, CapabilitiesFor(models.RoleAdmin))
	assert.Equal(t, Capabilities{}, CapabilitiesFor(models.Role("intern")))
}

func TestAllowed_GatedPages(t *testing.T) {
	for _, page := range []Page{PageSupervisor, PageUsers} {
		assert.False(t, Allowed(page, models.RoleOperator), "operator must not open %s", page)
		assert.True(t, Allowed(page, models.RoleSupervisor))
		assert.True(t, Allowed(page, models.RoleAdmin))
	}
}

func TestAllowed_OpenPages(t *testing.T) {
	open := []Page{
		PageDashboard, PageWorkOrders, PageAssistant, PageOccurrences,
		PageReports, PageChemicals, PageHistory,
	}
	for _, page := range open {
		for _, role := range []models.Role{models.RoleOperator, models.RoleSupervisor, models.RoleAdmin} {
			assert.True(t, Allowed(page, role), "%s should be open to %s", page, role)
		}
	}
}
