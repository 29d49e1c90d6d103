package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norteindustrial/norte-erp/internal/domain/authz"
)

// ──────────────────────────────────────────────────────────────────────────────
// IsAuthorized
// ──────────────────────────────────────────────────────────────────────────────

func TestIsAuthorized_RolDentroDelConjunto(t *testing.T) {
	ok := authz.IsAuthorized(authz.RoleSales,
		authz.RoleSuperAdmin, authz.RoleAdmin, authz.RoleSales)
	assert.True(t, ok, "SALES debe entrar a una vista que permite SALES")
}

func TestIsAuthorized_RolFueraDelConjunto(t *testing.T) {
	ok := authz.IsAuthorized(authz.RoleWarehouse,
		authz.RoleSuperAdmin, authz.RoleAdmin, authz.RoleSales)
	assert.False(t, ok, "WAREHOUSE no debe entrar a una vista comercial")
}

// Rol vacío o desconocido siempre niega, sin importar el conjunto requerido:
// se falla cerrado.
func TestIsAuthorized_RolAusenteSiempreNiega(t *testing.T) {
	allSets := [][]authz.Role{
		{authz.RoleSuperAdmin},
		{authz.RoleSuperAdmin, authz.RoleAdmin, authz.RoleSales, authz.RoleWarehouse, authz.RoleFinance},
		{},
	}
	for _, set := range allSets {
		assert.False(t, authz.IsAuthorized("", set...), "rol vacío con set %v", set)
		assert.False(t, authz.IsAuthorized(authz.Role("GERENTE"), set...), "rol desconocido con set %v", set)
	}
}

func TestIsAuthorized_ConjuntoVacioNiegaTodo(t *testing.T) {
	assert.False(t, authz.IsAuthorized(authz.RoleSuperAdmin),
		"sin roles requeridos declarados nadie pasa, ni SUPERADMIN")
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseRole
// ──────────────────────────────────────────────────────────────────────────────

func TestParseRole(t *testing.T) {
	for _, s := range []string{"SUPERADMIN", "ADMIN", "SALES", "WAREHOUSE", "FINANCE"} {
		r, ok := authz.ParseRole(s)
		require.True(t, ok, s)
		assert.Equal(t, authz.Role(s), r)
	}
	for _, s := range []string{"", "admin", "Sales", "ROOT", "SUPER_ADMIN"} {
		_, ok := authz.ParseRole(s)
		assert.False(t, ok, "%q no debe parsear", s)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// NavigationFor
// ──────────────────────────────────────────────────────────────────────────────

func TestNavigationFor_OrdenDeMenuAdmin(t *testing.T) {
	nav := authz.NavigationFor(authz.RoleAdmin)
	require.Len(t, nav, 10)
	assert.Equal(t, "Panel Principal", nav[0].Name, "el panel siempre va primero")
	assert.Equal(t, "Usuarios", nav[2].Name)
	assert.Equal(t, "Finanzas", nav[9].Name)
}

func TestNavigationFor_SuperAdminYAdminComparten(t *testing.T) {
	assert.Equal(t, authz.NavigationFor(authz.RoleAdmin), authz.NavigationFor(authz.RoleSuperAdmin))
}

func TestNavigationFor_SalesNoVeUsuariosNiFinanzas(t *testing.T) {
	nav := authz.NavigationFor(authz.RoleSales)
	for _, e := range nav {
		assert.NotEqual(t, "Usuarios", e.Name)
		assert.NotEqual(t, "Finanzas", e.Name)
		assert.NotEqual(t, "Almacén", e.Name)
	}
}

func TestNavigationFor_WarehouseYFinance(t *testing.T) {
	wh := authz.NavigationFor(authz.RoleWarehouse)
	require.Len(t, wh, 4)
	assert.Equal(t, "Inventario", wh[3].Name)

	fin := authz.NavigationFor(authz.RoleFinance)
	require.Len(t, fin, 3)
	assert.Equal(t, "Cuentas por Cobrar", fin[2].Name)
}

// Rol desconocido cae al menú de SALES (fallback restrictivo), nunca al de
// ADMIN.
func TestNavigationFor_RolDesconocidoCaeASales(t *testing.T) {
	assert.Equal(t, authz.NavigationFor(authz.RoleSales), authz.NavigationFor(authz.Role("CONTRALOR")))
	assert.Equal(t, authz.NavigationFor(authz.RoleSales), authz.NavigationFor(authz.Role("")))
}

// El slice devuelto es una copia: mutarlo no contamina la tabla estática.
func TestNavigationFor_DevuelveCopia(t *testing.T) {
	nav := authz.NavigationFor(authz.RoleFinance)
	nav[0].Name = "Hackeado"
	again := authz.NavigationFor(authz.RoleFinance)
	assert.Equal(t, "Panel Principal", again[0].Name)
}
