package authz

// NavEntry una entrada del menú lateral. El orden del slice define el orden
// en pantalla.
type NavEntry struct {
	Name string `json:"name"`
	Href string `json:"href"`
	Icon string `json:"icon"`
}

// Tabla estática rol→menú. Se copia en NavigationFor para que ningún caller
// pueda mutar la tabla compartida.
var navigation = map[Role][]NavEntry{
	RoleSuperAdmin: adminNav,
	RoleAdmin:      adminNav,
	RoleSales: {
		{Name: "Panel Principal", Href: "/dashboard", Icon: "layout-dashboard"},
		{Name: "CRM Pipeline", Href: "/dashboard/sales/crm", Icon: "target"},
		{Name: "Cotizaciones", Href: "/dashboard/sales/quotes", Icon: "file-text"},
		{Name: "Órdenes de Venta", Href: "/dashboard/sales/orders", Icon: "shopping-bag"},
		{Name: "Productos", Href: "/dashboard/sales/products", Icon: "package"},
		{Name: "Clientes", Href: "/dashboard/sales/clients", Icon: "users"},
		{Name: "Proveedores", Href: "/dashboard/sales/suppliers", Icon: "truck"},
	},
	RoleWarehouse: {
		{Name: "Panel Principal", Href: "/dashboard", Icon: "layout-dashboard"},
		{Name: "Entradas / Recepciones", Href: "/dashboard/warehouse/receivals", Icon: "package"},
		{Name: "Órdenes de Compra", Href: "/dashboard/warehouse/orders", Icon: "file-text"},
		{Name: "Inventario", Href: "/dashboard/warehouse/inventory", Icon: "shopping-cart"},
	},
	RoleFinance: {
		{Name: "Panel Principal", Href: "/dashboard", Icon: "layout-dashboard"},
		{Name: "Facturación", Href: "/dashboard/finance/invoices", Icon: "file-text"},
		{Name: "Cuentas por Cobrar", Href: "/dashboard/finance/receivables", Icon: "dollar-sign"},
	},
}

// SUPERADMIN y ADMIN comparten el menú completo.
var adminNav = []NavEntry{
	{Name: "Panel Principal", Href: "/dashboard", Icon: "layout-dashboard"},
	{Name: "CRM Pipeline", Href: "/dashboard/sales/crm", Icon: "target"},
	{Name: "Usuarios", Href: "/dashboard/users", Icon: "users"},
	{Name: "Cotizaciones", Href: "/dashboard/sales/quotes", Icon: "file-text"},
	{Name: "Ventas / Órdenes", Href: "/dashboard/sales/orders", Icon: "shopping-bag"},
	{Name: "Productos", Href: "/dashboard/sales/products", Icon: "package"},
	{Name: "Clientes", Href: "/dashboard/sales/clients", Icon: "users"},
	{Name: "Proveedores", Href: "/dashboard/sales/suppliers", Icon: "truck"},
	{Name: "Almacén", Href: "/dashboard/warehouse", Icon: "package"},
	{Name: "Finanzas", Href: "/dashboard/finance", Icon: "dollar-sign"},
}

// NavigationFor devuelve el menú del rol en su orden de pantalla.
// Un rol desconocido cae al menú de SALES, el conjunto más restrictivo
// con acceso comercial, nunca a uno con más privilegios.
func NavigationFor(role Role) []NavEntry {
	entries, ok := navigation[role]
	if !ok {
		entries = navigation[RoleSales]
	}
	out := make([]NavEntry, len(entries))
	copy(out, entries)
	return out
}
