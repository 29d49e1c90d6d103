// seed puebla la base con datos demo a través de los mismos repositorios que
// usa la API: usuarios por rol, clientes con su régimen de IVA, proveedores,
// catálogo y una cotización de muestra ya enviada.
//
// Uso: go run ./cmd/seed [password]
// Por defecto todos los usuarios demo entran con "norte1234".
// Es idempotente: si el email/RFC/SKU ya existe, se omite.
package main

import (
	"context"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/norteindustrial/norte-erp/internal/domain/authz"
	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/pricing"
	"github.com/norteindustrial/norte-erp/internal/infrastructure/postgres"
	"github.com/norteindustrial/norte-erp/pkg/config"
	"github.com/norteindustrial/norte-erp/pkg/logger"
)

func main() {
	password := "norte1234"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password demo")
	}

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	now := time.Now()

	// ── Usuarios: uno por rol más un segundo vendedor ───────────────────────
	seedUsers := []struct {
		name string
		role authz.Role
		goal decimal.Decimal
	}{
		{"Dirección General", authz.RoleSuperAdmin, decimal.Zero},
		{"Administración", authz.RoleAdmin, decimal.Zero},
		{"Ramón Quiñónez", authz.RoleSales, decimal.NewFromInt(250000)},
		{"María Gutiérrez", authz.RoleSales, decimal.NewFromInt(250000)},
		{"Jesús Almacén", authz.RoleWarehouse, decimal.Zero},
		{"Verónica Cobranza", authz.RoleFinance, decimal.Zero},
	}
	userIDs := make(map[string]string, len(seedUsers))
	for _, su := range seedUsers {
		email := emailFor(su.name)
		existing, err := userRepo.GetByEmail(email)
		if err != nil {
			log.Fatal().Err(err).Str("email", email).Msg("consultar usuario")
		}
		if existing != nil {
			userIDs[su.name] = existing.ID
			continue
		}
		u := &entity.User{
			ID:           uuid.NewString(),
			Email:        email,
			PasswordHash: string(hash),
			Name:         su.name,
			Role:         su.role,
			Status:       "active",
			MonthlyGoal:  su.goal,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(u); err != nil {
			log.Fatal().Err(err).Str("email", email).Msg("crear usuario")
		}
		userIDs[su.name] = u.ID
		log.Info().Str("email", email).Str("role", string(su.role)).Msg("usuario demo")
	}

	// ── Clientes: régimen fronterizo (0.08) y general (0.16) ────────────────
	seedClients := []struct {
		razonSocial string
		rfc         string
		taxRate     string
		city, state string
		rep         string
	}{
		{"Aceros del Norte SA de CV", "ANO010203AB1", "0.08", "Ciudad Juárez", "Chihuahua", "Ramón Quiñónez"},
		{"Maquilados Fronterizos SA", "MFR990817XK2", "0.08", "Tijuana", "Baja California", "Ramón Quiñónez"},
		{"Industrial del Bajío SA de CV", "IBA050622QT7", "0.16", "León", "Guanajuato", "María Gutiérrez"},
		{"Transportes Peña Hermanos", "TPH120304LM9", "0.16", "Monterrey", "Nuevo León", "María Gutiérrez"},
	}
	clientIDs := make(map[string]string, len(seedClients))
	for _, sc := range seedClients {
		existing, err := clientRepo.GetByRFC(sc.rfc)
		if err != nil {
			log.Fatal().Err(err).Str("rfc", sc.rfc).Msg("consultar cliente")
		}
		if existing != nil {
			clientIDs[sc.rfc] = existing.ID
			continue
		}
		cl := &entity.Client{
			ID:          uuid.NewString(),
			RazonSocial: sc.razonSocial,
			RFC:         sc.rfc,
			TaxRate:     decimal.RequireFromString(sc.taxRate),
			SalesRepID:  userIDs[sc.rep],
			CreditTerms: "Neto 30 Dias",
			City:        sc.city,
			State:       sc.state,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := clientRepo.Create(cl); err != nil {
			log.Fatal().Err(err).Str("rfc", sc.rfc).Msg("crear cliente")
		}
		clientIDs[sc.rfc] = cl.ID
	}

	// ── Proveedores y catálogo: un producto nacional y uno de importación ───
	supplierMX := &entity.Supplier{
		ID:        uuid.NewString(),
		Name:      "Rodamientos Industriales de México",
		RFC:       "RIM870615PL3",
		City:      "Querétaro",
		State:     "Querétaro",
		CreatedAt: now,
		UpdatedAt: now,
	}
	supplierUS := &entity.Supplier{
		ID:        uuid.NewString(),
		Name:      "Texas Bearing Supply Co",
		City:      "El Paso",
		State:     "Texas",
		CreatedAt: now,
		UpdatedAt: now,
	}
	products := []*entity.Product{
		{
			ID:          uuid.NewString(),
			Name:        "Rodamiento de rodillos 22220",
			SKU:         "ROD-22220",
			BasePrice:   decimal.RequireFromString("1850.00"),
			FreightCost: decimal.RequireFromString("120.00"),
			Currency:    pricing.MXN,
			Unit:        "PZA",
			SupplierID:  supplierMX.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Chumacera SNL 520",
			SKU:         "CHU-SNL520",
			BasePrice:   decimal.RequireFromString("310.00"),
			ImportCost:  decimal.RequireFromString("45.00"),
			FreightCost: decimal.RequireFromString("28.00"),
			Currency:    pricing.USD,
			Unit:        "PZA",
			SupplierID:  supplierUS.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
	if existing, err := productRepo.GetBySKU(products[0].SKU); err != nil {
		log.Fatal().Err(err).Msg("consultar catálogo")
	} else if existing == nil {
		for _, s := range []*entity.Supplier{supplierMX, supplierUS} {
			if err := supplierRepo.Create(s); err != nil {
				log.Fatal().Err(err).Str("supplier", s.Name).Msg("crear proveedor")
			}
		}
		for _, p := range products {
			if err := productRepo.Create(p); err != nil {
				log.Fatal().Err(err).Str("sku", p.SKU).Msg("crear producto")
			}
		}
	}

	// ── Ajustes comerciales de arranque ─────────────────────────────────────
	current, err := settingsRepo.Get()
	if err != nil {
		log.Fatal().Err(err).Msg("consultar ajustes")
	}
	if current == nil {
		err = settingsRepo.Upsert(&entity.Settings{
			ID:             entity.SettingsID,
			DefaultMargin:  cfg.Comercio.DefaultMargin,
			ExchangeRate:   cfg.Comercio.ExchangeRate,
			DefaultTaxRate: cfg.Comercio.DefaultTaxRate,
			UpdatedBy:      userIDs["Dirección General"],
			UpdatedAt:      now,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("crear ajustes")
		}
	}

	// ── Cotización de muestra, enviada, con snapshot congelado ──────────────
	if err := seedQuote(quoteRepo, cfg, userIDs["Ramón Quiñónez"], clientIDs["ANO010203AB1"], products, now); err != nil {
		log.Fatal().Err(err).Msg("crear cotización demo")
	}

	log.Info().
		Int("usuarios", len(seedUsers)).
		Int("clientes", len(seedClients)).
		Str("password", password).
		Msg("datos demo listos")
}

func seedQuote(quoteRepo *postgres.QuoteRepo, cfg *config.Config, repID, clientID string, products []*entity.Product, now time.Time) error {
	existing, err := quoteRepo.ListBySalesRep(repID, 1, 0)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	items := []pricing.LineItem{
		{
			ProductID:   products[0].ID,
			ProductName: products[0].Name,
			Quantity:    4,
			BasePrice:   products[0].BasePrice,
			FreightCost: products[0].FreightCost,
			Margin:      cfg.Comercio.DefaultMargin,
			Currency:    products[0].Currency,
		},
		{
			ProductID:   products[1].ID,
			ProductName: products[1].Name,
			Quantity:    2,
			BasePrice:   products[1].BasePrice,
			ImportCost:  products[1].ImportCost,
			FreightCost: products[1].FreightCost,
			Margin:      cfg.Comercio.DefaultMargin,
			Currency:    products[1].Currency,
		},
	}
	fin, err := pricing.ComputeQuoteFinancials(items, pricing.MXN, cfg.Comercio.ExchangeRate, decimal.RequireFromString("0.08"))
	if err != nil {
		return err
	}
	folio, err := quoteRepo.NextFolio(now.Year())
	if err != nil {
		return err
	}
	sentAt := now
	return quoteRepo.Create(&entity.Quote{
		ID:         uuid.NewString(),
		Folio:      folio,
		ClientID:   clientID,
		SalesRepID: repID,
		Status:     entity.QuoteStatusSent,
		Items:      items,
		Financials: fin.Round2(),
		Notes:      "Cotización demo generada por cmd/seed",
		SentAt:     &sentAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

// emailFor deriva el correo demo del nombre: minúsculas, sin acentos y con
// punto como separador (ej. "Ramón Quiñónez" → "ramon.quinonez@norte-erp.mx").
func emailFor(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, name)
	if err != nil {
		plain = name
	}
	slug := strings.ToLower(strings.Join(strings.Fields(plain), "."))
	slug = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '.' {
			return r
		}
		return -1
	}, slug)
	return slug + "@norte-erp.mx"
}
