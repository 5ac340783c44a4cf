// seed puebla los archivos de datos con clientes, productos y órdenes
// de ejemplo, pasando por los mismos casos de uso que la API.
//
// Uso: go run ./cmd/seed
// Respeta DATA_DIR y el resto de variables de pkg/config.
package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/flatfile"
	"github.com/jhoicas/Tienda-api/pkg/config"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

type seedCustomer struct {
	Username string
	Password string
	Email    string
	Mobile   string
}

type seedProduct struct {
	Model, Category, Name            string
	CurrentPrice, RawPrice, Discount string
	LikesCount                       int
}

var customers = []seedCustomer{
	{"maria_lopez", "maria1", "maria.lopez@tienda.com", "0412345678"},
	{"pedro_gomez", "pedro1", "pedro.gomez@tienda.com", "0498765432"},
	{"laura_diaz", "laura1", "laura.diaz@tienda.com", "0311223344"},
	{"diego_soto", "diego1", "diego.soto@tienda.com", "0455667788"},
}

var products = []seedProduct{
	{"SP-2210", "audio", "Parlante Bluetooth Max", "99.90", "129.90", "23.09", 12},
	{"TV-5501", "video", "Televisor LED 55", "449.00", "529.00", "15.12", 31},
	{"LM-0030", "hogar", "Lampara de escritorio", "18.50", "25.00", "26.00", 4},
	{"CF-1200", "cocina", "Cafetera programable", "64.99", "79.99", "18.75", 9},
	{"AU-0077", "audio", "Audifonos inalambricos", "39.90", "59.90", "33.39", 27},
	{"SM-0900", "telefonia", "Smartphone 128GB", "299.00", "349.00", "14.33", 58},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	userRepo, err := flatfile.NewUserRepository(cfg.Data.UsersPath(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar archivo de usuarios")
	}
	productRepo, err := flatfile.NewProductRepository(cfg.Data.ProductsPath(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar archivo de productos")
	}
	orderRepo, err := flatfile.NewOrderRepository(cfg.Data.OrdersPath(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar archivo de órdenes")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{Secret: "seed", ExpMinutes: 1, Issuer: "seed"})
	productUC := usecase.NewProductUseCase(productRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo)

	if err := authUC.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("crear admin inicial")
	}

	// Usuarios y productos van a archivos distintos, se siembran en
	// paralelo. Las órdenes esperan a tener ambos IDs.
	var (
		userIDs    []string
		productIDs []string
	)
	var g errgroup.Group
	g.Go(func() error {
		for _, c := range customers {
			u, err := authUC.RegisterCustomer(dto.RegisterRequest{
				Username: c.Username,
				Password: c.Password,
				Email:    c.Email,
				Mobile:   c.Mobile,
			})
			if err != nil {
				return fmt.Errorf("registrar %s: %w", c.Username, err)
			}
			userIDs = append(userIDs, u.ID)
		}
		return nil
	})
	g.Go(func() error {
		for _, p := range products {
			created, err := productUC.Create(dto.CreateProductRequest{
				Model:        p.Model,
				Category:     p.Category,
				Name:         p.Name,
				CurrentPrice: decimal.RequireFromString(p.CurrentPrice),
				RawPrice:     decimal.RequireFromString(p.RawPrice),
				Discount:     decimal.RequireFromString(p.Discount),
				LikesCount:   p.LikesCount,
			})
			if err != nil {
				return fmt.Errorf("crear producto %s: %w", p.Name, err)
			}
			productIDs = append(productIDs, created.ID)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("sembrar usuarios y productos")
	}

	// Cada cliente compra un par de productos.
	orderCount := 0
	for i, uid := range userIDs {
		for j := 0; j < 2; j++ {
			pid := productIDs[(i+j)%len(productIDs)]
			if _, err := orderUC.Create(uid, dto.CreateOrderRequest{ProductID: pid}); err != nil {
				log.Fatal().Err(err).Msg("crear orden")
			}
			orderCount++
		}
	}

	log.Info().
		Int("customers", len(userIDs)).
		Int("products", len(productIDs)).
		Int("orders", orderCount).
		Msg("datos de ejemplo generados")
}
