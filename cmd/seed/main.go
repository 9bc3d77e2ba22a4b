// seed crea los datos mínimos para arrancar un despliegue nuevo: un magasin
// inicial y un administrador global (superuser) con el que dar de alta al resto.
//
// Uso: go run ./cmd/seed -email admin@magasin.fr -password <mínimo 8 caracteres>
// La conexión a la DB se toma de las mismas variables de entorno que la API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/magasin-pro/internal/domain/entity"
	"github.com/jhoicas/magasin-pro/internal/infrastructure/postgres"
	"github.com/jhoicas/magasin-pro/pkg/config"
	"github.com/jhoicas/magasin-pro/pkg/logger"
)

func main() {
	email := flag.String("email", "", "email del administrador")
	password := flag.String("password", "", "password del administrador (mínimo 8 caracteres)")
	nom := flag.String("nom", "Administrateur", "nombre del administrador")
	magasin := flag.String("magasin", "Magasin Central", "nombre del magasin inicial")
	flag.Parse()

	if *email == "" || len(*password) < 8 {
		fmt.Fprintln(os.Stderr, "uso: seed -email <email> -password <mínimo 8 caracteres> [-nom ...] [-magasin ...]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// El seed puede correr contra una DB recién creada.
	if err := postgres.Migrate(ctx, pool, cfg.DB.MigrationsPath, log); err != nil {
		fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)

	existing, err := userRepo.GetByEmail(*email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Consultar usuario: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("Ya existe un usuario con email %s, nada que hacer\n", *email)
		return
	}

	now := time.Now()
	store := &entity.Store{
		ID:        uuid.NewString(),
		Name:      *magasin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := storeRepo.Create(store); err != nil {
		fmt.Fprintf(os.Stderr, "Crear magasin: %v\n", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear password: %v\n", err)
		os.Exit(1)
	}
	admin := &entity.User{
		ID:           uuid.NewString(),
		StoreID:      &store.ID,
		Email:        *email,
		PasswordHash: string(hash),
		Name:         *nom,
		Role:         entity.RoleAdmin,
		Superuser:    true,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		fmt.Fprintf(os.Stderr, "Crear administrador: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Creado magasin %q (%s) y administrador %s\n", store.Name, store.ID, admin.Email)
}
