// seed crea el usuario administrador inicial a partir de variables de entorno.
//
// Uso: SEED_ADMIN_EMAIL=admin@example.com SEED_ADMIN_PASSWORD=... go run ./cmd/seed
// SEED_ADMIN_NAME es opcional (por defecto "Administrador"). Si el email ya
// existe, el comando termina sin error.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ndiwanjo/constructora-api/internal/domain"
	"github.com/ndiwanjo/constructora-api/internal/domain/entity"
	"github.com/ndiwanjo/constructora-api/internal/infrastructure/postgres"
	"github.com/ndiwanjo/constructora-api/pkg/config"
)

func main() {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	name := os.Getenv("SEED_ADMIN_NAME")
	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son obligatorios")
		os.Exit(1)
	}
	if name == "" {
		name = "Administrador"
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	if err := postgres.Migrate(cfg.DB); err != nil {
		fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear contraseña: %v\n", err)
		os.Exit(1)
	}

	repo := postgres.NewUserRepository(pool)
	user := &entity.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.Create(user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			fmt.Printf("El usuario %s ya existe, nada que hacer\n", email)
			return
		}
		fmt.Fprintf(os.Stderr, "Crear usuario: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Usuario administrador %s creado\n", email)
}
