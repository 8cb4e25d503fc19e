// usermgr administra las cuentas de usuario desde la línea de comandos.
// Las altas y los cambios de password pasan por aquí, nunca por la API.
//
// Uso:
//
//	usermgr list
//	usermgr create <username> <password> [displayName]
//	usermgr passwd <username> <password>
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/hamster-api/internal/domain/entity"
	"github.com/jhoicas/hamster-api/internal/infrastructure/postgres"
	"github.com/jhoicas/hamster-api/pkg/config"
	"github.com/jhoicas/hamster-api/pkg/logger"
)

const minPasswordLen = 8

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)

	switch os.Args[1] {
	case "list":
		list, err := users.List(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("listar usuarios")
		}
		for _, u := range list {
			fmt.Printf("%-20s %s\n", u.Username, u.DisplayName)
		}

	case "create":
		if len(os.Args) < 4 {
			usage()
			os.Exit(2)
		}
		username, password := os.Args[2], os.Args[3]
		displayName := username
		if len(os.Args) > 4 {
			displayName = os.Args[4]
		}
		if len(password) < minPasswordLen {
			fmt.Fprintf(os.Stderr, "el password debe tener al menos %d caracteres\n", minPasswordLen)
			os.Exit(1)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password")
		}
		now := time.Now()
		u := &entity.User{
			ID:           uuid.New().String(),
			Username:     username,
			DisplayName:  displayName,
			PasswordHash: string(hash),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatal().Err(err).Str("username", username).Msg("crear usuario")
		}
		fmt.Printf("usuario %s creado (%s)\n", username, u.ID)

	case "passwd":
		if len(os.Args) < 4 {
			usage()
			os.Exit(2)
		}
		username, password := os.Args[2], os.Args[3]
		if len(password) < minPasswordLen {
			fmt.Fprintf(os.Stderr, "el password debe tener al menos %d caracteres\n", minPasswordLen)
			os.Exit(1)
		}
		u, err := users.GetByUsername(ctx, username)
		if err != nil {
			log.Fatal().Err(err).Msg("buscar usuario")
		}
		if u == nil {
			fmt.Fprintf(os.Stderr, "usuario %s no existe\n", username)
			os.Exit(1)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password")
		}
		u.PasswordHash = string(hash)
		u.UpdatedAt = time.Now()
		if err := users.Update(ctx, u); err != nil {
			log.Fatal().Err(err).Msg("actualizar password")
		}
		fmt.Printf("password de %s actualizado\n", username)

	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usermgr administra las cuentas de usuario.

Comandos:
  list                                     listar usuarios
  create <username> <password> [nombre]    crear usuario
  passwd <username> <password>             cambiar password`)
}
