// seed carga el catálogo inicial: repuestos desde CSV, ubicaciones y el usuario administrador.
//
// Uso: go run ./cmd/seed -parts repuestos.csv -charset latin1 -locations "Bodega central|Taller"
// El administrador se toma de SEED_ADMIN_USERNAME / SEED_ADMIN_PASSWORD / SEED_ADMIN_EMAIL.
// Es idempotente: repuestos y ubicaciones existentes se omiten.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"strings"

	"github.com/jhoicas/cmms-inventario/internal/application/dto"
	"github.com/jhoicas/cmms-inventario/internal/application/usecase"
	"github.com/jhoicas/cmms-inventario/internal/domain"
	"github.com/jhoicas/cmms-inventario/internal/infrastructure/postgres"
	"github.com/jhoicas/cmms-inventario/pkg/config"
	"github.com/jhoicas/cmms-inventario/pkg/logger"
)

func main() {
	partsPath := flag.String("parts", "", "CSV de repuestos (encabezado part_code;part_name;...)")
	charset := flag.String("charset", "latin1", "codificación del CSV: utf8, latin1, cp1252")
	sep := flag.String("sep", ";", "separador de columnas del CSV")
	locations := flag.String("locations", "", "ubicaciones separadas por '|'")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	partRepo := postgres.NewPartRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	userUC := usecase.NewUserUseCase(postgres.NewUserRepository(pool))

	if username := os.Getenv("SEED_ADMIN_USERNAME"); username != "" {
		user, created, err := userUC.EnsureUser(ctx, usecase.CreateUserInput{
			Username:    username,
			Email:       os.Getenv("SEED_ADMIN_EMAIL"),
			FullName:    "Administrador",
			Password:    os.Getenv("SEED_ADMIN_PASSWORD"),
			IsSuperuser: true,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("crear administrador")
		}
		log.Info().Int64("user_id", user.ID).Bool("created", created).Msg("administrador")
	}

	if names := splitLocations(*locations); len(names) > 0 {
		existing, err := locationRepo.List(ctx, 1000, 0)
		if err != nil {
			log.Fatal().Err(err).Msg("listar ubicaciones")
		}
		known := make(map[string]bool, len(existing))
		for _, l := range existing {
			known[strings.ToLower(l.Name)] = true
		}
		locationUC := usecase.NewLocationUseCase(locationRepo)
		for _, name := range names {
			if known[strings.ToLower(name)] {
				continue
			}
			loc, err := locationUC.Create(ctx, dto.CreateLocationRequest{Name: name})
			if err != nil {
				log.Fatal().Err(err).Str("name", name).Msg("crear ubicación")
			}
			log.Info().Int64("location_id", loc.ID).Str("name", name).Msg("ubicación creada")
		}
	}

	if *partsPath == "" {
		return
	}
	f, err := os.Open(*partsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	r, err := decodeReader(f, *charset)
	if err != nil {
		log.Fatal().Err(err).Msg("charset")
	}
	sepRune := ';'
	if *sep != "" {
		sepRune = []rune(*sep)[0]
	}
	parts, err := parseParts(r, sepRune)
	if err != nil {
		log.Fatal().Err(err).Msg("leer catálogo")
	}

	partUC := usecase.NewPartUseCase(partRepo)
	var created, skipped int
	for _, req := range parts {
		if _, err := partUC.Create(ctx, req); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				skipped++
				continue
			}
			log.Fatal().Err(err).Str("part_code", req.PartCode).Msg("crear repuesto")
		}
		created++
	}
	log.Info().Int("created", created).Int("skipped", skipped).Msg("catálogo cargado")
}
