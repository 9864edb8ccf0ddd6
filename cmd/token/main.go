// Command token emite un JWT de operador para las rutas de escritura.
//
//	go run ./cmd/token -sub caja-1 -role operador
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/jwt"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

func main() {
	subject := flag.String("sub", "operador", "identificador del operador")
	role := flag.String("role", "operador", "rol: admin u operador")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr})

	if !cfg.JWT.Enabled() {
		log.Fatal().Msg("JWT_SECRET no configurado")
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, *subject, *role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		log.Fatal().Err(err).Msg("generar token")
	}
	log.Info().Str("sub", *subject).Str("role", *role).Int("exp_minutes", cfg.JWT.Expiration).Msg("token emitido")
	fmt.Println(tok)
}
