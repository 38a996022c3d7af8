package app

import (
	"fmt"
	"strings"

	"talent-match/internal/config"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	accessLog := middleware.NewAccessLogMiddleware(c.Logger)
	errMw := middleware.NewErrorMiddleware(c.Logger)
	f.Use(accessLog.Middleware())
	f.Use(errMw.Middleware())

	registry := routes.NewRegistry(c.Config, c.DB, c.Cache, c.Logger)
	registry.Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(container)
	return app, container.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
