// Package seed заполняет пустую базу начальными данными. Повторный запуск ничего не меняет.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"AgenciaContable/internal/auth"
	"AgenciaContable/internal/db"
	"AgenciaContable/internal/models"
	"AgenciaContable/internal/uicopy"
)

// Options — учётка супер-админа, который создаётся в пустой таблице admins.
type Options struct {
	SuperAdminUsername string
	SuperAdminPassword string
}

var defaultServices = []models.Service{
	{
		Title:       "Contabilidad mensual",
		Description: "Registro contable preciso y estados financieros claros cada mes.",
		KeyPoints:   "Conciliaciones bancarias\nReportes puntuales\nIndicadores de liquidez",
	},
	{
		Title:       "Planeación fiscal",
		Description: "Estrategias legales para optimizar cargas fiscales sin riesgos.",
		KeyPoints:   "Cumplimiento SAT\nRevisión preventiva\nAhorro sostenido",
	},
	{
		Title:       "Nómina y seguridad social",
		Description: "Gestión integral de nómina con enfoque en cumplimiento y confianza.",
		KeyPoints:   "Cálculo preciso\nAltas y bajas\nAtención a auditorías",
	},
}

var defaultTeam = []models.TeamMember{
	{
		Name: "María Fernanda Ruiz",
		Role: "Socia Directora",
		Bio:  "Especialista en finanzas corporativas con 12 años de experiencia en firmas nacionales.",
	},
	{
		Name: "José Luis Paredes",
		Role: "Gerente Fiscal",
		Bio:  "Experto en cumplimiento y planeación tributaria para PyMEs y startups.",
	},
}

var defaultPosts = []models.Post{
	{
		Title:       "Guía rápida para cerrar tu año fiscal",
		Description: "Checklist esencial para preparar tus obligaciones sin estrés.",
		ContentType: models.PostContentNone,
		IsPublished: true,
	},
	{
		Title:       "Tendencias contables 2026",
		Description: "Automatización, reporteo en tiempo real y cultura de datos.",
		ContentType: models.PostContentNone,
		IsPublished: true,
	},
}

// Run создаёт только то, чего нет.
func Run(ctx context.Context, store *db.Store, overlay *uicopy.Store, opts Options, logger *slog.Logger) error {
	n, err := store.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		if opts.SuperAdminUsername == "" || opts.SuperAdminPassword == "" {
			return errors.New("seed: super admin username and password must be set")
		}
		hash, err := auth.HashPassword(opts.SuperAdminPassword)
		if err != nil {
			return fmt.Errorf("seed: super admin password: %w", err)
		}
		super := &models.Admin{Username: opts.SuperAdminUsername, HashedPassword: hash, IsSuper: true}
		if err := store.CreateAdmin(ctx, super); err != nil {
			return fmt.Errorf("seed: super admin: %w", err)
		}
		logger.Info("seed: super admin created", "username", super.Username)
	}

	if err := seedPages(ctx, store); err != nil {
		return err
	}

	services, err := store.ListServices(ctx)
	if err != nil {
		return err
	}
	if len(services) == 0 {
		for _, s := range defaultServices {
			if err := store.CreateService(ctx, &s); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
		}
	}

	team, err := store.ListTeam(ctx)
	if err != nil {
		return err
	}
	if len(team) == 0 {
		for _, m := range defaultTeam {
			if err := store.CreateTeamMember(ctx, &m); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
		}
	}

	posts, err := store.ListPosts(ctx, false)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		for _, p := range defaultPosts {
			if err := store.CreatePost(ctx, &p); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
		}
	}

	ok, err := overlay.Initialized(ctx)
	if err != nil {
		return err
	}
	if !ok {
		if err := overlay.Save(ctx, uicopy.Defaults()); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	return nil
}

// seedPages пишет умолчания в однострочные таблицы, которые ещё пусты.
func seedPages(ctx context.Context, store *db.Store) error {
	pages := []struct {
		table string
		save  func() error
	}{
		{"site_settings", func() error { return store.SaveSiteSettings(ctx, models.DefaultSiteSettings()) }},
		{"index_content", func() error { return store.SaveIndexContent(ctx, models.DefaultIndexContent()) }},
		{"about_content", func() error { return store.SaveAboutContent(ctx, models.DefaultAboutContent()) }},
		{"learn_more_content", func() error { return store.SaveLearnMoreContent(ctx, models.DefaultLearnMoreContent()) }},
	}
	for _, p := range pages {
		has, err := store.HasSingleton(ctx, p.table)
		if err != nil {
			return err
		}
		if has {
			continue
		}
		if err := p.save(); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	return nil
}
