package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/erp-compare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/erp-compare-backend/internal/app"
	"github.com/heartmarshall/erp-compare-backend/internal/config"
	"github.com/heartmarshall/erp-compare-backend/internal/domain"
	"github.com/heartmarshall/erp-compare-backend/pkg/ctxutil"
)

var errNotAdmin = errors.New("acting user is not an admin")

type env struct {
	log   *slog.Logger
	repos *app.Repos
	svcs  *app.Services
	close func()
}

func connect(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	repos := app.NewRepos(pool)
	return &env{
		log:   log,
		repos: repos,
		svcs:  app.NewServices(log, cfg, repos),
		close: pool.Close,
	}, nil
}

// actAs resolves email to an admin account and returns a context carrying
// that identity, so catalog changes are audited against a real user.
func (e *env) actAs(ctx context.Context, email string) (context.Context, error) {
	user, err := e.svcs.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", email, err)
	}
	return adminContext(ctx, user)
}

func adminContext(ctx context.Context, user *domain.User) (context.Context, error) {
	if user.Role != domain.UserRoleAdmin {
		return nil, fmt.Errorf("%s: %w", user.Email, errNotAdmin)
	}
	ctx = ctxutil.WithUserID(ctx, user.ID)
	return ctxutil.WithUserRole(ctx, user.Role.String()), nil
}
