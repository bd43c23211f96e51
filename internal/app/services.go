package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/erp-compare-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/erp-compare-backend/internal/adapter/postgres/audit"
	draftrepo "github.com/heartmarshall/erp-compare-backend/internal/adapter/postgres/draft"
	fieldrepo "github.com/heartmarshall/erp-compare-backend/internal/adapter/postgres/field"
	"github.com/heartmarshall/erp-compare-backend/internal/adapter/postgres/fieldvalue"
	glossaryrepo "github.com/heartmarshall/erp-compare-backend/internal/adapter/postgres/glossary"
	modulerepo "github.com/heartmarshall/erp-compare-backend/internal/adapter/postgres/module"
	systemrepo "github.com/heartmarshall/erp-compare-backend/internal/adapter/postgres/system"
	userrepo "github.com/heartmarshall/erp-compare-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/erp-compare-backend/internal/auth"
	"github.com/heartmarshall/erp-compare-backend/internal/compare"
	"github.com/heartmarshall/erp-compare-backend/internal/config"
	authsvc "github.com/heartmarshall/erp-compare-backend/internal/service/auth"
	"github.com/heartmarshall/erp-compare-backend/internal/service/catalog"
	"github.com/heartmarshall/erp-compare-backend/internal/service/comparison"
	"github.com/heartmarshall/erp-compare-backend/internal/service/draft"
	"github.com/heartmarshall/erp-compare-backend/internal/service/glossary"
	"github.com/heartmarshall/erp-compare-backend/internal/service/system"
	"github.com/heartmarshall/erp-compare-backend/internal/service/user"
)

// Repos holds the PostgreSQL repositories.
type Repos struct {
	Users       *userrepo.Repo
	Audit       *auditrepo.Repo
	Modules     *modulerepo.Repo
	Fields      *fieldrepo.Repo
	Systems     *systemrepo.Repo
	FieldValues *fieldvalue.Repo
	Drafts      *draftrepo.Repo
	Glossary    *glossaryrepo.Repo
	Tx          *postgres.TxManager
}

// NewRepos creates every repository on top of pool.
func NewRepos(pool *pgxpool.Pool) *Repos {
	return &Repos{
		Users:       userrepo.New(pool),
		Audit:       auditrepo.New(pool),
		Modules:     modulerepo.New(pool),
		Fields:      fieldrepo.New(pool),
		Systems:     systemrepo.New(pool),
		FieldValues: fieldvalue.New(pool),
		Drafts:      draftrepo.New(pool),
		Glossary:    glossaryrepo.New(pool),
		Tx:          postgres.NewTxManager(pool),
	}
}

// Services holds the application services shared by the server and CLI.
type Services struct {
	Auth       *authsvc.Service
	Users      *user.Service
	Catalog    *catalog.Service
	Systems    *system.Service
	Drafts     *draft.Service
	Comparison *comparison.Service
	Glossary   *glossary.Service
}

// NewServices wires services to repositories according to cfg.
func NewServices(log *slog.Logger, cfg *config.Config, r *Repos) *Services {
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	catalogSvc := catalog.NewService(log, r.Modules, r.Fields, r.Audit, r.Tx, cfg.Catalog)
	sessions := compare.NewSessionStore(cfg.Compare.MaxSessions, cfg.Compare.SessionTTL)

	return &Services{
		Auth:       authsvc.NewService(log, r.Users, r.Audit, r.Tx, jwt, cfg.Auth),
		Users:      user.NewService(log, r.Users, r.Audit, r.Tx),
		Catalog:    catalogSvc,
		Systems:    system.NewService(log, r.Systems, r.FieldValues, catalogSvc, r.Drafts, r.Audit, r.Tx),
		Drafts:     draft.NewService(log, r.Drafts),
		Comparison: comparison.NewService(log, r.Systems, r.FieldValues, catalogSvc, sessions),
		Glossary:   glossary.NewService(log, r.Glossary, r.Audit, r.Tx),
	}
}
