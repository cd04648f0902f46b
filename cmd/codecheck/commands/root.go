package commands

import (
	"context"

	"github.com/spf13/cobra"

	"prodcheck/internal/db"
	"prodcheck/internal/modules/verify/domain"
	"prodcheck/internal/modules/verify/infra"
	pg "prodcheck/internal/modules/verify/infra/pg"
	"prodcheck/internal/platform/config"
)

// env is what every subcommand works against, built once per run.
type env struct {
	cfg       config.Config
	lists     domain.CodeLists
	validator *domain.Validator
}

func Execute() error {
	return NewRoot().Execute()
}

func NewRoot() *cobra.Command {
	e := &env{}
	var usePG bool

	root := &cobra.Command{
		Use:          "codecheck",
		Short:        "Validate and classify product codes offline",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			lists, err := loadLists(cmd.Context(), cfg, usePG)
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.lists = lists
			e.validator = domain.NewValidator(domain.ValidatorConfig{
				FreshCodes:   lists.Fresh,
				ExpiredCodes: lists.Expired,
				MinLength:    cfg.Codes.MinLength,
				MaxLength:    cfg.Codes.MaxLength,
			})
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&usePG, "pg", false, "load code lists from PG_DSN instead of the config")

	root.AddCommand(validateCmd(e), checkCmd(e), sanitizeCmd(), listsCmd(e))
	return root
}

func loadLists(ctx context.Context, cfg config.Config, usePG bool) (domain.CodeLists, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !usePG || cfg.PGDSN == "" {
		return infra.NewStaticCatalog(domain.CodeLists{Fresh: cfg.Codes.Fresh, Expired: cfg.Codes.Expired}).Lists(ctx)
	}
	pool, err := db.Open(ctx, cfg.PGDSN)
	if err != nil {
		return domain.CodeLists{}, err
	}
	defer pool.Close()
	return pg.NewCatalogRepo(pool).Lists(ctx)
}
