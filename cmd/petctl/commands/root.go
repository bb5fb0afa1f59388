// Package commands arma el CLI petctl sobre cobra.
package commands

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	mem "pet-explorer/internal/adapters/storage/memory"
	"pet-explorer/internal/adapters/storage/sqlite"
	"pet-explorer/internal/domain/adoptions"
	"pet-explorer/internal/domain/catalog"
	"pet-explorer/internal/platform/clock"
	"pet-explorer/internal/platform/i18n"
	"pet-explorer/internal/platform/logger"
)

// env es el estado compartido por los subcomandos, armado en PersistentPreRunE.
type env struct {
	store   string
	dbPath  string
	session string
	lang    string
	year    int
	verbose bool

	catalog  *catalog.Catalog
	registry *adoptions.Registry
	printer  *message.Printer
	db       *sql.DB
}

func Execute() error {
	root, e := newRootCmd()
	return execute(root, e)
}

// execute cierra la base aunque el subcomando falle (cobra no corre PostRun con error).
func execute(root *cobra.Command, e *env) error {
	defer func() { _ = e.close() }()
	return root.Execute()
}

func newRootCmd() (*cobra.Command, *env) {
	e := &env{}

	root := &cobra.Command{
		Use:           "petctl",
		Short:         "Browse the pet catalog and adopt pets",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.open(cmd)
		},
	}

	root.PersistentFlags().StringVar(&e.store, "store", "memory", "adoptions store: memory (nothing survives the run) | sqlite")
	root.PersistentFlags().StringVar(&e.dbPath, "db", "", "sqlite path for --store sqlite (default ~/.petctl/adoptions.db)")
	root.PersistentFlags().StringVar(&e.session, "session", "local", "adoption session id")
	root.PersistentFlags().StringVar(&e.lang, "lang", os.Getenv("LANG"), "preferred language (en, es)")
	root.PersistentFlags().IntVar(&e.year, "year", 0, "current year for ages (0 = system clock)")
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "log adoptions to stderr")

	root.AddCommand(
		categoriesCmd(e),
		petsCmd(e),
		showCmd(e),
		adoptCmd(e),
		adoptedCmd(e),
		explorerCmd(e),
	)
	return root, e
}

func (e *env) close() error {
	if e.db == nil {
		return nil
	}
	return e.db.Close()
}

func (e *env) open(cmd *cobra.Command) error {
	var clk clock.Clock = clock.System{}
	if e.year > 0 {
		clk = clock.Fixed(e.year)
	}
	e.catalog = catalog.Default(clk)

	loc, err := i18n.New()
	if err != nil {
		return err
	}
	// LANG suele venir como es_MX.UTF-8
	lang := strings.SplitN(strings.ReplaceAll(e.lang, "_", "-"), ".", 2)[0]
	e.printer = loc.PrinterFor(lang)

	var repo adoptions.Repository
	switch e.store {
	case "memory":
		repo = mem.NewAdoptionRepo()
	case "sqlite":
		path := e.dbPath
		if path == "" {
			dir, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			path = filepath.Join(dir, ".petctl", "adoptions.db")
		}
		db, err := sqlite.Open(path)
		if err != nil {
			return err
		}
		e.db = db
		repo = sqlite.NewAdoptionsRepo(db)
	default:
		return fmt.Errorf("unknown store %q (memory|sqlite)", e.store)
	}

	lvl := logger.Warn
	if e.verbose {
		lvl = logger.Info
	}
	svc := adoptions.NewService(e.catalog, repo, adoptions.Options{
		Logger: logger.New(logger.Options{Level: lvl, App: "petctl", Output: cmd.ErrOrStderr()}),
	})
	e.registry, err = svc.Registry(e.session)
	return err
}
