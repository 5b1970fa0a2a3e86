package cli

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trivia-quiz/internal/config"
	"trivia-quiz/internal/history"
	"trivia-quiz/internal/logger"
	"trivia-quiz/internal/opentdb"
	"trivia-quiz/internal/quiz"
)

type playOptions struct {
	amount     int
	category   int
	difficulty string
	qtype      string
	timer      int
	dbPath     string
}

func newPlayCmd(configPath *string) *cobra.Command {
	opts := playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a timed trivia round",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), *configPath, opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&opts.amount, "amount", 0, "number of questions (default from config)")
	cmd.Flags().IntVar(&opts.category, "category", 0, "category id, 0 for any (see 'categories')")
	cmd.Flags().StringVar(&opts.difficulty, "difficulty", "", "any, easy, medium, or hard")
	cmd.Flags().StringVar(&opts.qtype, "type", "", "any, multiple, or boolean")
	cmd.Flags().IntVar(&opts.timer, "timer", 0, "seconds per question")
	cmd.Flags().StringVar(&opts.dbPath, "db", "", "path to history database")
	return cmd
}

func runPlay(ctx context.Context, configPath string, opts playOptions, in io.Reader, out io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		return err
	}
	defer log.Sync()

	gameCfg, err := buildGameConfig(cfg, opts)
	if err != nil {
		return err
	}

	client := opentdb.NewClientWithBaseURL(&http.Client{Timeout: 10 * time.Second}, cfg.API.BaseURL)
	fetcher := quiz.NewOpenTDBFetcher(client)

	dbPath := cfg.History.Path
	if opts.dbPath != "" {
		dbPath = opts.dbPath
	}
	store, err := history.NewStore(dbPath)
	if err != nil {
		// History is a convenience, not a requirement for playing.
		log.Warn("history store unavailable", zap.String("path", dbPath), zap.Error(err))
		store = nil
	} else {
		defer store.Close()
	}

	session := quiz.NewSession(gameCfg)
	runner := quiz.NewRunner(session, fetcher, log)
	return runGame(ctx, runner, session, store, log, in, out)
}

func buildGameConfig(cfg config.Config, opts playOptions) (quiz.Config, error) {
	amount := cfg.Game.Amount
	if opts.amount > 0 {
		amount = opts.amount
	}

	category := cfg.Game.Category
	if opts.category > 0 {
		category = opts.category
	}

	rawDifficulty := cfg.Game.Difficulty
	if opts.difficulty != "" {
		rawDifficulty = opts.difficulty
	}
	difficulty, err := quiz.ParseDifficulty(rawDifficulty)
	if err != nil {
		return quiz.Config{}, err
	}

	rawType := cfg.Game.Type
	if opts.qtype != "" {
		rawType = opts.qtype
	}
	questionType, err := quiz.ParseQuestionType(rawType)
	if err != nil {
		return quiz.Config{}, err
	}

	timer := cfg.Game.TimerSeconds
	if opts.timer > 0 {
		timer = opts.timer
	}

	gameCfg := quiz.Config{
		Amount:       amount,
		Category:     category,
		Difficulty:   difficulty,
		Type:         questionType,
		TimerSeconds: timer,
	}
	return gameCfg, gameCfg.Validate()
}
