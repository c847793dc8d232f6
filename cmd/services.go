package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/config"
	"github.com/abhisek/studyplan/internal/llm"
	"github.com/abhisek/studyplan/internal/oracle"
	"github.com/abhisek/studyplan/internal/schedule"
	"github.com/abhisek/studyplan/internal/store"
	"github.com/abhisek/studyplan/internal/viva"
)

// services bundles the wired service layer for one command invocation.
type services struct {
	store     *store.Store
	schedules *schedule.Service
	viva      *viva.Service
	cfg       config.Config
}

func (s *services) Close() {
	s.store.Close()
}

// buildServices opens the store and wires the oracle and services. When
// no model provider is configured the oracle degrades to its local
// fallbacks instead of failing.
func buildServices(cmd *cobra.Command) (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Model provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Planning needs --plan-file and assessments will run degraded.")
		provider = llm.Unavailable(err.Error())
	}

	orc := oracle.New(provider, oracle.DefaultConfig())
	schedules := schedule.NewService(st.ScheduleRepo(), orc)
	vivaSvc := viva.NewService(st.SessionRepo(), schedules, orc, viva.Config{
		PassThreshold:  cfg.PassThreshold,
		QuestionTarget: cfg.QuestionTarget,
		SessionTTL:     cfg.SessionTTL,
	})

	return &services{store: st, schedules: schedules, viva: vivaSvc, cfg: cfg}, nil
}
