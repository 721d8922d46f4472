package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/talentdesk/matcher/internal/ai"
	"github.com/talentdesk/matcher/internal/ai/gemini"
	"github.com/talentdesk/matcher/internal/logger"
	"github.com/talentdesk/matcher/internal/matchcache"
	"github.com/talentdesk/matcher/internal/matching"
	"github.com/talentdesk/matcher/internal/ranking"
	"github.com/talentdesk/matcher/internal/recruiting"
	"github.com/talentdesk/matcher/internal/secrets"
)

const (
	PromptShowBreakdown = "Show candidate breakdown"
	PromptMarkNotAMatch = "Mark candidate as not-a-match"
	PromptMarkTodo      = "Mark candidate as todo"
	PromptDraftOutreach = "Draft outreach message"
	PromptDumpToFile    = "Dump results to file"
	PromptNextPage      = "Next page"
	PromptExit          = "Exit"
	PromptBack          = "back"
)

var errExit = errors.New("exit requested")

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank the candidate pool against one vacancy",
	Run: func(cmd *cobra.Command, _ []string) {
		rank(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().String("vacancy", "", "id of the vacancy to rank against (required)")
	rankCmd.Flags().Int("page", 1, "result page to show")
	rankCmd.Flags().Int("page-size", 0, "results per page (overrides the config value)")
	rankCmd.Flags().String("search", "", "substring filter over candidate name/company/title")
	rankCmd.Flags().String("status", "", "status filter: todo (default) or all")
	rankCmd.Flags().BoolP("auto-approve", "y", false, "print the ranking and exit without the interactive menu")

	if err := rankCmd.MarkFlagRequired("vacancy"); err != nil {
		log.Fatalf("marking vacancy flag required: %v", err)
	}
}

// rank is the main command of the cli.
func rank(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the matcher", zap.String("version", version))

	if config == nil {
		logger.Fatal("config is required")
	}
	if config.VacanciesFile == "" || config.CandidatesFile == "" {
		logger.Fatal("vacancies-file and candidates-file are required in the configuration")
	}

	vacancies, err := recruiting.LoadVacanciesFile(config.VacanciesFile)
	if err != nil {
		logger.Fatal("loading vacancies snapshot", zap.Error(err))
	}

	candidates, err := recruiting.LoadCandidatesFile(config.CandidatesFile)
	if err != nil {
		logger.Fatal("loading candidates snapshot", zap.Error(err))
	}

	logger.Info("snapshots loaded",
		zap.Int("vacancies", vacancies.Len()),
		zap.Int("candidates", candidates.Len()),
	)

	statusFile := config.StatusFile
	statuses, err := recruiting.LoadStatusBook(statusFile)
	if err != nil {
		logger.Fatal("loading status file", zap.Error(err))
	}

	store, err := buildStore(ctx, config.Cache, logger)
	if err != nil {
		logger.Fatal("building match cache", zap.Error(err))
	}

	engine := matching.NewEngine(matchingConfig(config.Matching))

	workers := 0
	if config.Matching != nil {
		workers = config.Matching.Workers
	}
	service := ranking.NewService(engine, store, statuses, logger, workers)

	req, err := buildRequest(cmd, config)
	if err != nil {
		logger.Fatal("building ranking request", zap.Error(err))
	}

	page, err := service.Rank(ctx, vacancies, candidates, req)
	if err != nil {
		logger.Fatal("ranking failed", zap.Error(err))
	}

	vacancy := vacancies.FindByID(req.VacancyID)
	printPage(page, candidates, vacancy, req.PageSize)

	if len(page.Diagnostics) > 0 {
		logger.Warn("some candidates were scored with degraded data",
			zap.Int("count", len(page.Diagnostics)),
		)
	}

	if cmd.Flag("auto-approve").Value.String() == "true" {
		return
	}

	menu := promptui.Select{
		Label: "Action",
		Items: []string{
			PromptShowBreakdown,
			PromptMarkNotAMatch,
			PromptMarkTodo,
			PromptDraftOutreach,
			PromptDumpToFile,
			PromptNextPage,
			PromptExit,
		},
	}

	for {
		_, action, err := menu.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		page, err = handleAction(ctx, action, &session{
			config:     config,
			logger:     logger,
			service:    service,
			vacancies:  vacancies,
			candidates: candidates,
			statuses:   statuses,
			statusFile: statusFile,
			request:    &req,
			page:       page,
		})
		if err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

// session bundles everything the interactive menu operates on.
type session struct {
	config     *Config
	logger     *zap.Logger
	service    *ranking.Service
	vacancies  *recruiting.Vacancies
	candidates *recruiting.Candidates
	statuses   *recruiting.StatusBook
	statusFile string
	request    *ranking.Request
	page       *ranking.Page
}

func handleAction(ctx context.Context, action string, s *session) (*ranking.Page, error) {
	switch action {
	case PromptShowBreakdown:
		return s.page, showBreakdown(s)
	case PromptMarkNotAMatch:
		return s.rerank(ctx, markStatus(s, recruiting.StatusNotAMatch))
	case PromptMarkTodo:
		return s.rerank(ctx, markStatus(s, recruiting.StatusTodo))
	case PromptDraftOutreach:
		return s.page, draftOutreach(ctx, s)
	case PromptDumpToFile:
		filename, err := dumpToTmpFile(s.page)
		if err != nil {
			return s.page, fmt.Errorf("dump results to file: %w", err)
		}
		s.logger.Info("dumping results to file", zap.String("filename", filename))
		return s.page, nil
	case PromptNextPage:
		s.request.Page++
		return s.rerank(ctx, nil)
	case PromptExit:
		s.logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return s.page, errExit
	default:
		return s.page, fmt.Errorf("invalid action: %s", action)
	}
}

// rerank refreshes the current page after a state change; a prior error
// passes straight through.
func (s *session) rerank(ctx context.Context, err error) (*ranking.Page, error) {
	if err != nil {
		return s.page, err
	}

	page, err := s.service.Rank(ctx, s.vacancies, s.candidates, *s.request)
	if err != nil {
		return s.page, err
	}

	// Walked past the last page; wrap around to the first.
	if len(page.Results) == 0 && s.request.Page > 1 {
		s.request.Page = 1
		if page, err = s.service.Rank(ctx, s.vacancies, s.candidates, *s.request); err != nil {
			return s.page, err
		}
	}

	printPage(page, s.candidates, s.vacancies.FindByID(s.request.VacancyID), s.request.PageSize)
	s.page = page
	return page, nil
}

// pickResult lets the reviewer choose one ranked candidate from the page.
func pickResult(s *session) (*matching.MatchResult, error) {
	if len(s.page.Results) == 0 {
		return nil, errors.New("no results on the current page")
	}

	items := make([]string, 0, len(s.page.Results)+1)
	for _, result := range s.page.Results {
		label := fmt.Sprintf("%s %s / score %d",
			result.CandidateID, candidateName(s.candidates, result.CandidateID), result.OverallScore,
		)
		items = append(items, label)
	}

	prompt := promptui.Select{
		Label: "Choose a candidate and press ENTER",
		Items: append(items, PromptBack),
	}

	_, selected, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	if selected == PromptBack {
		return nil, nil
	}

	candidateID := strings.Split(selected, " ")[0]
	for _, result := range s.page.Results {
		if result.CandidateID == candidateID {
			return result, nil
		}
	}
	return nil, fmt.Errorf("there is no such candidate id %s", candidateID)
}

func markStatus(s *session, status recruiting.Status) error {
	result, err := pickResult(s)
	if err != nil || result == nil {
		return err
	}

	s.statuses.Set(result.CandidateID, result.VacancyID, status)

	if s.statusFile != "" {
		if err := s.statuses.Save(s.statusFile); err != nil {
			return fmt.Errorf("saving status file: %w", err)
		}
	}

	s.logger.Info("candidate status updated",
		zap.String("candidate_id", result.CandidateID),
		zap.String("vacancy_id", result.VacancyID),
		zap.String("status", string(status)),
	)
	return nil
}

func showBreakdown(s *session) error {
	result, err := pickResult(s)
	if err != nil || result == nil {
		return err
	}

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Printf("\n%s\n\n", pretty)
	return nil
}

func draftOutreach(ctx context.Context, s *session) error {
	writer, err := newOutreachWriter(ctx, s.config.AI, s.logger)
	if err != nil {
		return fmt.Errorf("building outreach writer: %w", err)
	}

	result, err := pickResult(s)
	if err != nil || result == nil {
		return err
	}

	candidate := s.candidates.FindByID(result.CandidateID)
	vacancy := s.vacancies.FindByID(result.VacancyID)

	draft, err := writer.Draft(ctx, candidate, vacancy, result)
	if err != nil {
		return fmt.Errorf("drafting outreach message: %w", err)
	}

	fmt.Printf("\n%s\n\n", draft.Message)
	return nil
}

func newOutreachWriter(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.OutreachWriter, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("ai is not enabled in the configuration")
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
	if cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	writerLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", generator.Model()),
	)

	return gemini.NewWriter(generator, writerLogger, cfg.Gemini.MaxLogLength), nil
}

func buildStore(ctx context.Context, cfg *CacheConfig, logger *zap.Logger) (matchcache.Store, error) {
	backend := "memory"
	if cfg != nil && cfg.Backend != "" {
		backend = strings.ToLower(cfg.Backend)
	}

	switch backend {
	case "memory":
		return matchcache.NewMemory(), nil
	case "redis":
		if cfg.RedisURL == "" {
			return nil, errors.New("cache.redis-url is required for the redis backend")
		}
		ttl := time.Duration(cfg.TTLMinutes) * time.Minute
		store, err := matchcache.NewRedis(ctx, cfg.RedisURL, ttl)
		if err != nil {
			return nil, err
		}
		logger.Info("using redis match cache", zap.Duration("ttl", ttl))
		return store, nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", backend)
	}
}

func matchingConfig(cfg *MatchingConfig) matching.Config {
	if cfg == nil {
		return matching.Config{}
	}
	return matching.Config{
		Synonyms:         cfg.Synonyms,
		FuzzyFloor:       cfg.FuzzyFloor,
		StrongThreshold:  cfg.StrongThreshold,
		PartialThreshold: cfg.PartialThreshold,
		LocationPartial:  cfg.LocationPartial,
		IndustryNeutral:  cfg.IndustryNeutral,
		IndustryPartial:  cfg.IndustryPartial,
	}
}

func buildRequest(cmd *cobra.Command, config *Config) (ranking.Request, error) {
	pageSize := config.PageSize
	if flagSize, err := cmd.Flags().GetInt("page-size"); err == nil && flagSize > 0 {
		pageSize = flagSize
	}
	if pageSize == 0 {
		pageSize = 10
	}

	page, err := cmd.Flags().GetInt("page")
	if err != nil {
		return ranking.Request{}, err
	}

	status := config.Status
	if flagStatus, err := cmd.Flags().GetString("status"); err == nil && flagStatus != "" {
		status = flagStatus
	}

	vacancyID, err := cmd.Flags().GetString("vacancy")
	if err != nil {
		return ranking.Request{}, err
	}

	search, err := cmd.Flags().GetString("search")
	if err != nil {
		return ranking.Request{}, err
	}

	return ranking.Request{
		VacancyID: vacancyID,
		Page:      page,
		PageSize:  pageSize,
		Search:    search,
		Status:    status,
	}, nil
}

func candidateName(candidates *recruiting.Candidates, id string) string {
	if candidate := candidates.FindByID(id); candidate != nil {
		return candidate.Name
	}
	return "(unknown)"
}

func printPage(page *ranking.Page, candidates *recruiting.Candidates, vacancy *recruiting.Vacancy, pageSize int) {
	title := ""
	if vacancy != nil {
		title = vacancy.Title
	}
	fmt.Printf("\nVacancy: %s | %d candidates, page %d of %d\n\n", title, page.Total, page.PageNumber, page.TotalPages)

	rank := (page.PageNumber-1)*pageSize + 1
	for i, result := range page.Results {
		fmt.Printf("%3d. [%3d] %s (%s)\n     %s\n",
			rank+i, result.OverallScore, candidateName(candidates, result.CandidateID), result.CandidateID, result.Explanation,
		)
	}
	fmt.Println()
}

// dumpToTmpFile writes the current page as indented JSON to a temp file.
func dumpToTmpFile(page *ranking.Page) (string, error) {
	file, err := os.CreateTemp("", "ranking_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(page); err != nil {
		return "", err
	}
	return file.Name(), nil
}
