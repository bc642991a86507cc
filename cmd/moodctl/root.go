package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mood-analyzer/internal/domain"
	"mood-analyzer/internal/features"
	"mood-analyzer/internal/repository"
	"mood-analyzer/internal/sentiment"
	"mood-analyzer/internal/service"
)

type app struct {
	verbose bool
	logger  *zap.Logger
	text    *service.TextAnalyzer
	voice   *service.VoiceAnalyzer
	facial  *service.FacialAnalyzer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "moodctl",
		Short:         "Offline mood scoring for text, voice features and facial frames",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log scoring details to stderr")

	root.AddCommand(
		a.textCmd(),
		a.voiceCmd(),
		a.facialCmd(),
		a.combineCmd(),
		a.normalizeCmd(),
		a.questionsCmd(),
	)
	return root
}

func (a *app) init() error {
	a.logger = zap.NewNop()
	if a.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		a.logger = l
	}
	vader := sentiment.NewVaderAnalyzer()
	a.text = service.NewTextAnalyzer(vader, sentiment.NewLexiconGeneral(vader), a.logger)
	a.voice = service.NewVoiceAnalyzer(a.logger)
	a.facial = service.NewFacialAnalyzer(a.logger)
	return nil
}

func (a *app) textCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "text [response...]",
		Short: "Score free-text answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			responses := args
			if file != "" {
				in, err := loadTextInput(file)
				if err != nil {
					return err
				}
				responses = append(responses, in...)
			}
			res := a.text.Analyze(cmd.Context(), responses)
			if res.Error != "" {
				return fmt.Errorf("%w: %s", domain.ErrNoInput, res.Error)
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML/JSON file with a responses list")
	return cmd
}

func (a *app) voiceCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "voice",
		Short: "Score per-question audio feature vectors and aggregate them",
		RunE: func(cmd *cobra.Command, args []string) error {
			questions, err := loadVoiceInput(file)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), a.scoreVoice(questions))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML/JSON file with audio features per question")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) scoreVoice(questions []domain.AudioFeatures) domain.VoiceReport {
	report := domain.VoiceReport{QuestionAnalyses: make(map[string]domain.VoiceAnalysis, len(questions))}
	results := make([]domain.VoiceAnalysis, 0, len(questions))
	for i, q := range questions {
		res := a.voice.Analyze(q)
		report.QuestionAnalyses[strconv.Itoa(i)] = res
		results = append(results, service.AggregatableVoice(res))
	}
	report.OverallAnalysis = service.AggregateVoice(results)
	return report
}

func (a *app) facialCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "facial",
		Short: "Score per-question facial frame features and aggregate them",
		RunE: func(cmd *cobra.Command, args []string) error {
			questions, err := loadFacialInput(file)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), a.scoreFacial(questions))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML/JSON file with frames per question")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) scoreFacial(questions []domain.FrameFeatures) domain.FacialReport {
	report := domain.FacialReport{QuestionAnalyses: make(map[string]domain.FacialAnalysis, len(questions))}
	indexed := make([]service.FacialQuestion, 0, len(questions))
	for i, q := range questions {
		idx := strconv.Itoa(i)
		res := a.facial.Analyze(q)
		report.QuestionAnalyses[idx] = res
		indexed = append(indexed, service.FacialQuestion{Index: idx, Analysis: service.AggregatableFacial(res)})
	}
	report.OverallAnalysis = service.AggregateFacial(indexed)
	return report
}

func (a *app) combineCmd() *cobra.Command {
	var textFile, voiceFile, facialFile string
	cmd := &cobra.Command{
		Use:   "combine",
		Short: "Combine text answers with voice and facial inputs into one mood",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var text *domain.TextAnalysis
			if textFile != "" {
				responses, err := loadTextInput(textFile)
				if err != nil {
					return err
				}
				if len(responses) > 0 {
					res := a.text.Analyze(ctx, responses)
					text = &res
				}
			}

			var voice *domain.VoiceAggregate
			if voiceFile != "" {
				questions, err := loadVoiceInput(voiceFile)
				if err != nil {
					return err
				}
				agg := a.scoreVoice(questions).OverallAnalysis
				voice = &agg
			}

			var facial *domain.FacialAggregate
			if facialFile != "" {
				questions, err := loadFacialInput(facialFile)
				if err != nil {
					return err
				}
				agg := a.scoreFacial(questions).OverallAnalysis
				facial = &agg
			}

			return writeJSON(cmd.OutOrStdout(), service.Combine(text, voice, facial))
		},
	}
	cmd.Flags().StringVar(&textFile, "text", "", "responses file")
	cmd.Flags().StringVar(&voiceFile, "voice", "", "audio features file")
	cmd.Flags().StringVar(&facialFile, "facial", "", "facial frames file")
	return cmd
}

func (a *app) normalizeCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Scale raw audio features into bounded ranges",
		RunE: func(cmd *cobra.Command, args []string) error {
			questions, err := loadVoiceInput(file)
			if err != nil {
				return err
			}
			out := make([]domain.FeatureVector, 0, len(questions))
			for _, q := range questions {
				out = append(out, features.NormalizeAudioFeatures(q.Features))
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML/JSON file with audio features per question")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) questionsCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Print the question catalog (file or built-in defaults)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var sources []repository.QuestionRepository
			if file != "" {
				sources = append(sources, repository.NewFileQuestionRepository(file))
			}
			questions, err := repository.NewQuestionCatalog(a.logger, sources...).List(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), questions)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "questions YAML/JSON file")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
