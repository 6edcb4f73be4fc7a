package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Nanford/resumai/internal/advice"
	"github.com/Nanford/resumai/internal/config"
	"github.com/Nanford/resumai/internal/i18n"
	"github.com/Nanford/resumai/internal/llm"
	"github.com/Nanford/resumai/internal/observability"
	"github.com/Nanford/resumai/internal/types"
)

var (
	adviseText    string
	adviseFile    string
	adviseMode    string
	adviseVerbose bool
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Get career advice for a question",
	Long:  "Sends one question to the configured model and prints the advice reply as markdown. Without a credential the canned mock advice is used, which is handy for trying the output format offline.",
	RunE:  runAdvise,
}

func init() {
	adviseCmd.Flags().StringVarP(&adviseText, "text", "t", "", "Question text")
	adviseCmd.Flags().StringVarP(&adviseFile, "file", "f", "", "Read the question from a file (- for stdin)")
	adviseCmd.Flags().StringVarP(&adviseMode, "mode", "m", "standard", "Response mode: standard or thinking")
	adviseCmd.Flags().BoolVarP(&adviseVerbose, "verbose", "v", false, "Print the structured record and thought process")
	rootCmd.AddCommand(adviseCmd)
}

func readQuestion() (string, error) {
	if adviseText != "" {
		return adviseText, nil
	}
	if adviseFile == "" {
		return "", fmt.Errorf("either --text or --file is required")
	}

	var (
		data []byte
		err  error
	)
	if adviseFile == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(adviseFile)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read question: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("question is empty")
	}
	return text, nil
}

func runAdvise(_ *cobra.Command, _ []string) error {
	text, err := readQuestion()
	if err != nil {
		return err
	}

	mode, err := types.ParseMode(adviseMode)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Keep stdout clean for the reply; diagnostics go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	svc, err := advice.NewService(context.Background(), advice.ServiceConfig{
		Provider:      llm.Provider(cfg.Provider),
		APIKey:        cfg.APIKey(),
		BaseURL:       cfg.DeepSeekURL,
		StandardModel: cfg.StandardModel,
		ThinkingModel: cfg.ThinkingModel,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create advice service: %w", err)
	}
	defer func() { _ = svc.Close() }()

	record := svc.GetAdvice(context.Background(), text, mode)

	tr := advice.TranslatorFor(text, i18n.MustLoad(cfg.Language))
	fmt.Fprintln(os.Stdout, advice.FormatMarkdown(record, tr))

	if adviseVerbose {
		printer := observability.NewPrinter(os.Stdout)
		fmt.Fprintln(os.Stdout)
		printer.PrintAdvice(&record)
		printer.PrintThoughtProcess(record.ThoughtProcess)
	}
	return nil
}
