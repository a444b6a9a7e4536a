package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Amrit-Raj-17/Argn/pkg/analysis"
	"github.com/Amrit-Raj-17/Argn/pkg/logger"
	"github.com/Amrit-Raj-17/Argn/pkg/nlp"
	"github.com/Amrit-Raj-17/Argn/pkg/resume"
	"github.com/Amrit-Raj-17/Argn/pkg/similarity"
	"github.com/Amrit-Raj-17/Argn/pkg/storage/upload"
	"github.com/Amrit-Raj-17/Argn/pkg/vacancy"
)

var (
	scoreResume    string
	scoreRole      string
	scoreType      string
	scoreJSON      bool
	scoreSource    string
	scoreCatalog   string
	scoreUploadDir string
	scoreDebug     bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Rank job postings for a resume file",
	Long: `Extracts the text of a PDF or DOCX resume, normalizes it and scores it
against the postings of the configured job source. Postings are printed
highest score first.`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

var (
	highScore = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")).Bold(true)
	midScore  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
	lowScore  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
	mutedText = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "path to a .pdf or .docx resume")
	scoreCmd.Flags().StringVar(&scoreRole, "role", "", "job role, e.g. \"Python Developer\"")
	scoreCmd.Flags().StringVar(&scoreType, "type", "", "employment type, e.g. Full-time")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "output results as JSON")
	scoreCmd.Flags().StringVar(&scoreSource, "source", vacancy.SourceStatic, "job source: static or catalog")
	scoreCmd.Flags().StringVar(&scoreCatalog, "catalog", "", "YAML job catalog for --source catalog")
	scoreCmd.Flags().StringVar(&scoreUploadDir, "upload-dir", filepath.Join(os.TempDir(), "atsctl"), "directory for temporary copies of the resume")
	scoreCmd.Flags().BoolVarP(&scoreDebug, "debug", "d", false, "verbose/debug output")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	source, err := vacancy.NewSource(scoreSource, scoreCatalog)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if scoreDebug {
		log, err := logger.New("local", "debug")
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
		ctx = logger.ContextWithLogger(ctx, log)
	}

	req := analysis.Request{Role: scoreRole, Type: scoreType}
	if scoreResume != "" {
		data, err := os.ReadFile(scoreResume)
		if err != nil {
			return fmt.Errorf("read resume: %w", err)
		}
		req.File = &analysis.Upload{Filename: filepath.Base(scoreResume), Data: data}
	}

	uc := analysis.NewService(resume.NewParser(), nlp.Default(), similarity.NewScorer(), source, upload.NewStore(scoreUploadDir))
	jobs, err := uc.Analyze(ctx, req)
	if err != nil {
		return err
	}

	if scoreJSON {
		return outputScoreJSON(cmd, jobs)
	}
	outputScoreTable(cmd, jobs)
	return nil
}

func outputScoreJSON(cmd *cobra.Command, jobs []vacancy.Posting) error {
	data, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputScoreTable(cmd *cobra.Command, jobs []vacancy.Posting) {
	if len(jobs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No postings found.")
		return
	}
	for i, j := range jobs {
		// Format: [N] 33.61  Title - Company (Location, Type)
		fmt.Fprintf(cmd.OutOrStdout(), "  [%d] %s  %s - %s %s\n", i+1, scoreStyle(j.Score).Render(fmt.Sprintf("%6.2f", j.Score)),
			j.Title, j.Company, mutedText.Render("("+j.Location+", "+j.Type+")"))
	}
}

func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 60:
		return highScore
	case score >= 30:
		return midScore
	default:
		return lowScore
	}
}
