package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/resume-skill-ranker/internal/config"
	"alfredoptarigan/resume-skill-ranker/internal/repositories"
	"alfredoptarigan/resume-skill-ranker/internal/services"
	"alfredoptarigan/resume-skill-ranker/internal/skills"
)

func newVocabularyCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocabulary",
		Short: "Inspect or seed the skill vocabulary",
	}

	cmd.AddCommand(newVocabularyListCommand(opts))
	cmd.AddCommand(newVocabularySeedCommand(opts))
	cmd.AddCommand(newVocabularyExportCommand())

	return cmd
}

func newVocabularyListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the vocabulary the server would load, one phrase per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.cfg.Validate(); err != nil {
				return err
			}

			var repo repositories.VocabularyRepository
			if opts.cfg.Vocabulary.Source == config.VocabularySourcePostgres {
				db, err := config.InitDatabase(opts.cfg, opts.log)
				if err != nil {
					return err
				}
				repo = repositories.NewVocabularyRepository(db)
			}

			vocab, err := services.LoadVocabulary(cmd.Context(), opts.cfg.Vocabulary.Source, opts.cfg.Vocabulary.File, repo)
			if err != nil {
				return err
			}

			return printVocabulary(cmd, vocab)
		},
	}
}

func printVocabulary(cmd *cobra.Command, vocab *skills.Vocabulary) error {
	out := cmd.OutOrStdout()
	for _, p := range vocab.Phrases() {
		if _, err := fmt.Fprintln(out, p); err != nil {
			return err
		}
	}
	return nil
}

func newVocabularySeedCommand(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the skill_keywords table with a vocabulary YAML file",
		Long: "Replace the skill_keywords table with the phrases of a vocabulary YAML file.\n" +
			"Without --file the built-in vocabulary is written.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := config.InitDatabase(opts.cfg, opts.log)
			if err != nil {
				return err
			}

			n, err := seed(cmd.Context(), repositories.NewVocabularyRepository(db), file)
			if err != nil {
				return err
			}

			opts.log.Info("✅ Skill vocabulary seeded", zap.Int("phrases", n), zap.String("file", file))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "vocabulary YAML file (default is the built-in vocabulary)")

	return cmd
}

// seed replaces the stored vocabulary with the phrases of file, or of the built-in
// document when file is empty, and returns how many phrases were written.
func seed(ctx context.Context, repo repositories.VocabularyRepository, file string) (int, error) {
	vocab, err := seedVocabulary(file)
	if err != nil {
		return 0, err
	}
	if err := repo.ReplaceAll(ctx, vocab.Phrases()); err != nil {
		return 0, err
	}
	return vocab.Len(), nil
}

func seedVocabulary(file string) (*skills.Vocabulary, error) {
	if file == "" {
		return skills.ParseVocabularyYAML(skills.DefaultVocabularyYAML())
	}
	return skills.LoadVocabularyFile(file)
}

func newVocabularyExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the built-in vocabulary YAML, as a starting point for VOCABULARY_FILE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data := skills.DefaultVocabularyYAML()
			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("cannot write vocabulary file %s: %w", output, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file (default is stdout)")

	return cmd
}
