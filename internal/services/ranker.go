package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/resume-skill-ranker/internal/models"
	"alfredoptarigan/resume-skill-ranker/internal/skills"
)

const unsupportedFormatMessage = "Unsupported file format. Please upload PDF or TXT files."

type RankerService interface {
	// Rank processes files in upload order and returns the ranked candidates.
	// Per-file problems become notices; only context cancellation aborts the batch.
	Rank(ctx context.Context, jobDescription string, files []*multipart.FileHeader) (*models.RankingResult, error)
	ExtractSkills(text string) []string
}

type rankerService struct {
	matcher   *skills.Matcher
	storage   StorageService
	extractor TextExtractorService
	log       *zap.Logger
}

func NewRankerService(
	matcher *skills.Matcher,
	storage StorageService,
	extractor TextExtractorService,
	log *zap.Logger,
) RankerService {
	return &rankerService{
		matcher:   matcher,
		storage:   storage,
		extractor: extractor,
		log:       log,
	}
}

// ExtractSkills implements RankerService.
func (r *rankerService) ExtractSkills(text string) []string {
	return r.matcher.Extract(text)
}

// Rank implements RankerService.
func (r *rankerService) Rank(ctx context.Context, jobDescription string, files []*multipart.FileHeader) (*models.RankingResult, error) {
	log := r.log.With(zap.String("batch_id", uuid.New().String()))

	result := &models.RankingResult{
		JobSkills:  []string{},
		Candidates: []models.Candidate{},
		Notices:    []models.Notice{},
	}

	if strings.TrimSpace(jobDescription) != "" {
		result.JobSkills = r.matcher.Extract(jobDescription)
		if len(result.JobSkills) == 0 {
			result.Notices = append(result.Notices, models.Notice{
				Level:   models.NoticeWarning,
				Message: "No known skills found in the job description.",
			})
		}
	}

	log.Info("📥 Ranking resumes",
		zap.Int("files", len(files)),
		zap.Strings("job_skills", result.JobSkills),
	)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("ranking cancelled: %w", err)
		}

		candidate, notices := r.processResume(log, file, result.JobSkills)
		result.Notices = append(result.Notices, notices...)
		if candidate != nil {
			result.Candidates = append(result.Candidates, *candidate)
		}
	}

	if result.Scored() {
		skills.RankByScore(result.Candidates, func(c models.Candidate) float64 {
			return *c.Score
		})
	}

	log.Info("✅ Ranking completed",
		zap.Int("candidates", len(result.Candidates)),
		zap.Int("notices", len(result.Notices)),
	)

	return result, nil
}

func (r *rankerService) processResume(log *zap.Logger, file *multipart.FileHeader, jobSkills []string) (*models.Candidate, []models.Notice) {
	log = log.With(zap.String("file", file.Filename))

	text, notices := r.readResume(log, file)
	if strings.TrimSpace(text) == "" {
		notices = append(notices, models.Notice{
			Level:    models.NoticeError,
			Filename: file.Filename,
			Message:  fmt.Sprintf("No text found in %s.", file.Filename),
		})
		return nil, notices
	}

	found := r.matcher.Extract(text)
	if len(found) == 0 {
		log.Debug("no skills matched")
		notices = append(notices, models.Notice{
			Level:    models.NoticeWarning,
			Filename: file.Filename,
			Message:  fmt.Sprintf("No skills found in %s.", file.Filename),
		})
		return nil, notices
	}

	candidate := &models.Candidate{
		Filename: file.Filename,
		Skills:   found,
	}
	if score, ok := skills.Score(found, jobSkills); ok {
		candidate.Score = &score
	}

	log.Debug("candidate accepted", zap.Strings("skills", found))
	return candidate, notices
}

// readResume stores a temporary copy of the upload, extracts its text and removes the
// copy again before returning, whether extraction succeeded or not.
func (r *rankerService) readResume(log *zap.Logger, file *multipart.FileHeader) (string, []models.Notice) {
	ext := strings.ToLower(filepath.Ext(file.Filename))

	path, err := r.storage.SaveFile(file)
	if err != nil {
		log.Warn("⚠️  Failed to store upload", zap.Error(err))
		return "", []models.Notice{fileError(file.Filename, describeReadError(ext, err))}
	}
	defer func() {
		if err := r.storage.DeleteFile(path); err != nil {
			log.Warn("⚠️  Failed to remove temporary file", zap.String("path", path), zap.Error(err))
		}
	}()

	text, err := r.extractor.ExtractText(path, ext)
	if err != nil {
		log.Warn("⚠️  Text extraction failed", zap.Error(err))
		return "", []models.Notice{fileError(file.Filename, describeReadError(ext, err))}
	}

	return text, nil
}

func fileError(filename, message string) models.Notice {
	return models.Notice{
		Level:    models.NoticeError,
		Filename: filename,
		Message:  message,
	}
}

func describeReadError(ext string, err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return unsupportedFormatMessage
	case errors.Is(err, ErrFileTooLarge):
		return fmt.Sprintf("Upload rejected: %v", err)
	case ext == ".pdf":
		return fmt.Sprintf("Error reading PDF file: %v", err)
	default:
		return fmt.Sprintf("Error reading file: %v", err)
	}
}
