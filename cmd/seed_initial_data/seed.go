package main

import (
	"context"
	"fmt"

	"trivia-api/cmd/seed_initial_data/internal/seedmodels"
	"trivia-api/internal/domain"

	"go.uber.org/zap"
)

type seedStats struct {
	CategoriesCreated int
	QuestionsCreated  int
	QuestionsSkipped  int
}

func (s *seedStats) add(o seedStats) {
	s.CategoriesCreated += o.CategoriesCreated
	s.QuestionsCreated += o.QuestionsCreated
	s.QuestionsSkipped += o.QuestionsSkipped
}

// seeder inserts seed data idempotently, one transaction per category.
type seeder struct {
	tm         domain.TransactionManager
	categories domain.CategoryRepository
	questions  domain.QuestionRepository
	log        *zap.Logger
}

func firstN(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

func (s *seeder) seedCategory(ctx context.Context, seedCat seedmodels.SeedCategory) (seedStats, error) {
	var stats seedStats

	err := s.tm.WithTransaction(ctx, func(txCtx context.Context) error {
		stats = seedStats{}

		category, err := s.categories.GetCategoryByType(txCtx, seedCat.Type)
		if err != nil {
			return fmt.Errorf("error checking category %s: %w", seedCat.Type, err)
		}
		if category == nil {
			category = &domain.Category{Type: seedCat.Type}
			if err := s.categories.SaveCategory(txCtx, category); err != nil {
				return fmt.Errorf("failed to save category %s: %w", seedCat.Type, err)
			}
			stats.CategoriesCreated++
			s.log.Info("Created category", zap.Int64("id", category.ID), zap.String("type", category.Type))
		} else {
			s.log.Info("Category exists", zap.Int64("id", category.ID), zap.String("type", category.Type))
		}

		for _, sq := range seedCat.Questions {
			question := domain.NewQuestion(sq.Question, sq.Answer, category.ID, sq.Difficulty)
			if err := question.Validate(); err != nil {
				return fmt.Errorf("invalid seed question %q: %w", firstN(sq.Question, 30), err)
			}

			exists, err := s.questions.QuestionExists(txCtx, category.ID, question.Question)
			if err != nil {
				return fmt.Errorf("error checking question %q: %w", firstN(sq.Question, 30), err)
			}
			if exists {
				stats.QuestionsSkipped++
				continue
			}

			if err := s.questions.SaveQuestion(txCtx, question); err != nil {
				return fmt.Errorf("failed to save question %q: %w", firstN(sq.Question, 30), err)
			}
			stats.QuestionsCreated++
		}
		return nil
	})
	if err != nil {
		return seedStats{}, err
	}
	return stats, nil
}

// seedAll keeps going after a failed category and returns the first error.
func (s *seeder) seedAll(ctx context.Context, seedCats []seedmodels.SeedCategory) (seedStats, error) {
	var total seedStats
	var firstErr error
	for _, sc := range seedCats {
		stats, err := s.seedCategory(ctx, sc)
		if err != nil {
			s.log.Error("Error seeding category, transaction rolled back", zap.String("category", sc.Type), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		total.add(stats)
	}
	return total, firstErr
}
