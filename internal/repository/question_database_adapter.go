package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"
	"trivia-api/internal/util"

	"github.com/jmoiron/sqlx"
)

const questionColumns = "id, question, answer, category, difficulty"

type QuestionDatabaseAdapter struct {
	db DBTX
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db DBTX) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// whereClause renders filter as a WHERE clause with ? bind vars.
func whereClause(filter domain.QuestionFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}
	if filter.CategoryID != nil {
		conds = append(conds, "category = ?")
		args = append(args, *filter.CategoryID)
	}
	if filter.SearchTerm != "" {
		conds = append(conds, "question ILIKE ?")
		args = append(args, util.ContainsPattern(filter.SearchTerm))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *QuestionDatabaseAdapter) ListQuestions(ctx context.Context, filter domain.QuestionFilter, offset, limit int) ([]*domain.Question, error) {
	where, args := whereClause(filter)
	query := "SELECT " + questionColumns + " FROM questions" + where + " ORDER BY id LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	db := GetExecutor(ctx, r.db)
	var rows []models.Question
	if err := db.SelectContext(ctx, &rows, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	questions := make([]*domain.Question, len(rows))
	for i := range rows {
		questions[i] = convertToDomainQuestion(&rows[i])
	}
	return questions, nil
}

func (r *QuestionDatabaseAdapter) CountQuestions(ctx context.Context, filter domain.QuestionFilter) (int, error) {
	where, args := whereClause(filter)
	query := "SELECT COUNT(*) FROM questions" + where

	db := GetExecutor(ctx, r.db)
	var count int
	if err := db.GetContext(ctx, &count, db.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

func (r *QuestionDatabaseAdapter) SaveQuestion(ctx context.Context, question *domain.Question) error {
	if question == nil {
		return fmt.Errorf("cannot save nil question")
	}

	query := `INSERT INTO questions (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4) RETURNING id`
	var id int64
	err := GetExecutor(ctx, r.db).GetContext(ctx, &id, query,
		question.Question, question.Answer, question.CategoryID, question.Difficulty)
	if err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}
	question.ID = id
	return nil
}

func (r *QuestionDatabaseAdapter) DeleteQuestion(ctx context.Context, id int64) (bool, error) {
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, "DELETE FROM questions WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected for question %d: %w", id, err)
	}
	return affected > 0, nil
}

func (r *QuestionDatabaseAdapter) QuestionExists(ctx context.Context, categoryID int64, text string) (bool, error) {
	query := "SELECT EXISTS (SELECT 1 FROM questions WHERE category = $1 AND question = $2)"
	var exists bool
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &exists, query, categoryID, text); err != nil {
		return false, fmt.Errorf("failed to check question existence: %w", err)
	}
	return exists, nil
}

func (r *QuestionDatabaseAdapter) FindQuizQuestion(ctx context.Context, criteria domain.QuizCriteria) (*domain.Question, error) {
	var conds []string
	var args []interface{}
	if criteria.FiltersByCategory() {
		conds = append(conds, "category = ?")
		args = append(args, criteria.CategoryID)
	}
	if len(criteria.PreviousQuestions) > 0 {
		conds = append(conds, "id NOT IN (?)")
		args = append(args, criteria.PreviousQuestions)
	}

	query := "SELECT " + questionColumns + " FROM questions"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	if criteria.Policy == domain.SelectFirst {
		query += " ORDER BY id"
	} else {
		query += " ORDER BY RANDOM()"
	}
	query += " LIMIT 1"

	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to build quiz query: %w", err)
	}

	db := GetExecutor(ctx, r.db)
	var row models.Question
	if err := db.GetContext(ctx, &row, db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find quiz question: %w", err)
	}
	return convertToDomainQuestion(&row), nil
}

func convertToDomainQuestion(q *models.Question) *domain.Question {
	return &domain.Question{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		CategoryID: q.Category,
		Difficulty: q.Difficulty,
	}
}
