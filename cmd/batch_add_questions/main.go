package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"dcn-community/internal/config"
	"dcn-community/internal/database"
	"dcn-community/internal/domain"
	"dcn-community/internal/dto"
	"dcn-community/internal/logger"
	"dcn-community/internal/repository"
	"dcn-community/internal/service"

	"go.uber.org/zap"
)

// questionFile is the JSON layout accepted by the batch importer.
type questionFile struct {
	QuizID    string              `json:"quiz_id"`
	Questions []dto.QuestionInput `json:"questions"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: batch_add_questions <questions.json>")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Get().Info("Batch process starting up...", zap.String("file", os.Args[1]))

	input, err := loadQuestionFile(os.Args[1])
	if err != nil {
		logger.Get().Fatal("Failed to read question file", zap.Error(err))
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Get().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	quizService := service.NewQuizAdminService(
		repository.NewQuizDatabaseAdapter(db),
		repository.NewQuizSessionDatabaseAdapter(db),
		repository.NewTransactionManagerAdapter(db),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	added, err := quizService.AddQuestions(ctx, input.QuizID, input.Questions)
	if err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			for _, ve := range verrs {
				logger.Get().Error("Invalid question", zap.String("field", ve.Field), zap.String("message", ve.Message))
			}
		}
		logger.Get().Fatal("Batch process failed", zap.String("quiz_id", input.QuizID), zap.Error(err))
	}

	logger.Get().Info("Batch process completed successfully.",
		zap.String("quiz_id", input.QuizID),
		zap.Int("added", added))
}

func loadQuestionFile(path string) (*questionFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var qf questionFile
	if err := json.Unmarshal(raw, &qf); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	if qf.QuizID == "" {
		return nil, errors.New("quiz_id is required")
	}
	if len(qf.Questions) == 0 {
		return nil, errors.New("questions must not be empty")
	}
	return &qf, nil
}
