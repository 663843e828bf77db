package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"
	"learnhub_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// QuizQuestion is the only shape ever handed to callers: exactly four options
// and a correct index into them. Provider output that does not fit is dropped,
// never partially surfaced.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"

	minQuestionCount = 1
	maxQuestionCount = 10
)

func validDifficulty(d string) bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// QuizService generates quiz questions, answer explanations and performance
// assessments. It tries each configured provider once, in preference order,
// and falls back to built-in content when none succeeds: after validation
// passes, the generate methods cannot fail.
type QuizService struct {
	providers []CompletionProvider
}

func NewQuizService(providers []CompletionProvider) *QuizService {
	return &QuizService{providers: providers}
}

// complete runs the provider cascade and returns the first usable text, or ""
// when every provider failed. Failures are logged and counted, never raised.
func (s *QuizService) complete(ctx context.Context, system, user string, temperature float64, maxTokens int) string {
	for _, p := range s.providers {
		text, err := p.Complete(ctx, system, user, temperature, maxTokens)
		if err != nil {
			monitoring.ProviderAttempts.WithLabelValues(p.Name(), "failure").Inc()
			logger.Log.Warn("AI provider call failed",
				zap.String("provider", p.Name()),
				zap.Error(err))
			continue
		}
		monitoring.ProviderAttempts.WithLabelValues(p.Name(), "success").Inc()
		return text
	}
	return ""
}

// GenerateQuestions returns exactly count questions for the category. Parsed
// provider output is truncated to count, or padded with fallback questions
// appended after the parsed ones.
func (s *QuizService) GenerateQuestions(ctx context.Context, category, difficulty string, count int) ([]QuizQuestion, error) {
	if !model.ValidCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", util.ErrInvalidRequest, category)
	}
	if !validDifficulty(difficulty) {
		return nil, fmt.Errorf("%w: unknown difficulty %q", util.ErrInvalidRequest, difficulty)
	}
	if count < minQuestionCount || count > maxQuestionCount {
		return nil, fmt.Errorf("%w: count must be between %d and %d", util.ErrInvalidRequest, minQuestionCount, maxQuestionCount)
	}

	prompt := buildQuestionPrompt(category, difficulty, count)
	text := s.complete(ctx, questionSystemPrompt, prompt, 0.7, 2000)

	questions := parseQuestions(text)
	if len(questions) >= count {
		return questions[:count], nil
	}

	shortfall := count - len(questions)
	extras := fallbackQuestions(category, shortfall)
	if len(extras) > 0 {
		monitoring.QuizFallbacks.WithLabelValues(category).Add(float64(len(extras)))
	}
	logger.Log.Info("generated quiz questions",
		zap.String("category", category),
		zap.Int("parsed", len(questions)),
		zap.Int("fallback", len(extras)))
	return append(questions, extras...), nil
}

// GenerateExplanation produces a short encouraging explanation for one
// answered question. The raw provider text is returned verbatim, trimmed.
func (s *QuizService) GenerateExplanation(ctx context.Context, question, userAnswer, correctAnswer string, isCorrect bool) (string, error) {
	if question == "" || userAnswer == "" || correctAnswer == "" {
		return "", fmt.Errorf("%w: question, user answer and correct answer are required", util.ErrInvalidRequest)
	}

	result := "Incorrect"
	if isCorrect {
		result = "Correct"
	}
	prompt := fmt.Sprintf(`Question: %s
User's Answer: %s
Correct Answer: %s
Result: %s

Provide a clear, encouraging explanation that:
1. Explains why the correct answer is right
2. If incorrect, explains the mistake gently
3. Provides additional learning context
4. Encourages continued learning

Keep it concise but informative (2-3 sentences).`, question, userAnswer, correctAnswer, result)

	if text := s.complete(ctx, explanationSystemPrompt, prompt, 0.6, 300); text != "" {
		return strings.TrimSpace(text), nil
	}

	if isCorrect {
		return "Excellent work! You demonstrated a solid understanding of this concept.", nil
	}
	return fmt.Sprintf("The correct answer is '%s'. This is a great learning opportunity!", correctAnswer), nil
}

// GenerateAssessment produces motivational feedback for a finished quiz.
// timeTaken is optional seconds.
func (s *QuizService) GenerateAssessment(ctx context.Context, score, total int, category string, timeTaken *int) (string, error) {
	if total <= 0 {
		return "", fmt.Errorf("%w: total must be positive", util.ErrInvalidRequest)
	}
	if score < 0 || score > total {
		return "", fmt.Errorf("%w: score must be between 0 and total", util.ErrInvalidRequest)
	}
	if !model.ValidCategory(category) {
		return "", fmt.Errorf("%w: unknown category %q", util.ErrInvalidRequest, category)
	}

	percentage := int(math.Round(float64(score) / float64(total) * 100))
	timeInfo := "Not recorded"
	if timeTaken != nil {
		timeInfo = fmt.Sprintf("%d seconds", *timeTaken)
	}

	prompt := fmt.Sprintf(`A student completed a %s quiz with the following results:
- Score: %d/%d (%d%%)
- Time taken: %s

Provide a personalized assessment that:
1. Acknowledges their performance level
2. Gives specific learning recommendations for %s
3. Provides encouragement and next steps
4. Suggests areas for improvement if needed

Keep it motivational and actionable (2-3 sentences).`, category, score, total, percentage, timeInfo, category)

	if text := s.complete(ctx, assessmentSystemPrompt, prompt, 0.7, 250); text != "" {
		return strings.TrimSpace(text), nil
	}

	// Bracket boundary is inclusive at 80: a 4/5 run reads as mastery.
	switch {
	case percentage >= 80:
		return fmt.Sprintf("Outstanding performance! You've mastered %s fundamentals. Consider exploring advanced topics next.", category), nil
	case percentage >= 60:
		return fmt.Sprintf("Good progress in %s! Focus on the areas you missed and try some practice exercises.", category), nil
	default:
		return fmt.Sprintf("Keep learning! %s takes practice. Review the fundamentals and try again.", category), nil
	}
}

const (
	questionSystemPrompt    = "You are an expert educator and quiz creator. Generate high-quality, educational quiz questions with detailed explanations."
	explanationSystemPrompt = "You are a supportive AI tutor. Provide clear, encouraging explanations that help students learn from their answers."
	assessmentSystemPrompt  = "You are an encouraging AI learning coach. Provide personalized, actionable feedback that motivates continued learning."
)

var categoryContexts = map[string]string{
	"python":          "Python programming language concepts, syntax, data structures, and best practices",
	"web-development": "HTML, CSS, JavaScript, DOM manipulation, and web development concepts",
	"sql":             "SQL database queries, data manipulation, table relationships, and database management",
	"php":             "PHP server-side programming, syntax, functions, and web application development",
}

func buildQuestionPrompt(category, difficulty string, count int) string {
	context, ok := categoryContexts[category]
	if !ok {
		context = category + " programming concepts"
	}

	return fmt.Sprintf(`Generate %d multiple-choice quiz questions about %s.

Requirements:
- Difficulty level: %s
- Each question should have 4 options (A, B, C, D)
- Include detailed explanations for the correct answers
- Questions should be practical and test real understanding
- Avoid trick questions, focus on educational value

Format the response as JSON with this structure:
[
    {
        "question": "Question text here?",
        "options": ["Option A", "Option B", "Option C", "Option D"],
        "correct": 0,
        "explanation": "Detailed explanation of why this answer is correct and educational context."
    }
]`, count, context, difficulty)
}

// parseQuestions extracts the JSON array between the first '[' and the last
// ']' (models often wrap the payload in prose) and keeps only items that fully
// match the question shape. Any decode failure yields an empty slice.
func parseQuestions(text string) []QuizQuestion {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return nil
	}

	var raw []QuizQuestion
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		logger.Log.Warn("failed to decode quiz questions from provider output", zap.Error(err))
		return nil
	}

	questions := make([]QuizQuestion, 0, len(raw))
	for _, q := range raw {
		if q.Question == "" || q.Explanation == "" {
			continue
		}
		if len(q.Options) != 4 {
			continue
		}
		if q.Correct < 0 || q.Correct > 3 {
			continue
		}
		questions = append(questions, q)
	}
	return questions
}

// fallbackPool holds one canonical question per category; cycled when more
// are requested than the pool holds.
var fallbackPool = map[string][]QuizQuestion{
	"python": {
		{
			Question:    "What is the correct way to create a list in Python?",
			Options:     []string{"list = []", "list = ()", "list = {}", "list = ''"},
			Correct:     0,
			Explanation: "Lists in Python are created using square brackets []. This creates an empty list that can store multiple items.",
		},
	},
	"web-development": {
		{
			Question: "What does HTML stand for?",
			Options: []string{
				"Hyper Text Markup Language",
				"High Tech Modern Language",
				"Home Tool Markup Language",
				"Hyperlink Text Markup Language",
			},
			Correct:     0,
			Explanation: "HTML stands for HyperText Markup Language, the standard markup language for creating web pages.",
		},
	},
	"sql": {
		{
			Question:    "Which SQL command is used to retrieve data?",
			Options:     []string{"GET", "SELECT", "RETRIEVE", "FETCH"},
			Correct:     1,
			Explanation: "The SELECT command is the standard SQL statement used to retrieve data from database tables.",
		},
	},
	"php": {
		{
			Question:    "How do you start a PHP script?",
			Options:     []string{"<php>", "<?php", "<script>", "<?"},
			Correct:     1,
			Explanation: "PHP scripts begin with the opening tag <?php which tells the server to process the following code as PHP.",
		},
	},
}

// fallbackQuestions returns count questions for the category, cycling the pool
// as needed. A category with no pool entry yields an empty result.
func fallbackQuestions(category string, count int) []QuizQuestion {
	pool := fallbackPool[category]
	if len(pool) == 0 || count <= 0 {
		return nil
	}

	result := make([]QuizQuestion, 0, count)
	for i := 0; len(result) < count; i++ {
		result = append(result, pool[i%len(pool)])
	}
	return result
}
