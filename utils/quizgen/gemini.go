package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"lexify/models/goal"

	"github.com/go-resty/resty/v2"
)

// GeminiGenerator calls the Gemini generateContent endpoint and parses the
// strict JSON-array quiz contract out of the model's text response.
type GeminiGenerator struct {
	client *resty.Client
	apiKey string
	model  string
}

func NewGeminiGenerator(apiUrl, apiKey, model string) *GeminiGenerator {
	client := resty.New().
		SetBaseURL(apiUrl).
		SetTimeout(30 * time.Second)

	return &GeminiGenerator{
		client: client,
		apiKey: apiKey,
		model:  model,
	}
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// rawQuestion mirrors the JSON shape the model is instructed to return.
// CorrectAnswer is a pointer so a missing field can be coerced to 0.
type rawQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
	Difficulty    string   `json:"difficulty"`
	Concept       string   `json:"concept"`
}

func (g *GeminiGenerator) Generate(day, duration int, learningLanguage, nativeLanguage string) ([]goal.QuizQuestion, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("gemini api key not configured")
	}

	difficulty := DifficultyFor(day, duration)
	prompt := buildPrompt(day, duration, learningLanguage, nativeLanguage, difficulty)

	body := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}

	var result geminiResponse
	resp, err := g.client.R().
		SetQueryParam("key", g.apiKey).
		SetBody(body).
		SetResult(&result).
		Post(fmt.Sprintf("/models/%s:generateContent", g.model))
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("gemini returned status %d: %s", resp.StatusCode(), resp.String())
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	return parseQuiz(result.Candidates[0].Content.Parts[0].Text, difficulty)
}

// parseQuiz validates and normalizes the model output: it must be a JSON
// array of exactly five questions with exactly four options each. A missing
// correctAnswer is coerced to 0; missing difficulty/concept are defaulted.
func parseQuiz(text, difficulty string) ([]goal.QuizQuestion, error) {
	jsonText := strings.TrimSpace(text)
	// Strip markdown code fences if present
	jsonText = strings.ReplaceAll(jsonText, "```json", "")
	jsonText = strings.ReplaceAll(jsonText, "```", "")
	jsonText = strings.TrimSpace(jsonText)

	var raw []rawQuestion
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return nil, fmt.Errorf("response is not a JSON array: %w", err)
	}

	if len(raw) != goal.QuestionsPerQuiz {
		return nil, fmt.Errorf("expected %d questions, got %d", goal.QuestionsPerQuiz, len(raw))
	}

	questions := make([]goal.QuizQuestion, 0, len(raw))
	for i, q := range raw {
		if q.Question == "" || len(q.Options) != 4 {
			return nil, fmt.Errorf("invalid question structure at index %d", i)
		}

		correct := 0
		if q.CorrectAnswer != nil {
			correct = *q.CorrectAnswer
		}
		if correct < 0 || correct > 3 {
			return nil, fmt.Errorf("correct answer out of range at index %d", i)
		}

		if q.Difficulty == "" {
			q.Difficulty = difficulty
		}
		if q.Concept == "" {
			q.Concept = "general"
		}

		questions = append(questions, goal.QuizQuestion{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: correct,
			Difficulty:    q.Difficulty,
			Concept:       q.Concept,
		})
	}

	return questions, nil
}

func buildPrompt(day, duration int, learningLanguage, nativeLanguage, difficulty string) string {
	if nativeLanguage == "" {
		nativeLanguage = "English"
	}

	var difficultyDescription string
	switch difficulty {
	case DifficultyBeginner:
		difficultyDescription = "Very basic vocabulary, simple greetings, and common everyday words. Focus on foundational phrases and single words."
	case DifficultyIntermediate:
		difficultyDescription = "Common phrases, basic grammar structures, conversational expressions. Include sentence formation and practical usage."
	default:
		difficultyDescription = "Complex grammar, idiomatic expressions, nuanced vocabulary, cultural context. Challenge with sophisticated language concepts."
	}

	return fmt.Sprintf(`You are a language learning expert. Generate 5 multiple-choice quiz questions to help someone learn %[1]s.

QUIZ DETAILS:
- Day: %[2]d of %[3]d
- Difficulty: %[4]s
- Learning Language: %[1]s (the language the user wants to learn)
- Native Language: %[5]s (the user's mother tongue)

DIFFICULTY GUIDELINES:
%[6]s

CRITICAL REQUIREMENTS - FOLLOW EXACTLY:
1. ALL questions MUST be written ONLY in %[5]s (the learner's native language). Never include any %[1]s word in the question itself; describe the concept or situation instead.
2. ALL 4 answer options MUST be written ONLY in %[1]s.
3. Exactly ONE correct answer and THREE plausible but clearly wrong answers. Shuffle the position of the correct answer.
4. Mark the correct answer using index (0, 1, 2, or 3).
5. Vary concepts: greetings, numbers, food, directions, time, common phrases, colors, family, etc.

Each question must be an object of the form:
{"question": "...", "options": ["...", "...", "...", "..."], "correctAnswer": 0, "difficulty": "%[4]s", "concept": "greetings"}

Generate exactly 5 questions. Return ONLY a valid JSON array with no markdown formatting, no code blocks, no extra text.

JSON Response:`, learningLanguage, day, duration, difficulty, nativeLanguage, difficultyDescription)
}
