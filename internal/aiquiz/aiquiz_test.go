package aiquiz_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/omnilearn-lambda/internal/aiquiz"
	"github.com/saulo-duarte/omnilearn-lambda/internal/generation/generationtest"
	"google.golang.org/genai"
)

const validBatch = `[
  {"question":"Which property guarantees all-or-nothing?","options":["Atomicity","Consistency","Isolation","Durability"],"correctAnswerIndex":0,"explanation":"Atomicity means a transaction is indivisible."},
  {"question":"Which property survives crashes?","options":["Atomicity","Consistency","Isolation","Durability"],"correctAnswerIndex":3,"explanation":"Committed data persists."}
]`

func TestParseQuestions(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		qs, err := aiquiz.ParseQuestions(validBatch)
		if err != nil {
			t.Fatalf("ParseQuestions failed: %v", err)
		}
		if len(qs) != 2 || qs[1].CorrectAnswerIndex != 3 || qs[0].Options[0] != "Atomicity" {
			t.Errorf("unexpected questions: %+v", qs)
		}
	})

	t.Run("Fenced", func(t *testing.T) {
		qs, err := aiquiz.ParseQuestions("```json\n" + validBatch + "\n```")
		if err != nil || len(qs) != 2 {
			t.Errorf("fenced batch: %d questions, err %v", len(qs), err)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if _, err := aiquiz.ParseQuestions("  "); !errors.Is(err, aiquiz.ErrEmptyResponse) {
			t.Errorf("err = %v, want empty response", err)
		}
	})

	malformed := map[string]string{
		"NotJSON":       "here are your questions!",
		"Object":        `{"question":"x"}`,
		"ThreeOptions":  `[{"question":"q","options":["a","b","c"],"correctAnswerIndex":0,"explanation":"e"}]`,
		"IndexTooLarge": `[{"question":"q","options":["a","b","c","d"],"correctAnswerIndex":4,"explanation":"e"}]`,
		"NegativeIndex": `[{"question":"q","options":["a","b","c","d"],"correctAnswerIndex":-1,"explanation":"e"}]`,
	}
	for name, raw := range malformed {
		t.Run(name, func(t *testing.T) {
			if _, err := aiquiz.ParseQuestions(raw); !errors.Is(err, aiquiz.ErrMalformed) {
				t.Errorf("err = %v, want malformed", err)
			}
		})
	}
}

func TestClampCount(t *testing.T) {
	cases := []struct{ n, fallback, want int }{
		{0, 3, 3},
		{-2, 5, 5},
		{0, 0, aiquiz.DefaultQuestionCount},
		{7, 3, 7},
		{50, 3, aiquiz.MaxQuestionCount},
	}
	for _, tc := range cases {
		if got := aiquiz.ClampCount(tc.n, tc.fallback); got != tc.want {
			t.Errorf("ClampCount(%d, %d) = %d, want %d", tc.n, tc.fallback, got, tc.want)
		}
	}
}

func TestGenerateQuestions(t *testing.T) {
	fake := &generationtest.Fake{JSON: validBatch}
	svc := aiquiz.NewService(aiquiz.NewProvider(fake), 3)

	qs, err := svc.GenerateQuestions(context.Background(), aiquiz.QuestionRequest{Topic: "ACID Properties"})
	if err != nil {
		t.Fatal(err)
	}
	if len(qs) != 2 {
		t.Errorf("got %d questions", len(qs))
	}

	prompt := fake.JSONPrompts[0]
	if !strings.Contains(prompt, "Generate 3 multiple-choice questions about ACID Properties") {
		t.Errorf("prompt = %q", prompt)
	}
	schema := fake.Schemas[0]
	if schema.Type != genai.TypeArray || schema.Items.Properties["correctAnswerIndex"].Type != genai.TypeInteger {
		t.Errorf("unexpected schema: %+v", schema)
	}

	if _, err := svc.GenerateQuestions(context.Background(), aiquiz.QuestionRequest{Topic: " "}); !errors.Is(err, aiquiz.ErrTopicRequired) {
		t.Errorf("err = %v, want topic required", err)
	}

	failing := aiquiz.NewService(aiquiz.NewProvider(&generationtest.Fake{JSONErr: errors.New("quota")}), 3)
	if _, err := failing.GenerateQuestions(context.Background(), aiquiz.QuestionRequest{Topic: "x"}); err == nil {
		t.Error("expected request failure to propagate")
	}
}

func TestHandler(t *testing.T) {
	c := aiquiz.NewAIQuizContainer(&generationtest.Fake{JSON: validBatch}, 3)
	h := aiquiz.Routes(c.Handler)

	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"Created", `{"topic":"ACID Properties","count":2}`, http.StatusCreated},
		{"MissingTopic", `{"count":2}`, http.StatusBadRequest},
		{"InvalidBody", `nope`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body)))
			if rec.Code != tc.status {
				t.Errorf("status = %d, want %d (%s)", rec.Code, tc.status, rec.Body.String())
			}
		})
	}

	broken := aiquiz.Routes(aiquiz.NewAIQuizContainer(&generationtest.Fake{JSON: "not json"}, 3).Handler)
	rec := httptest.NewRecorder()
	broken.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"topic":"x"}`)))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestHandlerSchema(t *testing.T) {
	h := aiquiz.Routes(aiquiz.NewAIQuizContainer(&generationtest.Fake{}, 3).Handler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schema", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	for _, field := range []string{"question", "options", "correctAnswerIndex", "explanation"} {
		if !strings.Contains(rec.Body.String(), `"`+field+`"`) {
			t.Errorf("schema missing %s: %s", field, rec.Body.String())
		}
	}
}
