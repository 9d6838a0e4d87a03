package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// completionServer fakes the provider and always answers with the given
// assistant content.
func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected authorization header %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testClient(srv *httptest.Server) *Client {
	return NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"})
}

func TestCompleteReturnsText(t *testing.T) {
	srv := completionServer(t, "The sky is blue because of Rayleigh scattering.")
	c := testClient(srv)

	got, err := c.Complete(context.Background(), "you are a tutor", "why is the sky blue", 500)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "The sky is blue because of Rayleigh scattering." {
		t.Fatalf("unexpected completion %q", got)
	}
}

func TestCompleteJSONDecodesDeclaredShape(t *testing.T) {
	srv := completionServer(t, `{"title":"Poetry Corner","description":"write a poem","prompt":"use metaphors","difficulty":"easy"}`)
	c := testClient(srv)

	task, err := c.GenerateCreativeTask(context.Background(), "writing")
	if err != nil {
		t.Fatalf("GenerateCreativeTask: %v", err)
	}
	if task.Title != "Poetry Corner" || task.Difficulty != "easy" {
		t.Fatalf("unexpected task %+v", task)
	}
}

func TestCompleteJSONMalformedIsGenerationError(t *testing.T) {
	srv := completionServer(t, "this is not json at all")
	c := testClient(srv)

	var out map[string]any
	err := c.CompleteJSON(context.Background(), "generate something", &out)
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *GenerationError, got %v", err)
	}
}

func TestEmptyContentIsGenerationError(t *testing.T) {
	srv := completionServer(t, "")
	c := testClient(srv)

	_, err := c.Complete(context.Background(), "", "hello", 100)
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *GenerationError, got %v", err)
	}
}

func TestProviderErrorStatusIsGenerationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)
	c := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"})

	_, err := c.Complete(context.Background(), "", "hello", 100)
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *GenerationError, got %v", err)
	}
}

func TestMissingAPIKeyFailsWithoutRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider must not be called without an api key")
	}))
	t.Cleanup(srv.Close)
	c := NewClient(Config{BaseURL: srv.URL})

	_, err := c.Complete(context.Background(), "", "hello", 100)
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *GenerationError, got %v", err)
	}
}

func TestGenerateQuizQuestionsRejectsOffShapeBatch(t *testing.T) {
	srv := completionServer(t, `{"questions":[{"question":"","correctAnswer":""}]}`)
	c := testClient(srv)

	_, err := c.GenerateQuizQuestions(context.Background(), "Mathematics", 6, "Algebra", 1)
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *GenerationError, got %v", err)
	}
}

func TestGenerateQuizQuestionsParsesBatch(t *testing.T) {
	srv := completionServer(t, `{"questions":[
		{"question":"What is 2+2?","options":["3","4","5","6"],"correctAnswer":"4","explanation":"basic addition"},
		{"question":"What is 3x3?","options":["6","9","12","3"],"correctAnswer":"9","explanation":"basic multiplication"}
	]}`)
	c := testClient(srv)

	questions, err := c.GenerateQuizQuestions(context.Background(), "Mathematics", 6, "Algebra", 2)
	if err != nil {
		t.Fatalf("GenerateQuizQuestions: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].CorrectAnswer != "4" || len(questions[0].Options) != 4 {
		t.Fatalf("unexpected first question %+v", questions[0])
	}
}
