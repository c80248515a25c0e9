package chat_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/omnilearn-lambda/internal/chat"
	"github.com/saulo-duarte/omnilearn-lambda/internal/generation/generationtest"
)

type fixedLabel string

func (l fixedLabel) ContextLabel() string { return string(l) }

func TestHandlerStreamsReply(t *testing.T) {
	fake := &generationtest.Fake{Fragments: []string{"Hel", "lo"}}
	c := chat.NewChatContainer(fake, nil, fixedLabel("Transformers"), false)
	h := chat.Routes(c.Handler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(`{"message":"what is attention?"}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("content type = %q", ct)
	}

	body := rec.Body.String()
	first := strings.Index(body, `"text":"Hel"`)
	second := strings.Index(body, `"text":"lo"`)
	done := strings.Index(body, "event: done")
	if first < 0 || second < first || done < second {
		t.Errorf("events out of order:\n%s", body)
	}
	if strings.Count(body, "event: fragment") != 2 {
		t.Errorf("want two fragment events:\n%s", body)
	}
	if !strings.Contains(body[done:], `"text":"Hello"`) {
		t.Errorf("done event should carry the final message:\n%s", body)
	}

	req, _ := fake.LastChatRequest()
	if !strings.Contains(req.SystemInstruction, `"Transformers"`) {
		t.Errorf("system instruction = %q", req.SystemInstruction)
	}
}

func TestHandlerExplicitContext(t *testing.T) {
	fake := &generationtest.Fake{Fragments: []string{"ok"}}
	h := chat.Routes(chat.NewChatContainer(fake, nil, fixedLabel("ignored"), false).Handler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(`{"message":"q","context":"Big O Notation"}`)))

	req, _ := fake.LastChatRequest()
	if !strings.Contains(req.SystemInstruction, `"Big O Notation"`) {
		t.Errorf("system instruction = %q", req.SystemInstruction)
	}
}

func TestHandlerBadRequests(t *testing.T) {
	h := chat.Routes(chat.NewChatContainer(&generationtest.Fake{}, nil, nil, false).Handler)

	for name, body := range map[string]string{
		"InvalidJSON": `{`,
		"Blank":       `{"message":"   "}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(body)))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d", rec.Code)
			}
		})
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), chat.Greeting) {
		t.Errorf("GET status = %d body = %s", rec.Code, rec.Body.String())
	}
}
