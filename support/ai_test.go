package support

import (
	"strings"
	"testing"
)

func TestGenerateResponseEmpty(t *testing.T) {
	for _, msg := range []string{"", "   ", "\t\n"} {
		got := GenerateResponse(msg)
		if got != "I'm here to help! Please type your question or issue." {
			t.Fatalf("empty message %q got %q", msg, got)
		}
	}
}

func TestGenerateResponseKeywords(t *testing.T) {
	tests := []struct {
		message  string
		fragment string
	}{
		{"Hello there", "TaskBridge Support AI"},
		{"HEY, anyone around?", "TaskBridge Support AI"},
		{"I forgot my password", "Forgot Password"},
		{"how do I create a task?", "Create New Request"},
		{"what's the status of my request", "live tracker bars"},
		{"who are you exactly?", "TaskBridge Intelligence Unit"},
		{"can I mark something urgent?", "four priority levels"},
	}
	for _, tt := range tests {
		got := GenerateResponse(tt.message)
		if !strings.Contains(got, tt.fragment) {
			t.Errorf("GenerateResponse(%q) = %q, want fragment %q", tt.message, got, tt.fragment)
		}
	}
}

func TestGenerateResponseRuleOrder(t *testing.T) {
	// "reset" outranks "task" because the password rule comes first.
	got := GenerateResponse("reset the task")
	if !strings.Contains(got, "Forgot Password") {
		t.Fatalf("expected the password rule to win, got %q", got)
	}
}

func TestGenerateResponseFallbackEchoesQuery(t *testing.T) {
	got := GenerateResponse("printer on fire")
	if !strings.Contains(got, `"printer on fire"`) {
		t.Fatalf("fallback should quote the query, got %q", got)
	}
	if !strings.Contains(got, "Ticket status: Processing.") {
		t.Fatalf("fallback missing ticket status, got %q", got)
	}
}
