// Package support holds the keyword-matched support responder. Rules are
// checked in order; the first rule with a matching keyword answers.
package support

import (
	"fmt"
	"strings"
)

type rule struct {
	keywords []string
	reply    string
}

var rules = []rule{
	{
		keywords: []string{"hello", "hi", "hey"},
		reply:    "Hello! I'm the TaskBridge Support AI. How can I assist you with your missions today?",
	},
	{
		keywords: []string{"password", "reset", "forgot"},
		reply:    "To reset your password, go to the Login page and click 'Forgot Password'. You'll receive a secure 6-digit CAPTCHA code directly on the screen to use for the reset. No email wait required!",
	},
	{
		keywords: []string{"task", "mission", "create"},
		reply:    "You can create a new mission by clicking the 'My Requests' tab and filling out the 'Create New Request' form. Make sure to set a priority and a deadline!",
	},
	{
		keywords: []string{"status", "progress", "track"},
		reply:    "You can track your mission progress in the 'Request History' section. Look for the live tracker bars: Pending (0%), In Progress (50%), and Verified (100%).",
	},
	{
		keywords: []string{"who are you", "bot", "ai"},
		reply:    "I am the TaskBridge Intelligence Unit, designed to provide instant support for field operatives. I can help with account access, mission creation, and platform navigation.",
	},
	{
		keywords: []string{"priority", "urgent"},
		reply:    "We offer four priority levels: Low, Medium, High, and Urgent. High priority tasks are prioritized by managers for faster assignment.",
	},
}

// GenerateResponse returns the canned reply for a user message.
func GenerateResponse(message string) string {
	if strings.TrimSpace(message) == "" {
		return "I'm here to help! Please type your question or issue."
	}

	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.reply
			}
		}
	}

	return fmt.Sprintf("I've logged your query about %q. While I'm looking into the specifics, you can check the 'My Requests' tab for quick actions or wait for a human manager to chime in. Ticket status: Processing.", message)
}
