package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The test app runs without an assistant, matching a deployment with no API
// key configured.
func TestSummarizePost_Unconfigured(t *testing.T) {
	app, _ := newTestApp(t)
	_, userToken := seedUser(t, app, "sam@example.com")

	body := doJSON(t, app, http.MethodPost, "/user/summarize-post", userToken, map[string]any{
		"postTitle":       "Blitz night",
		"postDescription": "Weekly blitz tournament",
	}, http.StatusServiceUnavailable)

	assert.Equal(t, false, body["success"])
	assert.Equal(t, "AI features are not configured", body["error"])
}

func TestAIChat_Unconfigured(t *testing.T) {
	app, _ := newTestApp(t)
	_, userToken := seedUser(t, app, "sam@example.com")

	body := doJSON(t, app, http.MethodPost, "/user/ai-chat", userToken, map[string]any{
		"message": "How do I join a club?",
	}, http.StatusServiceUnavailable)

	assert.Equal(t, false, body["success"])
}

func TestAssistantEndpointsRequireAuth(t *testing.T) {
	app, _ := newTestApp(t)

	doJSON(t, app, http.MethodPost, "/user/summarize-post", "", map[string]any{
		"postTitle": "x", "postDescription": "y",
	}, http.StatusUnauthorized)
	doJSON(t, app, http.MethodPost, "/user/ai-chat", "", map[string]any{
		"message": "hi",
	}, http.StatusUnauthorized)
}
