package Controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/krahulsahu/carevita-server/Assistant"
	"github.com/krahulsahu/carevita-server/Models"
)

func waitFor(t *testing.T, timeout time.Duration, condition func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestFetchChatMessages_SeedsOpeningHistory(t *testing.T) {
	setupTestDB(t)
	router := testRouter()

	w := doJSON(t, router, http.MethodGet, "/chat/4/messages", nil)
	expectStatus(t, w, http.StatusOK)

	var body struct {
		PatientName string               `json:"patient_name"`
		Messages    []Models.ChatMessage `json:"messages"`
	}
	decodeBody(t, w, &body)
	if body.PatientName != "Priya Sharma" {
		t.Errorf("expected Priya Sharma, got %s", body.PatientName)
	}
	if len(body.Messages) != 3 {
		t.Fatalf("expected 3 opening messages, got %d", len(body.Messages))
	}
	if body.Messages[0].Sender != Models.SenderPatient {
		t.Errorf("expected the patient to open the conversation, got %s", body.Messages[0].Sender)
	}
}

func TestSendChatMessage_AppendsAndSchedulesPatientReply(t *testing.T) {
	setupTestDB(t)
	router := testRouter()

	originalDelay := PatientReplyDelay
	PatientReplyDelay = 10 * time.Millisecond
	defer func() { PatientReplyDelay = originalDelay }()

	w := doJSON(t, router, http.MethodPost, "/chat/4/messages", map[string]interface{}{
		"content": "Please take paracetamol and rest for two days.",
	})
	expectStatus(t, w, http.StatusOK)

	// Doctor message lands immediately, as the fourth message.
	var count int64
	Models.DB.Model(&Models.ChatMessage{}).Where("patient_id = ?", 4).Count(&count)
	if count != 4 {
		t.Fatalf("expected 4 messages right after send, got %d", count)
	}

	waitFor(t, time.Second, func() bool {
		Models.DB.Model(&Models.ChatMessage{}).Where("patient_id = ?", 4).Count(&count)
		return count == 5
	})

	var reply Models.ChatMessage
	Models.DB.Where("patient_id = ?", 4).Order("id desc").First(&reply)
	if reply.Sender != Models.SenderPatient {
		t.Errorf("expected the reply to come from the patient, got %s", reply.Sender)
	}
	if reply.Content != patientAutoReply {
		t.Errorf("unexpected reply content: %q", reply.Content)
	}

	waitFor(t, time.Second, func() bool {
		return !Models.ChatGuard.Pending(4)
	})

	var activity Models.Activity
	Models.DB.Order("id desc").First(&activity)
	if activity.Type != Models.ActivityMessageReceived {
		t.Errorf("expected message_received activity, got %s", activity.Type)
	}
}

func TestSendChatMessage_RejectsSecondSendWhileReplyPending(t *testing.T) {
	setupTestDB(t)
	router := testRouter()

	originalDelay := PatientReplyDelay
	PatientReplyDelay = 50 * time.Millisecond
	defer func() { PatientReplyDelay = originalDelay }()

	first := doJSON(t, router, http.MethodPost, "/chat/4/messages", map[string]interface{}{
		"content": "How is the fever today?",
	})
	expectStatus(t, first, http.StatusOK)

	second := doJSON(t, router, http.MethodPost, "/chat/4/messages", map[string]interface{}{
		"content": "Any dizziness?",
	})
	expectStatus(t, second, http.StatusConflict)

	// Once the reply resolves the conversation accepts sends again.
	waitFor(t, time.Second, func() bool {
		return !Models.ChatGuard.Pending(4)
	})
	third := doJSON(t, router, http.MethodPost, "/chat/4/messages", map[string]interface{}{
		"content": "Any dizziness?",
	})
	expectStatus(t, third, http.StatusOK)

	waitFor(t, time.Second, func() bool {
		return !Models.ChatGuard.Pending(4)
	})
}

func TestSendChatMessage_RejectsEmptyContent(t *testing.T) {
	setupTestDB(t)
	router := testRouter()

	w := doJSON(t, router, http.MethodPost, "/chat/4/messages", map[string]interface{}{
		"content": "   ",
	})
	expectStatus(t, w, http.StatusBadRequest)
}

func TestRequestAIAssist_StreamsCompletionIntoAIMessage(t *testing.T) {
	setupTestDB(t)
	router := testRouter()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		for _, piece := range []string{"Sounds like ", "a tension headache. ", "Recommend rest."} {
			fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", piece)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer server.Close()

	originalClient := AssistantClient
	AssistantClient = &Assistant.Client{BaseURL: server.URL, Model: "test", HTTPClient: server.Client()}
	defer func() { AssistantClient = originalClient }()

	w := doJSON(t, router, http.MethodPost, "/chat/4/assist", nil)
	expectStatus(t, w, http.StatusOK)

	var body struct {
		Content string `json:"content"`
	}
	decodeBody(t, w, &body)
	want := "Sounds like a tension headache. Recommend rest."
	if body.Content != want {
		t.Errorf("expected %q, got %q", want, body.Content)
	}

	var message Models.ChatMessage
	Models.DB.Where("patient_id = ? AND sender = ?", 4, Models.SenderAI).Order("id desc").First(&message)
	if message.Content != want {
		t.Errorf("expected persisted ai message %q, got %q", want, message.Content)
	}
	if Models.ChatGuard.Pending(4) {
		t.Error("expected the conversation slot to be released")
	}
}

func TestRequestAIAssist_FallsBackWhenServiceFails(t *testing.T) {
	setupTestDB(t)
	router := testRouter()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	originalClient := AssistantClient
	AssistantClient = &Assistant.Client{BaseURL: server.URL, Model: "test", HTTPClient: server.Client()}
	defer func() { AssistantClient = originalClient }()

	w := doJSON(t, router, http.MethodPost, "/chat/4/assist", nil)
	expectStatus(t, w, http.StatusOK)

	var body struct {
		Content string `json:"content"`
	}
	decodeBody(t, w, &body)
	if body.Content != Assistant.FallbackMessage {
		t.Errorf("expected the fallback message, got %q", body.Content)
	}

	var message Models.ChatMessage
	Models.DB.Where("patient_id = ? AND sender = ?", 4, Models.SenderAI).Order("id desc").First(&message)
	if message.Content != Assistant.FallbackMessage {
		t.Errorf("expected persisted fallback, got %q", message.Content)
	}
	if Models.ChatGuard.Pending(4) {
		t.Error("expected the conversation slot to be released after the fallback")
	}
}

func TestRequestAIAssist_RejectsWhileReplyPending(t *testing.T) {
	setupTestDB(t)
	router := testRouter()

	if !Models.ChatGuard.Acquire(4) {
		t.Fatal("failed to occupy the conversation slot")
	}
	defer Models.ChatGuard.Release(4)

	w := doJSON(t, router, http.MethodPost, "/chat/4/assist", nil)
	expectStatus(t, w, http.StatusConflict)
}

func TestChatEndpoints_RejectBadPatientID(t *testing.T) {
	setupTestDB(t)
	router := testRouter()

	w := doJSON(t, router, http.MethodGet, "/chat/abc/messages", nil)
	expectStatus(t, w, http.StatusBadRequest)
}
