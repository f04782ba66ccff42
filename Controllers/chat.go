package Controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/krahulsahu/carevita-server/Assistant"
	"github.com/krahulsahu/carevita-server/Models"
	"github.com/krahulsahu/carevita-server/Notifications"
	"github.com/krahulsahu/carevita-server/SSE"

	"github.com/gin-gonic/gin"
)

// PatientReplyDelay stands in for the patient's side of the conversation:
// every doctor message gets the same acknowledgement after this delay.
var PatientReplyDelay = 2 * time.Second

const patientAutoReply = "Thank you for the information, Doctor. I'll follow your advice."

// AssistantClient is the text-generation collaborator used by AI assist.
var AssistantClient = Assistant.NewClientFromEnv()

func chatPatientID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("patientId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient id"})
		return 0, false
	}
	return uint(id), true
}

func FetchChatMessages(c *gin.Context) {
	patientID, ok := chatPatientID(c)
	if !ok {
		return
	}

	if err := Models.EnsureConversation(patientID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var messages []Models.ChatMessage
	if err := Models.DB.Model(&Models.ChatMessage{}).
		Where("patient_id = ?", patientID).
		Order("id").Find(&messages).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient := Models.LookupPatient(patientID)
	c.JSON(http.StatusOK, gin.H{"patient_name": patient.Name, "messages": messages})
}

// SendChatMessage appends the doctor's message and schedules the simulated
// patient reply. One reply may be outstanding per conversation; a second
// send before it resolves is rejected rather than allowed to interleave.
func SendChatMessage(c *gin.Context) {
	patientID, ok := chatPatientID(c)
	if !ok {
		return
	}

	var input struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.Content = strings.TrimSpace(input.Content)
	if input.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message content is empty"})
		return
	}

	if err := Models.EnsureConversation(patientID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !Models.ChatGuard.Acquire(patientID) {
		c.JSON(http.StatusConflict, gin.H{"error": "a reply is already pending for this conversation"})
		return
	}

	message := Models.ChatMessage{
		PatientID: patientID,
		Content:   input.Content,
		Sender:    Models.SenderDoctor,
		Timestamp: time.Now(),
	}
	if err := Models.DB.Create(&message).Error; err != nil {
		Models.ChatGuard.Release(patientID)
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
		return
	}
	SSE.Events.Broadcast(SSE.ChatTopic(patientID), "message")

	patient := Models.LookupPatient(patientID)
	time.AfterFunc(PatientReplyDelay, func() {
		defer Models.ChatGuard.Release(patientID)

		reply := Models.ChatMessage{
			PatientID: patientID,
			Content:   patientAutoReply,
			Sender:    Models.SenderPatient,
			Timestamp: time.Now(),
		}
		if err := Models.DB.Create(&reply).Error; err != nil {
			log.Println("failed to save patient reply:", err)
			return
		}
		Models.RecordActivity(Models.ActivityMessageReceived, patient.Name, "New message received")
		SSE.Events.Broadcast(SSE.ChatTopic(patientID), "message")

		var tokens []string
		if err := Models.DB.Model(&Models.DeviceToken{}).Select("value").Find(&tokens).Error; err == nil {
			if err := Notifications.SendMessage(Models.NotificationRequest{
				Tokens: tokens,
				Title:  "New message",
				Body:   fmt.Sprintf("%s replied to your message", patient.Name),
			}); err != nil {
				log.Println("failed to push chat notification:", err)
			}
		}
	})

	c.JSON(http.StatusOK, gin.H{"message": "Sent Successfully", "chat_message": message})
}

// RequestAIAssist streams a completion into a placeholder ai message. The
// prompt is built from the last three messages; chunks are applied in
// arrival order and mirrored on the conversation's SSE topic. When the
// collaborator fails, the fixed fallback is substituted and the caller
// still sees a normal reply.
func RequestAIAssist(c *gin.Context) {
	patientID, ok := chatPatientID(c)
	if !ok {
		return
	}

	if err := Models.EnsureConversation(patientID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !Models.ChatGuard.Acquire(patientID) {
		c.JSON(http.StatusConflict, gin.H{"error": "a reply is already pending for this conversation"})
		return
	}
	defer Models.ChatGuard.Release(patientID)

	var recent []Models.ChatMessage
	if err := Models.DB.Model(&Models.ChatMessage{}).
		Where("patient_id = ?", patientID).
		Order("id desc").Limit(3).Find(&recent).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contents := make([]string, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		contents = append(contents, recent[i].Content)
	}

	aiMessage := Models.ChatMessage{
		PatientID: patientID,
		Sender:    Models.SenderAI,
		Timestamp: time.Now(),
	}
	if err := Models.DB.Create(&aiMessage).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
		return
	}

	topic := SSE.ChatTopic(patientID)
	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	fullText, err := AssistantClient.Complete(ctx, Assistant.BuildPrompt(contents), func(chunk string) {
		aiMessage.Content += chunk
		if err := Models.DB.Model(&Models.ChatMessage{}).Where("id = ?", aiMessage.ID).
			Update("content", aiMessage.Content).Error; err != nil {
			log.Println("failed to apply stream chunk:", err)
		}
		SSE.Events.Broadcast(topic, chunk)
	})
	if err != nil {
		// Substitute the fallback; the doctor never sees a distinct error state.
		log.Println("Error getting AI assistance:", err)
		aiMessage.Content = Assistant.FallbackMessage
		fullText = Assistant.FallbackMessage
	} else {
		aiMessage.Content = fullText
	}

	if err := Models.DB.Model(&Models.ChatMessage{}).Where("id = ?", aiMessage.ID).
		Update("content", aiMessage.Content).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
		return
	}
	SSE.Events.Broadcast(topic, "message")

	c.JSON(http.StatusOK, gin.H{"message": "Assist Complete", "chat_message": aiMessage, "content": fullText})
}

// ChatStream is the per-conversation SSE feed.
func ChatStream(c *gin.Context) {
	patientID, ok := chatPatientID(c)
	if !ok {
		return
	}
	SSE.Stream(c, SSE.ChatTopic(patientID))
}
