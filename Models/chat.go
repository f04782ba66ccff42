package Models

import (
	"sync"
	"time"

	"gorm.io/gorm"
)

const (
	SenderDoctor  = "doctor"
	SenderPatient = "patient"
	SenderAI      = "ai"
)

// ChatMessage rows are append-only; the auto-increment id carries the
// chronological ordering invariant.
type ChatMessage struct {
	gorm.Model
	PatientID uint      `json:"patient_id"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// EnsureConversation lazily seeds the opening history the first time a
// conversation is fetched, the same three messages every chat starts with.
func EnsureConversation(patientID uint) error {
	var count int64
	if err := DB.Model(&ChatMessage{}).Where("patient_id = ?", patientID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	opening := []ChatMessage{
		{
			PatientID: patientID,
			Content:   "Hello Doctor, I've been experiencing some symptoms and would like your advice.",
			Sender:    SenderPatient,
			Timestamp: now.Add(-time.Hour),
		},
		{
			PatientID: patientID,
			Content:   "Hello! I'm happy to help. Could you please describe your symptoms in detail?",
			Sender:    SenderDoctor,
			Timestamp: now.Add(-58 * time.Minute),
		},
		{
			PatientID: patientID,
			Content:   "I've been having headaches and feeling dizzy for the past two days. Also, I have a slight fever.",
			Sender:    SenderPatient,
			Timestamp: now.Add(-56 * time.Minute),
		},
	}
	return DB.Create(&opening).Error
}

// ConversationGuard is the single-slot in-flight token per conversation: a
// second send or assist request while a reply is outstanding must not
// interleave with the first.
type ConversationGuard struct {
	mu      sync.Mutex
	pending map[uint]bool
}

var ChatGuard = &ConversationGuard{pending: make(map[uint]bool)}

func (guard *ConversationGuard) Acquire(patientID uint) bool {
	guard.mu.Lock()
	defer guard.mu.Unlock()
	if guard.pending[patientID] {
		return false
	}
	guard.pending[patientID] = true
	return true
}

func (guard *ConversationGuard) Release(patientID uint) {
	guard.mu.Lock()
	defer guard.mu.Unlock()
	delete(guard.pending, patientID)
}

func (guard *ConversationGuard) Pending(patientID uint) bool {
	guard.mu.Lock()
	defer guard.mu.Unlock()
	return guard.pending[patientID]
}
