package Notifications

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/krahulsahu/carevita-server/Models"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var (
	app             *firebase.App
	messagingClient *messaging.Client
)

// Setup initializes the Firebase messaging client. Push is optional: with
// no credentials configured, SendMessage becomes a logged no-op.
func Setup() {
	serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
	if serviceAccountPath == "" {
		log.Println("FIREBASE_SERVICE_ACCOUNT_PATH not set, push notifications disabled")
		return
	}

	ctx := context.Background()
	var err error

	opt := option.WithCredentialsFile(serviceAccountPath)
	app, err = firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Printf("Failed to initialize Firebase app: %v", err)
		return
	}

	messagingClient, err = app.Messaging(ctx)
	if err != nil {
		log.Printf("Failed to initialize Firebase messaging client: %v", err)
		return
	}

	log.Println("Firebase messaging client initialized successfully")
}

func SendMessage(req Models.NotificationRequest) error {
	if messagingClient == nil || len(req.Tokens) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	message := &messaging.Message{
		Notification: &messaging.Notification{
			Title: req.Title,
			Body:  req.Body,
		},
	}

	message.Android = &messaging.AndroidConfig{
		Priority: "high",
		Notification: &messaging.AndroidNotification{
			Sound:    "default",
			Priority: messaging.PriorityHigh,
		},
	}

	message.APNS = &messaging.APNSConfig{
		Headers: map[string]string{
			"apns-priority": "10",
		},
		Payload: &messaging.APNSPayload{
			Aps: &messaging.Aps{
				Alert: &messaging.ApsAlert{
					Title: req.Title,
					Body:  req.Body,
				},
				Sound: "default",
			},
		},
	}

	switch {
	case len(req.Tokens) == 1:
		message.Token = req.Tokens[0]
		_, err := messagingClient.Send(ctx, message)
		if err != nil {
			log.Printf("Error sending message: %v", err)
			return err
		}
	case len(req.Tokens) > 1:
		_, err := messagingClient.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens:       req.Tokens,
			Notification: message.Notification,
			Android:      message.Android,
			APNS:         message.APNS,
		})
		if err != nil {
			log.Printf("Error sending multicast message: %v", err)
			return err
		}
	}
	return nil
}
