package repository

import (
	"fmt"

	"becomebetter/internal/models"

	"becomebetter/internal/firebase"

	"firebase.google.com/go/messaging"
)

// NotifyCoach forwards a "new content" notice to every device the coach has
// registered. An empty token set is a "no recipients" outcome, not an error.
// The relay is called once; there is no retry or delivery tracking.
func (fr *FirebaseRepository) NotifyCoach(c *models.NotifyCoachRequest) (*models.NotifyResult, error) {
	coach, err := fr.GetUserByID(c.CoachID)
	if err != nil {
		return nil, err
	}

	tokens := coach.DeliveryTokens()
	if len(tokens) == 0 {
		return &models.NotifyResult{NoRecipients: true}, nil
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: "New video uploaded",
			Body:  "A student uploaded a new video for your review.",
		},
		Data: map[string]string{
			"videoId": c.VideoID,
		},
	}

	response, err := fr.messagingClient.SendMulticast(firebase.Context, message)
	if err != nil {
		return nil, fmt.Errorf("error sending push notification: %v", err)
	}

	return &models.NotifyResult{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
	}, nil
}
