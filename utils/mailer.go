package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

// InitMailer sets up SES. Confirmation emails are optional; without
// SES_EMAIL every send is a silent no-op.
func InitMailer() {
	if os.Getenv("SES_EMAIL") == "" {
		log.Printf("SES_EMAIL not set, confirmation emails disabled")
		return
	}
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("AWS config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	if sesClient == nil {
		return nil
	}
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendSignupConfirmation thanks a volunteer after they claim a slot.
func SendSignupConfirmation(to, name, date, timeOfDay, location string) error {
	subject := "Volunteer Signup Confirmed"
	body := fmt.Sprintf(
		"Salaam %s,\n\nYou are signed up to volunteer on %s at %s (%s).\n\nJazakum Allahu khairan for supporting the pantry.",
		name, date, timeOfDay, location,
	)
	return sendEmail(to, subject, body)
}

// SendPledgeConfirmation acknowledges an item-donation pledge.
func SendPledgeConfirmation(to, name, pantryName, deliveryDate string) error {
	subject := "Item Donation Pledge Received"
	body := fmt.Sprintf(
		"Salaam %s,\n\nWe received your pledge for %s, planned for %s.\n\nJazakum Allahu khairan for supporting the pantry.",
		name, pantryName, deliveryDate,
	)
	return sendEmail(to, subject, body)
}
