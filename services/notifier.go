// services/notifier.go
package services

import (
	"log"
	"os"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Notifier sends one text message. Delivery is best-effort; the dispatcher
// logs a failure and moves on.
type Notifier interface {
	Send(to, body string) error
}

type TwilioNotifier struct {
	client         *twilio.RestClient
	fromNumber     string
	whatsappNumber string
}

func NewTwilioNotifier() *TwilioNotifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &TwilioNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		fromNumber:     os.Getenv("TWILIO_PHONE_NUMBER"),
		whatsappNumber: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
	}
}

// Send delivers the message via WhatsApp when a WhatsApp sender is
// configured, otherwise as plain SMS.
func (n *TwilioNotifier) Send(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetBody(body)

	if n.whatsappNumber != "" {
		params.SetTo("whatsapp:" + to)
		params.SetFrom("whatsapp:" + n.whatsappNumber)
	} else {
		params.SetTo(to)
		params.SetFrom(n.fromNumber)
	}

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid != nil {
		log.Printf("Message sent to %s, SID: %s", to, *resp.Sid)
	} else {
		log.Printf("Message sent to %s, but no SID returned", to)
	}
	return nil
}
