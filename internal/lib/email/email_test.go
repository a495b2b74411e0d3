package email

import (
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email-1"}, nil
}

func TestRenderWelcome(t *testing.T) {
	body, err := Render(TemplateWelcome, map[string]string{"UserName": "<Alice>"})
	require.NoError(t, err)

	assert.Contains(t, body, "Welcome, &lt;Alice&gt;!")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render(Template("missing"), nil)
	assert.Error(t, err)
}

func TestSendWelcomeEmail(t *testing.T) {
	sender := &fakeSender{}
	logger := zerolog.Nop()
	client := NewClientWithSender(sender, "Users <noreply@example.com>", &logger)

	require.NoError(t, client.SendWelcomeEmail("alice@example.com", "Alice"))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, []string{"alice@example.com"}, msg.To)
	assert.Equal(t, "Users <noreply@example.com>", msg.From)
	assert.Contains(t, msg.Html, "Welcome, Alice!")
}

func TestSendEmailProviderFailure(t *testing.T) {
	logger := zerolog.Nop()
	client := NewClientWithSender(&fakeSender{err: errors.New("boom")}, "from@example.com", &logger)

	err := client.SendWelcomeEmail("alice@example.com", "Alice")
	assert.ErrorContains(t, err, "boom")
}
