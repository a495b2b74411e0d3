package email

// SendWelcomeEmail greets a newly created user.
func (c *Client) SendWelcomeEmail(to, name string) error {
	data := map[string]string{
		"UserName": name,
	}

	return c.SendEmail(
		to,
		"Welcome aboard!",
		TemplateWelcome,
		data,
	)
}
