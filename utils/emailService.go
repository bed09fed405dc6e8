package utils

import (
	"codelearn/config"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendPasswordResetEmail mails the reset link for a requested password reset
func SendPasswordResetEmail(email, username, token string) error {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", config.AppConfig.FrontendURL, token)

	from := mail.NewEmail("CodeLearn", config.AppConfig.EmailSender)
	to := mail.NewEmail(username, email)
	subject := "Reset your CodeLearn password"

	plainText := fmt.Sprintf("Hi %s,\n\nUse the link below to reset your password. The link expires in 1 hour.\n\n%s\n\nIf you did not request this, you can ignore this email.", username, resetLink)

	html := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Reset your CodeLearn password</h2>
					<p style="font-size: 16px; color: #555555;">Hi %s,</p>
					<p style="font-size: 14px; color: #555555;">Click the button below to choose a new password. The link expires in 1 hour.</p>
					<p style="text-align: center; margin: 30px 0;">
						<a href="%s" style="background-color: #4CAF50; color: #ffffff; padding: 12px 24px; border-radius: 4px; text-decoration: none;">Reset Password</a>
					</p>
					<p style="font-size: 12px; color: #999999;">If you did not request this, you can ignore this email.</p>
				</div>
			</body>
		</html>
	`, username, resetLink)

	message := mail.NewSingleEmail(from, subject, to, plainText, html)
	client := sendgrid.NewSendClient(config.AppConfig.SendgridKey)

	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending password reset email: %v", err)
		return err
	}
	if response.StatusCode >= 400 {
		log.Printf("Failed to send password reset email, response code: %d", response.StatusCode)
		return fmt.Errorf("failed to send password reset email, code: %d", response.StatusCode)
	}

	log.Println("Password reset email sent successfully to", email)
	return nil
}
