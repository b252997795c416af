package templates

import (
	"fmt"
	"html"
)

// ModeratorCodeSubject is the subject line of the moderator code email
const ModeratorCodeSubject = "Your Moderator Verification Code"

// RenderModeratorCode generates the HTML for the email that delivers a moderator verification code
func RenderModeratorCode(code string) string {
	safeCode := html.EscapeString(code)

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <title>%s</title>
  <style type="text/css">
    body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0; }
    .container { max-width: 600px; margin: 50px auto; background: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
    .header { text-align: center; color: #673AB7; margin-bottom: 30px; }
    .code-box { background: #673AB7; color: white; padding: 20px; text-align: center; border-radius: 8px; font-size: 32px; font-weight: bold; letter-spacing: 5px; margin: 30px 0; }
    .info { color: #666; line-height: 1.6; }
    .warning { background: #fff3cd; border-left: 4px solid #ffc107; padding: 15px; margin: 20px 0; color: #856404; }
    .footer { text-align: center; color: #999; font-size: 12px; margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>🛡️ Moderator Access Code</h1>
    </div>
    <div class="info">
      <p>Hello,</p>
      <p>You have been granted access to the Community Contribution Moderator Dashboard.</p>
      <p>Your verification code is:</p>
    </div>
    <div class="code-box">%s</div>
    <div class="info">
      <h3>How to use this code:</h3>
      <ol>
        <li>Go to the moderator login page</li>
        <li>Create an account (if you haven't already) or sign in</li>
        <li>Enter this verification code when prompted</li>
        <li>You will gain access to the moderator dashboard</li>
      </ol>
    </div>
    <div class="warning">
      <strong>⚠️ Important:</strong>
      <ul style="margin: 10px 0 0 0; padding-left: 20px;">
        <li>This code expires in 7 days</li>
        <li>This code can only be used once</li>
        <li>Do not share this code with anyone</li>
        <li>If you didn't request this, please contact the administrator</li>
      </ul>
    </div>
    <div class="footer">
      <p>This is an automated message. Please do not reply to this email.</p>
      <p>&copy; Community Contribution Platform</p>
    </div>
  </div>
</body>
</html>`, ModeratorCodeSubject, safeCode)
}
