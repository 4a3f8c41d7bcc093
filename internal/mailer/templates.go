package mailer

import "fmt"

// VerifyEmailTemplate builds the account-verification message pointing at
// the given confirmation URL.
func VerifyEmailTemplate(url string) (subject, html string) {
	subject = "Verify your email address"
	html = fmt.Sprintf(`<!doctype html><html><body>
<p>Thanks for signing up! Please confirm your email address.</p>
<p><a href="%s">Verify email address</a></p>
<p>If the button does not work, copy this link into your browser: %s</p>
</body></html>`, url, url)
	return subject, html
}

// PasswordResetTemplate builds the password-reset message. The URL embeds
// the single-use code and its expiry.
func PasswordResetTemplate(url string) (subject, html string) {
	subject = "Reset your password"
	html = fmt.Sprintf(`<!doctype html><html><body>
<p>We received a request to reset your password.</p>
<p><a href="%s">Reset password</a></p>
<p>This link expires in one hour. If you did not request a reset, you can ignore this email.</p>
</body></html>`, url)
	return subject, html
}
