package mail

import (
	"fmt"
	"html/template"
	"strings"
)

// Email bodies are compiled once at package load. Template data is the flat
// string map carried on ports.Email.
var templates = template.Must(template.New("mail").Parse(`
{{define "welcome"}}
<html>
  <body>
    <h2>Welcome to Maan-Homes, {{.name}}!</h2>
    <p>Your account is ready. Sign in to start browsing properties.</p>
    <p><a href="{{.loginLink}}">Log in to your account</a></p>
  </body>
</html>
{{end}}

{{define "forgot_password"}}
<html>
  <body>
    <h2>Hi {{.name}},</h2>
    <p>We received a request to reset your password. The link below is valid
    for {{.expiryTime}} and can be used once.</p>
    <p><a href="{{.resetLink}}">Reset your password</a></p>
    <p>If you did not request this, you can ignore this email.</p>
  </body>
</html>
{{end}}

{{define "reset_success"}}
<html>
  <body>
    <h2>Hi {{.name}},</h2>
    <p>Your password has been changed. If this wasn't you, request a new
    reset immediately.</p>
  </body>
</html>
{{end}}
`))

// Render executes the named template with the given data.
func Render(name string, data map[string]string) (string, error) {
	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return sb.String(), nil
}
