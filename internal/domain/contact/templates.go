// internal/domain/contact/templates.go
package contact

import (
	"bytes"
	"html/template"
	"strings"
	"time"
)

var shellTemplate = template.Must(template.New("shell").Parse(`<!doctype html>
<html lang="fr">
  <head>
    <meta charset="utf-8" />
    <title>{{.Title}}</title>
  </head>
  <body style="margin:0;background:#f6f9fc;color:#111;font-family:system-ui,sans-serif;">
    <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="padding:24px 0;">
      <tr>
        <td align="center">
          <table role="presentation" width="600" cellpadding="0" cellspacing="0" style="max-width:100%;background:#ffffff;border:1px solid #e5e7eb;border-radius:12px;">
            <tr>
              <td style="padding:20px 24px;border-bottom:1px solid #e5e7eb;background:#ecfdf5;font-weight:600;color:#065f46;">Le Petit Marché</td>
            </tr>
            <tr>
              <td style="padding:24px;">{{.Body}}</td>
            </tr>
            <tr>
              <td style="padding:16px 24px;border-top:1px solid #e5e7eb;font-size:12px;color:#6b7280;">
                Ceci est un e-mail automatique, merci de ne pas y répondre. © {{.Year}} Le Petit Marché.
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>`))

var ownerBodyTemplate = template.Must(template.New("owner").Parse(`
    <h1 style="margin:0 0 8px 0;font-size:20px;">Nouveau message de {{.Name}}</h1>
    <p style="margin:0;"><strong>Nom :</strong> {{.Name}}<br/>
    <strong>Email :</strong> {{.Email}}<br/>
    <strong>Sujet :</strong> {{.Subject}}</p>
    <div style="margin:12px 0;padding:12px;border:1px solid #e5e7eb;border-radius:8px;background:#fafafa;">
      <pre style="white-space:pre-wrap;margin:0;">{{.Message}}</pre>
    </div>`))

var confirmationBodyTemplate = template.Must(template.New("confirmation").Parse(`
    <h1 style="margin:0 0 8px 0;font-size:20px;">Bonjour {{.Name}},</h1>
    <p style="margin:0 0 12px 0;">Nous avons bien reçu votre message. Voici un récapitulatif :</p>
    <p style="margin:0 0 8px 0;"><strong>Sujet :</strong> {{.Subject}}</p>
    <div style="margin:12px 0;padding:12px;border:1px solid #e5e7eb;border-radius:8px;background:#fafafa;">
      <pre style="white-space:pre-wrap;margin:0;">{{.Message}}</pre>
    </div>
    <p style="margin:12px 0 0 0;">Nous vous répondrons sous 24-48h ouvrées.</p>
    <p style="margin:8px 0 0 0;color:#065f46;"><strong>Merci de votre confiance,</strong><br/>L'équipe Le Petit Marché</p>`))

func renderShell(title string, body *template.Template, req *Request) string {
	var inner bytes.Buffer
	if err := body.Execute(&inner, req); err != nil {
		return ""
	}
	var out bytes.Buffer
	err := shellTemplate.Execute(&out, struct {
		Title string
		Body  template.HTML
		Year  int
	}{
		Title: title,
		Body:  template.HTML(inner.String()),
		Year:  time.Now().Year(),
	})
	if err != nil {
		return ""
	}
	return out.String()
}

func buildOwnerHTML(req *Request) string {
	return renderShell("[Contact] "+req.Subject, ownerBodyTemplate, req)
}

func buildConfirmationHTML(req *Request) string {
	return renderShell("Confirmation de votre message", confirmationBodyTemplate, req)
}

func buildOwnerText(req *Request) string {
	return strings.Join([]string{
		"Nouveau message depuis le formulaire de contact",
		"",
		"Nom: " + req.Name,
		"Email: " + req.Email,
		"Sujet: " + req.Subject,
		"",
		"Message:",
		req.Message,
	}, "\n")
}

func buildConfirmationText(req *Request) string {
	return strings.Join([]string{
		"Bonjour " + req.Name + ",",
		"",
		"Nous avons bien reçu votre message. Voici un récapitulatif:",
		"",
		"Sujet: " + req.Subject,
		"",
		"Message:",
		req.Message,
		"",
		"Nous vous répondrons sous 24-48h ouvrées.",
		"",
		"— L'équipe Le Petit Marché",
	}, "\n")
}
