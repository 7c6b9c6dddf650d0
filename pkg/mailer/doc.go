// Package mailer sends templated email notifications.
//
// Templates are markdown files with optional YAML frontmatter; the body is
// processed as a text/template, converted to HTML with goldmark, and wrapped
// in an HTML layout. The contact form uses a single template to notify the
// site owner of each submission.
//
//	//go:embed templates
//	var templates embed.FS
//
//	sub, _ := fs.Sub(templates, "templates")
//	m := mailer.New(
//		resend.New(resend.Config{APIKey: cfg.ResendAPIKey, SenderEmail: cfg.FromEmail}),
//		mailer.NewRenderer(sub),
//		mailer.Config{FallbackSubject: "New contact form message"},
//	)
//	err := m.Send(ctx, mailer.SendParams{
//		To:       "owner@example.com",
//		ReplyTo:  rec.Email,
//		Template: "contact.md",
//		Data:     rec,
//	})
//
// Delivery goes through the Sender interface; the resend subpackage adapts
// the Resend API and LogSender stands in during development.
package mailer
