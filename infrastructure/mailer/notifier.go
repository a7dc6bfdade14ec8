package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"taskboard/domain/models"
	"taskboard/domain/ports"
	"taskboard/pkg/config"
	"taskboard/pkg/logger"
)

// MailNotifier delivers notifications through an HTTP mail gateway. Every send
// is best-effort: callers detach it and drop the error.
type MailNotifier struct {
	cfg        config.MailConfig
	httpClient *http.Client
}

func NewMailNotifier(cfg config.MailConfig) ports.NotifierPort {
	return &MailNotifier{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (n *MailNotifier) IsEnabled() bool {
	return n.cfg.APIURL != "" && n.cfg.APIKey != ""
}

func (n *MailNotifier) sendMail(ctx context.Context, to, subject, body string) error {
	if !n.IsEnabled() {
		logger.InfoContext(ctx, "Mail notifications disabled, skipping", "to", to)
		return nil
	}

	payload := map[string]string{
		"from":    n.cfg.From,
		"to":      to,
		"subject": subject,
		"text":    body,
	}

	data, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, "POST", n.cfg.APIURL, bytes.NewBuffer(data))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.cfg.APIKey)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to send mail", "to", to, "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		logger.ErrorContext(ctx, "Mail gateway error", "to", to, "status", resp.StatusCode)
		return fmt.Errorf("mail gateway returned status %d", resp.StatusCode)
	}

	logger.InfoContext(ctx, "Mail notification sent", "to", to, "subject", subject)
	return nil
}

func (n *MailNotifier) SendTaskAssigned(ctx context.Context, assignee *models.User, task *models.Task) error {
	subject := fmt.Sprintf("You were assigned: %s", task.Title)

	body := fmt.Sprintf("Hi %s,\n\nYou have been assigned the task %q.\n", assignee.Name, task.Title)
	if task.DueDate != nil {
		body += fmt.Sprintf("It is due on %s.\n", task.DueDate.Format("2006-01-02"))
	}
	if task.Description != "" {
		body += "\n" + task.Description + "\n"
	}

	return n.sendMail(ctx, assignee.Email, subject, body)
}

func (n *MailNotifier) SendTaskDueSoon(ctx context.Context, assignee *models.User, task *models.Task) error {
	subject := fmt.Sprintf("Due soon: %s", task.Title)

	body := fmt.Sprintf("Hi %s,\n\nThe task %q is due", assignee.Name, task.Title)
	if task.DueDate != nil {
		body += fmt.Sprintf(" on %s", task.DueDate.Format("2006-01-02"))
	}
	body += " and is still pending.\n"

	return n.sendMail(ctx, assignee.Email, subject, body)
}
