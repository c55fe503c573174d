// Copyright (c) 2026 AutoVault. All rights reserved.

/*
Package mailer delivers transactional email for the inquiry pipeline.

It defines a small [Mailer] contract so the transport can be swapped without
touching domain code. Two implementations ship with the platform:

  - SMTP: Plain-text delivery over an authenticated SMTP relay.
  - Log: A no-delivery implementation for development and tests.

Delivery is best-effort by contract: callers treat failures as advisory and
must never roll back an already-persisted record because a notification
could not be sent.
*/
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

// InquiryConfirmation is the payload for the customer-facing acknowledgement.
type InquiryConfirmation struct {
	To           string
	CustomerName string
	CarName      string
	Message      string
}

// InquiryNotification is the payload for the dealer-facing alert.
type InquiryNotification struct {
	To            string
	InquiryID     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	CarName       string
	Message       string
}

// Mailer is the outbound notification contract consumed by domain services.
type Mailer interface {
	// SendInquiryConfirmation acknowledges a submitted inquiry to the customer.
	SendInquiryConfirmation(ctx context.Context, payload InquiryConfirmation) error

	// SendInquiryNotification alerts the owning dealer about a new inquiry.
	SendInquiryNotification(ctx context.Context, payload InquiryNotification) error
}

// # SMTP Implementation

// SMTPConfig holds relay settings for the SMTP mailer.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Company  string
}

// SMTPMailer delivers plain-text mail over an authenticated SMTP relay.
type SMTPMailer struct {
	config SMTPConfig
	logger *slog.Logger
}

// NewSMTPMailer constructs an [SMTPMailer].
func NewSMTPMailer(config SMTPConfig, logger *slog.Logger) *SMTPMailer {
	return &SMTPMailer{config: config, logger: logger}
}

// SendInquiryConfirmation implements [Mailer].
func (m *SMTPMailer) SendInquiryConfirmation(ctx context.Context, payload InquiryConfirmation) error {
	subject := fmt.Sprintf("Thank you for your inquiry about the %s", payload.CarName)
	body := fmt.Sprintf(
		"Hi %s,\n\nThank you for contacting %s about the %s. One of our team members will be in touch shortly.\n\nYour message:\n%s\n",
		payload.CustomerName, m.config.Company, payload.CarName, payload.Message,
	)

	return m.send(ctx, payload.To, subject, body)
}

// SendInquiryNotification implements [Mailer].
func (m *SMTPMailer) SendInquiryNotification(ctx context.Context, payload InquiryNotification) error {
	subject := fmt.Sprintf("New inquiry for %s", payload.CarName)
	body := fmt.Sprintf(
		"A new inquiry (%s) was submitted for %s.\n\nCustomer: %s\nEmail: %s\nPhone: %s\n\nMessage:\n%s\n",
		payload.InquiryID, payload.CarName, payload.CustomerName,
		payload.CustomerEmail, payload.CustomerPhone, payload.Message,
	)

	return m.send(ctx, payload.To, subject, body)
}

// send performs the actual SMTP round-trip.
func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := m.config.Host + ":" + m.config.Port

	var auth smtp.Auth
	if m.config.Username != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	}

	var message strings.Builder
	fmt.Fprintf(&message, "From: %s <%s>\r\n", m.config.Company, m.config.From)
	fmt.Fprintf(&message, "To: %s\r\n", to)
	fmt.Fprintf(&message, "Subject: %s\r\n", subject)
	message.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	message.WriteString(body)

	if err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(message.String())); err != nil {
		return fmt.Errorf("mailer: smtp send to %s failed: %w", to, err)
	}

	m.logger.Info("mail_sent", slog.String("to", to), slog.String("subject", subject))
	return nil
}

// # Log Implementation

// LogMailer records notifications without delivering them. Used in
// development and when no SMTP relay is configured.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer constructs a [LogMailer].
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// SendInquiryConfirmation implements [Mailer].
func (m *LogMailer) SendInquiryConfirmation(ctx context.Context, payload InquiryConfirmation) error {
	m.logger.Info("mail_skipped_no_transport",
		slog.String("kind", "inquiry_confirmation"),
		slog.String("to", payload.To),
		slog.String("car", payload.CarName),
	)
	return nil
}

// SendInquiryNotification implements [Mailer].
func (m *LogMailer) SendInquiryNotification(ctx context.Context, payload InquiryNotification) error {
	m.logger.Info("mail_skipped_no_transport",
		slog.String("kind", "inquiry_notification"),
		slog.String("to", payload.To),
		slog.String("inquiry_id", payload.InquiryID),
	)
	return nil
}
