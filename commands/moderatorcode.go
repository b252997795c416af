package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/linesmerrill/moderator-codes/codes"
	"github.com/linesmerrill/moderator-codes/databases"
	"github.com/linesmerrill/moderator-codes/models"
	"github.com/linesmerrill/moderator-codes/notifier"
)

// CodeGenerator produces new verification codes
type CodeGenerator interface {
	Generate() (string, error)
}

// ModeratorCode handles the moderator code commands
type ModeratorCode struct {
	MCDB         databases.ModeratorCodeDatabase
	Notifier     notifier.Notifier
	Codes        CodeGenerator
	Now          func() time.Time
	Out          io.Writer
	QueryTimeout time.Duration
}

func (m ModeratorCode) now() time.Time {
	if m.Now == nil {
		return time.Now()
	}
	return m.Now()
}

func (m ModeratorCode) printf(format string, a ...interface{}) {
	fmt.Fprintf(m.Out, format, a...)
}

// CreateModeratorCode generates a code for email and stores it, overwriting any record that already holds the same code
func (m ModeratorCode) CreateModeratorCode(ctx context.Context, email string) (models.ModeratorCode, error) {
	code, err := m.Codes.Generate()
	if err != nil {
		return models.ModeratorCode{}, fmt.Errorf("failed to generate code: %w", err)
	}

	record := models.NewModeratorCode(code, email, m.now())

	ctx, cancel := WithQueryTimeout(ctx, m.QueryTimeout)
	defer cancel()

	existing, err := m.MCDB.FindOne(ctx, bson.M{"_id": code})
	switch {
	case err == nil:
		zap.S().Warnw("code collision, overwriting existing record", "code", code, "previousEmail", existing.Email, "email", email)
	case !errors.Is(err, mongo.ErrNoDocuments):
		return models.ModeratorCode{}, fmt.Errorf("failed to check existing code: %w", err)
	}

	if err := m.MCDB.ReplaceOne(ctx, record); err != nil {
		return models.ModeratorCode{}, fmt.Errorf("failed to store code: %w", err)
	}

	zap.S().Infow("moderator code stored", "code", record.Code, "email", email, "expiresAt", record.ExpiresAt)
	return record, nil
}

// AddHandler issues a code for email and mails it. The record is written before the email is sent
// and is kept if sending fails.
func (m ModeratorCode) AddHandler(ctx context.Context, email string) error {
	m.printf("\n🔄 Generating verification code for %s...\n", email)

	record, err := m.CreateModeratorCode(ctx, email)
	if err != nil {
		return err
	}
	m.printf("✅ Code generated: %s\n", record.Code)

	m.printf("📧 Sending email to %s...\n", email)
	if err := m.Notifier.Send(ctx, email, record.Code); err != nil {
		return fmt.Errorf("failed to send email for code %s: %w", record.Code, err)
	}
	m.printf("✅ Email sent successfully!\n")

	m.printf("\n✨ Moderator verification code created successfully!\n")
	m.printf("   Email: %s\n", email)
	m.printf("   Code: %s\n", record.Code)
	m.printf("   Expires: 7 days from now\n\n")
	return nil
}

// ListHandler prints every stored code in the order the store returns them
func (m ModeratorCode) ListHandler(ctx context.Context) error {
	ctx, cancel := WithQueryTimeout(ctx, m.QueryTimeout)
	defer cancel()

	records, err := m.MCDB.Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list codes: %w", err)
	}

	m.printf("\n📋 All Verification Codes:\n\n")
	m.printf("Code\t\tEmail\t\t\t\tUsed\tExpires\n")
	m.printf("%s\n", strings.Repeat("─", 80))
	for _, rec := range records {
		used := "✗"
		if rec.Used {
			used = "✓"
		}
		expires := "N/A"
		if rec.ExpiresAt != nil {
			expires = rec.ExpiresAt.Local().Format("1/2/2006")
		}
		m.printf("%s\t%s\t%s\t%s\n", rec.ID, rec.Email, used, expires)
	}
	m.printf("\n\n")

	zap.S().Infow("listed moderator codes", "count", len(records))
	return nil
}

// DeleteHandler removes a code. Deleting a code that does not exist is not an error.
func (m ModeratorCode) DeleteHandler(ctx context.Context, code string) error {
	if !codes.Valid(code) {
		zap.S().Warnw("code does not look like a generated code", "code", code)
	}

	ctx, cancel := WithQueryTimeout(ctx, m.QueryTimeout)
	defer cancel()

	deleted, err := m.MCDB.DeleteOne(ctx, bson.M{"_id": code})
	if err != nil {
		return fmt.Errorf("failed to delete code %s: %w", code, err)
	}

	zap.S().Infow("moderator code deleted", "code", code, "deleted", deleted)
	m.printf("✅ Code %s deleted successfully\n", code)
	return nil
}
