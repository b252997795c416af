package commands_test

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/linesmerrill/moderator-codes/codes"
	"github.com/linesmerrill/moderator-codes/commands"
	"github.com/linesmerrill/moderator-codes/notifier/mocks"
	"github.com/linesmerrill/moderator-codes/testhelpers"
)

type harness struct {
	db       *testhelpers.MemoryModeratorCodeDatabase
	notifier *mocks.Notifier
	out      *bytes.Buffer
	strict   bool
	setupErr error
	setups   int
	closes   int
}

func newHarness() *harness {
	return &harness{
		db:       testhelpers.NewMemoryModeratorCodeDatabase(),
		notifier: &mocks.Notifier{},
		out:      &bytes.Buffer{},
	}
}

func (h *harness) setup(context.Context) (*commands.Session, error) {
	h.setups++
	if h.setupErr != nil {
		return nil, h.setupErr
	}
	return &commands.Session{
		Handler: commands.ModeratorCode{
			MCDB:     h.db,
			Notifier: h.notifier,
			Codes:    codes.New(),
			Now:      time.Now,
		},
		StrictExit: h.strict,
		Close:      func() { h.closes++ },
	}, nil
}

func (h *harness) run(args ...string) int {
	h.out.Reset()
	root := commands.NewRootCommand(h.setup, h.out)
	return commands.Execute(context.Background(), root, args)
}

func TestExecute_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"unknown command", []string{"promote", "mod@example.com"}},
		{"add without email", []string{"add"}},
		{"delete without code", []string{"delete"}},
		{"add with empty email", []string{"add", ""}},
		{"delete with empty code", []string{"delete", ""}},
		{"add with blank email", []string{"add", "   "}},
		{"add with extra argument", []string{"add", "a@example.com", "b@example.com"}},
		{"list with argument", []string{"list", "all"}},
		{"unknown flag", []string{"list", "--json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			status := h.run(tt.args...)

			assert.Equal(t, 1, status)
			assert.Contains(t, h.out.String(), "Moderator Verification Code Generator")
			assert.Contains(t, h.out.String(), "add <email>")
			assert.Equal(t, 0, h.setups, "setup must not run for an invalid command line")
		})
	}
}

func TestExecute_Help(t *testing.T) {
	h := newHarness()

	assert.Equal(t, 0, h.run("--help"))
	assert.Contains(t, h.out.String(), "delete <code>")
	assert.Equal(t, 0, h.setups)
}

func TestExecute_AddListDeleteScenario(t *testing.T) {
	h := newHarness()
	h.notifier.On("Send", mock.Anything, "mod@example.com", mock.AnythingOfType("string")).Return(nil).Once()

	require.Equal(t, 0, h.run("add", "mod@example.com"))
	h.notifier.AssertExpectations(t)

	code := regexp.MustCompile(`Code generated: ([A-Z0-9]{8})`).FindStringSubmatch(h.out.String())
	require.Len(t, code, 2)

	records, err := h.db.Find(context.Background(), bson.M{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "mod@example.com", records[0].Email)
	assert.False(t, records[0].Used)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), *records[0].ExpiresAt, time.Minute)

	require.Equal(t, 0, h.run("list"))
	assert.Contains(t, h.out.String(), code[1]+"\tmod@example.com\t✗\t")

	require.Equal(t, 0, h.run("delete", code[1]))
	assert.Contains(t, h.out.String(), "✅ Code "+code[1]+" deleted successfully")

	require.Equal(t, 0, h.run("list"))
	assert.NotContains(t, h.out.String(), code[1])
	assert.Equal(t, 0, h.db.Len())
	assert.Equal(t, h.setups, h.closes)
}

func TestExecute_DeleteMissingCode(t *testing.T) {
	h := newHarness()

	assert.Equal(t, 0, h.run("delete", "NOPE0000"))
	assert.Contains(t, h.out.String(), "✅ Code NOPE0000 deleted successfully")
}

func TestExecute_SendFailureStillExitsZero(t *testing.T) {
	h := newHarness()
	h.notifier.On("Send", mock.Anything, "nonexistent@example.com", mock.Anything).Return(errors.New("550 mailbox unavailable"))

	status := h.run("add", "nonexistent@example.com")

	// known defect kept as the default: the failure is printed but the exit status is 0
	assert.Equal(t, 0, status)
	assert.Contains(t, h.out.String(), "❌ Error: failed to send email for code")
	assert.Equal(t, 1, h.db.Len())
}

func TestExecute_SendFailureStrictExit(t *testing.T) {
	h := newHarness()
	h.strict = true
	h.notifier.On("Send", mock.Anything, "nonexistent@example.com", mock.Anything).Return(errors.New("550 mailbox unavailable"))

	status := h.run("add", "nonexistent@example.com")

	assert.Equal(t, 1, status)
	assert.Contains(t, h.out.String(), "❌ Error: failed to send email for code")
	assert.NotContains(t, h.out.String(), "Usage:")
	assert.Equal(t, 1, h.db.Len())
}

func TestExecute_StoreFailures(t *testing.T) {
	for _, strict := range []bool{false, true} {
		h := newHarness()
		h.strict = strict
		h.db.Err = errors.New("connection refused")

		want := 0
		if strict {
			want = 1
		}
		assert.Equal(t, want, h.run("list"))
		assert.Contains(t, h.out.String(), "❌ Error listing codes: failed to list codes: connection refused")

		assert.Equal(t, want, h.run("delete", "ABC12345"))
		assert.Contains(t, h.out.String(), "❌ Error deleting code: failed to delete code ABC12345: connection refused")
	}
}

func TestExecute_SetupFailure(t *testing.T) {
	h := newHarness()
	h.setupErr = errors.New("invalid configuration: Config.DatabaseURL failed \"required\" validation")

	status := h.run("list")

	assert.Equal(t, 1, status)
	assert.Contains(t, h.out.String(), "❌ setup failed: invalid configuration")
	assert.NotContains(t, h.out.String(), "Usage:")
	assert.Equal(t, 0, h.closes)
}
