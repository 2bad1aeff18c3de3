package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunProcess_RejectsNonPositiveCount(t *testing.T) {
	tests := []struct {
		name  string
		value int
	}{
		{"zero", 0},
		{"negative", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := count
			defer func() { count = old }()
			count = tt.value

			err := runProcess(processCmd, nil)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "count must be a positive integer")
		})
	}
}

func TestProcessCmd_MailboxFlagDefault(t *testing.T) {
	flag := processCmd.Flags().Lookup("mailbox")

	require.NotNil(t, flag)
	assert.Equal(t, "INBOX", flag.DefValue)
}
