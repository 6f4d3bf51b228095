package cli

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/fuelsum/internal/app"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectErr      string
		expectedConfig *app.Config
	}{
		{
			name: "Single path argument",
			args: []string{"fuelsum", "input.txt"},
			expectedConfig: &app.Config{
				ProgramName: "fuelsum",
				InputPath:   "input.txt",
				LogFormat:   "text",
				LogLevel:    "warn",
			},
		},
		{
			name: "Dash-prefixed path is taken literally",
			args: []string{"/usr/local/bin/fuelsum", "--log-level=debug"},
			expectedConfig: &app.Config{
				ProgramName: "/usr/local/bin/fuelsum",
				InputPath:   "--log-level=debug",
				LogFormat:   "text",
				LogLevel:    "warn",
			},
		},
		{
			name: "Empty path is accepted",
			args: []string{"fuelsum", ""},
			expectedConfig: &app.Config{
				ProgramName: "fuelsum",
				LogFormat:   "text",
				LogLevel:    "warn",
			},
		},
		{
			name:      "No path",
			args:      []string{"./fuelsum"},
			expectErr: "usage: ./fuelsum FILENAME",
		},
		{
			name:      "Too many paths",
			args:      []string{"fuelsum", "a.txt", "b.txt"},
			expectErr: "usage: fuelsum FILENAME",
		},
		{
			name:      "Empty argv falls back to default name",
			args:      []string{},
			expectErr: "usage: fuelsum FILENAME",
		},
		{
			name:      "Empty program name falls back to default name",
			args:      []string{""},
			expectErr: "usage: fuelsum FILENAME",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			appConfig, err := Parse(tc.args)

			// --- Assert ---
			if tc.expectErr != "" {
				require.Error(t, err)
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr), "Expected error to be of type ExitError")
				require.Equal(t, 1, exitErr.Code)
				require.Equal(t, tc.expectErr, exitErr.Message)
				require.Nil(t, appConfig)
				return
			}
			require.NoError(t, err)

			if diff := cmp.Diff(tc.expectedConfig, appConfig); diff != "" {
				t.Errorf("Config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	err := &ExitError{Code: 1, Message: "msg", Err: cause}

	require.EqualError(t, err, "msg")
	require.ErrorIs(t, err, cause)
}

func TestUsage(t *testing.T) {
	t.Parallel()

	require.Equal(t, "usage: prog FILENAME", Usage("prog"))
}
