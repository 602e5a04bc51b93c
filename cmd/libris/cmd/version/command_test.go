package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/libris/internal/cmd/application"
	"github.com/agentstation/libris/internal/cmd/cmdtest"
)

func TestVersion(t *testing.T) {
	app := &application.Mock{
		VersionFunc: func() string { return "1.2.3" },
		CommitFunc:  func() string { return "abc123" },
	}

	stdout, _, err := cmdtest.Execute(NewCommand(app))
	require.NoError(t, err)
	assert.Contains(t, stdout, "libris version 1.2.3")
	assert.Contains(t, stdout, "commit: abc123")
	assert.Contains(t, stdout, "built: unknown")
}
