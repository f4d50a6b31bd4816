package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/gitstrap/internal/gitcli"
)

// saveAndRestoreDoctorFactories saves and restores doctor factory functions.
func saveAndRestoreDoctorFactories(t *testing.T) {
	origCheck := checkPrerequisites
	origReader := newGitConfigReader
	origStat := statFile

	t.Cleanup(func() {
		checkPrerequisites = origCheck
		newGitConfigReader = origReader
		statFile = origStat
	})
}

// fakeConfigReader serves canned config values keyed by config key.
type fakeConfigReader struct {
	values map[string]string
	scopes []gitcli.Scope
}

func (f *fakeConfigReader) GetConfig(_ context.Context, scope gitcli.Scope, key string) (string, error) {
	f.scopes = append(f.scopes, scope)
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return "", errors.New("exit status 1")
}

func TestDoctor_Provisioned(t *testing.T) {
	saveAndRestoreDoctorFactories(t)

	checkPrerequisites = gitPresent
	reader := &fakeConfigReader{values: map[string]string{
		"user.email":        "dev@example.com",
		"user.name":         "devuser",
		"credential.helper": "store --file /home/dev/.git-credentials",
	}}
	newGitConfigReader = func() gitConfigReader { return reader }
	statFile = func(string) bool { return true }

	output := captureOutput(func() {
		err := Doctor(context.Background(), gitcli.ScopeGlobal, "/home/dev/.git-credentials", false)
		require.NoError(t, err)
	})

	assert.Contains(t, output, "gitstrap doctor")
	assert.Contains(t, output, "git version 2.47.1")
	assert.Contains(t, output, "dev@example.com")
	assert.Contains(t, output, "devuser")
	assert.Contains(t, output, "store --file /home/dev/.git-credentials")
	assert.NotContains(t, output, "gitstrap setup")
}

func TestDoctor_Unprovisioned(t *testing.T) {
	saveAndRestoreDoctorFactories(t)

	checkPrerequisites = gitPresent
	reader := &fakeConfigReader{values: map[string]string{}}
	newGitConfigReader = func() gitConfigReader { return reader }
	statFile = func(string) bool { return false }

	output := captureOutput(func() {
		err := Doctor(context.Background(), gitcli.ScopeGlobal, "/home/dev/.git-credentials", false)
		require.NoError(t, err)
	})

	assert.Contains(t, output, "Run 'gitstrap setup' to provision this machine.")
}

func TestDoctor_GitMissing(t *testing.T) {
	saveAndRestoreDoctorFactories(t)

	checkPrerequisites = gitAbsent
	newGitConfigReader = func() gitConfigReader {
		t.Fatal("config must not be read when git is missing")
		return nil
	}
	statFile = func(string) bool { return false }

	output := captureOutput(func() {
		err := Doctor(context.Background(), gitcli.ScopeGlobal, "/home/dev/.git-credentials", false)
		require.NoError(t, err)
	})

	assert.Contains(t, output, "Install git")
}

func TestDoctor_JSONOutput(t *testing.T) {
	saveAndRestoreDoctorFactories(t)

	checkPrerequisites = gitPresent
	reader := &fakeConfigReader{values: map[string]string{
		"user.email": "dev@example.com",
	}}
	newGitConfigReader = func() gitConfigReader { return reader }
	statFile = func(string) bool { return true }

	output := captureOutput(func() {
		err := Doctor(context.Background(), gitcli.ScopeGlobal, "/home/dev/.git-credentials", true)
		require.NoError(t, err)
	})

	var status DoctorStatus
	require.NoError(t, json.Unmarshal([]byte(output), &status))
	assert.True(t, status.Git.Found)
	assert.Equal(t, "dev@example.com", status.Identity.Email)
	assert.Empty(t, status.Identity.Username)
	assert.True(t, status.CredentialFile.Exists)
	assert.Equal(t, "/home/dev/.git-credentials", status.CredentialFile.Path)
}

func TestDoctor_ScopePassedToReads(t *testing.T) {
	saveAndRestoreDoctorFactories(t)

	checkPrerequisites = gitPresent
	reader := &fakeConfigReader{values: map[string]string{}}
	newGitConfigReader = func() gitConfigReader { return reader }
	statFile = func(string) bool { return false }

	_ = captureOutput(func() {
		err := Doctor(context.Background(), gitcli.ScopeLocal, "/tmp/creds", false)
		require.NoError(t, err)
	})

	require.NotEmpty(t, reader.scopes)
	for _, scope := range reader.scopes {
		assert.Equal(t, gitcli.ScopeLocal, scope)
	}
}
