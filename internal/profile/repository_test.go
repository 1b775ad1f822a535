package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-agent/internal/types"
)

func testProfile() *types.UserProfile {
	return &types.UserProfile{
		Name:            "Ada Lovelace",
		CurrentTitle:    "Software Engineer",
		YearsExperience: 7,
		Education:       "BSc Mathematics",
		Skills:          []string{"Go", "SQL", "Kubernetes"},
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")

	saved := testProfile()
	require.NoError(t, Save(saved, path))

	// Save assigns identity and a timestamp
	assert.NotEmpty(t, saved.ID)
	assert.NotEmpty(t, saved.LastUpdated)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSaveLoad_RoundTripMinimalProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")

	// A profile with no skills is well-formed; the round trip must not
	// reject it
	saved := &types.UserProfile{Name: "Ada"}
	require.NoError(t, Save(saved, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
	assert.Equal(t, []string{}, loaded.Skills)
}

func TestSave_AssignsIDOnlyOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")

	p := testProfile()
	require.NoError(t, Save(p, path))
	firstID := p.ID

	require.NoError(t, Save(p, path))
	assert.Equal(t, firstID, p.ID)
}

func TestSave_OverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")

	first := testProfile()
	require.NoError(t, Save(first, path))

	second := testProfile()
	second.Name = "Grace Hopper"
	require.NoError(t, Save(second, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", loaded.Name)
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")

	require.NoError(t, Save(testProfile(), path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "profile.json", entries[0].Name())
}

func TestSave_RejectsInvalidProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")

	tests := []struct {
		name    string
		profile *types.UserProfile
	}{
		{name: "nil profile", profile: nil},
		{name: "missing name", profile: &types.UserProfile{Name: ""}},
		{name: "negative experience", profile: &types.UserProfile{Name: "Ada", YearsExperience: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Save(tt.profile, path)
			assert.Error(t, err)
			_, statErr := os.Stat(path)
			assert.True(t, os.IsNotExist(statErr), "no file should be written")
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	_, err := Load(path)
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, path, notFound.Path)
}

func TestLoad_Corrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not JSON", content: "this is not json{"},
		{name: "wrong shape", content: `{"name": 42}`},
		{name: "missing required name", content: `{"current_title": "Engineer"}`},
		{name: "unknown field", content: `{"name": "Ada", "favorite_color": "blue"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "profile.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			require.Error(t, err)

			var corrupt *CorruptError
			assert.ErrorAs(t, err, &corrupt)
		})
	}
}

func TestLoad_CorruptIsRecoverableAfterResave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0644))

	_, err := Load(path)
	require.Error(t, err)

	require.NoError(t, Save(testProfile(), path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", loaded.Name)
}
