package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type example struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestValidate(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	wd, err := os.Getwd()
	a.NoError(err)
	a.NoError(os.Chdir(dir))
	defer func() {
		_ = os.Chdir(wd)
	}()

	a.True(Validate(t, "example", example{Name: "a", Count: 1}))

	b, err := os.ReadFile(filepath.Join(dir, "testdata", "example.json"))
	a.NoError(err)
	a.Equal("{\n  \"name\": \"a\",\n  \"count\": 1\n}\n", string(b))

	a.True(Validate(t, "example", example{Name: "a", Count: 1}))

	// updating rewrites the file rather than comparing
	defer os.Unsetenv(UpdateEnv)
	a.NoError(os.Setenv(UpdateEnv, "1"))
	a.True(Validate(t, "example", example{Name: "b", Count: 2}))

	b, err = os.ReadFile(filepath.Join(dir, "testdata", "example.json"))
	a.NoError(err)
	a.Contains(string(b), `"count": 2`)
}
