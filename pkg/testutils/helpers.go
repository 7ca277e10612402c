package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
}

// CreateNumberedFiles creates n files named img1.<ext> … imgN.<ext> and
// returns their paths in creation order.
func CreateNumberedFiles(t *testing.T, dir, ext string, n int) []string {
	t.Helper()
	paths := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		path := filepath.Join(dir, fmt.Sprintf("img%d.%s", i, ext))
		require.NoError(t, os.WriteFile(path, []byte("test content"), 0644))
		paths = append(paths, path)
	}
	return paths
}
