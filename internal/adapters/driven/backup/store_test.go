package backup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cvsync/internal/core/domain"
)

func setupPage(t *testing.T, content string) (string, *FileStore) {
	t.Helper()
	dir := t.TempDir()
	page := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(page, []byte(content), 0644))
	return page, NewFileStore(page, "")
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestFileStore_Create(t *testing.T) {
	page, store := setupPage(t, "<html>v1</html>")
	store.now = fixedClock(time.Date(2025, 3, 1, 9, 30, 5, 0, time.Local))

	name, err := store.Create(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "index-20250301-093005.html.backup", name)

	data, err := os.ReadFile(filepath.Join(filepath.Dir(page), name))
	require.NoError(t, err)
	assert.Equal(t, "<html>v1</html>", string(data))
}

func TestFileStore_Create_SameSecondKeepsFirst(t *testing.T) {
	page, store := setupPage(t, "first")
	store.now = fixedClock(time.Date(2025, 3, 1, 9, 30, 5, 0, time.Local))

	name1, err := store.Create(context.Background())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(page, []byte("second"), 0644))
	name2, err := store.Create(context.Background())
	require.NoError(t, err)
	assert.Equal(t, name1, name2)

	data, err := os.ReadFile(filepath.Join(store.Dir(), name1))
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestFileStore_Create_MissingPage(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "index.html"), "")

	_, err := store.Create(context.Background())
	assert.ErrorIs(t, err, domain.ErrPageUnreadable)
}

func TestFileStore_Create_SeparateDir(t *testing.T) {
	root := t.TempDir()
	page := filepath.Join(root, "index.html")
	require.NoError(t, os.WriteFile(page, []byte("x"), 0644))
	store := NewFileStore(page, filepath.Join(root, "backups"))

	name, err := store.Create(context.Background())
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "backups", name))
}

func TestFileStore_ListAndLatest(t *testing.T) {
	page, store := setupPage(t, "x")
	dir := filepath.Dir(page)
	for _, name := range []string{
		"index-20250301-093005.html.backup",
		"index-20241231-235959.html.backup",
		"index-20250115-120000.html.backup",
		"about-20260101-000000.html.backup",
		"index-latest.html.backup",
		"notes.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}

	names, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"index-20241231-235959.html.backup",
		"index-20250115-120000.html.backup",
		"index-20250301-093005.html.backup",
	}, names)

	latest, err := store.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "index-20250301-093005.html.backup", latest)
}

func TestFileStore_Latest_None(t *testing.T) {
	_, store := setupPage(t, "x")

	_, err := store.Latest(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoBackup)
}

func TestFileStore_List_MissingDir(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "index.html"), filepath.Join(t.TempDir(), "nope"))

	names, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestFileStore_Restore(t *testing.T) {
	page, store := setupPage(t, "<html>old</html>")
	store.now = fixedClock(time.Date(2025, 3, 1, 9, 30, 5, 0, time.Local))

	name, err := store.Create(context.Background())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(page, []byte("<html>new</html>"), 0644))

	require.NoError(t, store.Restore(context.Background(), name))

	data, err := os.ReadFile(page)
	require.NoError(t, err)
	assert.Equal(t, "<html>old</html>", string(data))

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(page), ".*.tmp-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestFileStore_Restore_Invalid(t *testing.T) {
	_, store := setupPage(t, "x")

	err := store.Restore(context.Background(), "../etc/passwd")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = store.Restore(context.Background(), "index-20250301-093005.html.backup")
	assert.ErrorIs(t, err, domain.ErrNoBackup)
}

func TestFileStore_CancelledContext(t *testing.T) {
	_, store := setupPage(t, "x")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Create(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = store.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
