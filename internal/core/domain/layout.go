package domain

import "path/filepath"

const (
	// CacheDirName is the name of the top-level cache directory.
	CacheDirName = ".cache"

	// PluginName is the name avify registers under and the cache subdirectory name.
	PluginName = "avify"

	// CacheFileName is the name of the persisted mtime cache file.
	CacheFileName = "image-mtimes.json"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "avify.yaml"

	// TargetExt is the extension appended to converted files. It is appended
	// to the full original filename: photo.png becomes photo.png.avif.
	TargetExt = ".avif"

	// DirPerm is the default permission for directories (rwxr-xr-x).
	DirPerm = 0o755

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default directory holding the cache file,
// relative to the working directory.
func DefaultCachePath() string {
	return filepath.Join(CacheDirName, PluginName)
}

// CacheFilePath returns the full path of the cache file inside cacheDir.
func CacheFilePath(cacheDir string) string {
	return filepath.Join(cacheDir, CacheFileName)
}
