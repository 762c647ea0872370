package shell

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// searchDirs splits $PATH into its directory list. An unset or empty PATH
// yields no directories.
func searchDirs() []string {
	path := os.Getenv("PATH")
	if path == "" {
		return nil
	}
	return strings.Split(path, string(os.PathListSeparator))
}

func isExecutable(info os.FileInfo) bool {
	return info.Mode().IsRegular() && info.Mode()&0111 != 0
}

// lookPath returns the first dir whose entry for name is an executable
// regular file. Directory order is the tie-break.
func lookPath(dirs []string, name string) (string, bool) {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && isExecutable(info) {
			return candidate, true
		}
	}
	return "", false
}

// executablesIn lists the deduplicated executable filenames across dirs that
// start with prefix, sorted. Directories that cannot be read are skipped.
func executablesIn(dirs []string, prefix string) []string {
	seen := make(map[string]bool)
	var names []string

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if !strings.HasPrefix(name, prefix) || seen[name] {
				continue
			}
			info, err := entry.Info()
			if err != nil || !isExecutable(info) {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names
}
