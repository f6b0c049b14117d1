package config

import "os"

const DefaultVaultPath = "~/Documents/journal"

// DefaultAuthor is the author written into the metadata block of
// generated index files.
const DefaultAuthor = "jotdex"

// SkipDirs lists vault folders the overview generator never descends into.
var SkipDirs = []string{".obsidian", ".trash"}

// VaultPath returns the vault path from the JOTDEX_VAULT env var,
// falling back to DefaultVaultPath.
func VaultPath() string {
	if env := os.Getenv("JOTDEX_VAULT"); env != "" {
		return env
	}
	return DefaultVaultPath
}

// Author returns the metadata author from the JOTDEX_AUTHOR env var,
// falling back to DefaultAuthor.
func Author() string {
	if env := os.Getenv("JOTDEX_AUTHOR"); env != "" {
		return env
	}
	return DefaultAuthor
}
