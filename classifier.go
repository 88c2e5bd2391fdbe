package main

import (
	"path"
	"path/filepath"
	"strings"
)

// excludedDirs are never descended into and exclude any path that contains them.
var excludedDirs = []string{
	// VCS
	".git", ".svn", ".hg", ".bzr",
	// Dependencies
	"node_modules", "bower_components", "jspm_packages",
	"vendor", "packages", "libs", "third_party",
	// Python
	"__pycache__", ".pytest_cache", ".mypy_cache", ".tox",
	"venv", "env", ".env", "virtualenv", ".venv", ".virtualenvs",
	"site-packages", "dist-packages",
	// Build output
	"build", "dist", "out", "output", "target", "bin", "obj",
	"_build", ".build", "cmake-build-debug", "cmake-build-release",
	// IDE
	".idea", ".vscode", ".vs", ".eclipse", ".settings",
	// Coverage
	"coverage", "htmlcov", ".coverage",
	// Temp and caches
	"tmp", "temp", ".tmp", ".temp", "cache", ".cache",
	// Generated docs
	"_site", "site", ".docusaurus",
}

var excludedFilePatterns = []string{
	// Lock files
	"*.lock", "package-lock.json", "yarn.lock", "pnpm-lock.yaml",
	"poetry.lock", "Pipfile.lock", "composer.lock", "Gemfile.lock",
	"Cargo.lock", "packages.lock.json", "bun.lockb",
	// Compiled artifacts
	"*.pyc", "*.pyo", "*.pyd", "*.so", "*.dylib", "*.dll", "*.class",
	"*.jar", "*.war", "*.o", "*.obj", "*.exe", "*.app",
	// Caches and logs
	"*.cache", "*.log", "*.tmp", "*.temp", "*.swp", "*.swo",
	// Data
	"*.db", "*.sqlite", "*.sqlite3", "*.csv", "*.dat",
	// Media
	"*.jpg", "*.jpeg", "*.png", "*.gif", "*.ico", "*.svg",
	"*.mp3", "*.mp4", "*.avi", "*.mov", "*.pdf", "*.doc", "*.docx",
	// Archives
	"*.zip", "*.tar", "*.gz", "*.bz2", "*.7z", "*.rar",
	// Minified and source maps
	"*.min.js", "*.min.css", "*.map",
	// OS metadata
	".DS_Store", "Thumbs.db", "desktop.ini",
}

var sourceExtensions = []string{
	".py", ".js", ".jsx", ".ts", ".tsx", ".java", ".cpp", ".hpp", ".c", ".h",
	".cc", ".cxx", ".cs", ".rb", ".go", ".php", ".swift", ".kt", ".kts",
	".rs", ".scala", ".pl", ".pm", ".dart", ".lua", ".r", ".m", ".mm",
	".f90", ".f95", ".jl", ".nim", ".v", ".zig", ".ex", ".exs", ".clj",
	".cljs", ".elm", ".hs", ".ml", ".fs", ".vb", ".pas", ".d", ".cr",
	".groovy",
	// Web
	".html", ".htm", ".css", ".scss", ".sass", ".less", ".vue", ".svelte",
	// Shell
	".sh", ".bash", ".zsh", ".fish", ".ps1", ".bat", ".cmd",
	// Data as code
	".sql", ".graphql", ".proto",
}

var testFileMarkers = []string{"test_", "_test.", ".test.", ".spec.", "_spec."}

// manifestFiles are matched case-sensitively against the filename.
var manifestFiles = []string{
	"requirements.txt", "package.json", "tsconfig.json", "Dockerfile",
	"docker-compose.yml", "docker-compose.yaml", "Makefile", "CMakeLists.txt",
	"setup.py", "setup.cfg", "pyproject.toml", "go.mod", "Cargo.toml",
	"Gemfile", "pom.xml", "build.gradle",
	"openapi.json", "openapi.yaml", "swagger.json", "swagger.yaml",
}

var readmeFiles = []string{"readme.md", "readme.rst", "readme.txt"}

var rootDotfiles = []string{".gitignore", ".dockerignore", ".editorconfig", ".gitlab-ci.yml"}

// Classifier decides whether a candidate file belongs in the document.
// It holds only immutable tables, so Classify is a pure function.
type Classifier struct {
	dirs       map[string]bool
	excludes   []string
	sourceExts map[string]bool
	manifests  map[string]bool
	dotfiles   map[string]bool
}

// NewClassifier builds a classifier. extraExcludes are additional filename
// globs (matched case-insensitively, like the built-in ones).
func NewClassifier(extraExcludes []string) *Classifier {
	c := &Classifier{
		dirs:       make(map[string]bool, len(excludedDirs)),
		sourceExts: toSet(sourceExtensions),
		manifests:  toSet(manifestFiles),
		dotfiles:   toSet(rootDotfiles),
	}
	for _, d := range excludedDirs {
		c.dirs[strings.ToLower(d)] = true
	}
	for _, p := range append(append([]string{}, excludedFilePatterns...), extraExcludes...) {
		p = strings.TrimSpace(p)
		if p != "" {
			c.excludes = append(c.excludes, strings.ToLower(p))
		}
	}
	return c
}

// Classify reports whether the file at relPath (relative to the root)
// should be included and under which category. First match wins.
func (c *Classifier) Classify(relPath, filename string) (bool, Category) {
	for _, part := range splitPath(relPath) {
		if c.dirs[strings.ToLower(part)] {
			return false, CategoryExcluded
		}
	}

	lower := strings.ToLower(filename)
	if matched, _ := matchesAnyPattern(lower, c.excludes); matched {
		return false, CategoryExcluded
	}

	if c.sourceExts[path.Ext(lower)] {
		for _, marker := range testFileMarkers {
			if strings.Contains(lower, marker) {
				return true, CategoryTest
			}
		}
		return true, CategorySource
	}

	if c.manifests[filename] {
		return true, CategoryConfig
	}

	for _, name := range readmeFiles {
		if lower == name {
			return true, CategoryDoc
		}
	}

	if strings.HasPrefix(filename, ".") && !strings.ContainsAny(relPath, `/\`) && c.dotfiles[filename] {
		return true, CategoryConfig
	}

	return false, CategoryExcluded
}

// IsExcludedDir reports whether traversal should prune a directory.
func (c *Classifier) IsExcludedDir(name string) bool {
	return c.dirs[strings.ToLower(name)] || strings.HasPrefix(name, ".")
}

// splitPath splits on both separators so Windows-style input classifies
// the same as slash-separated input.
func splitPath(p string) []string {
	p = filepath.ToSlash(p)
	return strings.FieldsFunc(p, func(r rune) bool { return r == '/' || r == '\\' })
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
