package files

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"

	"devmcp/internal/core"
)

// Limits задает пределы файловых операций из конфигурации.
type Limits struct {
	MaxReadLines     int
	MaxFileSizeMB    int
	MaxSearchResults int
}

// Module предоставляет инструменты работы с файловой системой.
type Module struct {
	limits Limits
}

func New(limits Limits) *Module {
	if limits.MaxReadLines <= 0 {
		limits.MaxReadLines = 100
	}
	if limits.MaxFileSizeMB <= 0 {
		limits.MaxFileSizeMB = 10
	}
	if limits.MaxSearchResults <= 0 {
		limits.MaxSearchResults = 50
	}
	return &Module{limits: limits}
}

func (m *Module) Name() string { return "files" }

func (m *Module) Init(ctx context.Context) error { //nolint:revive // инициализация тривиальна
	return nil
}

func (m *Module) Commands() []core.CommandSpec {
	return []core.CommandSpec{
		{
			Name:        "list_directory",
			Description: "List files and directories in the specified path.",
			Params: []core.ParamSpec{
				{Name: "path", Type: "string", Description: "Directory path to list", Default: "."},
			},
		},
		{
			Name:        "read_file",
			Description: "Read content from a text file.",
			Params: []core.ParamSpec{
				{Name: "file_path", Type: "string", Description: "Path to the file to read", Required: true},
				{Name: "max_lines", Type: "integer", Description: "Maximum number of lines to read", Default: 100},
			},
		},
		{
			Name:        "search_files",
			Description: "Search for files matching a glob pattern (supports ** recursion).",
			Params: []core.ParamSpec{
				{Name: "pattern", Type: "string", Description: "Glob pattern to search for", Required: true},
				{Name: "directory", Type: "string", Description: "Directory to search in", Default: "."},
				{Name: "max_results", Type: "integer", Description: "Maximum number of results", Default: 10},
			},
		},
		{
			Name:        "get_file_info",
			Description: "Get detailed information about a file or directory.",
			Params: []core.ParamSpec{
				{Name: "file_path", Type: "string", Description: "Path to the file or directory", Required: true},
			},
		},
	}
}

func (m *Module) Execute(ctx context.Context, cmd string, args core.Args) (core.Response, error) {
	switch cmd {
	case "list_directory":
		return m.listDirectory(args)
	case "read_file":
		return m.readFile(args)
	case "search_files":
		return m.searchFiles(args)
	case "get_file_info":
		return m.fileInfo(args)
	default:
		return core.Response{Status: "error", ErrorCode: "unknown_command"}, fmt.Errorf("command %s not supported", cmd)
	}
}

// Entry описывает один элемент листинга каталога или результата поиска.
type Entry struct {
	Path     string `json:"path,omitempty"`
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"`
	Size     *int64 `json:"size"`
	Modified *int64 `json:"modified,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (m *Module) listDirectory(args core.Args) (core.Response, error) {
	path, err := args.String("path", ".")
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "invalid_arguments"}, err
	}
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "not_found"}, fmt.Errorf("list directory %s: %w", path, err)
	}

	items := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		info, statErr := de.Info()
		if statErr != nil {
			items = append(items, Entry{Name: de.Name(), Type: "unknown", Error: "could not access file stats"})
			continue
		}
		entry := Entry{Name: de.Name(), Type: "file"}
		if info.IsDir() {
			entry.Type = "directory"
		} else {
			size := info.Size()
			entry.Size = &size
		}
		mod := info.ModTime().Unix()
		entry.Modified = &mod
		items = append(items, entry)
	}
	// Каталоги перед файлами, внутри группы по имени.
	sort.Slice(items, func(i, j int) bool {
		if items[i].Type != items[j].Type {
			return items[i].Type < items[j].Type
		}
		return items[i].Name < items[j].Name
	})
	return core.Response{Status: "ok", Data: items}, nil
}

// FileContent описывает результат чтения текстового файла.
type FileContent struct {
	Path      string   `json:"path"`
	LinesRead int      `json:"lines_read"`
	Content   []string `json:"content"`
	Truncated bool     `json:"truncated"`
}

func (m *Module) readFile(args core.Args) (core.Response, error) {
	filePath, err := args.RequiredString("file_path")
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "invalid_arguments"}, err
	}
	maxLines, err := args.IntDefault("max_lines", m.limits.MaxReadLines)
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "invalid_arguments"}, err
	}
	if maxLines <= 0 {
		maxLines = m.limits.MaxReadLines
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "not_found"}, fmt.Errorf("read file %s: %w", filePath, err)
	}
	if info.IsDir() {
		return core.Response{Status: "error", ErrorCode: "not_a_file"}, fmt.Errorf("%s is not a file", filePath)
	}
	if maxBytes := int64(m.limits.MaxFileSizeMB) * 1024 * 1024; info.Size() > maxBytes {
		return core.Response{Status: "error", ErrorCode: "file_too_large"},
			fmt.Errorf("file %s exceeds %d MB limit", filePath, m.limits.MaxFileSizeMB)
	}

	f, err := os.Open(filePath) // #nosec G304 -- путь приходит от доверенного MCP-клиента.
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "read_failed"}, fmt.Errorf("open %s: %w", filePath, err)
	}
	defer f.Close()

	abs, err := filepath.Abs(filePath)
	if err != nil {
		abs = filePath
	}

	lines := make([]string, 0, maxLines)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for len(lines) < maxLines && scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return core.Response{Status: "error", ErrorCode: "not_text"},
				fmt.Errorf("file %s is not a valid text file", filePath)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return core.Response{Status: "error", ErrorCode: "read_failed"}, fmt.Errorf("read %s: %w", filePath, err)
	}

	return core.Response{Status: "ok", Data: FileContent{
		Path:      abs,
		LinesRead: len(lines),
		Content:   lines,
		// Флаг выставляется и при файле ровно в max_lines строк:
		// лимит достигнут, продолжение не гарантировано.
		Truncated: len(lines) == maxLines,
	}}, nil
}

func (m *Module) searchFiles(args core.Args) (core.Response, error) {
	pattern, err := args.RequiredString("pattern")
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "invalid_arguments"}, err
	}
	directory, err := args.String("directory", ".")
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "invalid_arguments"}, err
	}
	maxResults, err := args.IntDefault("max_results", 10)
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "invalid_arguments"}, err
	}
	if maxResults <= 0 || maxResults > m.limits.MaxSearchResults {
		maxResults = m.limits.MaxSearchResults
	}

	matches, err := doublestar.FilepathGlob(filepath.Join(directory, pattern))
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "bad_pattern"}, fmt.Errorf("search %q: %w", pattern, err)
	}
	sort.Strings(matches)
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}

	results := make([]Entry, 0, len(matches))
	for _, match := range matches {
		abs, absErr := filepath.Abs(match)
		if absErr != nil {
			abs = match
		}
		info, statErr := os.Stat(match)
		if statErr != nil {
			results = append(results, Entry{Path: abs, Name: filepath.Base(match), Error: "could not access file stats"})
			continue
		}
		entry := Entry{Path: abs, Name: filepath.Base(match), Type: "file"}
		if info.IsDir() {
			entry.Type = "directory"
		} else {
			size := info.Size()
			entry.Size = &size
		}
		mod := info.ModTime().Unix()
		entry.Modified = &mod
		results = append(results, entry)
	}
	return core.Response{Status: "ok", Data: results}, nil
}

// FileInfo описывает расширенные метаданные файла или каталога.
type FileInfo struct {
	Path        string `json:"path"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Size        int64  `json:"size"`
	Modified    string `json:"modified"`
	ModifiedTS  int64  `json:"modified_timestamp"`
	Created     string `json:"created"`
	CreatedTS   int64  `json:"created_timestamp"`
	Permissions string `json:"permissions"`
	OwnerUID    int    `json:"owner_uid"`
	GroupGID    int    `json:"group_gid"`
	Extension   string `json:"extension,omitempty"`
	Stem        string `json:"stem,omitempty"`
}

func (m *Module) fileInfo(args core.Args) (core.Response, error) {
	filePath, err := args.RequiredString("file_path")
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "invalid_arguments"}, err
	}
	info, err := os.Stat(filePath)
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "not_found"}, fmt.Errorf("stat %s: %w", filePath, err)
	}
	abs, absErr := filepath.Abs(filePath)
	if absErr != nil {
		abs = filePath
	}

	uid, gid := fileOwner(info)
	created := fileCreated(info)
	fi := FileInfo{
		Path:        abs,
		Name:        info.Name(),
		Type:        "file",
		Size:        info.Size(),
		Modified:    info.ModTime().UTC().Format("Mon Jan  2 15:04:05 2006"),
		ModifiedTS:  info.ModTime().Unix(),
		Created:     created.UTC().Format("Mon Jan  2 15:04:05 2006"),
		CreatedTS:   created.Unix(),
		Permissions: fmt.Sprintf("%03o", info.Mode().Perm()),
		OwnerUID:    uid,
		GroupGID:    gid,
	}
	if info.IsDir() {
		fi.Type = "directory"
	} else {
		ext := filepath.Ext(info.Name())
		fi.Extension = ext
		fi.Stem = strings.TrimSuffix(info.Name(), ext)
	}
	return core.Response{Status: "ok", Data: fi}, nil
}
