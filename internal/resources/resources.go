package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"devmcp/internal/sysinfo"
)

// Resource описывает один статический ресурс сервера.
type Resource struct {
	URI         string
	Name        string
	Description string
	MIMEType    string
	Read        func(ctx context.Context) (string, error)
}

// All возвращает ресурсы, публикуемые сервером.
func All() []Resource {
	return []Resource{
		{
			URI:         "file://current-directory",
			Name:        "Current Directory",
			Description: "The current working directory of the server.",
			MIMEType:    "text/plain",
			Read:        currentDirectory,
		},
		{
			URI:         "file://system-info",
			Name:        "System Information",
			Description: "Platform metadata for the host running the server.",
			MIMEType:    "application/json",
			Read:        systemInfo,
		},
	}
}

func currentDirectory(ctx context.Context) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("current directory: %w", err)
	}
	return wd, nil
}

func systemInfo(ctx context.Context) (string, error) {
	snap, err := sysinfo.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal system info: %w", err)
	}
	return string(data), nil
}
