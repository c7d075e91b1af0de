package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"devmcp/internal/app"
	"devmcp/internal/config"
	"devmcp/internal/prompts"
	"devmcp/internal/storage"
	"devmcp/internal/transports/common"
	"devmcp/pkg/logger"
)

// New создает корневую CLI-команду.
func New(version string) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "devmcp",
		Short: "MCP-сервер инструментов разработчика",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "путь к YAML-конфигу")

	root.AddCommand(newVersionCmd(version))
	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newCallCmd(&configPath))
	root.AddCommand(newPromptCmd())
	root.AddCommand(newAuditCmd(&configPath))

	return root
}

func buildApp(cmd *cobra.Command, configPath string) (*app.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.Server.LogLevel)
	return app.New(cmd.Context(), cfg, log)
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Показать версию",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", version)
		},
	}
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить MCP-сервер на stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd, *configPath)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.Serve(cmd.Context())
		},
	}
}

func newCallCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> [key=value ...]",
		Short: "Выполнить инструмент напрямую, без MCP-клиента",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd, *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			tool := args[0]
			binding, ok := a.Registry().Lookup(tool)
			if !ok {
				return fmt.Errorf("unknown tool %q", tool)
			}
			callArgs, err := common.ParseCallArgs(binding.Spec, args[1:])
			if err != nil {
				return err
			}

			resp, execErr := a.Service("cli").ExecuteTool(cmd.Context(), "operator", tool, callArgs)
			if execErr != nil {
				return execErr
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}
}

func newPromptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt [name]",
		Short: "Показать каталог prompt-шаблонов либо текст одного из них",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, p := range prompts.Catalog() {
					fmt.Fprintf(cmd.OutOrStdout(), "%-28s %s: %s\n", p.Name, p.Category, p.Description)
				}
				return nil
			}
			p, ok := prompts.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown prompt %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.Text)
			return nil
		},
	}
}

func newAuditCmd(configPath *string) *cobra.Command {
	var tool string
	var limit int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Показать последние аудиторные события",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd, *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			store := a.Store()
			if store == nil {
				return fmt.Errorf("audit requires sqlite.path in config")
			}
			events, err := store.QueryAudit(cmd.Context(), storage.AuditQuery{Tool: tool, Limit: limit})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			for _, ev := range events {
				if err := enc.Encode(auditView(ev)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&tool, "tool", "", "фильтр по имени инструмента")
	cmd.Flags().IntVar(&limit, "limit", 20, "максимум событий")
	return cmd
}

func auditView(ev storage.AuditEvent) map[string]interface{} {
	view := map[string]interface{}{
		"ts":          ev.TS,
		"tool":        ev.Tool,
		"source":      ev.Source,
		"subject":     ev.Subject,
		"status":      ev.Status,
		"request_id":  ev.RequestID,
		"duration_ms": ev.DurationMS,
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(ev.Payload, &payload); err == nil {
		view["payload"] = payload
	}
	return view
}
